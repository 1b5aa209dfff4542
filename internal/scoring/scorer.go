package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/lawrence-dass/coop-ready-sub002/internal/quality"
	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
	"github.com/rs/zerolog"
)

// V1 component weights
const (
	keywordWeight = 0.50
	sectionWeight = 0.25
	qualityWeight = 0.25

	// Degraded weighting used when the content-quality signal is unavailable
	degradedKeywordWeight = 0.67
	degradedSectionWeight = 0.33
)

// v1RequiredSections are the sections whose presence drives the V1 coverage score
const v1RequiredSections = 3 // summary, skills, experience

// Scorer computes composite score breakdowns. The content-quality sub-score is
// the only one that leaves the process; everything else is local arithmetic.
type Scorer struct {
	judge  quality.Judge
	logger zerolog.Logger
}

// NewScorer creates a scorer using the given quality judge
func NewScorer(judge quality.Judge, logger zerolog.Logger) *Scorer {
	return &Scorer{judge: judge, logger: logger}
}

// Score computes the V1 breakdown: keyword coverage, section coverage, and
// content quality combined into a weighted overall. A failed quality judgment
// degrades to the fallback weighting; it never fails the computation.
func (s *Scorer) Score(ctx context.Context, keywords *types.KeywordAnalysis, resume *types.ParsedResume, jobDescription string) (*types.ScoreBreakdown, error) {
	if err := validateInputs(keywords, resume, jobDescription); err != nil {
		return nil, err
	}

	resume = resume.Clone()
	resume.Normalize()

	keywordScore := clampScore(keywords.MatchRate)
	sectionScore := float64(sectionCoverageV1(resume))

	judgment := s.judge.JudgeContentQuality(ctx, resume.RawText, jobDescription)
	if judgment.Degraded {
		s.logger.Info().Str("reason", judgment.Reason).Msg("scoring with degraded weighting")
		overall := roundHalfUp(keywordScore*degradedKeywordWeight + sectionScore*degradedSectionWeight)
		return &types.ScoreBreakdown{
			KeywordScore:         roundHalfUp(keywordScore),
			SectionCoverageScore: int(sectionScore),
			ContentQualityScore:  0,
			Overall:              clampInt(overall),
			Degraded:             true,
			DegradedReason:       judgment.Reason,
		}, nil
	}

	qualityScore := clampScore(float64(judgment.Score))
	overall := roundHalfUp(keywordScore*keywordWeight + sectionScore*sectionWeight + qualityScore*qualityWeight)

	return &types.ScoreBreakdown{
		KeywordScore:         roundHalfUp(keywordScore),
		SectionCoverageScore: int(sectionScore),
		ContentQualityScore:  roundHalfUp(qualityScore),
		Overall:              clampInt(overall),
	}, nil
}

func validateInputs(keywords *types.KeywordAnalysis, resume *types.ParsedResume, jobDescription string) error {
	if keywords == nil {
		return &ValidationError{Message: "keyword analysis is required"}
	}
	if resume == nil || strings.TrimSpace(resume.RawText) == "" {
		return &ValidationError{Message: "resume raw text is required"}
	}
	if strings.TrimSpace(jobDescription) == "" {
		return &ValidationError{Message: "job description is required"}
	}
	return nil
}

// sectionCoverageV1 scores presence of summary, skills, and experience.
// Presence requires non-nil, non-whitespace content; Normalize has already
// collapsed blank sections to absent.
func sectionCoverageV1(resume *types.ParsedResume) int {
	present := 0
	if resume.HasSummary() {
		present++
	}
	if resume.HasSkills() {
		present++
	}
	if resume.HasExperience() {
		present++
	}
	return roundHalfUp(100 * float64(present) / v1RequiredSections)
}

// roundHalfUp rounds with ties away from zero toward positive infinity
// (2/3 -> 67, 87.5 -> 88), matching the scoring contract.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// clampScore clamps a stored score value to [0,100] at the point it is read
// back, before it feeds any weighted sum.
func clampScore(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}

func clampInt(x int) int {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}
