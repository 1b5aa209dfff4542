package scoring

import (
	"context"
	"fmt"
	"sort"

	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

// Tier thresholds for the V2.1 overall score
const (
	tierExcellent = 90
	tierStrong    = 75
	tierModerate  = 60
	tierWeak      = 40
)

// actionItemCutoff is the component score above which no action item is emitted
const actionItemCutoff = 90

// ScoreEnhanced computes the V2.1 breakdown: five weighted components, a tier
// label, and action items ordered by descending potential impact. Weights are
// selected by the detected role/seniority; when the content-quality signal is
// unavailable its weight is redistributed proportionally across the rest.
func (s *Scorer) ScoreEnhanced(ctx context.Context, keywords *types.KeywordAnalysis, resume *types.ParsedResume, jobDescription string) (*types.EnhancedScoreBreakdown, error) {
	if err := validateInputs(keywords, resume, jobDescription); err != nil {
		return nil, err
	}

	resume = resume.Clone()
	resume.Normalize()

	role, seniority := DetectRoleProfile(jobDescription)
	weights := WeightsFor(role, seniority)
	if !weightSumOK(weights) {
		s.logger.Warn().
			Str("role", role).
			Str("seniority", seniority).
			Float64("sum", weightSum(weights)).
			Msg("weight profile does not sum to 1.0; using as-is")
	}

	scores := map[types.ComponentName]int{}
	details := map[types.ComponentName]map[string]string{}

	scores[types.ComponentKeywords] = roundHalfUp(clampScore(keywords.MatchRate))
	details[types.ComponentKeywords] = map[string]string{
		"matched": fmt.Sprintf("%d", len(keywords.MatchedKeywords)),
		"missing": fmt.Sprintf("%d", len(keywords.MissingKeywords)),
	}

	scores[types.ComponentQualificationFit], details[types.ComponentQualificationFit] = qualificationFit(resume, jobDescription)
	scores[types.ComponentSections], details[types.ComponentSections] = sectionCoverageV2(resume)
	scores[types.ComponentFormat], details[types.ComponentFormat] = formatScore(resume.RawText)

	breakdown := &types.EnhancedScoreBreakdown{
		Components: make(map[types.ComponentName]types.ScoreComponent),
	}

	judgment := s.judge.JudgeContentQuality(ctx, resume.RawText, jobDescription)
	if judgment.Degraded {
		breakdown.Degraded = true
		breakdown.DegradedReason = judgment.Reason
		weights = redistributeWeight(weights, types.ComponentContentQuality)
		scores[types.ComponentContentQuality] = 0
		details[types.ComponentContentQuality] = map[string]string{"status": judgment.Reason}
	} else {
		scores[types.ComponentContentQuality] = roundHalfUp(clampScore(float64(judgment.Score)))
		qualityDetails := map[string]string{}
		for i, obs := range judgment.Observations {
			qualityDetails[fmt.Sprintf("observation_%d", i+1)] = obs
		}
		details[types.ComponentContentQuality] = qualityDetails
	}

	total := 0.0
	for name, weight := range weights {
		clamped := clampScore(float64(scores[name]))
		weighted := clamped * weight
		total += weighted
		breakdown.Components[name] = types.ScoreComponent{
			Score:    int(clamped),
			Weight:   weight,
			Weighted: weighted,
			Details:  details[name],
		}
	}

	breakdown.Overall = clampInt(roundHalfUp(total))
	breakdown.Tier = tierFor(breakdown.Overall)
	breakdown.ActionItems = buildActionItems(breakdown.Components)

	return breakdown, nil
}

// redistributeWeight removes one component's weight and scales the remaining
// weights proportionally so they still sum to the original total. Profiles
// that do not sum to 1.0 are used as-is, so the scale works from the actual
// sum rather than assuming it.
func redistributeWeight(weights WeightProfile, removed types.ComponentName) WeightProfile {
	total := weightSum(weights)
	removedWeight := weights[removed]
	remaining := total - removedWeight
	if remaining <= 0 {
		return weights
	}

	out := make(WeightProfile, len(weights))
	for name, w := range weights {
		if name == removed {
			out[name] = 0
			continue
		}
		out[name] = w * total / remaining
	}
	return out
}

func tierFor(overall int) string {
	switch {
	case overall >= tierExcellent:
		return "excellent"
	case overall >= tierStrong:
		return "strong"
	case overall >= tierModerate:
		return "moderate"
	case overall >= tierWeak:
		return "weak"
	default:
		return "poor"
	}
}

// componentMessages are the action-item phrasings per component
var componentMessages = map[types.ComponentName]string{
	types.ComponentKeywords:         "Work more of the job's keywords into your experience bullets",
	types.ComponentQualificationFit: "Make your qualifications for this role more explicit",
	types.ComponentContentQuality:   "Strengthen bullet points with specific, quantified outcomes",
	types.ComponentSections:         "Add the standard resume sections you're missing",
	types.ComponentFormat:           "Tighten the formatting: short bulleted lines, reasonable length",
}

// buildActionItems derives prioritized improvements from low-scoring
// components, ordered by descending potential impact
func buildActionItems(components map[types.ComponentName]types.ScoreComponent) []types.ActionItem {
	items := make([]types.ActionItem, 0, len(components))

	for name, component := range components {
		if component.Score >= actionItemCutoff || component.Weight == 0 {
			continue
		}
		items = append(items, types.ActionItem{
			Priority:        priorityFor(component.Score),
			Message:         componentMessages[name],
			PotentialImpact: component.Weight * float64(100-component.Score),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PotentialImpact > items[j].PotentialImpact
	})

	return items
}

func priorityFor(score int) types.ActionItemPriority {
	switch {
	case score < 40:
		return types.PriorityCritical
	case score < 60:
		return types.PriorityHigh
	case score < 75:
		return types.PriorityModerate
	default:
		return types.PriorityLow
	}
}
