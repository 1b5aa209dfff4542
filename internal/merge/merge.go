package merge

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

// Skip reasons reported in warnings.
const (
	reasonNotFound         = "not found"
	reasonFormatAdvisory   = "format suggestions are advisory"
	reasonUnknownSection   = "unknown section"
	reasonMissingItemIndex = "item index out of range"
)

// MergeWarning records why one accepted suggestion could not be applied.
type MergeWarning struct {
	SuggestionID string `json:"suggestion_id"`
	Reason       string `json:"reason"`
}

// DiffSegment is one applied replacement, kept for merge previews. Unchanged
// content never appears here, so IsDiffContent is always true for emitted segments.
type DiffSegment struct {
	Original      string `json:"original"`
	Suggested     string `json:"suggested"`
	IsDiffContent bool   `json:"is_diff_content"`
}

// MergeResult is the outcome of applying a batch of suggestions. The counts
// partition the accepted suggestions: AppliedCount + SkippedCount + NoopCount
// equals the number of accepted suggestions in the batch.
type MergeResult struct {
	MergedContent *types.ParsedResume `json:"merged_content"`
	AppliedCount  int                 `json:"applied_count"`
	SkippedCount  int                 `json:"skipped_count"`
	NoopCount     int                 `json:"noop_count"`
	Warnings      []MergeWarning      `json:"warnings,omitempty"`
	Diffs         []DiffSegment       `json:"diffs,omitempty"`
}

// Engine applies accepted suggestions to a resume. Safe for concurrent use;
// each Apply call works on its own clone of the input.
type Engine struct {
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for skip diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a merge engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply merges every accepted suggestion into a copy of the resume and returns
// the result. Pending and rejected suggestions are ignored. Suggestions are
// applied strictly in CreatedAt order because a later suggestion may target
// text produced by an earlier one. A suggestion whose exact target text no
// longer exists is skipped with a warning, never partially applied. The input
// resume is not mutated.
func (e *Engine) Apply(resume *types.ParsedResume, suggestions []types.Suggestion) (*MergeResult, error) {
	if resume == nil {
		return nil, &ValidationError{Message: "resume is required"}
	}

	accepted := make([]types.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Status == types.StatusAccepted {
			accepted = append(accepted, s)
		}
	}
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].CreatedAt.Before(accepted[j].CreatedAt)
	})

	merged := resume.Clone()
	result := &MergeResult{MergedContent: merged}

	for _, s := range accepted {
		if s.IsNoop() {
			result.NoopCount++
			continue
		}
		if s.Section == types.SectionFormat {
			e.skip(result, s, reasonFormatAdvisory)
			continue
		}
		if reason := applySuggestion(merged, &s); reason != "" {
			e.skip(result, s, reason)
			continue
		}
		result.AppliedCount++
		result.Diffs = append(result.Diffs, DiffSegment{
			Original:      s.OriginalText,
			Suggested:     s.SuggestedText,
			IsDiffContent: true,
		})
	}
	return result, nil
}

func (e *Engine) skip(result *MergeResult, s types.Suggestion, reason string) {
	result.SkippedCount++
	result.Warnings = append(result.Warnings, MergeWarning{SuggestionID: s.ID, Reason: reason})
	e.logger.Warn().
		Str("suggestion_id", s.ID).
		Str("section", string(s.Section)).
		Str("reason", reason).
		Msg("suggestion skipped")
}

// applySuggestion replaces the targeted text in place and returns an empty
// string, or returns the skip reason. Matching is exact and case-sensitive.
func applySuggestion(resume *types.ParsedResume, s *types.Suggestion) string {
	switch s.Section {
	case types.SectionExperience:
		return replaceFlattened(experienceBullets(resume), s)
	case types.SectionEducation:
		return replaceFlattened(educationDetails(resume), s)
	case types.SectionSkills:
		return replaceSkill(resume, s)
	case types.SectionProjects:
		if resume.Projects == nil || *resume.Projects != s.OriginalText {
			return reasonNotFound
		}
		*resume.Projects = s.SuggestedText
		return ""
	default:
		return reasonUnknownSection
	}
}

// replaceFlattened applies a replacement over a flattened document-order view
// of bullet pointers. With an item index, only that position is checked;
// without one, the first exact match wins.
func replaceFlattened(bullets []*string, s *types.Suggestion) string {
	if s.ItemIndex != nil {
		i := *s.ItemIndex
		if i < 0 || i >= len(bullets) {
			return reasonMissingItemIndex
		}
		if *bullets[i] != s.OriginalText {
			return reasonNotFound
		}
		*bullets[i] = s.SuggestedText
		return ""
	}
	for _, b := range bullets {
		if *b == s.OriginalText {
			*b = s.SuggestedText
			return ""
		}
	}
	return reasonNotFound
}

func replaceSkill(resume *types.ParsedResume, s *types.Suggestion) string {
	if s.ItemIndex != nil {
		i := *s.ItemIndex
		if i < 0 || i >= len(resume.Skills) {
			return reasonMissingItemIndex
		}
		if resume.Skills[i].Name != s.OriginalText {
			return reasonNotFound
		}
		resume.Skills[i].Name = s.SuggestedText
		return ""
	}
	for i := range resume.Skills {
		if resume.Skills[i].Name == s.OriginalText {
			resume.Skills[i].Name = s.SuggestedText
			return ""
		}
	}
	return reasonNotFound
}

// experienceBullets returns pointers to every experience bullet in document order.
func experienceBullets(resume *types.ParsedResume) []*string {
	var bullets []*string
	for i := range resume.Experience {
		for j := range resume.Experience[i].BulletPoints {
			bullets = append(bullets, &resume.Experience[i].BulletPoints[j])
		}
	}
	return bullets
}

// educationDetails returns pointers to every education detail line in document order.
func educationDetails(resume *types.ParsedResume) []*string {
	var details []*string
	for i := range resume.Education {
		for j := range resume.Education[i].Details {
			details = append(details, &resume.Education[i].Details[j])
		}
	}
	return details
}
