// Package types provides type definitions for structured data used throughout the coop-ready analysis engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordAnalysis is the upstream keyword-coverage input to the scorer.
// MatchRate is already expressed in the 0-100 range.
type KeywordAnalysis struct {
	MatchRate       float64  `json:"match_rate"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MissingKeywords []string `json:"missing_keywords,omitempty"`
}

// ScoreBreakdown is the V1 composite score: three components and a weighted overall,
// all clamped to [0,100]. Degraded is set when the content-quality signal was
// unavailable and the fallback weighting was used.
type ScoreBreakdown struct {
	KeywordScore         int    `json:"keyword_score"`
	SectionCoverageScore int    `json:"section_coverage_score"`
	ContentQualityScore  int    `json:"content_quality_score"`
	Overall              int    `json:"overall"`
	Degraded             bool   `json:"degraded,omitempty"`
	DegradedReason       string `json:"degraded_reason,omitempty"`
}

// ComponentName identifies one of the V2.1 score components
type ComponentName string

// V2.1 component names
const (
	ComponentKeywords         ComponentName = "keywords"
	ComponentQualificationFit ComponentName = "qualification_fit"
	ComponentContentQuality   ComponentName = "content_quality"
	ComponentSections         ComponentName = "sections"
	ComponentFormat           ComponentName = "format"
)

// ScoreComponent is one weighted component of the V2.1 breakdown
type ScoreComponent struct {
	Score    int               `json:"score"`
	Weight   float64           `json:"weight"`
	Weighted float64           `json:"weighted"`
	Details  map[string]string `json:"details,omitempty"`
}

// ActionItemPriority orders action items for the candidate
type ActionItemPriority string

// Action item priority values
const (
	PriorityCritical ActionItemPriority = "critical"
	PriorityHigh     ActionItemPriority = "high"
	PriorityModerate ActionItemPriority = "moderate"
	PriorityLow      ActionItemPriority = "low"
)

// ActionItem is a prioritized improvement derived from a low-scoring component
type ActionItem struct {
	Priority        ActionItemPriority `json:"priority"`
	Message         string             `json:"message"`
	PotentialImpact float64            `json:"potential_impact"`
}

// EnhancedScoreBreakdown is the V2.1 composite score: five weighted components,
// a tier label, and action items ordered by descending potential impact.
type EnhancedScoreBreakdown struct {
	Components     map[ComponentName]ScoreComponent `json:"components"`
	Overall        int                              `json:"overall"`
	Tier           string                           `json:"tier"`
	ActionItems    []ActionItem                     `json:"action_items"`
	Degraded       bool                             `json:"degraded,omitempty"`
	DegradedReason string                           `json:"degraded_reason,omitempty"`
}
