// Package types provides type definitions for structured data used throughout the coop-ready analysis engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// StructuralCategory classifies what a structural suggestion is about
type StructuralCategory string

// Structural suggestion categories
const (
	CategorySectionOrder    StructuralCategory = "section_order"
	CategorySectionPresence StructuralCategory = "section_presence"
	CategorySectionHeading  StructuralCategory = "section_heading"
)

// StructuralPriority ranks how important a structural suggestion is
type StructuralPriority string

// Structural suggestion priorities
const (
	StructuralCritical StructuralPriority = "critical"
	StructuralHigh     StructuralPriority = "high"
	StructuralModerate StructuralPriority = "moderate"
	StructuralLow      StructuralPriority = "low"
)

// StructuralSuggestion is a rule-triggered recommendation about section presence,
// order, or heading wording. ID is the stable rule id, so a given rule can appear
// at most once in any result.
type StructuralSuggestion struct {
	ID                string             `json:"id"`
	Priority          StructuralPriority `json:"priority"`
	Category          StructuralCategory `json:"category"`
	Message           string             `json:"message"`
	CurrentState      string             `json:"current_state"`
	RecommendedAction string             `json:"recommended_action"`
}
