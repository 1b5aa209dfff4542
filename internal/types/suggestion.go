// Package types provides type definitions for structured data used throughout the coop-ready analysis engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SuggestionSection identifies the resume section a suggestion targets
type SuggestionSection string

// Suggestion section values
const (
	SectionExperience SuggestionSection = "experience"
	SectionEducation  SuggestionSection = "education"
	SectionSkills     SuggestionSection = "skills"
	SectionProjects   SuggestionSection = "projects"
	SectionFormat     SuggestionSection = "format"
)

// SuggestionStatus tracks the review state of a suggestion
type SuggestionStatus string

// Suggestion status values; transitions are owned by the surrounding application
const (
	StatusPending  SuggestionStatus = "pending"
	StatusAccepted SuggestionStatus = "accepted"
	StatusRejected SuggestionStatus = "rejected"
)

// NoChangesSentinel is the suggested-text value that marks a suggestion as a no-op
const NoChangesSentinel = "No changes recommended"

// Suggestion is a proposed text replacement targeting an exact location in a parsed resume.
// OriginalText must equal the current field/bullet value at creation time; the merge
// engine re-verifies this and skips suggestions whose target no longer matches.
type Suggestion struct {
	ID             string            `json:"id" validate:"required"`
	Section        SuggestionSection `json:"section" validate:"oneof=experience education skills projects format"`
	ItemIndex      *int              `json:"item_index,omitempty"`
	SuggestionType string            `json:"suggestion_type"`
	OriginalText   string            `json:"original_text"`
	SuggestedText  string            `json:"suggested_text"`
	Reasoning      string            `json:"reasoning"`
	Status         SuggestionStatus  `json:"status" validate:"oneof=pending accepted rejected"`
	CreatedAt      time.Time         `json:"created_at" validate:"required"`
}

var validate = validator.New()

// Validate checks structural constraints on the suggestion record
func (s *Suggestion) Validate() error {
	return validate.Struct(s)
}

// IsNoop reports whether the suggestion carries the no-op sentinel text
func (s *Suggestion) IsNoop() bool {
	return s.SuggestedText == NoChangesSentinel
}
