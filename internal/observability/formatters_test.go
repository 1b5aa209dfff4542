package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lawrence-dass/coop-ready-sub002/internal/merge"
	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

func TestPrintScoreBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(&types.ScoreBreakdown{
		KeywordScore:         80,
		SectionCoverageScore: 67,
		ContentQualityScore:  70,
		Overall:              74,
	})
	output := buf.String()

	assert.Contains(t, output, "SCORE BREAKDOWN")
	assert.Contains(t, output, "80")
	assert.Contains(t, output, "67")
	assert.Contains(t, output, "74")
	assert.NotContains(t, output, "degraded")
}

func TestPrintScoreBreakdown_Degraded(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(&types.ScoreBreakdown{
		KeywordScore:         80,
		SectionCoverageScore: 67,
		Overall:              76,
		Degraded:             true,
		DegradedReason:       "quality judgment unavailable",
	})

	assert.Contains(t, buf.String(), "quality judgment unavailable")
}

func TestPrintScoreBreakdown_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(nil)

	assert.Empty(t, buf.String())
}

func TestPrintEnhancedScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEnhancedScore(&types.EnhancedScoreBreakdown{
		Components: map[types.ComponentName]types.ScoreComponent{
			types.ComponentKeywords:         {Score: 80, Weight: 0.30, Weighted: 24},
			types.ComponentQualificationFit: {Score: 70, Weight: 0.25, Weighted: 17.5},
			types.ComponentContentQuality:   {Score: 60, Weight: 0.20, Weighted: 12},
			types.ComponentSections:         {Score: 100, Weight: 0.15, Weighted: 15},
			types.ComponentFormat:           {Score: 100, Weight: 0.10, Weighted: 10},
		},
		Overall: 79,
		Tier:    "strong",
		ActionItems: []types.ActionItem{
			{Priority: types.PriorityHigh, Message: "Improve content quality", PotentialImpact: 8},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "ENHANCED SCORE")
	assert.Contains(t, output, "keywords")
	assert.Contains(t, output, "qualification_fit")
	assert.Contains(t, output, "79 (strong)")
	assert.Contains(t, output, "[high] Improve content quality")
}

func TestPrintStructuralSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStructuralSuggestions([]types.StructuralSuggestion{
		{
			ID:                "coop_skills_missing",
			Priority:          types.StructuralCritical,
			Category:          types.CategorySectionPresence,
			Message:           "Co-op resumes need a skills section",
			RecommendedAction: "Add a skills section",
		},
	})
	output := buf.String()

	assert.Contains(t, output, "STRUCTURAL SUGGESTIONS")
	assert.Contains(t, output, "critical")
	assert.Contains(t, output, "skills section")
}

func TestPrintStructuralSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStructuralSuggestions(nil)

	assert.Contains(t, buf.String(), "NO STRUCTURAL ISSUES FOUND")
}

func TestPrintMergeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMergeSummary(&merge.MergeResult{
		AppliedCount: 2,
		SkippedCount: 1,
		NoopCount:    1,
		Warnings: []merge.MergeWarning{
			{SuggestionID: "s3", Reason: "not found"},
		},
		Diffs: []merge.DiffSegment{
			{Original: "Built APIs", Suggested: "Built REST APIs", IsDiffContent: true},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "MERGE SUMMARY")
	assert.Contains(t, output, "Applied: 2")
	assert.Contains(t, output, "Skipped: 1")
	assert.Contains(t, output, "s3: not found")
	assert.Contains(t, output, "+1 -0")
}

func TestPrintMergeSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMergeSummary(nil)

	assert.Empty(t, buf.String())
}
