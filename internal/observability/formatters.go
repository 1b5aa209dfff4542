// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lawrence-dass/coop-ready-sub002/internal/merge"
	"github.com/lawrence-dass/coop-ready-sub002/internal/textdiff"
	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// componentOrder fixes the display order of V2.1 components
var componentOrder = []types.ComponentName{
	types.ComponentKeywords,
	types.ComponentQualificationFit,
	types.ComponentContentQuality,
	types.ComponentSections,
	types.ComponentFormat,
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreBreakdown outputs a human-readable V1 score breakdown.
func (p *Printer) PrintScoreBreakdown(score *types.ScoreBreakdown) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keywords:         %3d\n", score.KeywordScore))
	sb.WriteString(fmt.Sprintf("Section coverage: %3d\n", score.SectionCoverageScore))
	sb.WriteString(fmt.Sprintf("Content quality:  %3d\n", score.ContentQualityScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall:          %3d", score.Overall))
	if score.Degraded {
		sb.WriteString(fmt.Sprintf("\n\n⚠ degraded: %s", score.DegradedReason))
	}

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintEnhancedScore outputs the V2.1 breakdown with per-component weights,
// the tier label, and the top action items.
func (p *Printer) PrintEnhancedScore(score *types.EnhancedScoreBreakdown) {
	if score == nil {
		return
	}

	var sb strings.Builder
	for _, name := range componentNames(score) {
		c := score.Components[name]
		sb.WriteString(fmt.Sprintf("%-18s %3d  (weight %.2f)\n", string(name)+":", c.Score, c.Weight))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall: %d (%s)\n", score.Overall, score.Tier))
	if score.Degraded {
		sb.WriteString(fmt.Sprintf("⚠ degraded: %s\n", score.DegradedReason))
	}

	if len(score.ActionItems) > 0 {
		sb.WriteString("\nAction items:\n")
		count := min(len(score.ActionItems), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := score.ActionItems[i]
			msg := item.Message
			if len(msg) > 42 {
				msg = msg[:39] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", item.Priority, msg))
		}
		if len(score.ActionItems) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.ActionItems)-maxItemsToShow))
		}
	}

	p.printBox("ENHANCED SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// componentNames returns the breakdown's component names in display order,
// with any unknown names appended alphabetically.
func componentNames(score *types.EnhancedScoreBreakdown) []types.ComponentName {
	names := make([]types.ComponentName, 0, len(score.Components))
	seen := make(map[types.ComponentName]bool, len(score.Components))
	for _, name := range componentOrder {
		if _, ok := score.Components[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []types.ComponentName
	for name := range score.Components {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(names, rest...)
}

// PrintStructuralSuggestions outputs triggered structural rules.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStructuralSuggestions(suggestions []types.StructuralSuggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO STRUCTURAL ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d suggestions:\n\n", len(suggestions)))

	for i, s := range suggestions {
		action := s.RecommendedAction
		if len(action) > 45 {
			action = action[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ [%s] %s\n", s.Priority, s.Message))
		sb.WriteString(fmt.Sprintf("  %s\n", action))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("STRUCTURAL SUGGESTIONS", sb.String())
}

// PrintMergeSummary outputs merge counts, skip warnings, and word-level diff
// statistics for the applied changes.
func (p *Printer) PrintMergeSummary(result *merge.MergeResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Applied: %d   Skipped: %d   No-op: %d\n",
		result.AppliedCount, result.SkippedCount, result.NoopCount))

	if len(result.Diffs) > 0 {
		var stats textdiff.Stats
		for _, d := range result.Diffs {
			s := textdiff.Compare(d.Original, d.Suggested)
			stats.Insertions += s.Insertions
			stats.Deletions += s.Deletions
			stats.TotalChanges += s.TotalChanges
		}
		sb.WriteString(fmt.Sprintf("Words: +%d -%d (%d changes)\n", stats.Insertions, stats.Deletions, stats.TotalChanges))
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		count := min(len(result.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			w := result.Warnings[i]
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", w.SuggestionID, w.Reason))
		}
		if len(result.Warnings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Warnings)-maxItemsToShow))
		}
	}

	p.printBox("MERGE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
