package structural

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

// Engine runs the rule set against one resume at a time. Safe for concurrent use.
type Engine struct {
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for rule evaluation diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a rule engine over the built-in rule set.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs every rule applicable to the archetype and returns the
// triggered suggestions in rule-definition order. Each rule id appears at
// most once. An unrecognized archetype still gets the universal rules.
func (e *Engine) Evaluate(in Input) []types.StructuralSuggestion {
	if in.Resume == nil {
		in.Resume = &types.ParsedResume{}
	} else {
		// Rules see normalized sections; the caller's resume stays untouched
		in.Resume = in.Resume.Clone()
	}
	in.Resume.Normalize()

	suggestions := make([]types.StructuralSuggestion, 0, len(rules))
	seen := make(map[string]bool, len(rules))
	for _, rule := range rules {
		if !rule.appliesTo(in.Archetype) {
			continue
		}
		s := rule.Evaluate(in)
		if s == nil || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		suggestions = append(suggestions, *s)
		e.logger.Debug().
			Str("rule", s.ID).
			Str("category", string(s.Category)).
			Str("priority", string(s.Priority)).
			Msg("structural rule triggered")
	}
	return suggestions
}

// findNonStandardHeadings scans the raw resume text for denylisted headings.
// A heading is a short line of its own, optionally ending with a colon, that
// is followed by further text. Inline mentions inside body prose never match.
func findNonStandardHeadings(rawText string) []string {
	lines := strings.Split(rawText, "\n")
	var found []string
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimSuffix(trimmed, ":")
		if trimmed == "" || !hasFollowingText(lines, i) {
			continue
		}
		for _, heading := range nonStandardHeadings {
			if strings.EqualFold(trimmed, heading) {
				found = append(found, heading)
				break
			}
		}
	}
	return found
}

// hasFollowingText reports whether any later line has content, so a trailing
// stray line is not mistaken for a section heading.
func hasFollowingText(lines []string, i int) bool {
	for _, line := range lines[i+1:] {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}
