// Package structural evaluates archetype-conditioned rules over a parsed
// resume's section presence, order, and headings, producing duplicate-free
// structural suggestions keyed by stable rule ids.
package structural

import (
	"fmt"
	"strings"

	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

// Input is everything a rule may inspect. Rules are pure functions over it.
type Input struct {
	Archetype    types.Archetype
	Resume       *types.ParsedResume
	SectionOrder []string
	RawText      string
}

// Rule is one independent structural check. Archetypes lists which candidate
// profiles the rule applies to; empty means universal. Evaluate returns nil
// when the rule's trigger condition is absent.
type Rule struct {
	ID         string
	Archetypes []types.Archetype
	Evaluate   func(in Input) *types.StructuralSuggestion
}

// appliesTo reports whether the rule runs for the given archetype
func (r Rule) appliesTo(archetype types.Archetype) bool {
	if len(r.Archetypes) == 0 {
		return true
	}
	for _, a := range r.Archetypes {
		if a == archetype {
			return true
		}
	}
	return false
}

// objectivePhrases mark a summary as a generic objective statement
var objectivePhrases = []string{
	"objective",
	"seeking a",
	"seeking an",
	"looking for",
	"position where",
}

// nonStandardHeadings is the denylist of section headings that confuse
// applicant tracking systems. Matching is against headings only, never body prose.
var nonStandardHeadings = []string{
	"My Journey",
	"What I Know",
	"My Work",
	"My Story",
	"Tech Stack",
	"What I Bring",
}

// rules is the ordered, declarative rule set. New rules are additive; no
// existing rule's logic is touched when one is added.
var rules = []Rule{
	{
		ID:         "coop_skills_missing",
		Archetypes: []types.Archetype{types.ArchetypeCoop},
		Evaluate: func(in Input) *types.StructuralSuggestion {
			if in.Resume.HasSkills() {
				return nil
			}
			return &types.StructuralSuggestion{
				ID:                "coop_skills_missing",
				Priority:          types.StructuralCritical,
				Category:          types.CategorySectionPresence,
				Message:           "Co-op resumes need a skills section",
				CurrentState:      "no skills section found",
				RecommendedAction: "Add a skills section listing your technical skills",
			}
		},
	},
	{
		ID:         "coop_skills_not_first",
		Archetypes: []types.Archetype{types.ArchetypeCoop},
		Evaluate: func(in Input) *types.StructuralSuggestion {
			idx := sectionIndex(in.SectionOrder, "skills")
			if idx <= 0 {
				return nil
			}
			return &types.StructuralSuggestion{
				ID:                "coop_skills_not_first",
				Priority:          types.StructuralHigh,
				Category:          types.CategorySectionOrder,
				Message:           "Skills should lead a co-op resume",
				CurrentState:      fmt.Sprintf("skills section is at position %d", idx+1),
				RecommendedAction: "Move the skills section to the top of the resume",
			}
		},
	},
	{
		ID:         "coop_experience_before_education",
		Archetypes: []types.Archetype{types.ArchetypeCoop},
		Evaluate: func(in Input) *types.StructuralSuggestion {
			expIdx := sectionIndex(in.SectionOrder, "experience")
			eduIdx := sectionIndex(in.SectionOrder, "education")
			if expIdx < 0 || eduIdx < 0 || expIdx > eduIdx {
				return nil
			}
			return &types.StructuralSuggestion{
				ID:                "coop_experience_before_education",
				Priority:          types.StructuralHigh,
				Category:          types.CategorySectionOrder,
				Message:           "Education should come before experience for co-op candidates",
				CurrentState:      "experience section precedes education",
				RecommendedAction: "Move the education section above experience",
			}
		},
	},
	{
		ID:         "coop_objective_summary",
		Archetypes: []types.Archetype{types.ArchetypeCoop},
		Evaluate: func(in Input) *types.StructuralSuggestion {
			if !in.Resume.HasSummary() || !looksLikeObjective(*in.Resume.Summary) {
				return nil
			}
			return &types.StructuralSuggestion{
				ID:                "coop_objective_summary",
				Priority:          types.StructuralModerate,
				Category:          types.CategorySectionPresence,
				Message:           "Generic objective statements waste space on a co-op resume",
				CurrentState:      "summary reads as a generic objective",
				RecommendedAction: "Replace the objective with a short, specific summary of your skills",
			}
		},
	},
	{
		ID:         "coop_projects_heading",
		Archetypes: []types.Archetype{types.ArchetypeCoop},
		Evaluate: func(in Input) *types.StructuralSuggestion {
			if !in.Resume.HasProjects() && sectionIndex(in.SectionOrder, "projects") < 0 {
				return nil
			}
			return &types.StructuralSuggestion{
				ID:                "coop_projects_heading",
				Priority:          types.StructuralLow,
				Category:          types.CategorySectionHeading,
				Message:           "\"Projects\" undersells hands-on work for co-op candidates",
				CurrentState:      "section is headed \"Projects\"",
				RecommendedAction: "Rename the section to \"Project Experience\"",
			}
		},
	},
	{
		ID:         "fulltime_education_before_experience",
		Archetypes: []types.Archetype{types.ArchetypeFulltime},
		Evaluate: func(in Input) *types.StructuralSuggestion {
			expIdx := sectionIndex(in.SectionOrder, "experience")
			eduIdx := sectionIndex(in.SectionOrder, "education")
			if expIdx < 0 || eduIdx < 0 || eduIdx > expIdx {
				return nil
			}
			return &types.StructuralSuggestion{
				ID:                "fulltime_education_before_experience",
				Priority:          types.StructuralHigh,
				Category:          types.CategorySectionOrder,
				Message:           "Experience should come before education for full-time candidates",
				CurrentState:      "education section precedes experience",
				RecommendedAction: "Move the experience section above education",
			}
		},
	},
	{
		ID:         "career_changer_summary_missing",
		Archetypes: []types.Archetype{types.ArchetypeCareerChanger},
		Evaluate: func(in Input) *types.StructuralSuggestion {
			if in.Resume.HasSummary() {
				return nil
			}
			return &types.StructuralSuggestion{
				ID:                "career_changer_summary_missing",
				Priority:          types.StructuralCritical,
				Category:          types.CategorySectionPresence,
				Message:           "Career changers need a summary to frame the transition",
				CurrentState:      "no summary section found",
				RecommendedAction: "Add a summary explaining your career change and transferable skills",
			}
		},
	},
	{
		ID:         "career_changer_experience_before_education",
		Archetypes: []types.Archetype{types.ArchetypeCareerChanger},
		Evaluate: func(in Input) *types.StructuralSuggestion {
			if !in.Resume.HasSummary() {
				return nil // summary-missing rule covers this resume first
			}
			expIdx := sectionIndex(in.SectionOrder, "experience")
			eduIdx := sectionIndex(in.SectionOrder, "education")
			if expIdx < 0 || eduIdx < 0 || expIdx > eduIdx {
				return nil
			}
			return &types.StructuralSuggestion{
				ID:                "career_changer_experience_before_education",
				Priority:          types.StructuralHigh,
				Category:          types.CategorySectionOrder,
				Message:           "Education should come before prior-field experience for career changers",
				CurrentState:      "experience section precedes education",
				RecommendedAction: "Move the education section above experience",
			}
		},
	},
	{
		ID: "nonstandard_section_headings",
		Evaluate: func(in Input) *types.StructuralSuggestion {
			if in.RawText == "" {
				return nil
			}
			found := findNonStandardHeadings(in.RawText)
			if len(found) == 0 {
				return nil
			}
			return &types.StructuralSuggestion{
				ID:                "nonstandard_section_headings",
				Priority:          types.StructuralModerate,
				Category:          types.CategorySectionHeading,
				Message:           "Non-standard section headings confuse applicant tracking systems",
				CurrentState:      fmt.Sprintf("found headings: %s", strings.Join(found, ", ")),
				RecommendedAction: "Use conventional headings like \"Experience\", \"Skills\", and \"Education\"",
			}
		},
	},
}

func looksLikeObjective(summary string) bool {
	lower := strings.ToLower(summary)
	for _, phrase := range objectivePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// sectionIndex returns the position of a section name in the declared order,
// or -1 when absent. Comparison is case-insensitive.
func sectionIndex(order []string, name string) int {
	for i, section := range order {
		if strings.EqualFold(strings.TrimSpace(section), name) {
			return i
		}
	}
	return -1
}
