// Package types provides type definitions for structured data used throughout the coop-ready analysis engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// SkillCategory classifies a skill as technical or soft
type SkillCategory string

// Skill category values
const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
)

// Archetype identifies the candidate profile that conditions structural rules
type Archetype string

// Supported candidate archetypes
const (
	ArchetypeCoop          Archetype = "coop"
	ArchetypeFulltime      Archetype = "fulltime"
	ArchetypeCareerChanger Archetype = "career_changer"
)

// Valid reports whether the archetype is one of the supported values
func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeCoop, ArchetypeFulltime, ArchetypeCareerChanger:
		return true
	}
	return false
}

// Skill represents a single skill with its category
type Skill struct {
	Name     string        `json:"name" validate:"required"`
	Category SkillCategory `json:"category" validate:"oneof=technical soft"`
}

// JobEntry represents one experience entry with its bullet points in document order
type JobEntry struct {
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Dates        string   `json:"dates"`
	BulletPoints []string `json:"bullet_points"`
}

// EducationEntry represents one education entry; Details are addressed like experience bullets
type EducationEntry struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Dates       string   `json:"dates"`
	Details     []string `json:"details,omitempty"`
}

// ParsedResume is the structured resume produced by the upstream parser.
// Optional free-text sections are nil when absent; lists preserve document order.
type ParsedResume struct {
	Contact    *string          `json:"contact,omitempty"`
	Summary    *string          `json:"summary,omitempty"`
	Projects   *string          `json:"projects,omitempty"`
	Other      *string          `json:"other,omitempty"`
	Education  []EducationEntry `json:"education"`
	Experience []JobEntry       `json:"experience"`
	Skills     []Skill          `json:"skills"`
	RawText    string           `json:"raw_text"`
}

// Normalize converts whitespace-only optional sections to absent so that
// section-coverage logic never treats blank text as present. It mutates the
// receiver and returns it for chaining.
func (r *ParsedResume) Normalize() *ParsedResume {
	r.Contact = normalizeOptional(r.Contact)
	r.Summary = normalizeOptional(r.Summary)
	r.Projects = normalizeOptional(r.Projects)
	r.Other = normalizeOptional(r.Other)
	return r
}

// HasSummary reports whether the resume has a non-blank summary section
func (r *ParsedResume) HasSummary() bool {
	return r.Summary != nil && strings.TrimSpace(*r.Summary) != ""
}

// HasSkills reports whether the resume has at least one skill
func (r *ParsedResume) HasSkills() bool {
	return len(r.Skills) > 0
}

// HasExperience reports whether the resume has at least one experience entry
func (r *ParsedResume) HasExperience() bool {
	return len(r.Experience) > 0
}

// HasEducation reports whether the resume has at least one education entry
func (r *ParsedResume) HasEducation() bool {
	return len(r.Education) > 0
}

// HasProjects reports whether the resume has a non-blank projects section
func (r *ParsedResume) HasProjects() bool {
	return r.Projects != nil && strings.TrimSpace(*r.Projects) != ""
}

// Clone returns a structurally independent deep copy of the resume.
// The merge engine relies on this to never mutate its input.
func (r *ParsedResume) Clone() *ParsedResume {
	if r == nil {
		return nil
	}

	clone := &ParsedResume{
		Contact:  cloneOptional(r.Contact),
		Summary:  cloneOptional(r.Summary),
		Projects: cloneOptional(r.Projects),
		Other:    cloneOptional(r.Other),
		RawText:  r.RawText,
	}

	if r.Education != nil {
		clone.Education = make([]EducationEntry, len(r.Education))
		for i, entry := range r.Education {
			clone.Education[i] = EducationEntry{
				Institution: entry.Institution,
				Degree:      entry.Degree,
				Dates:       entry.Dates,
			}
			if entry.Details != nil {
				clone.Education[i].Details = make([]string, len(entry.Details))
				copy(clone.Education[i].Details, entry.Details)
			}
		}
	}

	if r.Experience != nil {
		clone.Experience = make([]JobEntry, len(r.Experience))
		for i, entry := range r.Experience {
			clone.Experience[i] = JobEntry{
				Company: entry.Company,
				Title:   entry.Title,
				Dates:   entry.Dates,
			}
			if entry.BulletPoints != nil {
				clone.Experience[i].BulletPoints = make([]string, len(entry.BulletPoints))
				copy(clone.Experience[i].BulletPoints, entry.BulletPoints)
			}
		}
	}

	if r.Skills != nil {
		clone.Skills = make([]Skill, len(r.Skills))
		copy(clone.Skills, r.Skills)
	}

	return clone
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func cloneOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
