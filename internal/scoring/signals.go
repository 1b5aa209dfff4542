package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

var (
	requiredYearsPattern = regexp.MustCompile(`(\d{1,2})\+?\s*(?:years|yrs)`)
	degreePattern        = regexp.MustCompile(`(?i)\b(?:bachelor|master|phd|b\.?sc?|m\.?sc?|degree)\b`)
	yearPattern          = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	bulletMarkerPattern  = regexp.MustCompile(`(?m)^\s*[-•*]`)
)

// qualificationFit estimates how well the candidate's history satisfies the
// job's explicit qualification asks: required years of experience and a degree
// requirement. Unstated requirements cost nothing.
func qualificationFit(resume *types.ParsedResume, jobDescription string) (int, map[string]string) {
	details := make(map[string]string)
	score := 100

	jobLower := strings.ToLower(jobDescription)

	if m := requiredYearsPattern.FindStringSubmatch(jobLower); m != nil {
		required, _ := strconv.Atoi(m[1])
		candidate := estimateExperienceYears(resume)
		details["required_years"] = strconv.Itoa(required)
		details["estimated_years"] = strconv.Itoa(candidate)
		if required > 0 && candidate < required {
			// Proportional penalty, capped so a short history is weak, not zero
			deficit := float64(required-candidate) / float64(required)
			score -= int(deficit * 60)
		}
	}

	if degreePattern.MatchString(jobLower) {
		if resume.HasEducation() {
			details["degree"] = "present"
		} else {
			details["degree"] = "missing"
			score -= 30
		}
	}

	if score < 0 {
		score = 0
	}
	return score, details
}

// estimateExperienceYears derives a rough tenure from the year spans in the
// experience entries' date strings
func estimateExperienceYears(resume *types.ParsedResume) int {
	minYear, maxYear := 0, 0
	currentYear := time.Now().Year()

	for _, entry := range resume.Experience {
		dates := entry.Dates
		for _, match := range yearPattern.FindAllString(dates, -1) {
			year, err := strconv.Atoi(match)
			if err != nil || year > currentYear {
				continue
			}
			if minYear == 0 || year < minYear {
				minYear = year
			}
			if year > maxYear {
				maxYear = year
			}
		}
		if strings.Contains(strings.ToLower(dates), "present") {
			maxYear = currentYear
		}
	}

	if minYear == 0 {
		return 0
	}
	return maxYear - minYear
}

// sectionCoverageV2 scores presence over the four sections the V2.1 model
// requires: summary, skills, experience, education
func sectionCoverageV2(resume *types.ParsedResume) (int, map[string]string) {
	details := make(map[string]string)
	present := 0

	checks := []struct {
		name string
		ok   bool
	}{
		{"summary", resume.HasSummary()},
		{"skills", resume.HasSkills()},
		{"experience", resume.HasExperience()},
		{"education", resume.HasEducation()},
	}
	for _, check := range checks {
		if check.ok {
			present++
			details[check.name] = "present"
		} else {
			details[check.name] = "missing"
		}
	}

	return roundHalfUp(100 * float64(present) / float64(len(checks))), details
}

// formatScore applies cheap formatting heuristics over the raw text: bullet
// usage, line lengths, and overall length bounds
func formatScore(rawText string) (int, map[string]string) {
	details := make(map[string]string)
	score := 100

	if !bulletMarkerPattern.MatchString(rawText) {
		score -= 20
		details["bullets"] = "no bullet markers found"
	}

	longLines := 0
	for _, line := range strings.Split(rawText, "\n") {
		if len(line) > 200 {
			longLines++
		}
	}
	if longLines > 0 {
		score -= 20
		details["line_length"] = fmt.Sprintf("%d lines exceed 200 characters", longLines)
	}

	words := len(strings.Fields(rawText))
	details["word_count"] = strconv.Itoa(words)
	switch {
	case words < 150:
		score -= 20
		details["length"] = "resume is very short"
	case words > 1500:
		score -= 10
		details["length"] = "resume is very long"
	}

	if score < 0 {
		score = 0
	}
	return score, details
}
