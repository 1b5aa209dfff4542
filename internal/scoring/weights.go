package scoring

import (
	"math"
	"strings"

	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

// weightSumTolerance is the floating tolerance for weight profiles summing to 1.0
const weightSumTolerance = 1e-6

// WeightProfile maps each V2.1 component to its weight. Profiles should sum to
// 1.0; a mismatch is logged, not fatal.
type WeightProfile map[types.ComponentName]float64

// defaultWeights is the baseline V2.1 profile
func defaultWeights() WeightProfile {
	return WeightProfile{
		types.ComponentKeywords:         0.30,
		types.ComponentQualificationFit: 0.25,
		types.ComponentContentQuality:   0.20,
		types.ComponentSections:         0.15,
		types.ComponentFormat:           0.10,
	}
}

// roleWeights overrides the defaults for detected role/seniority combinations.
// Entry-level profiles lean harder on keywords and formatting because there is
// less qualification history to weigh.
var roleWeights = map[string]WeightProfile{
	"engineering/entry": {
		types.ComponentKeywords:         0.35,
		types.ComponentQualificationFit: 0.15,
		types.ComponentContentQuality:   0.20,
		types.ComponentSections:         0.15,
		types.ComponentFormat:           0.15,
	},
	"engineering/senior": {
		types.ComponentKeywords:         0.25,
		types.ComponentQualificationFit: 0.35,
		types.ComponentContentQuality:   0.20,
		types.ComponentSections:         0.10,
		types.ComponentFormat:           0.10,
	},
	"management/senior": {
		types.ComponentKeywords:         0.20,
		types.ComponentQualificationFit: 0.35,
		types.ComponentContentQuality:   0.30,
		types.ComponentSections:         0.10,
		types.ComponentFormat:           0.05,
	},
}

// WeightsFor returns the weight profile for a detected role and seniority,
// falling back to the defaults when no override exists
func WeightsFor(role, seniority string) WeightProfile {
	if profile, ok := roleWeights[role+"/"+seniority]; ok {
		return profile
	}
	return defaultWeights()
}

// weightSum totals a profile's weights
func weightSum(profile WeightProfile) float64 {
	total := 0.0
	for _, w := range profile {
		total += w
	}
	return total
}

// weightSumOK reports whether the profile sums to 1.0 within tolerance
func weightSumOK(profile WeightProfile) bool {
	return math.Abs(weightSum(profile)-1.0) <= weightSumTolerance
}

// DetectRoleProfile infers the job's role family and seniority from its text.
// It only has to be stable, not clever: the result selects a weight profile.
func DetectRoleProfile(jobDescription string) (role, seniority string) {
	text := strings.ToLower(jobDescription)

	role = "general"
	switch {
	case strings.Contains(text, "engineer") || strings.Contains(text, "developer") || strings.Contains(text, "programmer"):
		role = "engineering"
	case strings.Contains(text, "manager") || strings.Contains(text, "management") || strings.Contains(text, "director"):
		role = "management"
	case strings.Contains(text, "analyst") || strings.Contains(text, "data scientist"):
		role = "data"
	}

	seniority = "mid"
	switch {
	case strings.Contains(text, "senior") || strings.Contains(text, "staff") || strings.Contains(text, "principal") || strings.Contains(text, "lead"):
		seniority = "senior"
	case strings.Contains(text, "intern") || strings.Contains(text, "co-op") || strings.Contains(text, "coop") || strings.Contains(text, "entry level") || strings.Contains(text, "junior") || strings.Contains(text, "new grad"):
		seniority = "entry"
	}

	return role, seniority
}
