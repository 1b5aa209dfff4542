// Package textdiff computes word-granularity change statistics between two
// text fragments. It serves merge previews and has no knowledge of resumes.
package textdiff

import "strings"

// Stats summarizes the word-level changes from an original fragment to a
// suggested replacement.
type Stats struct {
	Insertions   int `json:"insertions"`
	Deletions    int `json:"deletions"`
	TotalChanges int `json:"total_changes"`
}

// Compare diffs two fragments at word granularity. Words are whitespace
// separated and compared case-sensitively. Words present only in suggested
// count as insertions, words present only in original count as deletions.
func Compare(original, suggested string) Stats {
	a := strings.Fields(original)
	b := strings.Fields(suggested)
	common := lcsLength(a, b)
	stats := Stats{
		Insertions: len(b) - common,
		Deletions:  len(a) - common,
	}
	stats.TotalChanges = stats.Insertions + stats.Deletions
	return stats
}

// Accumulate sums the stats for a batch of original/suggested pairs. Pairs
// beyond the shorter slice are ignored.
func Accumulate(originals, suggesteds []string) Stats {
	n := len(originals)
	if len(suggesteds) < n {
		n = len(suggesteds)
	}
	var total Stats
	for i := 0; i < n; i++ {
		s := Compare(originals[i], suggesteds[i])
		total.Insertions += s.Insertions
		total.Deletions += s.Deletions
		total.TotalChanges += s.TotalChanges
	}
	return total
}

// lcsLength returns the length of the longest common subsequence of two word
// slices, using a two-row dynamic program.
func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
