package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_IdenticalText(t *testing.T) {
	got := Compare("Built APIs in Go", "Built APIs in Go")
	assert.Equal(t, Stats{}, got)
}

func TestCompare_PureInsertion(t *testing.T) {
	got := Compare("Built APIs", "Built REST APIs in Go")
	assert.Equal(t, Stats{Insertions: 3, Deletions: 0, TotalChanges: 3}, got)
}

func TestCompare_PureDeletion(t *testing.T) {
	got := Compare("Built scalable REST APIs", "Built APIs")
	assert.Equal(t, Stats{Insertions: 0, Deletions: 2, TotalChanges: 2}, got)
}

func TestCompare_Replacement(t *testing.T) {
	got := Compare("Fixed bugs", "Resolved bugs")
	assert.Equal(t, Stats{Insertions: 1, Deletions: 1, TotalChanges: 2}, got)
}

func TestCompare_CaseSensitive(t *testing.T) {
	got := Compare("built apis", "Built APIs")
	assert.Equal(t, 2, got.Insertions)
	assert.Equal(t, 2, got.Deletions)
}

func TestCompare_EmptySides(t *testing.T) {
	assert.Equal(t, Stats{Insertions: 2, Deletions: 0, TotalChanges: 2}, Compare("", "two words"))
	assert.Equal(t, Stats{Insertions: 0, Deletions: 2, TotalChanges: 2}, Compare("two words", ""))
	assert.Equal(t, Stats{}, Compare("", ""))
}

func TestCompare_WhitespaceNormalized(t *testing.T) {
	got := Compare("Built  APIs", "Built APIs")
	assert.Equal(t, Stats{}, got)
}

func TestAccumulate(t *testing.T) {
	got := Accumulate(
		[]string{"Built APIs", "Wrote unit tests"},
		[]string{"Built REST APIs", "Wrote table-driven tests"},
	)
	assert.Equal(t, Stats{Insertions: 2, Deletions: 1, TotalChanges: 3}, got)
}

func TestAccumulate_UnevenLengths(t *testing.T) {
	got := Accumulate([]string{"one"}, []string{"one two", "ignored"})
	assert.Equal(t, Stats{Insertions: 1, Deletions: 0, TotalChanges: 1}, got)
}
