package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadResume(t *testing.T) {
	path := writeTempFile(t, "resume.json", `{
		"summary": "Backend developer.",
		"skills": [{"name": "Go", "category": "technical"}],
		"experience": [{"company": "Acme", "title": "Developer", "dates": "2023", "bullet_points": ["Built APIs"]}],
		"raw_text": "Summary\nBackend developer."
	}`)

	resume, err := loadResume(path)
	require.NoError(t, err)

	require.NotNil(t, resume.Summary)
	assert.Equal(t, "Backend developer.", *resume.Summary)
	require.Len(t, resume.Skills, 1)
	assert.Equal(t, "Go", resume.Skills[0].Name)
	assert.Equal(t, "Built APIs", resume.Experience[0].BulletPoints[0])
}

func TestLoadResume_MissingRawText(t *testing.T) {
	path := writeTempFile(t, "resume.json", `{"summary": "text"}`)

	_, err := loadResume(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "raw_text")
}

func TestLoadResume_FileNotFound(t *testing.T) {
	_, err := loadResume("/nonexistent/resume.json")
	assert.Error(t, err)
}

func TestLoadJobDescription(t *testing.T) {
	path := writeTempFile(t, "job.txt", "  Software developer role using Go.\n")

	text, err := loadJobDescription(path)
	require.NoError(t, err)
	assert.Equal(t, "Software developer role using Go.", text)
}

func TestLoadJobDescription_Empty(t *testing.T) {
	path := writeTempFile(t, "job.txt", "   \n\n")

	_, err := loadJobDescription(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadKeywords(t *testing.T) {
	path := writeTempFile(t, "keywords.json", `{
		"match_rate": 72.5,
		"matched_keywords": ["go", "sql"],
		"missing_keywords": ["docker"]
	}`)

	keywords, err := loadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, 72.5, keywords.MatchRate)
	assert.Equal(t, []string{"go", "sql"}, keywords.MatchedKeywords)
}

func TestLoadSuggestions(t *testing.T) {
	path := writeTempFile(t, "suggestions.json", `[{
		"id": "s1",
		"section": "experience",
		"original_text": "Built APIs",
		"suggested_text": "Built REST APIs",
		"status": "accepted",
		"created_at": "2026-03-01T10:00:00Z"
	}]`)

	suggestions, err := loadSuggestions(path)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, types.SectionExperience, suggestions[0].Section)
	assert.Equal(t, types.StatusAccepted, suggestions[0].Status)
}

func TestLoadSuggestions_InvalidRecord(t *testing.T) {
	path := writeTempFile(t, "suggestions.json", `[{
		"id": "s1",
		"section": "hobbies",
		"status": "accepted",
		"created_at": "2026-03-01T10:00:00Z"
	}]`)

	_, err := loadSuggestions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suggestion 0 is invalid")
}

func TestWriteOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	err := writeOutput(path, map[string]int{"overall": 80})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"overall": 80`)
}
