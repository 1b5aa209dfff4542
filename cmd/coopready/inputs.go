package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

// loadResume reads a parsed-resume JSON file produced by the upstream parser.
func loadResume(path string) (*types.ParsedResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	var resume types.ParsedResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if strings.TrimSpace(resume.RawText) == "" {
		return nil, fmt.Errorf("resume file has no raw_text content")
	}
	return &resume, nil
}

// loadJobDescription reads the job description text file.
func loadJobDescription(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("job description file is empty")
	}
	return text, nil
}

// loadKeywords reads a keyword analysis JSON file.
func loadKeywords(path string) (*types.KeywordAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}
	var keywords types.KeywordAnalysis
	if err := json.Unmarshal(data, &keywords); err != nil {
		return nil, fmt.Errorf("failed to parse keywords JSON: %w", err)
	}
	return &keywords, nil
}

// loadSuggestions reads a suggestions JSON file and validates each record.
func loadSuggestions(path string) ([]types.Suggestion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suggestions file: %w", err)
	}
	var suggestions []types.Suggestion
	if err := json.Unmarshal(data, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions JSON: %w", err)
	}
	for i := range suggestions {
		if err := suggestions[i].Validate(); err != nil {
			return nil, fmt.Errorf("suggestion %d is invalid: %w", i, err)
		}
	}
	return suggestions, nil
}

// writeOutput marshals v as indented JSON to the given path, or to stdout
// when the path is empty.
func writeOutput(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
