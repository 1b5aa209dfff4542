// Package merge applies accepted resume suggestions in chronological order,
// producing a new resume, per-suggestion warnings, and diff segments for preview.
package merge

import "fmt"

// ValidationError indicates the merge input itself is unusable. It is never
// produced for an individual suggestion that fails to apply.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("merge validation error: %s", e.Message)
}
