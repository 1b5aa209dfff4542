// Package scoring computes the composite resume/job compatibility score from
// independently-computed sub-scores, with graceful degradation when the
// content-quality signal is unavailable.
package scoring

import "fmt"

// ValidationError represents missing or malformed scorer input. It is the
// caller's fault and is never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}
