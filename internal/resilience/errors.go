// Package resilience wraps external text-generation calls with failure
// classification, a typed retry policy, and fixed user-facing error messages.
package resilience

import "fmt"

// ErrorType is the classification assigned to an external-call failure
type ErrorType string

// External-call failure classifications
const (
	ErrorRateLimit ErrorType = "rate_limit"
	ErrorNetwork   ErrorType = "network"
	ErrorTimeout   ErrorType = "timeout"
	ErrorConfig    ErrorType = "config"
	ErrorMalformed ErrorType = "malformed"
	ErrorUnknown   ErrorType = "unknown"
)

// userMessages maps each classification to a fixed, non-technical message.
// Provider vocabulary, status codes, and internal identifiers never appear here.
var userMessages = map[ErrorType]string{
	ErrorRateLimit: "The service is busy right now. Please try again in a moment.",
	ErrorNetwork:   "We couldn't reach the service. Please check your connection and try again.",
	ErrorTimeout:   "The request took too long to complete. Please try again.",
	ErrorConfig:    "The service isn't set up correctly. Please contact support.",
	ErrorMalformed: "We received an unexpected response. Please try again.",
	ErrorUnknown:   "Something went wrong. Please try again.",
}

// UserMessage returns the fixed user-facing message for a classification
func UserMessage(t ErrorType) string {
	if msg, ok := userMessages[t]; ok {
		return msg
	}
	return userMessages[ErrorUnknown]
}

// InvocationError is the structured error surfaced once a call has failed and
// any retries are exhausted. Message is always the fixed user-facing string;
// Cause retains the provider error for logs only.
type InvocationError struct {
	Type      ErrorType
	Message   string
	Retryable bool
	Cause     error
}

func (e *InvocationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invocation error (%s): %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("invocation error (%s): %s", e.Type, e.Message)
}

func (e *InvocationError) Unwrap() error {
	return e.Cause
}

// newInvocationError builds the terminal error for a classified failure
func newInvocationError(t ErrorType, cause error) *InvocationError {
	return &InvocationError{
		Type:      t,
		Message:   UserMessage(t),
		Retryable: false,
		Cause:     cause,
	}
}
