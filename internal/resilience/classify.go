package resilience

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"

	"google.golang.org/api/googleapi"
)

// Classify assigns exactly one ErrorType to an external-call failure.
// Signals are checked in priority order: explicit rate-limit, explicit timeout,
// explicit network failure (including the unwrapped cause chain), then a
// message-based heuristic for configuration/auth problems, then unknown.
func Classify(err error) ErrorType {
	if err == nil {
		return ErrorUnknown
	}

	// Already classified upstream (e.g. malformed from schema validation)
	var invErr *InvocationError
	if errors.As(err, &invErr) {
		return invErr.Type
	}

	if isRateLimit(err) {
		return ErrorRateLimit
	}
	if isTimeout(err) {
		return ErrorTimeout
	}
	if isNetwork(err) {
		return ErrorNetwork
	}
	if isConfig(err) {
		return ErrorConfig
	}
	return ErrorUnknown
}

func isRateLimit(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "quota")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded")
}

func isNetwork(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host")
}

func isConfig(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == 401 || apiErr.Code == 403) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "api key") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "invalid credentials")
}
