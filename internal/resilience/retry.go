package resilience

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// maxRateLimitRetries bounds how many times a rate-limited call is retried
const maxRateLimitRetries = 3

// BackoffDelay returns the delay before retrying after the given attempt index:
// attempt 0 -> 1s, attempt 1 -> 2s, attempt 2 -> 4s.
func BackoffDelay(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// ShouldRetry is a pure function of (errorType, attemptIndex): rate_limit retries
// up to maxRateLimitRetries with exponential backoff, network retries exactly
// once, everything else never retries.
func ShouldRetry(t ErrorType, attempt int) bool {
	switch t {
	case ErrorRateLimit:
		return attempt < maxRateLimitRetries
	case ErrorNetwork:
		return attempt == 0
	default:
		return false
	}
}

// Operation is the zero-argument external call being wrapped. It returns the
// generated text or a raw provider error.
type Operation func(ctx context.Context) (string, error)

// Invoker executes operations with classification, retry, and an optional
// circuit breaker. The zero value is not usable; use NewInvoker.
type Invoker struct {
	logger  zerolog.Logger
	breaker *gobreaker.CircuitBreaker[string]
	sleep   func(ctx context.Context, d time.Duration) error
}

// Option configures an Invoker
type Option func(*Invoker)

// WithLogger sets the structured logger used for retry events
func WithLogger(logger zerolog.Logger) Option {
	return func(inv *Invoker) { inv.logger = logger }
}

// WithCircuitBreaker wraps every call in a gobreaker circuit breaker so a
// persistently failing provider is cut off instead of hammered
func WithCircuitBreaker(name string) Option {
	return func(inv *Invoker) {
		inv.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
			Name: name,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.Requests >= 5 &&
					float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
			},
		})
	}
}

// withSleep replaces the backoff delay implementation (tests only)
func withSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(inv *Invoker) { inv.sleep = sleep }
}

// NewInvoker creates an Invoker with a cancellable real-time backoff delay
func NewInvoker(opts ...Option) *Invoker {
	inv := &Invoker{
		logger: zerolog.Nop(),
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Invoke runs the operation, classifying any failure and retrying per policy.
// It returns the operation's result or a terminal *InvocationError; callers
// never see a raw, unclassified provider failure.
func (inv *Invoker) Invoke(ctx context.Context, op Operation) (string, error) {
	for attempt := 0; ; attempt++ {
		result, err := inv.call(ctx, op)
		if err == nil {
			return result, nil
		}

		errType := Classify(err)
		if !ShouldRetry(errType, attempt) {
			return "", newInvocationError(errType, err)
		}

		delay := BackoffDelay(attempt)
		inv.logger.Warn().
			Str("error_type", string(errType)).
			Int("attempt", attempt).
			Dur("backoff", delay).
			Msg("external call failed, retrying")

		if sleepErr := inv.sleep(ctx, delay); sleepErr != nil {
			// Caller's deadline or cancellation aborted the retry sequence
			return "", newInvocationError(Classify(sleepErr), sleepErr)
		}
	}
}

func (inv *Invoker) call(ctx context.Context, op Operation) (string, error) {
	if inv.breaker == nil {
		return op(ctx)
	}
	return inv.breaker.Execute(func() (string, error) {
		return op(ctx)
	})
}

// sleepContext blocks for d or until ctx is done, whichever comes first
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
