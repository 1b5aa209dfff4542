package resilience

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

// fakeSleep records requested delays without waiting
type fakeSleep struct {
	delays []time.Duration
}

func (f *fakeSleep) sleep(_ context.Context, d time.Duration) error {
	f.delays = append(f.delays, d)
	return nil
}

func TestClassify_RateLimit(t *testing.T) {
	assert.Equal(t, ErrorRateLimit, Classify(&googleapi.Error{Code: 429, Message: "too many requests"}))
	assert.Equal(t, ErrorRateLimit, Classify(errors.New("RESOURCE EXHAUSTED: quota exceeded")))
}

func TestClassify_Timeout(t *testing.T) {
	assert.Equal(t, ErrorTimeout, Classify(context.DeadlineExceeded))
	assert.Equal(t, ErrorTimeout, Classify(errors.New("request timeout after 30s")))
	assert.Equal(t, ErrorTimeout, Classify(fmt.Errorf("call failed: %w", context.DeadlineExceeded)))
}

func TestClassify_Network(t *testing.T) {
	assert.Equal(t, ErrorNetwork, Classify(errors.New("dial tcp: connection refused")))
	assert.Equal(t, ErrorNetwork, Classify(&net.DNSError{Err: "no such host", Name: "api.example.com"}))
	assert.Equal(t, ErrorNetwork, Classify(fmt.Errorf("wrapped: %w", &net.OpError{Op: "dial", Err: errors.New("reset")})))
}

func TestClassify_Config(t *testing.T) {
	assert.Equal(t, ErrorConfig, Classify(&googleapi.Error{Code: 403, Message: "forbidden"}))
	assert.Equal(t, ErrorConfig, Classify(errors.New("API key not valid")))
	assert.Equal(t, ErrorConfig, Classify(errors.New("permission denied for model")))
}

func TestClassify_Unknown(t *testing.T) {
	assert.Equal(t, ErrorUnknown, Classify(errors.New("something odd happened")))
}

func TestClassify_PreclassifiedErrorKeepsType(t *testing.T) {
	inner := newInvocationError(ErrorMalformed, errors.New("bad shape"))
	assert.Equal(t, ErrorMalformed, Classify(fmt.Errorf("judge: %w", inner)))
}

func TestClassify_PriorityRateLimitBeforeTimeout(t *testing.T) {
	// A message carrying both signals classifies by the higher-priority one
	assert.Equal(t, ErrorRateLimit, Classify(errors.New("rate limit hit, request timeout")))
}

func TestBackoffDelay_Sequence(t *testing.T) {
	assert.Equal(t, 1*time.Second, BackoffDelay(0))
	assert.Equal(t, 2*time.Second, BackoffDelay(1))
	assert.Equal(t, 4*time.Second, BackoffDelay(2))
}

func TestShouldRetry_Policy(t *testing.T) {
	assert.True(t, ShouldRetry(ErrorRateLimit, 0))
	assert.True(t, ShouldRetry(ErrorRateLimit, 2))
	assert.False(t, ShouldRetry(ErrorRateLimit, 3))

	assert.True(t, ShouldRetry(ErrorNetwork, 0))
	assert.False(t, ShouldRetry(ErrorNetwork, 1))

	assert.False(t, ShouldRetry(ErrorTimeout, 0))
	assert.False(t, ShouldRetry(ErrorConfig, 0))
	assert.False(t, ShouldRetry(ErrorMalformed, 0))
	assert.False(t, ShouldRetry(ErrorUnknown, 0))
}

func TestInvoke_RateLimitBackoffSequence(t *testing.T) {
	sleeper := &fakeSleep{}
	inv := NewInvoker(withSleep(sleeper.sleep))

	calls := 0
	_, err := inv.Invoke(context.Background(), func(context.Context) (string, error) {
		calls++
		return "", &googleapi.Error{Code: 429, Message: "slow down"}
	})

	require.Error(t, err)
	assert.Equal(t, 4, calls) // initial attempt + 3 retries
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, sleeper.delays)
}

func TestInvoke_TimeoutNeverRetries(t *testing.T) {
	sleeper := &fakeSleep{}
	inv := NewInvoker(withSleep(sleeper.sleep))

	calls := 0
	_, err := inv.Invoke(context.Background(), func(context.Context) (string, error) {
		calls++
		return "", context.DeadlineExceeded
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, sleeper.delays)

	var invErr *InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, ErrorTimeout, invErr.Type)
	assert.False(t, invErr.Retryable)
}

func TestInvoke_NetworkRetriesExactlyOnce(t *testing.T) {
	sleeper := &fakeSleep{}
	inv := NewInvoker(withSleep(sleeper.sleep))

	calls := 0
	_, err := inv.Invoke(context.Background(), func(context.Context) (string, error) {
		calls++
		return "", errors.New("dial tcp: connection refused")
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestInvoke_RecoversOnRetry(t *testing.T) {
	sleeper := &fakeSleep{}
	inv := NewInvoker(withSleep(sleeper.sleep))

	calls := 0
	result, err := inv.Invoke(context.Background(), func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", &googleapi.Error{Code: 429}
		}
		return "generated text", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "generated text", result)
	assert.Equal(t, 2, calls)
}

func TestInvoke_ErrorCarriesUserMessageNotProviderText(t *testing.T) {
	inv := NewInvoker(withSleep((&fakeSleep{}).sleep))

	_, err := inv.Invoke(context.Background(), func(context.Context) (string, error) {
		return "", errors.New("googleapi: got HTTP response code 500 with body")
	})

	var invErr *InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, UserMessage(invErr.Type), invErr.Message)
	assert.NotContains(t, invErr.Message, "googleapi")
	assert.NotContains(t, invErr.Message, "500")
}

func TestInvoke_CancelledContextAbortsBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	inv := NewInvoker() // real sleep, cancelled immediately

	calls := 0
	start := time.Now()
	_, err := inv.Invoke(ctx, func(context.Context) (string, error) {
		calls++
		cancel()
		return "", &googleapi.Error{Code: 429}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestUserMessage_CoversAllTypes(t *testing.T) {
	for _, errType := range []ErrorType{ErrorRateLimit, ErrorNetwork, ErrorTimeout, ErrorConfig, ErrorMalformed, ErrorUnknown} {
		assert.NotEmpty(t, UserMessage(errType))
	}
	assert.Equal(t, UserMessage(ErrorUnknown), UserMessage(ErrorType("nonsense")))
}
