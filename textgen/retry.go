package textgen

import (
	"context"
	"time"

	"github.com/pingcap/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// RetryOption bounds calls to a Generator.
type RetryOption struct {
	// Timeout of a single call, no timeout if 0.
	Timeout time.Duration
	// Attempts is the total number of tries per prompt, at least 1.
	Attempts int
	// Backoff is the pause between tries, doubled after each failure.
	Backoff time.Duration
}

// Retrying wraps a Generator with a per-call timeout and a bounded number of retries.
type Retrying struct {
	g   Generator
	opt RetryOption

	calls    atomic.Uint64
	failures atomic.Uint64
}

// WithRetry wraps g.
func WithRetry(g Generator, opt RetryOption) *Retrying {
	if opt.Attempts < 1 {
		opt.Attempts = 1
	}
	return &Retrying{g: g, opt: opt}
}

func (r *Retrying) Generate(ctx context.Context, prompt string) (string, error) {
	backoff := r.opt.Backoff
	var lastErr error
	for attempt := 1; attempt <= r.opt.Attempts; attempt++ {
		out, err := r.call(ctx, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err
		r.failures.Inc()
		zap.L().Warn("text generation failed",
			zap.Int("attempt", attempt),
			zap.Int("attempts", r.opt.Attempts),
			zap.Error(err))
		if ctx.Err() != nil || attempt == r.opt.Attempts {
			break
		}
		if backoff > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", errors.Trace(ctx.Err())
			}
			backoff *= 2
		}
	}
	return "", errors.Annotatef(lastErr, "text generation failed after %d attempts", r.opt.Attempts)
}

func (r *Retrying) call(ctx context.Context, prompt string) (string, error) {
	r.calls.Inc()
	if r.opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opt.Timeout)
		defer cancel()
	}
	return r.g.Generate(ctx, prompt)
}

// Calls is the number of calls made to the wrapped generator.
func (r *Retrying) Calls() uint64 { return r.calls.Load() }

// Failures is the number of those calls that failed.
func (r *Retrying) Failures() uint64 { return r.failures.Load() }
