package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const defaultDelay = 100 * time.Millisecond

type Backoff func(attempt int) time.Duration

type Config struct {
	MaxAttempts int
	Backoff     Backoff
}

func (c *Config) normalize() {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 1
	}
	if c.Backoff == nil {
		c.Backoff = ExponentialBackoff(defaultDelay)
	}
}

func ExponentialBackoff(delay time.Duration) Backoff {
	return func(attempt int) time.Duration {
		base := 1 << attempt * delay
		jitter := time.Duration(rand.IntN(int(base/2)) + 1)
		return base + jitter
	}
}

func LinearBackoff(delay time.Duration) Backoff {
	return func(int) time.Duration {
		return delay
	}
}

// Do invokes fn until it succeeds or attempts run out, waiting per
// the backoff between tries. The last error is returned as is.
func Do(ctx context.Context, c Config, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.normalize()
	timer := time.NewTimer(0)
	defer timer.Stop()

	var err error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		timer.Reset(c.Backoff(attempt))
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}

	return err
}
