package utils

import (
	"context"
	"time"
)

// Backoff retries with exponential delays. maxRetries=0 means a single attempt.
type Backoff struct {
	base       time.Duration
	maxRetries int
}

func NewBackoff(base time.Duration, maxRetries int) Backoff {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return Backoff{base: base, maxRetries: maxRetries}
}

func (b Backoff) MaxRetries() int { return b.maxRetries }

// Do stops early when ctx is done; the last error is returned.
func (b Backoff) Do(ctx context.Context, fn func(i int) error) error {
	var err error
	for i := 0; i <= b.maxRetries; i++ {
		err = fn(i)
		if err == nil || i == b.maxRetries {
			return err
		}
		t := time.NewTimer(time.Duration(1<<i) * b.base)
		select {
		case <-ctx.Done():
			t.Stop()
			return err
		case <-t.C:
		}
	}
	return err
}
