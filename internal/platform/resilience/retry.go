package resilience

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// DefaultRetryBackoffs is the wait before each retry of a transient failure.
func DefaultRetryBackoffs() []time.Duration {
	return []time.Duration{200 * time.Millisecond, 500 * time.Millisecond}
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

// Retry runs op once and then once more per entry of backoffs, sleeping the
// entry's duration before each retry. Errors wrapped with Permanent stop the
// loop immediately and are returned unwrapped. notify may be nil.
func Retry[T any](ctx context.Context, backoffs []time.Duration, op func() (T, error), notify func(err error, wait time.Duration)) (T, error) {
	opts := []backoff.RetryOption{
		backoff.WithBackOff(newScheduleBackOff(backoffs)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithMaxTries(uint(len(backoffs) + 1)),
	}
	if notify != nil {
		opts = append(opts, backoff.WithNotify(notify))
	}

	return backoff.Retry(ctx, op, opts...)
}

// scheduleBackOff replays a fixed list of delays and then stops.
type scheduleBackOff struct {
	delays []time.Duration
	next   int
}

func newScheduleBackOff(delays []time.Duration) *scheduleBackOff {
	out := make([]time.Duration, 0, len(delays))
	for _, d := range delays {
		if d < 0 {
			d = 0
		}
		out = append(out, d)
	}
	return &scheduleBackOff{delays: out}
}

func (b *scheduleBackOff) NextBackOff() time.Duration {
	if b.next >= len(b.delays) {
		return backoff.Stop
	}
	d := b.delays[b.next]
	b.next++
	return d
}

func (b *scheduleBackOff) Reset() {
	b.next = 0
}
