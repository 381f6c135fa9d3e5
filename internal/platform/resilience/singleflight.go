package resilience

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SingleFlight collapses concurrent calls sharing a key into one execution.
// A panic inside fn is turned into an error for every caller.
//
// The shared execution runs on a context detached from any single caller:
// values are kept, cancellation is not. Timeout bounds it when positive.
type SingleFlight struct {
	Timeout time.Duration

	mu    sync.Mutex
	calls map[string]*flightCall
}

type flightCall struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn once per key at a time and waits for its result or for ctx to
// end, whichever comes first. A caller that gives up does not stop the
// execution other callers are waiting on. shared reports whether the call
// joined an execution started by another caller.
func (g *SingleFlight) Do(ctx context.Context, key string, fn func(context.Context) (any, error)) (val any, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flightCall)
	}
	c, shared := g.calls[key]
	if !shared {
		c = &flightCall{done: make(chan struct{})}
		g.calls[key] = c
		g.mu.Unlock()

		runCtx, cancel := g.detach(ctx)
		go func() {
			defer cancel()
			g.run(key, c, func() (any, error) { return fn(runCtx) })
		}()
	} else {
		g.mu.Unlock()
	}

	select {
	case <-c.done:
		return c.val, c.err, shared
	case <-ctx.Done():
		return nil, ctx.Err(), shared
	}
}

// InFlight is the number of keys currently executing.
func (g *SingleFlight) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *SingleFlight) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if g.Timeout > 0 {
		return context.WithTimeout(detached, g.Timeout)
	}
	return context.WithCancel(detached)
}

func (g *SingleFlight) run(key string, c *flightCall, fn func() (any, error)) {
	defer func() {
		if r := recover(); r != nil {
			c.val, c.err = nil, fmt.Errorf("singleflight %q panicked: %v", key, r)
		}
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(c.done)
	}()

	c.val, c.err = fn()
}
