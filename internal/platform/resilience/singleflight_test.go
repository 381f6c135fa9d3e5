package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32
	var sharedCount int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, shared := g.Do(context.Background(), "standings:PL", func(context.Context) (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if shared {
				atomic.AddInt32(&sharedCount, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := atomic.LoadInt32(&sharedCount); got != workers-1 {
		t.Fatalf("expected %d shared results, got %d", workers-1, got)
	}
	if g.InFlight() != 0 {
		t.Fatalf("expected no calls in flight after completion")
	}
}

func TestSingleFlight_PanicBecomesError(t *testing.T) {
	var g SingleFlight

	_, err, _ := g.Do(context.Background(), "teams:PD", func(context.Context) (any, error) {
		panic("decoder blew up")
	})
	if err == nil {
		t.Fatalf("expected panic to surface as error")
	}

	val, err, _ := g.Do(context.Background(), "teams:PD", func(context.Context) (any, error) {
		return 3, nil
	})
	if err != nil || val.(int) != 3 {
		t.Fatalf("expected key to be reusable after panic, val=%v err=%v", val, err)
	}
}

func TestSingleFlight_FirstCallerDeadlineDoesNotFailOthers(t *testing.T) {
	var g SingleFlight
	started := make(chan struct{})
	release := make(chan struct{})
	var runErr atomic.Value
	var once sync.Once

	fn := func(ctx context.Context) (any, error) {
		once.Do(func() { close(started) })
		<-release
		if err := ctx.Err(); err != nil {
			runErr.Store(err)
		}
		return "standings", nil
	}

	firstCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	firstErr := make(chan error, 1)
	go func() {
		_, err, _ := g.Do(firstCtx, "standings:PL", fn)
		firstErr <- err
	}()
	<-started

	type result struct {
		val    any
		err    error
		shared bool
	}
	second := make(chan result, 1)
	go func() {
		val, err, shared := g.Do(context.Background(), "standings:PL", fn)
		second <- result{val: val, err: err, shared: shared}
	}()

	if err := <-firstErr; !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected first caller to stop at its deadline, got %v", err)
	}
	close(release)

	got := <-second
	if got.err != nil || got.val != "standings" || !got.shared {
		t.Fatalf("expected second caller to receive the shared value, got %+v", got)
	}
	if v := runErr.Load(); v != nil {
		t.Fatalf("shared execution saw a cancelled context: %v", v)
	}
}

func TestSingleFlight_CallerLeavesOnOwnContext(t *testing.T) {
	var g SingleFlight
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err, _ := g.Do(ctx, "fixtures:team:65", func(context.Context) (any, error) {
		<-release
		return nil, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected caller to return on its own cancellation, got %v", err)
	}
}

func TestSingleFlight_TimeoutBoundsExecution(t *testing.T) {
	g := SingleFlight{Timeout: 10 * time.Millisecond}

	_, err, _ := g.Do(context.Background(), "teams:SA", func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected execution to be bounded by the flight timeout, got %v", err)
	}
}
