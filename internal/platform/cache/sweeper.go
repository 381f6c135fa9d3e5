package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
	"github.com/riskibarqy/fixture-compare/internal/platform/metrics"
	"github.com/robfig/cron/v3"
	"github.com/sourcegraph/conc"
)

const DefaultSweepSchedule = "@every 15m"

// Sweeper periodically drops long-expired entries from a set of named stores.
type Sweeper struct {
	stores map[string]*Store
	logger *logging.Logger
	cron   *cron.Cron
}

func NewSweeper(logger *logging.Logger, stores map[string]*Store) *Sweeper {
	if logger == nil {
		logger = logging.Default()
	}

	named := make(map[string]*Store, len(stores))
	for name, store := range stores {
		if store != nil {
			named[name] = store
		}
	}

	return &Sweeper{
		stores: named,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start schedules SweepAll with a standard cron spec or an @every descriptor.
func (s *Sweeper) Start(schedule string) error {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	if _, err := s.cron.AddFunc(schedule, func() {
		s.SweepAll(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule cache sweep %q: %w", schedule, err)
	}

	s.cron.Start()
	s.logger.Info("cache sweeper started", "schedule", schedule, "stores", s.names())
	return nil
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("cache sweeper stop timed out", "error", ctx.Err())
	}
}

// SweepAll sweeps every store concurrently and returns the removed count per store.
func (s *Sweeper) SweepAll(ctx context.Context) map[string]int {
	var (
		mu      sync.Mutex
		removed = make(map[string]int, len(s.stores))
		wg      conc.WaitGroup
	)

	for name, store := range s.stores {
		wg.Go(func() {
			n := store.Sweep(ctx)
			metrics.RecordCacheSweep(name, n)

			mu.Lock()
			removed[name] = n
			mu.Unlock()
		})
	}
	wg.Wait()

	total := 0
	for _, n := range removed {
		total += n
	}
	if total > 0 {
		s.logger.InfoContext(ctx, "cache sweep removed expired entries", "removed", total, "by_store", removed)
	}
	return removed
}

func (s *Sweeper) names() []string {
	out := make([]string, 0, len(s.stores))
	for name := range s.stores {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
