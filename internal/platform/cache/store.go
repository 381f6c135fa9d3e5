package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/fixture-compare/internal/platform/resilience"
)

// Outcome tells how GetOrLoad produced its value.
type Outcome string

const (
	OutcomeHit     Outcome = "hit"
	OutcomeMiss    Outcome = "miss"
	OutcomeRefresh Outcome = "refresh"
	OutcomeStale   Outcome = "stale"
)

// Result is a value served by the store. RefreshErr is set only for stale results.
type Result struct {
	Value      any
	Outcome    Outcome
	StoredAt   time.Time
	RefreshErr error
}

type entry struct {
	value     any
	storedAt  time.Time
	expiresAt time.Time
}

// DefaultLoadTimeout bounds a shared load when no WithLoadTimeout is given.
const DefaultLoadTimeout = 30 * time.Second

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMaxEntries bounds the number of keys; the entry closest to expiry is evicted first.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithLoadTimeout bounds a shared load. Zero or less keeps DefaultLoadTimeout.
func WithLoadTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.flight.Timeout = d
		}
	}
}

// WithStaleRetention keeps expired entries around for stale serving until
// Sweep runs after expiry+d. Zero keeps them forever.
func WithStaleRetention(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.staleRetention = d
		}
	}
}

// Store is an in-memory TTL cache that keeps expired values to serve them
// when a refresh fails.
type Store struct {
	mu             sync.RWMutex
	entries        map[string]entry
	ttl            time.Duration
	maxEntries     int
	staleRetention time.Duration
	now            func() time.Time
	flight         resilience.SingleFlight
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	s.flight.Timeout = DefaultLoadTimeout
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key joins a resource kind and its scope into a composite cache key.
func Key(kind string, parts ...string) string {
	items := make([]string, 0, len(parts)+1)
	items = append(items, strings.TrimSpace(kind))
	for _, part := range parts {
		items = append(items, strings.TrimSpace(part))
	}
	return strings.Join(items, ":")
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get returns a fresh value only.
func (s *Store) Get(_ context.Context, key string) (any, bool) {
	e, ok := s.lookup(key)
	if !ok || !s.fresh(e) {
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}
	s.store(key, value)
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep drops entries whose stale retention window has passed and returns
// how many were removed.
func (s *Store) Sweep(_ context.Context) int {
	if s.ttl <= 0 || s.staleRetention <= 0 {
		return 0
	}

	now := s.now()
	removed := 0
	s.mu.Lock()
	for key, e := range s.entries {
		if !now.Before(e.expiresAt.Add(s.staleRetention)) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()

	return removed
}

// GetOrLoad serves a fresh entry, or calls loader and stores its value.
// When loader fails and an expired entry exists, the expired value is served
// as stale. An error is returned only when there is nothing to serve.
//
// Concurrent callers of one key share a single load. The load runs detached
// from their contexts and is bounded by the load timeout; each caller stops
// waiting when its own ctx ends, and the load still fills the cache.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (Result, error) {
	if loader == nil {
		return Result{}, fmt.Errorf("loader is required")
	}
	if key == "" {
		value, err := loader(ctx)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: value, Outcome: OutcomeMiss, StoredAt: s.now()}, nil
	}

	if e, ok := s.lookup(key); ok && s.fresh(e) {
		return Result{Value: e.value, Outcome: OutcomeHit, StoredAt: e.storedAt}, nil
	}

	out, err, _ := s.flight.Do(ctx, key, func(loadCtx context.Context) (any, error) {
		previous, hasPrevious := s.lookup(key)
		if hasPrevious && s.fresh(previous) {
			return Result{Value: previous.value, Outcome: OutcomeHit, StoredAt: previous.storedAt}, nil
		}

		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			if hasPrevious {
				return Result{
					Value:      previous.value,
					Outcome:    OutcomeStale,
					StoredAt:   previous.storedAt,
					RefreshErr: loadErr,
				}, nil
			}
			return nil, loadErr
		}

		stored := s.store(key, loaded)
		outcome := OutcomeMiss
		if hasPrevious {
			outcome = OutcomeRefresh
		}
		return Result{Value: loaded, Outcome: outcome, StoredAt: stored.storedAt}, nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			if previous, ok := s.lookup(key); ok {
				if s.fresh(previous) {
					return Result{Value: previous.value, Outcome: OutcomeHit, StoredAt: previous.storedAt}, nil
				}
				return Result{
					Value:      previous.value,
					Outcome:    OutcomeStale,
					StoredAt:   previous.storedAt,
					RefreshErr: err,
				}, nil
			}
		}
		return Result{}, err
	}

	result, ok := out.(Result)
	if !ok {
		return Result{}, fmt.Errorf("unexpected cache result type %T", out)
	}
	return result, nil
}

func (s *Store) lookup(key string) (entry, bool) {
	if key == "" {
		return entry{}, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	return e, ok
}

func (s *Store) fresh(e entry) bool {
	if s.ttl <= 0 {
		return true
	}
	return s.now().Before(e.expiresAt)
}

func (s *Store) store(key string, value any) entry {
	now := s.now()
	e := entry{value: value, storedAt: now}
	if s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	if _, exists := s.entries[key]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.evictOneLocked()
	}
	s.entries[key] = e
	s.mu.Unlock()

	return e
}

func (s *Store) evictOneLocked() {
	var (
		victim string
		oldest time.Time
		found  bool
	)
	for key, e := range s.entries {
		if !found || e.expiresAt.Before(oldest) || (e.expiresAt.Equal(oldest) && key < victim) {
			victim, oldest, found = key, e.expiresAt, true
		}
	}
	if found {
		delete(s.entries, victim)
	}
}
