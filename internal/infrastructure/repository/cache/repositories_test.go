package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/fixture-compare/internal/domain/fixture"
	"github.com/riskibarqy/fixture-compare/internal/domain/leaguestanding"
	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
	"github.com/riskibarqy/fixture-compare/internal/domain/team"
	basecache "github.com/riskibarqy/fixture-compare/internal/platform/cache"
	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type stubProvider struct {
	mu        sync.Mutex
	calls     map[string]int
	standings []leaguestanding.Standing
	teams     []team.Team
	matches   []fixture.Match
	err       error
}

func (p *stubProvider) record(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.calls == nil {
		p.calls = map[string]int{}
	}
	p.calls[key]++
}

func (p *stubProvider) count(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[key]
}

func (p *stubProvider) FetchStandings(_ context.Context, leagueCode string) ([]leaguestanding.Standing, error) {
	p.record("standings:" + leagueCode)
	if p.err != nil {
		return nil, p.err
	}
	return p.standings, nil
}

func (p *stubProvider) FetchTeams(_ context.Context, leagueCode string) ([]team.Team, error) {
	p.record("teams:" + leagueCode)
	if p.err != nil {
		return nil, p.err
	}
	return p.teams, nil
}

func (p *stubProvider) FetchTeamMatches(_ context.Context, teamID int64) ([]fixture.Match, error) {
	p.record("matches")
	if p.err != nil {
		return nil, p.err
	}
	return p.matches, nil
}

func TestStandingRepository_CachesPerLeague(t *testing.T) {
	t.Parallel()

	clock := &testClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	upstream := &stubProvider{standings: []leaguestanding.Standing{
		{Position: 1, Team: leaguestanding.TeamRef{ID: 57, Name: "Arsenal FC"}, Points: 19},
	}}
	repo := NewStandingRepository(upstream, basecache.NewStore(time.Hour, basecache.WithClock(clock.Now)), logging.NewNop())

	first, err := repo.ListByLeague(context.Background(), "pl")
	if err != nil {
		t.Fatalf("first ListByLeague error: %v", err)
	}
	if first.Status != provider.CacheStatusMiss || first.FromCache() {
		t.Fatalf("expected miss on first call, got %s", first.Status)
	}
	if first.LeagueCode != "PL" || len(first.Rows) != 1 {
		t.Fatalf("unexpected table: %+v", first)
	}

	second, err := repo.ListByLeague(context.Background(), "PL")
	if err != nil {
		t.Fatalf("second ListByLeague error: %v", err)
	}
	if second.Status != provider.CacheStatusHit || !second.FromCache() {
		t.Fatalf("expected hit on second call, got %s", second.Status)
	}
	if upstream.count("standings:PL") != 1 {
		t.Fatalf("expected one upstream call, got %d", upstream.count("standings:PL"))
	}

	second.Rows[0].Points = 99
	third, _ := repo.ListByLeague(context.Background(), "PL")
	if third.Rows[0].Points != 19 {
		t.Fatalf("cached rows must not be mutated through returned tables")
	}

	if _, err := repo.ListByLeague(context.Background(), "PD"); err != nil {
		t.Fatalf("PD ListByLeague error: %v", err)
	}
	if upstream.count("standings:PD") != 1 {
		t.Fatalf("expected separate cache entry per league")
	}
}

func TestStandingRepository_ServesStaleOnRefreshFailure(t *testing.T) {
	t.Parallel()

	clock := &testClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	upstream := &stubProvider{standings: []leaguestanding.Standing{
		{Position: 1, Team: leaguestanding.TeamRef{ID: 86, Name: "Real Madrid CF"}, Points: 21},
	}}
	repo := NewStandingRepository(upstream, basecache.NewStore(time.Hour, basecache.WithClock(clock.Now)), logging.NewNop())

	if _, err := repo.ListByLeague(context.Background(), "PD"); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	clock.Advance(2 * time.Hour)
	upstream.err = &provider.UpstreamError{StatusCode: 429, Message: "You reached your request limit.", Path: "/competitions/PD/standings"}

	table, err := repo.ListByLeague(context.Background(), "PD")
	if err != nil {
		t.Fatalf("expected stale table, got error %v", err)
	}
	if table.Status != provider.CacheStatusStale || !table.FromCache() {
		t.Fatalf("expected stale status, got %s", table.Status)
	}
	if table.RefreshError != "You reached your request limit." {
		t.Fatalf("unexpected refresh error: %q", table.RefreshError)
	}
	if table.Rows[0].Points != 21 {
		t.Fatalf("expected previous rows, got %+v", table.Rows)
	}
}

func TestStandingRepository_ErrorWithoutCachedValue(t *testing.T) {
	t.Parallel()

	upstreamErr := errors.New("dial tcp: i/o timeout")
	repo := NewStandingRepository(&stubProvider{err: upstreamErr}, basecache.NewStore(time.Hour), nil)

	if _, err := repo.ListByLeague(context.Background(), "SA"); !errors.Is(err, upstreamErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestTeamRepository_RefreshAfterTTL(t *testing.T) {
	t.Parallel()

	clock := &testClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	upstream := &stubProvider{teams: []team.Team{{ID: 5, LeagueCode: "BL1", Name: "FC Bayern München"}}}
	repo := NewTeamRepository(upstream, basecache.NewStore(time.Hour, basecache.WithClock(clock.Now)), logging.NewNop())

	if _, err := repo.ListByLeague(context.Background(), "BL1"); err != nil {
		t.Fatalf("first ListByLeague error: %v", err)
	}
	clock.Advance(time.Hour)

	listing, err := repo.ListByLeague(context.Background(), "BL1")
	if err != nil {
		t.Fatalf("second ListByLeague error: %v", err)
	}
	if listing.Status != provider.CacheStatusRefresh {
		t.Fatalf("expected refresh at expiry, got %s", listing.Status)
	}
	if upstream.count("teams:BL1") != 2 {
		t.Fatalf("expected two upstream calls, got %d", upstream.count("teams:BL1"))
	}
	if !listing.FetchedAt.Equal(clock.Now()) {
		t.Fatalf("expected fetched-at of the refresh, got %s", listing.FetchedAt)
	}
}

func TestFixtureRepository_CachesPerTeam(t *testing.T) {
	t.Parallel()

	upstream := &stubProvider{matches: []fixture.Match{{ID: 1, CompetitionCode: "PL"}}}
	repo := NewFixtureRepository(upstream, basecache.NewStore(10*time.Minute), logging.NewNop())

	for i := 0; i < 3; i++ {
		schedule, err := repo.ListByTeam(context.Background(), 65)
		if err != nil {
			t.Fatalf("ListByTeam error: %v", err)
		}
		if schedule.TeamID != 65 || len(schedule.Matches) != 1 {
			t.Fatalf("unexpected schedule: %+v", schedule)
		}
	}
	if upstream.count("matches") != 1 {
		t.Fatalf("expected one upstream call, got %d", upstream.count("matches"))
	}
}
