package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/riskibarqy/fixture-compare/internal/domain/fixture"
	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/leaguestanding"
	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
	"github.com/riskibarqy/fixture-compare/internal/domain/team"
	basecache "github.com/riskibarqy/fixture-compare/internal/platform/cache"
	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
	"github.com/riskibarqy/fixture-compare/internal/platform/metrics"
)

const (
	resourceStandings = "standings"
	resourceTeams     = "teams"
	resourceFixtures  = "fixtures"
)

type StandingRepository struct {
	next   leaguestanding.Provider
	cache  *basecache.Store
	logger *logging.Logger
}

func NewStandingRepository(next leaguestanding.Provider, cache *basecache.Store, logger *logging.Logger) *StandingRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingRepository{next: next, cache: cache, logger: logger}
}

func (r *StandingRepository) ListByLeague(ctx context.Context, leagueCode string) (leaguestanding.Table, error) {
	code := league.NormalizeCode(leagueCode)
	res, err := r.cache.GetOrLoad(ctx, basecache.Key(resourceStandings, code), func(ctx context.Context) (any, error) {
		items, err := r.next.FetchStandings(ctx, code)
		if err != nil {
			return nil, err
		}
		return append([]leaguestanding.Standing(nil), items...), nil
	})
	if err != nil {
		metrics.RecordCacheLookup(resourceStandings, "error")
		return leaguestanding.Table{}, err
	}
	observe(ctx, r.logger, resourceStandings, res, "league", code)

	items, ok := res.Value.([]leaguestanding.Standing)
	if !ok {
		return leaguestanding.Table{}, fmt.Errorf("unexpected cached standings type %T", res.Value)
	}
	return leaguestanding.Table{
		LeagueCode:   code,
		Rows:         append([]leaguestanding.Standing(nil), items...),
		Status:       cacheStatus(res.Outcome),
		FetchedAt:    res.StoredAt,
		RefreshError: refreshError(res),
	}, nil
}

type TeamRepository struct {
	next   team.Provider
	cache  *basecache.Store
	logger *logging.Logger
}

func NewTeamRepository(next team.Provider, cache *basecache.Store, logger *logging.Logger) *TeamRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamRepository{next: next, cache: cache, logger: logger}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueCode string) (team.Listing, error) {
	code := league.NormalizeCode(leagueCode)
	res, err := r.cache.GetOrLoad(ctx, basecache.Key(resourceTeams, code), func(ctx context.Context) (any, error) {
		items, err := r.next.FetchTeams(ctx, code)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		metrics.RecordCacheLookup(resourceTeams, "error")
		return team.Listing{}, err
	}
	observe(ctx, r.logger, resourceTeams, res, "league", code)

	items, ok := res.Value.([]team.Team)
	if !ok {
		return team.Listing{}, fmt.Errorf("unexpected cached teams type %T", res.Value)
	}
	return team.Listing{
		LeagueCode:   code,
		Teams:        append([]team.Team(nil), items...),
		Status:       cacheStatus(res.Outcome),
		FetchedAt:    res.StoredAt,
		RefreshError: refreshError(res),
	}, nil
}

type FixtureRepository struct {
	next   fixture.Provider
	cache  *basecache.Store
	logger *logging.Logger
}

func NewFixtureRepository(next fixture.Provider, cache *basecache.Store, logger *logging.Logger) *FixtureRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureRepository{next: next, cache: cache, logger: logger}
}

func (r *FixtureRepository) ListByTeam(ctx context.Context, teamID int64) (fixture.Schedule, error) {
	id := strconv.FormatInt(teamID, 10)
	res, err := r.cache.GetOrLoad(ctx, basecache.Key(resourceFixtures, "team", id), func(ctx context.Context) (any, error) {
		items, err := r.next.FetchTeamMatches(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]fixture.Match(nil), items...), nil
	})
	if err != nil {
		metrics.RecordCacheLookup(resourceFixtures, "error")
		return fixture.Schedule{}, err
	}
	observe(ctx, r.logger, resourceFixtures, res, "team_id", teamID)

	items, ok := res.Value.([]fixture.Match)
	if !ok {
		return fixture.Schedule{}, fmt.Errorf("unexpected cached matches type %T", res.Value)
	}
	return fixture.Schedule{
		TeamID:       teamID,
		Matches:      append([]fixture.Match(nil), items...),
		Status:       cacheStatus(res.Outcome),
		FetchedAt:    res.StoredAt,
		RefreshError: refreshError(res),
	}, nil
}

func observe(ctx context.Context, logger *logging.Logger, resource string, res basecache.Result, args ...any) {
	metrics.RecordCacheLookup(resource, string(res.Outcome))
	if res.Outcome != basecache.OutcomeStale {
		return
	}

	fields := append([]any{
		"resource", resource,
		"stored_at", res.StoredAt.UTC().Format(time.RFC3339),
		"error", res.RefreshErr,
	}, args...)
	logger.WarnContext(ctx, "serving stale cache entry after refresh failure", fields...)
}

func cacheStatus(outcome basecache.Outcome) provider.CacheStatus {
	switch outcome {
	case basecache.OutcomeHit:
		return provider.CacheStatusHit
	case basecache.OutcomeRefresh:
		return provider.CacheStatusRefresh
	case basecache.OutcomeStale:
		return provider.CacheStatusStale
	default:
		return provider.CacheStatusMiss
	}
}

func refreshError(res basecache.Result) string {
	if res.RefreshErr == nil {
		return ""
	}
	return provider.Reason(res.RefreshErr)
}
