package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/leaguestanding"
	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
	"github.com/riskibarqy/fixture-compare/internal/domain/team"
	leaguemock "github.com/riskibarqy/fixture-compare/internal/mocks/domain/league"
	leaguestandingmock "github.com/riskibarqy/fixture-compare/internal/mocks/domain/leaguestanding"
	teammock "github.com/riskibarqy/fixture-compare/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestLeagueStandingService_GetStandings_ReturnsCachedTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	standingRepo := leaguestandingmock.NewRepository(t)
	service := NewLeagueStandingService(leagueRepo, standingRepo)

	leagueRepo.
		On("GetByCode", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "PL").
		Return(league.League{Code: "PL", Name: "Premier League"}, true, nil).
		Once()
	standingRepo.
		On("ListByLeague", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "PL").
		Return(leaguestanding.Table{
			LeagueCode: "PL",
			Status:     provider.CacheStatusHit,
			Rows: []leaguestanding.Standing{
				{Position: 1, Team: leaguestanding.TeamRef{ID: 57, Name: "Arsenal FC"}, Points: 19},
				{Position: 2, Team: leaguestanding.TeamRef{ID: 65, Name: "Manchester City FC"}, Points: 16},
			},
		}, nil).
		Once()

	got, err := service.GetStandings(ctx, "pl")
	if err != nil {
		t.Fatalf("get standings: %v", err)
	}
	if len(got.Rows) != 2 || got.Rows[0].Team.Name != "Arsenal FC" {
		t.Fatalf("unexpected rows: %+v", got.Rows)
	}
	if !got.FromCache() {
		t.Fatalf("expected table to be reported as served from cache")
	}
}

func TestLeagueStandingService_GetStandings_NotConfigured(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	standingRepo := leaguestandingmock.NewRepository(t)
	service := NewLeagueStandingService(leagueRepo, standingRepo)

	leagueRepo.
		On("GetByCode", mock.Anything, "SA").
		Return(league.League{Code: "SA", Name: "Serie A"}, true, nil).
		Once()
	standingRepo.
		On("ListByLeague", mock.Anything, "SA").
		Return(leaguestanding.Table{}, fmt.Errorf("%w: football-data api token is missing", ErrNotConfigured)).
		Once()

	_, err := service.GetStandings(ctx, "SA")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestTeamService_ListByLeague_UnknownLeagueSkipsProvider(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(leagueRepo, teamRepo)

	leagueRepo.
		On("GetByCode", mock.Anything, "XYZ").
		Return(league.League{}, false, nil).
		Once()

	_, err := service.ListByLeague(context.Background(), "xyz")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	teamRepo.AssertNotCalled(t, "ListByLeague", mock.Anything, mock.Anything)
}

func TestTeamService_ListByLeague(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(leagueRepo, teamRepo)

	leagueRepo.
		On("GetByCode", mock.Anything, "BL1").
		Return(league.League{Code: "BL1", Name: "Bundesliga"}, true, nil).
		Once()
	teamRepo.
		On("ListByLeague", mock.Anything, "BL1").
		Return(team.Listing{
			LeagueCode: "BL1",
			Teams:      []team.Team{{ID: 5, LeagueCode: "BL1", Name: "FC Bayern München"}},
			Status:     provider.CacheStatusMiss,
		}, nil).
		Once()

	got, err := service.ListByLeague(context.Background(), "bl1")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got.Teams) != 1 || got.Teams[0].DisplayShortName() != "FC Bayern München" {
		t.Fatalf("unexpected teams: %+v", got.Teams)
	}
}
