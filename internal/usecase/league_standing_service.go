package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/leaguestanding"
)

type LeagueStandingService struct {
	leagueRepo   league.Repository
	standingRepo leaguestanding.Repository
}

func NewLeagueStandingService(leagueRepo league.Repository, standingRepo leaguestanding.Repository) *LeagueStandingService {
	return &LeagueStandingService{
		leagueRepo:   leagueRepo,
		standingRepo: standingRepo,
	}
}

// GetStandings returns the league table. A stale table is returned without
// error when the provider fails after a previous successful fetch.
func (s *LeagueStandingService) GetStandings(ctx context.Context, leagueCode string) (leaguestanding.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStandingService.GetStandings")
	defer span.End()

	item, err := requireLeague(ctx, s.leagueRepo, leagueCode)
	if err != nil {
		return leaguestanding.Table{}, err
	}

	table, err := s.standingRepo.ListByLeague(ctx, item.Code)
	if err != nil {
		return leaguestanding.Table{}, fmt.Errorf("list league standings: %w", err)
	}

	return table, nil
}
