package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fixture-compare/internal/domain/league"
)

type LeagueService struct {
	leagueRepo league.Repository
}

func NewLeagueService(leagueRepo league.Repository) *LeagueService {
	return &LeagueService{leagueRepo: leagueRepo}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

// GetLeague resolves a competition code case-insensitively.
func (s *LeagueService) GetLeague(ctx context.Context, leagueCode string) (league.League, error) {
	return requireLeague(ctx, s.leagueRepo, leagueCode)
}

func requireLeague(ctx context.Context, repo league.Repository, leagueCode string) (league.League, error) {
	code := league.NormalizeCode(leagueCode)
	if code == "" {
		return league.League{}, fmt.Errorf("%w: league code is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByCode(ctx, code)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, code)
	}

	return item, nil
}
