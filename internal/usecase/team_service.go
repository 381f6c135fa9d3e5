package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/team"
)

type TeamService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
}

func NewTeamService(leagueRepo league.Repository, teamRepo team.Repository) *TeamService {
	return &TeamService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

func (s *TeamService) ListByLeague(ctx context.Context, leagueCode string) (team.Listing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByLeague")
	defer span.End()

	item, err := requireLeague(ctx, s.leagueRepo, leagueCode)
	if err != nil {
		return team.Listing{}, err
	}

	listing, err := s.teamRepo.ListByLeague(ctx, item.Code)
	if err != nil {
		return team.Listing{}, fmt.Errorf("list teams by league: %w", err)
	}

	return listing, nil
}
