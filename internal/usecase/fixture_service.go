package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/fixture-compare/internal/domain/fixture"
	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
)

const DefaultUpcomingFixtureLimit = 5

// UpcomingFixtures is the next handful of fixtures for one team.
type UpcomingFixtures struct {
	TeamID       int64
	LeagueFilter string
	Fixtures     []fixture.Fixture
	Status       provider.CacheStatus
	FetchedAt    time.Time
}

type FixtureService struct {
	fixtureRepo fixture.Repository
	limit       int
	now         func() time.Time
}

func NewFixtureService(fixtureRepo fixture.Repository) *FixtureService {
	return &FixtureService{
		fixtureRepo: fixtureRepo,
		limit:       DefaultUpcomingFixtureLimit,
		now:         time.Now,
	}
}

func (s *FixtureService) UpcomingByTeam(ctx context.Context, teamID int64, leagueCode string) (UpcomingFixtures, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.UpcomingByTeam")
	defer span.End()

	if teamID <= 0 {
		return UpcomingFixtures{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}
	filter := league.NormalizeCode(leagueCode)

	schedule, err := s.fixtureRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return UpcomingFixtures{}, fmt.Errorf("list fixtures by team: %w", err)
	}

	return UpcomingFixtures{
		TeamID:       teamID,
		LeagueFilter: filter,
		Fixtures:     fixture.SelectUpcoming(schedule.Matches, teamID, filter, s.now().UTC(), s.limit),
		Status:       schedule.Status,
		FetchedAt:    schedule.FetchedAt,
	}, nil
}
