package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fixture-compare/internal/domain/points"
	"github.com/riskibarqy/fixture-compare/internal/domain/prediction"
)

const MaxPredictionsPerSide = 10

type ProjectionSide struct {
	Team        string
	Predictions []prediction.Outcome
}

type ProjectionInput struct {
	LeagueCode string
	Home       ProjectionSide
	Away       ProjectionSide
}

type SideProjection struct {
	Team        string
	Current     points.Resolution
	Predictions []prediction.Outcome
	Predicted   int
	Total       int
}

// Projection compares two teams on the points their predicted results would earn.
type Projection struct {
	LeagueCode string
	Home       SideProjection
	Away       SideProjection
	Leader     string
	Margin     int
	Summary    string
}

type ProjectionService struct {
	points *PointsService
}

func NewProjectionService(pointsService *PointsService) *ProjectionService {
	return &ProjectionService{points: pointsService}
}

func (s *ProjectionService) Project(ctx context.Context, input ProjectionInput) (Projection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectionService.Project")
	defer span.End()

	for _, side := range []ProjectionSide{input.Home, input.Away} {
		if strings.TrimSpace(side.Team) == "" {
			return Projection{}, fmt.Errorf("%w: team is required on both sides", ErrInvalidInput)
		}
		if len(side.Predictions) > MaxPredictionsPerSide {
			return Projection{}, fmt.Errorf("%w: at most %d predictions per team, got %d", ErrInvalidInput, MaxPredictionsPerSide, len(side.Predictions))
		}
	}

	comparison, err := s.points.Compare(ctx, input.LeagueCode, input.Home.Team, input.Away.Team)
	if err != nil {
		return Projection{}, err
	}

	home := project(input.Home, comparison.Home)
	away := project(input.Away, comparison.Away)
	leader, margin, summary := prediction.Summary(home.Team, home.Predicted, away.Team, away.Predicted)

	return Projection{
		LeagueCode: comparison.LeagueCode,
		Home:       home,
		Away:       away,
		Leader:     leader,
		Margin:     margin,
		Summary:    summary,
	}, nil
}

func project(side ProjectionSide, current points.Resolution) SideProjection {
	predicted := prediction.Sum(side.Predictions)
	return SideProjection{
		Team:        strings.TrimSpace(side.Team),
		Current:     current,
		Predictions: append([]prediction.Outcome(nil), side.Predictions...),
		Predicted:   predicted,
		Total:       current.Points + predicted,
	}
}
