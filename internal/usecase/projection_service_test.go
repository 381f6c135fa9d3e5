package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fixture-compare/internal/domain/prediction"
	manualpointsmock "github.com/riskibarqy/fixture-compare/internal/mocks/domain/manualpoints"
	"github.com/stretchr/testify/mock"
)

func TestProjectionService_Project(t *testing.T) {
	t.Parallel()

	manualRepo := manualpointsmock.NewRepository(t)
	service := NewProjectionService(NewPointsService(nil, manualRepo, nil, PointsConfig{}, nil))

	manualRepo.
		On("GetByLeague", mock.Anything, "PL").
		Return(testManualPL, nil).
		Twice()

	got, err := service.Project(context.Background(), ProjectionInput{
		LeagueCode: "PL",
		Home: ProjectionSide{
			Team:        "Arsenal",
			Predictions: []prediction.Outcome{prediction.OutcomeWin, prediction.OutcomeDraw},
		},
		Away: ProjectionSide{
			Team:        "Man City",
			Predictions: []prediction.Outcome{prediction.OutcomeWin, prediction.OutcomeWin, prediction.OutcomeWin},
		},
	})
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	if got.Home.Current.Points != 19 || got.Home.Predicted != 4 || got.Home.Total != 23 {
		t.Fatalf("unexpected home projection: %+v", got.Home)
	}
	if got.Away.Current.Points != 16 || got.Away.Predicted != 9 || got.Away.Total != 25 {
		t.Fatalf("unexpected away projection: %+v", got.Away)
	}
	if got.Leader != "Man City" || got.Margin != 5 {
		t.Fatalf("unexpected leader=%q margin=%d", got.Leader, got.Margin)
	}
	if got.Summary != "Man City leads by 5 points" {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
}

func TestProjectionService_Project_LevelOnPoints(t *testing.T) {
	t.Parallel()

	manualRepo := manualpointsmock.NewRepository(t)
	service := NewProjectionService(NewPointsService(nil, manualRepo, nil, PointsConfig{}, nil))

	manualRepo.
		On("GetByLeague", mock.Anything, "PL").
		Return(testManualPL, nil).
		Twice()

	got, err := service.Project(context.Background(), ProjectionInput{
		LeagueCode: "PL",
		Home:       ProjectionSide{Team: "Chelsea"},
		Away:       ProjectionSide{Team: "Arsenal"},
	})
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if got.Leader != "" || got.Margin != 0 || got.Summary != "Level on points" {
		t.Fatalf("unexpected level projection: %+v", got)
	}
}

func TestProjectionService_Project_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	service := NewProjectionService(NewPointsService(nil, manualpointsmock.NewRepository(t), nil, PointsConfig{}, nil))

	tooMany := make([]prediction.Outcome, MaxPredictionsPerSide+1)
	for i := range tooMany {
		tooMany[i] = prediction.OutcomeDraw
	}

	tests := []struct {
		name  string
		input ProjectionInput
	}{
		{
			name:  "missing home team",
			input: ProjectionInput{LeagueCode: "PL", Away: ProjectionSide{Team: "Arsenal"}},
		},
		{
			name: "too many predictions",
			input: ProjectionInput{
				LeagueCode: "PL",
				Home:       ProjectionSide{Team: "Arsenal", Predictions: tooMany},
				Away:       ProjectionSide{Team: "Chelsea"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Project(context.Background(), tt.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
