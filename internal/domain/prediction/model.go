package prediction

import (
	"errors"
	"fmt"
	"strings"
)

// Outcome is a predicted result of one fixture for one team.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
	OutcomeLose Outcome = "lose"
)

var ErrUnknownOutcome = errors.New("unknown prediction outcome")

func ParseOutcome(raw string) (Outcome, error) {
	switch Outcome(strings.ToLower(strings.TrimSpace(raw))) {
	case OutcomeWin:
		return OutcomeWin, nil
	case OutcomeDraw:
		return OutcomeDraw, nil
	case OutcomeLose:
		return OutcomeLose, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOutcome, raw)
	}
}

// Points is the league points awarded for the outcome.
func (o Outcome) Points() int {
	switch o {
	case OutcomeWin:
		return 3
	case OutcomeDraw:
		return 1
	default:
		return 0
	}
}

func Sum(outcomes []Outcome) int {
	total := 0
	for _, outcome := range outcomes {
		total += outcome.Points()
	}
	return total
}

// Summary describes which side leads on predicted points.
func Summary(homeName string, homePoints int, awayName string, awayPoints int) (leader string, margin int, text string) {
	switch {
	case homePoints > awayPoints:
		leader, margin = homeName, homePoints-awayPoints
	case awayPoints > homePoints:
		leader, margin = awayName, awayPoints-homePoints
	default:
		return "", 0, "Level on points"
	}

	unit := "points"
	if margin == 1 {
		unit = "point"
	}
	return leader, margin, fmt.Sprintf("%s leads by %d %s", leader, margin, unit)
}
