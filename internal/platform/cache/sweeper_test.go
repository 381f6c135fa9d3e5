package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
)

func TestSweeper_SweepAll(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	standings := NewStore(time.Hour, WithClock(clock.Now), WithStaleRetention(time.Hour))
	fixtures := NewStore(10*time.Minute, WithClock(clock.Now), WithStaleRetention(time.Hour))

	standings.Set(context.Background(), Key("standings", "PL"), 1)
	fixtures.Set(context.Background(), Key("fixtures", "team", "65"), 2)
	fixtures.Set(context.Background(), Key("fixtures", "team", "57"), 3)

	clock.Advance(90 * time.Minute)

	sweeper := NewSweeper(logging.NewNop(), map[string]*Store{
		"standings": standings,
		"fixtures":  fixtures,
		"unused":    nil,
	})
	removed := sweeper.SweepAll(context.Background())

	if removed["fixtures"] != 2 {
		t.Fatalf("expected 2 fixtures entries swept, got %d", removed["fixtures"])
	}
	if removed["standings"] != 0 {
		t.Fatalf("expected standings entry to be kept within stale retention, got %d", removed["standings"])
	}
	if _, ok := removed["unused"]; ok {
		t.Fatalf("nil stores must be ignored")
	}
	if standings.Len() != 1 || fixtures.Len() != 0 {
		t.Fatalf("unexpected store sizes standings=%d fixtures=%d", standings.Len(), fixtures.Len())
	}
}

func TestSweeper_StartRejectsInvalidSchedule(t *testing.T) {
	t.Parallel()

	sweeper := NewSweeper(logging.NewNop(), nil)
	if err := sweeper.Start("every now and then"); err == nil {
		t.Fatalf("expected invalid schedule error")
	}
}

func TestSweeper_StartAndStop(t *testing.T) {
	t.Parallel()

	sweeper := NewSweeper(logging.NewNop(), map[string]*Store{"teams": NewStore(time.Hour)})
	if err := sweeper.Start(""); err != nil {
		t.Fatalf("start with default schedule: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sweeper.Stop(ctx)
}
