package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/manualpoints"
	"github.com/riskibarqy/fixture-compare/internal/domain/teamname"
)

func TestLoadManualPointsRepository_EmbeddedData(t *testing.T) {
	t.Parallel()

	repo, err := LoadManualPointsRepository()
	if err != nil {
		t.Fatalf("load embedded manual points: %v", err)
	}

	leagues, err := repo.Leagues(context.Background())
	if err != nil {
		t.Fatalf("Leagues error: %v", err)
	}
	if len(leagues) != len(league.SupportedCodes()) {
		t.Fatalf("expected a table per supported league, got %v", leagues)
	}

	pl, err := repo.GetByLeague(context.Background(), "pl")
	if err != nil {
		t.Fatalf("GetByLeague error: %v", err)
	}
	if len(pl) != 20 {
		t.Fatalf("expected 20 premier league teams, got %d", len(pl))
	}
	if pl["Arsenal FC"] != 19 {
		t.Fatalf("unexpected Arsenal points: %d", pl["Arsenal FC"])
	}
}

func TestLoadManualPointsRepository_KeysStayDistinctAfterNormalization(t *testing.T) {
	t.Parallel()

	repo, err := LoadManualPointsRepository()
	if err != nil {
		t.Fatalf("load embedded manual points: %v", err)
	}
	aliases := teamname.DefaultAliasTable()

	for _, code := range league.SupportedCodes() {
		table, err := repo.GetByLeague(context.Background(), code)
		if err != nil {
			t.Fatalf("GetByLeague(%s) error: %v", code, err)
		}

		seen := make(map[string]string, len(table))
		for key := range table {
			canonical := aliases.Canonical(key)
			if previous, ok := seen[canonical]; ok {
				t.Fatalf("league %s: %q and %q share canonical key %q", code, previous, key, canonical)
			}
			seen[canonical] = key
		}
	}
}

func TestManualPointsRepository_KnownNameVariants(t *testing.T) {
	t.Parallel()

	repo, err := LoadManualPointsRepository()
	if err != nil {
		t.Fatalf("load embedded manual points: %v", err)
	}
	aliases := teamname.DefaultAliasTable()

	tests := []struct {
		league string
		query  string
		key    string
		points int
	}{
		{league: "PL", query: "Man City", key: "Manchester City FC", points: 16},
		{league: "PL", query: "Manchester City", key: "Manchester City FC", points: 16},
		{league: "PL", query: "Spurs", key: "Tottenham Hotspur FC", points: 14},
		{league: "PD", query: "Atletico Madrid", key: "Club Atlético de Madrid", points: 13},
		{league: "PD", query: "Real Madrid", key: "Real Madrid CF", points: 21},
		{league: "BL1", query: "FC Köln", key: "1. FC Köln", points: 10},
		{league: "BL1", query: "RasenBallsport Leipzig", key: "RB Leipzig", points: 13},
		{league: "SA", query: "Inter", key: "FC Internazionale Milano", points: 12},
		{league: "SA", query: "Napoli", key: "SSC Napoli", points: 15},
		{league: "FL1", query: "PSG", key: "Paris Saint-Germain FC", points: 16},
	}

	for _, tt := range tests {
		table, err := repo.GetByLeague(context.Background(), tt.league)
		if err != nil {
			t.Fatalf("GetByLeague(%s) error: %v", tt.league, err)
		}
		match, ok := table.Lookup(tt.query, aliases)
		if !ok {
			t.Fatalf("%s %q: expected a manual match", tt.league, tt.query)
		}
		if match.Key != tt.key || match.Points != tt.points {
			t.Fatalf("%s %q: got %q=%d want %q=%d", tt.league, tt.query, match.Key, match.Points, tt.key, tt.points)
		}
	}
}

func TestManualPointsRepository_UnknownLeagueIsEmpty(t *testing.T) {
	t.Parallel()

	repo, err := NewManualPointsRepository(map[string]manualpoints.Table{"pl": {"Arsenal FC": 19}})
	if err != nil {
		t.Fatalf("NewManualPointsRepository error: %v", err)
	}

	table, err := repo.GetByLeague(context.Background(), "CL")
	if err != nil {
		t.Fatalf("unexpected error for unknown league: %v", err)
	}
	if len(table) != 0 {
		t.Fatalf("expected empty table, got %v", table)
	}
}

func TestManualPointsRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo, err := NewManualPointsRepository(map[string]manualpoints.Table{"PL": {"Arsenal FC": 19}})
	if err != nil {
		t.Fatalf("NewManualPointsRepository error: %v", err)
	}

	first, _ := repo.GetByLeague(context.Background(), "PL")
	first["Arsenal FC"] = 99

	second, _ := repo.GetByLeague(context.Background(), "PL")
	if second["Arsenal FC"] != 19 {
		t.Fatalf("expected stored table to be unaffected by caller mutation, got %d", second["Arsenal FC"])
	}
}

func TestDecodeManualPoints_RejectsBadData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "negative points", raw: `{"PL":{"Arsenal FC":-1}}`},
		{name: "blank key", raw: `{"PL":{" ":3}}`},
		{name: "blank league", raw: `{" ":{"Arsenal FC":3}}`},
		{name: "malformed json", raw: `{"PL":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeManualPoints([]byte(tt.raw))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !IsInvalidManualPoints(err) {
				t.Fatalf("expected invalid manual points mark, got %v", err)
			}
		})
	}
}
