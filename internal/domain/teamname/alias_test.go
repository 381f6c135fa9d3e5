package teamname

import (
	"sort"
	"testing"
)

func TestNewAliasTable_ResolveOneHop(t *testing.T) {
	t.Parallel()

	table := NewAliasTable([]AliasPair{
		{From: "Man City", To: "Manchester City"},
		{From: "Koln", To: "FC Cologne"},
	})

	if got := table.Resolve("man city"); got != "manchester city" {
		t.Fatalf("unexpected alias target: %q", got)
	}
	if got := table.Resolve("manchester city"); got != "manchester city" {
		t.Fatalf("expected identity fallback, got %q", got)
	}
	if got := table.Canonical("KÖLN"); got != "fc cologne" {
		t.Fatalf("unexpected canonical key: %q", got)
	}
}

func TestNewAliasTable_FlagsDuplicateSources(t *testing.T) {
	t.Parallel()

	table := NewAliasTable([]AliasPair{
		{From: "Inter", To: "Internazionale"},
		{From: "inter", To: "Inter Milan"},
	})

	dups := table.Duplicates()
	if len(dups) != 1 {
		t.Fatalf("expected one duplicate, got %d", len(dups))
	}
	if dups[0].Key != "inter" || dups[0].Previous != "internazionale" || dups[0].Current != "inter milan" {
		t.Fatalf("unexpected duplicate record: %+v", dups[0])
	}
	if got := table.Resolve("inter"); got != "inter milan" {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestNewAliasTable_SkipsIdentityPairs(t *testing.T) {
	t.Parallel()

	table := NewAliasTable([]AliasPair{
		{From: "AS Monaco FC", To: "Monaco"},
		{From: "", To: "Monaco"},
	})
	if table.Len() != 0 {
		t.Fatalf("expected identity and empty pairs to be skipped, got %d entries", table.Len())
	}
}

func TestNilAliasTable_IsIdentity(t *testing.T) {
	t.Parallel()

	var table *AliasTable
	if got := table.Canonical("Man City"); got != "man city" {
		t.Fatalf("unexpected canonical key from nil table: %q", got)
	}
}

func TestDefaultAliases_NoDuplicatesOrIdentityPairs(t *testing.T) {
	t.Parallel()

	pairs := DefaultAliases()
	table := NewAliasTable(pairs)

	if dups := table.Duplicates(); len(dups) > 0 {
		t.Fatalf("duplicate alias sources: %+v", dups)
	}
	if table.Len() != len(pairs) {
		t.Fatalf("expected every alias pair to be kept, pairs=%d entries=%d", len(pairs), table.Len())
	}
}

func TestDefaultAliases_NoChaining(t *testing.T) {
	t.Parallel()

	chained := DefaultAliasTable().Chained()
	sort.Strings(chained)
	if len(chained) > 0 {
		t.Fatalf("alias targets must not be alias sources: %v", chained)
	}
}

func TestDefaultAliasTable_KnownRoutes(t *testing.T) {
	t.Parallel()

	table := DefaultAliasTable()
	tests := []struct {
		from string
		to   string
	}{
		{from: "Man City", to: "Manchester City FC"},
		{from: "Atletico Madrid", to: "Club Atlético de Madrid"},
		{from: "Internazionale", to: "FC Internazionale Milano"},
		{from: "Borussia Monchengladbach", to: "Borussia Mönchengladbach"},
		{from: "Brighton Hove Albion", to: "Brighton & Hove Albion FC"},
		{from: "St Pauli", to: "FC St. Pauli 1910"},
		{from: "Le Havre", to: "Le Havre AC"},
	}

	for _, tt := range tests {
		if table.Canonical(tt.from) != table.Canonical(tt.to) {
			t.Fatalf("expected %q and %q to share a canonical key, got %q and %q",
				tt.from, tt.to, table.Canonical(tt.from), table.Canonical(tt.to))
		}
	}
}
