package fixture

import (
	"testing"
	"time"
)

func TestForTeam(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 10, 18, 14, 30, 0, 0, time.UTC)
	m := Match{
		ID:              537001,
		CompetitionCode: "PL",
		CompetitionName: "Premier League",
		Matchday:        8,
		KickoffAt:       kickoff,
		HomeTeam:        TeamRef{ID: 65, Name: "Manchester City FC", Crest: "https://crests.example/65.png"},
		AwayTeam:        TeamRef{ID: 57, Name: "Arsenal FC", Crest: "https://crests.example/57.png"},
	}

	home := ForTeam(m, 65)
	if !home.Home || home.Opponent != "Arsenal FC" || home.OpponentLogo != "https://crests.example/57.png" {
		t.Fatalf("unexpected home fixture: %+v", home)
	}
	away := ForTeam(m, 57)
	if away.Home || away.Opponent != "Manchester City FC" {
		t.Fatalf("unexpected away fixture: %+v", away)
	}
	if away.Date() != "2026-10-18" || away.Time() != "14:30" {
		t.Fatalf("unexpected date/time: %s %s", away.Date(), away.Time())
	}
	if away.Gameweek != 8 || away.CompetitionCode != "PL" {
		t.Fatalf("unexpected gameweek/competition: %+v", away)
	}

	unknown := ForTeam(Match{ID: 1, HomeTeam: TeamRef{ID: 65}}, 65)
	if unknown.Opponent != "Unknown" {
		t.Fatalf("expected Unknown opponent, got %q", unknown.Opponent)
	}
	if unknown.Date() != "" || unknown.Time() != "" {
		t.Fatalf("expected empty date/time for unknown kickoff")
	}
}

func TestSelectUpcoming(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	at := func(days int) time.Time { return now.Add(time.Duration(days) * 24 * time.Hour) }
	matches := []Match{
		{ID: 1, CompetitionCode: "PL", KickoffAt: at(-7), HomeTeam: TeamRef{ID: 65}, AwayTeam: TeamRef{ID: 1}},
		{ID: 2, CompetitionCode: "CL", KickoffAt: at(3), HomeTeam: TeamRef{ID: 65}, AwayTeam: TeamRef{ID: 2}},
		{ID: 3, CompetitionCode: "PL", KickoffAt: at(14), HomeTeam: TeamRef{ID: 3}, AwayTeam: TeamRef{ID: 65}},
		{ID: 4, CompetitionCode: "PL", KickoffAt: at(7), HomeTeam: TeamRef{ID: 65}, AwayTeam: TeamRef{ID: 4}},
		{ID: 5, CompetitionCode: "PL", KickoffAt: at(21), HomeTeam: TeamRef{ID: 65}, AwayTeam: TeamRef{ID: 5}},
		{ID: 6, CompetitionCode: "PL", KickoffAt: at(28), HomeTeam: TeamRef{ID: 65}, AwayTeam: TeamRef{ID: 6}},
		{ID: 7, CompetitionCode: "PL", KickoffAt: at(35), HomeTeam: TeamRef{ID: 65}, AwayTeam: TeamRef{ID: 7}},
		{ID: 8, CompetitionCode: "PL", KickoffAt: at(42), HomeTeam: TeamRef{ID: 65}, AwayTeam: TeamRef{ID: 8}},
		{ID: 0, CompetitionCode: "PL", KickoffAt: at(1)},
	}

	got := SelectUpcoming(matches, 65, "pl", now, 5)
	wantIDs := []int64{4, 3, 5, 6, 7}
	if len(got) != len(wantIDs) {
		t.Fatalf("unexpected fixture count: got=%d want=%d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("fixture[%d] id=%d want=%d", i, got[i].ID, id)
		}
	}

	all := SelectUpcoming(matches, 65, "", now, 2)
	if len(all) != 2 || all[0].ID != 2 || all[1].ID != 4 {
		t.Fatalf("unexpected unfiltered selection: %+v", all)
	}
}

func TestSelectUpcoming_FilterFallbackAndPastOnly(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	matches := []Match{
		{ID: 10, CompetitionCode: "PL", KickoffAt: now.Add(-48 * time.Hour), HomeTeam: TeamRef{ID: 65}},
		{ID: 11, CompetitionCode: "PL", KickoffAt: now.Add(-72 * time.Hour), HomeTeam: TeamRef{ID: 65}},
		{ID: 12, CompetitionCode: "PL", HomeTeam: TeamRef{ID: 65}},
	}

	got := SelectUpcoming(matches, 65, "BL1", now, 5)
	if len(got) != 2 {
		t.Fatalf("expected fallback to all dated matches, got %d", len(got))
	}
	if got[0].ID != 11 || got[1].ID != 10 {
		t.Fatalf("expected ascending kickoff order, got %d then %d", got[0].ID, got[1].ID)
	}

	if out := SelectUpcoming(matches, 65, "", now, 0); len(out) != 0 {
		t.Fatalf("expected no fixtures for zero limit")
	}
}
