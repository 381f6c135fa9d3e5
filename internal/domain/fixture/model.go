package fixture

import (
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusFinished  = "FINISHED"
)

// TeamRef is one side of a provider match.
type TeamRef struct {
	ID    int64
	Name  string
	Crest string
}

// Match is a provider match as returned for a team.
type Match struct {
	ID              int64
	CompetitionCode string
	CompetitionName string
	Matchday        int
	KickoffAt       time.Time
	Status          string
	HomeTeam        TeamRef
	AwayTeam        TeamRef
}

// Fixture is a match seen from one team's perspective.
type Fixture struct {
	ID              int64
	Opponent        string
	OpponentLogo    string
	Home            bool
	KickoffAt       time.Time
	League          string
	CompetitionCode string
	Gameweek        int
}

// Date is the kickoff day in UTC, empty when the kickoff is unknown.
func (f Fixture) Date() string {
	if f.KickoffAt.IsZero() {
		return ""
	}
	return f.KickoffAt.UTC().Format(time.DateOnly)
}

// Time is the kickoff time in UTC as HH:MM, empty when the kickoff is unknown.
func (f Fixture) Time() string {
	if f.KickoffAt.IsZero() {
		return ""
	}
	return f.KickoffAt.UTC().Format("15:04")
}

// Schedule is a team's match list together with how it was served.
type Schedule struct {
	TeamID       int64
	Matches      []Match
	Status       provider.CacheStatus
	FetchedAt    time.Time
	RefreshError string
}

// ForTeam maps a match to the given team's point of view.
func ForTeam(m Match, teamID int64) Fixture {
	home := m.HomeTeam.ID == teamID
	opponent := m.HomeTeam
	if home {
		opponent = m.AwayTeam
	}

	name := strings.TrimSpace(opponent.Name)
	if name == "" {
		name = "Unknown"
	}

	return Fixture{
		ID:              m.ID,
		Opponent:        name,
		OpponentLogo:    opponent.Crest,
		Home:            home,
		KickoffAt:       m.KickoffAt,
		League:          m.CompetitionName,
		CompetitionCode: m.CompetitionCode,
		Gameweek:        m.Matchday,
	}
}

// SelectUpcoming picks up to limit fixtures for a team.
//
// Matches are first narrowed to competitionCode when given; if that leaves
// nothing the full list is used. Fixtures kicking off at or after now are
// preferred in ascending order, otherwise the earliest known fixtures are returned.
func SelectUpcoming(matches []Match, teamID int64, competitionCode string, now time.Time, limit int) []Fixture {
	if limit <= 0 {
		return []Fixture{}
	}

	all := make([]Fixture, 0, len(matches))
	for _, m := range matches {
		if m.ID <= 0 {
			continue
		}
		all = append(all, ForTeam(m, teamID))
	}

	candidates := all
	if code := strings.TrimSpace(competitionCode); code != "" {
		filtered := make([]Fixture, 0, len(all))
		for _, item := range all {
			if strings.EqualFold(item.CompetitionCode, code) {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	dated := make([]Fixture, 0, len(candidates))
	for _, item := range candidates {
		if !item.KickoffAt.IsZero() {
			dated = append(dated, item)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].KickoffAt.Before(dated[j].KickoffAt)
	})

	upcoming := make([]Fixture, 0, limit)
	for _, item := range dated {
		if item.KickoffAt.Before(now) {
			continue
		}
		upcoming = append(upcoming, item)
		if len(upcoming) == limit {
			break
		}
	}
	if len(upcoming) > 0 {
		return upcoming
	}

	if len(dated) > limit {
		dated = dated[:limit]
	}
	return dated
}
