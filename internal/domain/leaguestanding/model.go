package leaguestanding

import (
	"time"

	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
	"github.com/riskibarqy/fixture-compare/internal/domain/teamname"
)

// TeamRef is the provider's view of the club on a table row.
type TeamRef struct {
	ID        int64
	Name      string
	ShortName string
	TLA       string
	Crest     string
}

// Standing represents a league table row for one team.
type Standing struct {
	LeagueCode     string
	Position       int
	Team           TeamRef
	Played         int
	Won            int
	Draw           int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
}

// Table is one league's standings together with how it was served.
type Table struct {
	LeagueCode   string
	Rows         []Standing
	Status       provider.CacheStatus
	FetchedAt    time.Time
	RefreshError string
}

func (t Table) FromCache() bool {
	return t.Status.FromCache()
}

// FindByTeamName returns the first row whose team name resolves to the same
// canonical key as teamName.
func FindByTeamName(rows []Standing, teamName string, aliases *teamname.AliasTable) (Standing, bool) {
	key := aliases.Canonical(teamName)
	if key == "" {
		return Standing{}, false
	}

	for _, row := range rows {
		rowKey := teamname.Normalize(row.Team.Name)
		if rowKey == "" {
			continue
		}
		if rowKey == key || aliases.Resolve(rowKey) == key {
			return row, true
		}
	}

	return Standing{}, false
}
