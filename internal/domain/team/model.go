package team

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
)

// Team is a real football club inside a league.
type Team struct {
	ID         int64
	LeagueCode string
	Name       string
	ShortName  string
	TLA        string
	Crest      string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.LeagueCode == "" {
		return fmt.Errorf("team league code is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// DisplayShortName falls back to the full name when the provider has no short name.
func (t Team) DisplayShortName() string {
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Name
}

// Listing is the set of teams of one league together with how it was served.
type Listing struct {
	LeagueCode   string
	Teams        []Team
	Status       provider.CacheStatus
	FetchedAt    time.Time
	RefreshError string
}
