package fixture

import "context"

// Provider fetches a team's matches from the data provider.
type Provider interface {
	FetchTeamMatches(ctx context.Context, teamID int64) ([]Match, error)
}

// Repository describes fixture lookups needed by use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID int64) (Schedule, error)
}
