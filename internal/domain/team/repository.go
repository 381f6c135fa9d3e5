package team

import "context"

// Provider fetches the teams of a league from the data provider.
type Provider interface {
	FetchTeams(ctx context.Context, leagueCode string) ([]Team, error)
}

// Repository describes team lookups needed by use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueCode string) (Listing, error)
}
