package leaguestanding

import "context"

// Provider fetches the current standings straight from the data provider.
type Provider interface {
	FetchStandings(ctx context.Context, leagueCode string) ([]Standing, error)
}

// Repository serves standings tables, possibly from cache.
type Repository interface {
	ListByLeague(ctx context.Context, leagueCode string) (Table, error)
}
