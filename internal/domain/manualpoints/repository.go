package manualpoints

import "context"

// Repository serves the curated points table of a league. Unknown leagues
// yield an empty table.
type Repository interface {
	GetByLeague(ctx context.Context, leagueCode string) (Table, error)
	Leagues(ctx context.Context) ([]string, error)
}
