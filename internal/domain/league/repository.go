package league

import "context"

// Repository lists the competitions the service answers for.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByCode(ctx context.Context, leagueCode string) (League, bool, error)
}
