package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fixture-compare/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	orders []string
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		code := league.NormalizeCode(l.Code)
		if _, exists := items[code]; !exists {
			orders = append(orders, code)
		}
		l.Code = code
		items[code] = l
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, code := range r.orders {
		out = append(out, r.items[code])
	}

	return out, nil
}

func (r *LeagueRepository) GetByCode(_ context.Context, leagueCode string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[league.NormalizeCode(leagueCode)]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}
