package memory

import (
	"context"
	_ "embed"
	"sort"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/manualpoints"
)

//go:embed manual_points.json
var manualPointsJSON []byte

var errInvalidManualPoints = crerr.New("invalid manual points data")

// ManualPointsRepository serves curated points tables held in memory.
type ManualPointsRepository struct {
	mu     sync.RWMutex
	tables map[string]manualpoints.Table
}

func NewManualPointsRepository(tables map[string]manualpoints.Table) (*ManualPointsRepository, error) {
	items := make(map[string]manualpoints.Table, len(tables))
	for code, table := range tables {
		normalized := league.NormalizeCode(code)
		if normalized == "" {
			return nil, crerr.Mark(crerr.Newf("manual points league code %q is empty", code), errInvalidManualPoints)
		}
		if err := table.Validate(); err != nil {
			return nil, crerr.Mark(crerr.Wrapf(err, "league %s", normalized), errInvalidManualPoints)
		}
		items[normalized] = table.Clone()
	}

	return &ManualPointsRepository{tables: items}, nil
}

// LoadManualPointsRepository decodes the embedded manual points document.
func LoadManualPointsRepository() (*ManualPointsRepository, error) {
	return DecodeManualPoints(manualPointsJSON)
}

func DecodeManualPoints(raw []byte) (*ManualPointsRepository, error) {
	var tables map[string]manualpoints.Table
	if err := sonic.Unmarshal(raw, &tables); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "decode manual points"), errInvalidManualPoints)
	}
	return NewManualPointsRepository(tables)
}

// IsInvalidManualPoints reports whether err came from bad manual points data.
func IsInvalidManualPoints(err error) bool {
	return crerr.Is(err, errInvalidManualPoints)
}

func (r *ManualPointsRepository) GetByLeague(_ context.Context, leagueCode string) (manualpoints.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.tables[league.NormalizeCode(leagueCode)]
	if !ok {
		return manualpoints.Table{}, nil
	}
	return table.Clone(), nil
}

func (r *ManualPointsRepository) Leagues(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.tables))
	for code := range r.tables {
		out = append(out, code)
	}
	sort.Strings(out)
	return out, nil
}
