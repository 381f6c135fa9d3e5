package manualpoints

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/fixture-compare/internal/domain/teamname"
)

// Table maps a team display name, as written by the people curating the
// data, to its points total.
type Table map[string]int

// Match is a successful manual lookup.
type Match struct {
	Key    string
	Points int
	Tier   Tier
}

// Tier tells which comparison produced a manual match.
type Tier string

const (
	TierExact      Tier = "exact"
	TierNormalized Tier = "normalized"
	TierAliased    Tier = "aliased"
	TierCanonical  Tier = "canonical"
)

func (t Table) Validate() error {
	for key, points := range t {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("manual points key is empty")
		}
		if points < 0 {
			return fmt.Errorf("manual points for %q must be >= 0, got %d", key, points)
		}
	}
	return nil
}

// Keys returns the table keys in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (t Table) Clone() Table {
	out := make(Table, len(t))
	for key, points := range t {
		out[key] = points
	}
	return out
}

// Lookup resolves teamName against the table. The exact string is tried
// first, then the normalized forms of both sides, then the alias target of
// the query, and finally the alias targets of both sides.
func (t Table) Lookup(teamName string, aliases *teamname.AliasTable) (Match, bool) {
	if len(t) == 0 {
		return Match{}, false
	}

	if points, ok := t[teamName]; ok {
		return Match{Key: teamName, Points: points, Tier: TierExact}, true
	}
	trimmed := strings.TrimSpace(teamName)
	if points, ok := t[trimmed]; ok {
		return Match{Key: trimmed, Points: points, Tier: TierExact}, true
	}

	query := teamname.Normalize(teamName)
	if query == "" {
		return Match{}, false
	}

	keys := t.Keys()
	normalized := make([]string, len(keys))
	for i, key := range keys {
		normalized[i] = teamname.Normalize(key)
	}

	for i, key := range keys {
		if normalized[i] == query {
			return Match{Key: key, Points: t[key], Tier: TierNormalized}, true
		}
	}

	aliased := aliases.Resolve(query)
	if aliased != query {
		for i, key := range keys {
			if normalized[i] == aliased {
				return Match{Key: key, Points: t[key], Tier: TierAliased}, true
			}
		}
	}

	for i, key := range keys {
		if aliases.Resolve(normalized[i]) == aliased {
			return Match{Key: key, Points: t[key], Tier: TierCanonical}, true
		}
	}

	return Match{}, false
}
