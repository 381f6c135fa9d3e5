package teamname

import "sync"

// AliasPair maps a human readable name variant to the canonical name it
// should be compared as.
type AliasPair struct {
	From string
	To   string
}

// Duplicate records an alias source that was declared more than once.
type Duplicate struct {
	Key      string
	Previous string
	Current  string
}

// AliasTable is an immutable one-hop mapping between normalized keys.
type AliasTable struct {
	targets    map[string]string
	duplicates []Duplicate
}

func NewAliasTable(pairs []AliasPair) *AliasTable {
	table := &AliasTable{targets: make(map[string]string, len(pairs))}
	for _, pair := range pairs {
		from := Normalize(pair.From)
		to := Normalize(pair.To)
		if from == "" || to == "" || from == to {
			continue
		}
		if previous, exists := table.targets[from]; exists {
			table.duplicates = append(table.duplicates, Duplicate{Key: from, Previous: previous, Current: to})
		}
		table.targets[from] = to
	}

	return table
}

// Resolve returns the alias target for an already normalized key, or the key
// itself when no alias exists.
func (t *AliasTable) Resolve(key string) string {
	if t == nil {
		return key
	}
	if target, ok := t.targets[key]; ok {
		return target
	}
	return key
}

// Canonical normalizes a raw name and resolves it through the table.
func (t *AliasTable) Canonical(name string) string {
	return t.Resolve(Normalize(name))
}

func (t *AliasTable) Has(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.targets[key]
	return ok
}

func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.targets)
}

// Duplicates lists sources that were overwritten while building the table.
func (t *AliasTable) Duplicates() []Duplicate {
	if t == nil {
		return nil
	}
	return append([]Duplicate(nil), t.duplicates...)
}

// Chained lists sources whose target is itself an alias source.
func (t *AliasTable) Chained() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0)
	for from, to := range t.targets {
		if _, ok := t.targets[to]; ok {
			out = append(out, from)
		}
	}
	return out
}

var defaultAliasTable = sync.OnceValue(func() *AliasTable {
	return NewAliasTable(DefaultAliases())
})

// DefaultAliasTable returns the process wide table built from DefaultAliases.
func DefaultAliasTable() *AliasTable {
	return defaultAliasTable()
}
