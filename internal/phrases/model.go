package phrases

import "sort"

// Reserved pool keys. Any other key names a player.
const (
	CategoryAll           = "all"
	CategoryParameterized = "parameterized"
	CategoryRandoms       = "randoms"
)

// Placeholder is replaced by another player's name in parameterized phrases.
const Placeholder = "{}"

// Pool maps a category key to its ordered phrases.
// A Pool is read-only once loaded; Category hands out copies.
type Pool struct {
	categories map[string][]string
}

// NewPool copies the given mapping into a Pool.
func NewPool(m map[string][]string) Pool {
	c := make(map[string][]string, len(m))
	for k, v := range m {
		c[k] = append([]string(nil), v...)
	}
	return Pool{categories: c}
}

// Category returns a copy of the phrases stored under key, or nil.
func (p Pool) Category(key string) []string {
	v, ok := p.categories[key]
	if !ok {
		return nil
	}
	return append([]string(nil), v...)
}

func (p Pool) Has(key string) bool {
	_, ok := p.categories[key]
	return ok
}

// Keys returns the category keys in sorted order.
func (p Pool) Keys() []string {
	keys := make([]string, 0, len(p.categories))
	for k := range p.categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Counts reports the number of phrases per category.
func (p Pool) Counts() map[string]int {
	out := make(map[string]int, len(p.categories))
	for k, v := range p.categories {
		out[k] = len(v)
	}
	return out
}

// IsReserved reports whether key is one of the shared categories.
func IsReserved(key string) bool {
	switch key {
	case CategoryAll, CategoryParameterized, CategoryRandoms:
		return true
	}
	return false
}
