package catalog

import (
	"sort"
)

// Catalog is an immutable set of question pools keyed by domain.
// It is safe for concurrent reads.
type Catalog struct {
	pools   map[Domain][]Question
	byID    map[string]Question
	domains []Domain
	total   int
}

// New validates pools and builds a Catalog from a private copy of them.
// Returns a *ConfigurationError if the pools fail any integrity check.
func New(pools map[Domain][]Question) (*Catalog, error) {
	if err := validatePools(pools); err != nil {
		return nil, err
	}
	if err := ValidateSchema(pools); err != nil {
		return nil, err
	}

	c := &Catalog{
		pools: make(map[Domain][]Question, len(pools)),
		byID:  make(map[string]Question),
	}
	for d, pool := range pools {
		copied := make([]Question, len(pool))
		for i, q := range pool {
			copied[i] = q.clone()
			c.byID[q.ID] = copied[i]
		}
		c.pools[d] = copied
		c.domains = append(c.domains, d)
		c.total += len(pool)
	}
	sort.Slice(c.domains, func(i, j int) bool { return c.domains[i] < c.domains[j] })
	return c, nil
}

// Pool returns the questions of a domain in pool order.
// Unknown domains yield an empty slice.
func (c *Catalog) Pool(d Domain) []Question {
	pool := c.pools[d]
	out := make([]Question, len(pool))
	for i, q := range pool {
		out[i] = q.clone()
	}
	return out
}

// Domains returns all domains, sorted by name.
func (c *Catalog) Domains() []Domain {
	return append([]Domain(nil), c.domains...)
}

// Total returns the number of questions across all pools.
func (c *Catalog) Total() int {
	return c.total
}

// Lookup returns the question with the given ID from any pool.
func (c *Catalog) Lookup(id string) (Question, bool) {
	q, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return q.clone(), true
}

// Validate re-runs the integrity checks on the catalog's own pools.
func (c *Catalog) Validate() error {
	if err := validatePools(c.pools); err != nil {
		return err
	}
	return ValidateSchema(c.pools)
}
