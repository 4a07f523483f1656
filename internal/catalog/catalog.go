// Package catalog derives the queryable surface over the loaded
// dataset: the valid-item listing order, the distinct pantheon and
// stat-key indexes, and the filter engine the browse views run on.
// Indexes are computed once per dataset; the dataset itself never
// changes during a session.
package catalog

import (
	"sort"
	"strings"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
)

// DefaultPageSize caps listings when no text query is active.
const DefaultPageSize = 20

// Catalog holds the dataset plus its derived indexes.
type Catalog struct {
	// PageSize caps query-less listings. Defaults to DefaultPageSize.
	PageSize int

	gods      []models.God
	items     []models.Item // valid items, listing order
	corpus    []models.Item // every loaded item, original order
	pantheons []string
	statKeys  []string
}

// New builds a catalog from the flattened god and item sequences.
func New(gods []models.God, items []models.Item) *Catalog {
	c := &Catalog{
		PageSize: DefaultPageSize,
		gods:     gods,
		corpus:   items,
	}

	for _, it := range items {
		if it.Valid() {
			c.items = append(c.items, it)
		}
	}
	// Case-insensitive by name falling back to internal name; stable
	// so exact ties keep dataset order.
	sort.SliceStable(c.items, func(i, j int) bool {
		return c.items[i].SortKey() < c.items[j].SortKey()
	})

	seen := make(map[string]bool)
	for _, g := range gods {
		if g.Pantheon != "" && !seen[g.Pantheon] {
			seen[g.Pantheon] = true
			c.pantheons = append(c.pantheons, g.Pantheon)
		}
	}
	sort.Strings(c.pantheons)

	keys := make(map[string]bool)
	for _, it := range c.items {
		for k := range it.Stats {
			if !keys[k] {
				keys[k] = true
				c.statKeys = append(c.statKeys, k)
			}
		}
	}
	sort.Strings(c.statKeys)

	return c
}

// Gods returns the flattened god sequence in dataset order.
func (c *Catalog) Gods() []models.God {
	return c.gods
}

// Items returns the valid items in listing order.
func (c *Catalog) Items() []models.Item {
	return c.items
}

// Corpus returns every loaded item, including invalid records, in
// dataset order. This is the name-resolution corpus.
func (c *Catalog) Corpus() []models.Item {
	return c.corpus
}

// Pantheons returns the sorted distinct pantheon values.
func (c *Catalog) Pantheons() []string {
	return c.pantheons
}

// StatKeys returns the sorted distinct stat keys across valid items.
func (c *Catalog) StatKeys() []string {
	return c.statKeys
}

// GodByName returns the god whose name matches case-insensitively.
func (c *Catalog) GodByName(name string) (models.God, bool) {
	for _, g := range c.gods {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return models.God{}, false
}
