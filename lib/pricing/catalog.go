package pricing

import (
	"sort"

	"github.com/samber/lo"
)

// Entry is one priced product. AvgPrice is the aggregated supplier price
// used for takeoffs.
type Entry struct {
	CanonicalName string
	Category      string
	AvgPrice      float64
	Unit          string
}

// Catalog is a read-only named set of pricing entries.
type Catalog struct {
	name    string
	entries map[string]*Entry
}

func NewCatalog(name string, entries map[string]*Entry) *Catalog {
	return &Catalog{
		name:    name,
		entries: entries,
	}
}

func (c *Catalog) Name() string {
	return c.name
}

func (c *Catalog) Get(pricingKey string) *Entry {
	return c.entries[pricingKey]
}

func (c *Catalog) Keys() []string {
	result := lo.Keys(c.entries)
	sort.Strings(result)
	return result
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
