package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/takeoff/lib/pricing"
)

func TestPriceUsesFirstCatalogThatHasTheKey(t *testing.T) {
	t.Parallel()

	first := pricing.NewCatalog("first", map[string]*pricing.Entry{
		"Primer": {CanonicalName: "Primer", Category: "Sealants", AvgPrice: 100, Unit: "Pail"},
	})
	second := pricing.NewCatalog("second", map[string]*pricing.Entry{
		"Primer":     {CanonicalName: "Primer", Category: "Sealants", AvgPrice: 200, Unit: "Pail"},
		"Roof_Drain": {CanonicalName: "Roof Drain", Category: "Drainage", AvgPrice: 180, Unit: "EA"},
	})

	r := pricing.NewResolver([]*pricing.Catalog{first, second}, nil)

	price, ok := r.Price("Primer")
	assert.True(t, ok)
	assert.Equal(t, 100.0, price)

	price, ok = r.Price("Roof_Drain")
	assert.True(t, ok)
	assert.Equal(t, 180.0, price)
}

func TestPriceUnknownKeyIsZeroAndNotFound(t *testing.T) {
	t.Parallel()

	r := pricing.NewDefaultResolver()

	price, ok := r.Price("Unobtainium_Membrane")
	assert.False(t, ok)
	assert.Equal(t, 0.0, price)
}

func TestPriceOverrideWinsOverCatalogs(t *testing.T) {
	t.Parallel()

	r := pricing.NewDefaultResolver()

	price, ok := r.Price("EPS_Insulation_EPDM")
	assert.True(t, ok)
	assert.InDelta(t, 12.40, price, 0.001)
}

func TestSheetOverride(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 12.40, pricing.SheetOverride(0.31, 16, 2.5), 0.001)
}

func TestEntryLookup(t *testing.T) {
	t.Parallel()

	r := pricing.NewDefaultResolver()

	e := r.Entry("Roof_Drain")
	assert.NotNil(t, e)
	assert.Equal(t, "Drainage", e.Category)

	assert.Nil(t, r.Entry("Unobtainium_Membrane"))
}

func TestCoverageScopes(t *testing.T) {
	t.Parallel()

	c, ok := pricing.CoverageFor("Primer")
	assert.True(t, ok)
	assert.Equal(t, pricing.ScopeArea, c.Scope())
	assert.Equal(t, 250.0, c.SqftPerUnit)

	_, ok = pricing.CoverageFor("Unobtainium_Membrane")
	assert.False(t, ok)

	assert.Equal(t, pricing.ScopeDiscrete, pricing.Coverage{Each: true}.Scope())
	assert.Equal(t, pricing.ScopeLinear, pricing.Coverage{LfPerUnit: 10}.Scope())
}
