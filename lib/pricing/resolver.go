package pricing

// Resolver looks a pricing key up across an ordered list of catalogs and
// returns the first match's average price. A small set of keys carry
// computed overrides instead of a flat lookup.
//
// An unknown key resolves to zero. That is not "free": callers must surface
// it as needing manual pricing.
type Resolver struct {
	catalogs  []*Catalog
	overrides map[string]float64
}

func NewResolver(catalogs []*Catalog, overrides map[string]float64) *Resolver {
	return &Resolver{
		catalogs:  catalogs,
		overrides: overrides,
	}
}

func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultCatalogs(), DefaultOverrides())
}

// Price returns the unit price for a key and whether it was found.
func (r *Resolver) Price(pricingKey string) (float64, bool) {
	if price, ok := r.overrides[pricingKey]; ok {
		return price, true
	}

	for _, c := range r.catalogs {
		if e := c.Get(pricingKey); e != nil {
			return e.AvgPrice, true
		}
	}

	return 0, false
}

// Entry returns the full catalog entry for a key, or nil.
func (r *Resolver) Entry(pricingKey string) *Entry {
	for _, c := range r.catalogs {
		if e := c.Get(pricingKey); e != nil {
			return e
		}
	}

	return nil
}

// SheetOverride prices sheet goods sold by rate x sheet size x thickness.
func SheetOverride(ratePerSqftInch, sheetSqft, thicknessIn float64) float64 {
	return ratePerSqftInch * sheetSqft * thicknessIn
}

func DefaultOverrides() map[string]float64 {
	return map[string]float64{
		// EPS is quoted per sqft per inch of thickness; a 4'x4' sheet at
		// 2.5" comes to $12.40
		"EPS_Insulation_EPDM": SheetOverride(0.31, 16, 2.5),
	}
}
