package systems

import (
	"github.com/pescuma/takeoff/lib/model"
)

// AreaSource selects which measured area drives an area layer.
type AreaSource int

const (
	FromRoofArea AreaSource = iota
	FromTaperedArea
	FromBallastArea
)

// LengthSource selects which measured length drives a linear item.
type LengthSource int

const (
	FromParapet LengthSource = iota
	FromPerimeter
)

// MaterialCategory classifies layers for the boolean toggles. Assigned at
// catalog definition time; the engines never inspect key strings for this.
type MaterialCategory int

const (
	CatMembrane MaterialCategory = iota
	CatVapourBarrier
	CatInsulation
	CatTaperedInsulation
	CatCoverboard
	CatDrainage
	CatAccessory
)

// Included evaluates a category against the request's toggles. Categories
// without a toggle are always included.
func Included(t model.MaterialToggles, c MaterialCategory) bool {
	switch c {
	case CatVapourBarrier:
		return t.VapourBarrier
	case CatInsulation:
		return t.Insulation
	case CatTaperedInsulation:
		return t.TaperedInsulation
	case CatCoverboard:
		return t.Coverboard
	case CatDrainage:
		return t.Drainage
	default:
		return true
	}
}

// AreaLayer is one sqft-driven material layer of a system build-up.
type AreaLayer struct {
	Name        string
	PricingKey  string
	Unit        string
	SqftPerUnit float64
	Source      AreaSource
	WastePct    float64
	Group       model.BidGroup
	Category    MaterialCategory
}

// LinearItem is one LF-driven material (flashings, blocking, sheathing).
type LinearItem struct {
	Name       string
	PricingKey string
	Unit       string
	LfPerUnit  float64
	Source     LengthSource
	WastePct   float64
	Group      model.BidGroup
}

// UnitItem is one count-driven material.
type UnitItem struct {
	Name       string
	PricingKey string
	Unit       string
	Attr       model.MeasurementAttr
	Multiplier int
	Group      model.BidGroup
}

// Consumable is quantified per 1000 sqft of field area.
type Consumable struct {
	Name        string
	PricingKey  string
	Unit        string
	RatePer1000 float64
	Group       model.BidGroup
}

// Addendum is a bespoke late-pass formula. Addenda run in declaration order
// after every other section and may read quantities computed earlier in the
// same pass, so order matters and is preserved.
type Addendum struct {
	Name       string
	PricingKey string
	Unit       string
	Group      model.BidGroup
	Quantity   func(m *model.Measurements, pass *PassState) float64
}

// PassState carries quantities already computed within one takeoff pass,
// keyed by pricing key.
type PassState struct {
	units map[string]float64
}

func NewPassState() *PassState {
	return &PassState{
		units: map[string]float64{},
	}
}

func (s *PassState) Record(pricingKey string, qty float64) {
	s.units[pricingKey] += qty
}

func (s *PassState) Units(pricingKey string) float64 {
	return s.units[pricingKey]
}

// Meta is display and bid-composition metadata for a system.
type Meta struct {
	DisplayName string
	SpecRef     string

	LabourMultiplier     float64
	LabourNote           string
	MechanicalMultiplier float64
	GeneralReqsPct       float64

	IncludeBallastNote bool
}

// System is the full rules catalog for one roof assembly family.
type System struct {
	Type model.SystemType
	Meta Meta

	AreaLayers  []AreaLayer
	LinearItems []LinearItem
	UnitItems   []UnitItem
	Consumables []Consumable
	Addenda     []Addendum

	// membrane used when stripping in perimeter sections
	StripKey string

	PipeSealKey  string
	PipeSealName string
}

// ForType returns the system catalog, falling back to SBS for unknown types
// the same way unknown toggles degrade instead of failing.
func ForType(t model.SystemType) *System {
	for _, s := range All() {
		if s.Type == t {
			return s
		}
	}

	return All()[0]
}
