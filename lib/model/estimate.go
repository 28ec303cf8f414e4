package model

import (
	"time"
)

// BidGroup is the bid form pool a line item's cost lands in.
type BidGroup int

const (
	GroupRoofing BidGroup = iota
	GroupFlashing
	GroupMechanical
	GroupOther
)

func (g BidGroup) String() string {
	switch g {
	case GroupRoofing:
		return "roofing"
	case GroupFlashing:
		return "flashing"
	case GroupMechanical:
		return "mechanical"
	case GroupOther:
		return "other"
	default:
		return "<unknown>"
	}
}

// LineCategory is the takeoff section a line item is listed under.
type LineCategory int

const (
	CategoryArea LineCategory = iota
	CategoryLinear
	CategoryUnit
	CategoryConsumable
	CategoryWood
)

func (c LineCategory) String() string {
	switch c {
	case CategoryArea:
		return "area"
	case CategoryLinear:
		return "linear"
	case CategoryUnit:
		return "unit"
	case CategoryConsumable:
		return "consumable"
	case CategoryWood:
		return "wood"
	default:
		return "<unknown>"
	}
}

// LineItem is one priced row of the takeoff.
type LineItem struct {
	Name       string
	PricingKey string
	Category   LineCategory
	BidGroup   BidGroup

	BaseQuantity float64
	WastePct     float64
	Quantity     float64
	Unit         string
	UnitPrice    float64
	LineCost     float64

	Note     string
	Warnings []string
}

func (i *LineItem) AddWarning(w string) {
	i.Warnings = append(i.Warnings, w)
}

// NeedsManualPricing reports a resolved-to-zero price on a non-zero
// quantity. Callers surface it, never treat the item as free.
func (i *LineItem) NeedsManualPricing() bool {
	return i.Quantity > 0 && i.UnitPrice == 0 && i.Note == ""
}

// MeasurementsEcho is the input summary echoed at the top of an estimate.
type MeasurementsEcho struct {
	TotalRoofAreaSqft float64
	PerimeterLf       float64
	ParapetLengthLf   float64
	ParapetHeightFt   float64
	TaperedAreaSqft   float64
	BallastAreaSqft   float64
	StripAreaSqft     float64
	MetalAreaSqft     float64
	TotalPenetrations int

	System     SystemType
	SystemName string
	SpecRef    string
}

// LaborSummary collects the hour formulas of the itemized sub-entities.
// Hours inform the bid multipliers; they are not priced directly.
type LaborSummary struct {
	CurbHours      float64
	VentHours      float64
	PerimeterHours float64
}

func (l *LaborSummary) Total() float64 {
	return l.CurbHours + l.VentHours + l.PerimeterHours
}

// BidItem is one line of the bid form summary.
type BidItem struct {
	Description     string
	MaterialCost    float64
	LaborMultiplier float64
	EstimatedCost   float64
	Note            string
}

type BidSummary struct {
	GeneralRequirements BidItem
	RoofingAndFlashing  BidItem
	MechanicalSupport   BidItem
	OtherCosts          BidItem

	TotalEstimate float64
	PerSqft       float64
}

// Estimate is the full standard-takeoff output for one request.
type Estimate struct {
	ID        UUID
	Name      string
	CreatedAt time.Time

	Measurements MeasurementsEcho

	AreaItems   []*LineItem
	LinearItems []*LineItem
	UnitItems   []*LineItem
	Consumables []*LineItem
	WoodItems   []*LineItem

	Labor      LaborSummary
	BidSummary BidSummary

	// input validation findings, non-blocking
	Warnings []string
}

func NewEstimate(name string) *Estimate {
	return &Estimate{
		ID:        NewUUID("e"),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// AllItems returns every line item in display order.
func (e *Estimate) AllItems() []*LineItem {
	var result []*LineItem
	result = append(result, e.AreaItems...)
	result = append(result, e.LinearItems...)
	result = append(result, e.UnitItems...)
	result = append(result, e.Consumables...)
	result = append(result, e.WoodItems...)
	return result
}

// ManualPricingGaps lists the items whose price resolved to zero.
func (e *Estimate) ManualPricingGaps() []*LineItem {
	var result []*LineItem

	for _, i := range e.AllItems() {
		if i.NeedsManualPricing() {
			result = append(result, i)
		}
	}

	return result
}
