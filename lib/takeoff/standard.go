package takeoff

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/pricing"
	"github.com/pescuma/takeoff/lib/systems"
)

// StandardEngine produces a full material takeoff from measurements and the
// selected system's rules catalog. One Compute call is one pass: sections
// run in a fixed order and later sections may consume quantities recorded
// by earlier ones.
type StandardEngine struct {
	resolver *pricing.Resolver
}

func NewStandardEngine(resolver *pricing.Resolver) *StandardEngine {
	return &StandardEngine{
		resolver: resolver,
	}
}

func (e *StandardEngine) Compute(name string, m *model.Measurements) *model.Estimate {
	result := model.NewEstimate(name)
	result.Warnings = ValidateMeasurements(m)

	sys := systems.ForType(m.System)
	pass := systems.NewPassState()
	pools := map[model.BidGroup]float64{}

	result.Measurements = echo(m, sys)

	e.computeAreaItems(result, m, sys, pass, pools)
	e.computeLinearItems(result, m, sys, pass, pools)
	e.computeUnitItems(result, m, sys, pass, pools)
	e.computeWoodItems(result, m, pass, pools)
	e.computeConsumables(result, m, sys, pass, pools)
	e.computeAddenda(result, m, sys, pass, pools)

	result.Labor = computeLabor(m)
	result.BidSummary = ComposeBid(sys, pools, m.ComputedRoofArea())

	for _, i := range result.ManualPricingGaps() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no price found for '%v' (%v): listed at $0, needs manual pricing", i.Name, i.PricingKey))
	}

	return result
}

func echo(m *model.Measurements, sys *systems.System) model.MeasurementsEcho {
	return model.MeasurementsEcho{
		TotalRoofAreaSqft: m.ComputedRoofArea(),
		PerimeterLf:       m.PerimeterLf,
		ParapetLengthLf:   m.ComputedParapetLength(),
		ParapetHeightFt:   m.ParapetHeightFt,
		TaperedAreaSqft:   m.EffectiveTaperedArea(),
		BallastAreaSqft:   m.EffectiveBallastArea(),
		StripAreaSqft:     m.ComputedStripAreaSqft(),
		MetalAreaSqft:     m.ComputedMetalAreaSqft(),
		TotalPenetrations: m.TotalPenetrations(),
		System:            sys.Type,
		SystemName:        sys.Meta.DisplayName,
		SpecRef:           sys.Meta.SpecRef,
	}
}

func (e *StandardEngine) computeAreaItems(result *model.Estimate, m *model.Measurements,
	sys *systems.System, pass *systems.PassState, pools map[model.BidGroup]float64,
) {
	for _, layer := range sys.AreaLayers {
		if !systems.Included(m.Toggles, layer.Category) {
			continue
		}

		base := areaFor(m, layer.Source)
		if base <= 0 {
			continue
		}

		qty := math.Ceil(base * (1 + layer.WastePct) / layer.SqftPerUnit)

		item := e.newItem(layer.Name, layer.PricingKey, model.CategoryArea, layer.Group, base, layer.WastePct, qty, layer.Unit)
		if layer.Source == systems.FromBallastArea && sys.Meta.IncludeBallastNote {
			item.Note = ballastNote
		}

		pass.Record(layer.PricingKey, qty)
		pools[layer.Group] += item.LineCost
		result.AreaItems = append(result.AreaItems, item)
	}
}

const ballastNote = "ballast stone supply and placement by others, coordinate on site"

func areaFor(m *model.Measurements, src systems.AreaSource) float64 {
	switch src {
	case systems.FromTaperedArea:
		return m.EffectiveTaperedArea()
	case systems.FromBallastArea:
		return m.EffectiveBallastArea()
	default:
		return m.ComputedRoofArea()
	}
}

func (e *StandardEngine) computeLinearItems(result *model.Estimate, m *model.Measurements,
	sys *systems.System, pass *systems.PassState, pools map[model.BidGroup]float64,
) {
	for _, li := range sys.LinearItems {
		base := m.ComputedParapetLength()
		if li.Source == systems.FromPerimeter {
			base = m.PerimeterLf
		}
		if base <= 0 {
			continue
		}

		qty := math.Ceil(base * (1 + li.WastePct) / li.LfPerUnit)

		item := e.newItem(li.Name, li.PricingKey, model.CategoryLinear, li.Group, base, li.WastePct, qty, li.Unit)

		pass.Record(li.PricingKey, qty)
		pools[li.Group] += item.LineCost
		result.LinearItems = append(result.LinearItems, item)
	}

	e.computeStripping(result, m, sys, pass, pools)
}

// computeStripping turns the perimeter wall conditions into membrane strip
// and coated metal lines. It runs off the girth formulas, so the itemized
// sections drive it when present and the scalar parapet otherwise.
func (e *StandardEngine) computeStripping(result *model.Estimate, m *model.Measurements,
	sys *systems.System, pass *systems.PassState, pools map[model.BidGroup]float64,
) {
	stripArea := m.ComputedStripAreaSqft()
	if stripArea > 0 {
		cov, ok := pricing.CoverageFor(sys.StripKey)
		perUnit := cov.SqftPerUnit
		if !ok || perUnit <= 0 {
			perUnit = 100
		}

		wastePct := 0.15
		qty := math.Ceil(stripArea * (1 + wastePct) / perUnit)

		item := e.newItem("Perimeter Stripping Membrane", sys.StripKey, model.CategoryLinear,
			model.GroupFlashing, stripArea, wastePct, qty, cov.Unit)

		pass.Record(sys.StripKey, qty)
		pools[model.GroupFlashing] += item.LineCost
		result.LinearItems = append(result.LinearItems, item)
	}

	sheets := lo.SumBy(m.PerimeterSections, func(s *model.PerimeterSection) int { return s.MetalSheetCount() })
	if sheets > 0 {
		item := e.newItem("Coated Metal Sheets (4'x10', cap and counter flashing)", "Coated_Metal_Sheet",
			model.CategoryLinear, model.GroupFlashing, float64(sheets), 0, float64(sheets), "sheet (4'x10')")

		pass.Record("Coated_Metal_Sheet", float64(sheets))
		pools[model.GroupFlashing] += item.LineCost
		result.LinearItems = append(result.LinearItems, item)
	}

	curbFlashing := lo.SumBy(m.Curbs, func(c *model.CurbDetail) float64 { return c.FlashingAreaSqft() })
	if curbFlashing > 0 {
		cov, _ := pricing.CoverageFor(sys.StripKey)
		perUnit := cov.SqftPerUnit
		if perUnit <= 0 {
			perUnit = 100
		}

		wastePct := 0.15
		qty := math.Ceil(curbFlashing * (1 + wastePct) / perUnit)

		item := e.newItem("Curb Flashing Membrane", sys.StripKey, model.CategoryLinear,
			model.GroupMechanical, curbFlashing, wastePct, qty, cov.Unit)

		pass.Record(sys.StripKey, qty)
		pools[model.GroupMechanical] += item.LineCost
		result.LinearItems = append(result.LinearItems, item)
	}
}

func (e *StandardEngine) computeUnitItems(result *model.Estimate, m *model.Measurements,
	sys *systems.System, pass *systems.PassState, pools map[model.BidGroup]float64,
) {
	for _, ui := range sys.UnitItems {
		count := m.CountFor(ui.Attr)
		if count <= 0 {
			continue
		}

		qty := count * float64(ui.Multiplier)

		item := e.newItem(ui.Name, ui.PricingKey, model.CategoryUnit, ui.Group, count, 0, qty, ui.Unit)

		pass.Record(ui.PricingKey, qty)
		pools[ui.Group] += item.LineCost
		result.UnitItems = append(result.UnitItems, item)
	}
}

func (e *StandardEngine) computeWoodItems(result *model.Estimate, m *model.Measurements,
	pass *systems.PassState, pools map[model.BidGroup]float64,
) {
	add := func(name, key string, qty float64, unit string) {
		if qty <= 0 {
			return
		}

		item := e.newItem(name, key, model.CategoryWood, model.GroupFlashing, qty, 0, qty, unit)

		pass.Record(key, qty)
		pools[model.GroupFlashing] += item.LineCost
		result.WoodItems = append(result.WoodItems, item)
	}

	for _, w := range m.WoodWork {
		add(w.Name+" - vertical framing (SPF 2x)", "Wood_Blocking_Lumber", float64(w.VerticalPieces()), "8ft piece")
		add(w.Name+" - horizontal blocking (SPF 2x)", "Wood_Blocking_Lumber", float64(w.HorizontalPieces()), "8ft piece")
		add(w.Name+" - plywood sheathing", "Plywood_Sheathing", float64(w.PlywoodSheets()), "4'x8' sheet")
	}

	for _, b := range m.BattInsulation {
		add(b.Name+" - batt insulation", "Batt_Insulation", float64(b.Bundles()), "bundle")
	}
}

func (e *StandardEngine) computeConsumables(result *model.Estimate, m *model.Measurements,
	sys *systems.System, pass *systems.PassState, pools map[model.BidGroup]float64,
) {
	area := m.ComputedRoofArea()
	if area <= 0 {
		return
	}

	for _, c := range sys.Consumables {
		qty := math.Ceil(area / 1000 * c.RatePer1000)
		if qty <= 0 {
			continue
		}

		item := e.newItem(c.Name, c.PricingKey, model.CategoryConsumable, c.Group, area, 0, qty, c.Unit)

		pass.Record(c.PricingKey, qty)
		pools[c.Group] += item.LineCost
		result.Consumables = append(result.Consumables, item)
	}
}

// computeAddenda runs last: the formulas may read any quantity recorded by
// the earlier sections.
func (e *StandardEngine) computeAddenda(result *model.Estimate, m *model.Measurements,
	sys *systems.System, pass *systems.PassState, pools map[model.BidGroup]float64,
) {
	for _, a := range sys.Addenda {
		qty := a.Quantity(m, pass)
		if qty <= 0 {
			continue
		}

		item := e.newItem(a.Name, a.PricingKey, model.CategoryConsumable, a.Group, qty, 0, qty, a.Unit)

		pass.Record(a.PricingKey, qty)
		pools[a.Group] += item.LineCost
		result.Consumables = append(result.Consumables, item)
	}
}

func (e *StandardEngine) newItem(name, key string, cat model.LineCategory, group model.BidGroup,
	base, wastePct, qty float64, unit string,
) *model.LineItem {
	price, found := e.resolver.Price(key)

	item := &model.LineItem{
		Name:         name,
		PricingKey:   key,
		Category:     cat,
		BidGroup:     group,
		BaseQuantity: base,
		WastePct:     wastePct,
		Quantity:     qty,
		Unit:         unit,
		UnitPrice:    price,
		LineCost:     qty * price,
	}

	if !found {
		item.AddWarning("pricing key not found in any catalog")
	}

	return item
}

func computeLabor(m *model.Measurements) model.LaborSummary {
	return model.LaborSummary{
		CurbHours:      lo.SumBy(m.Curbs, func(c *model.CurbDetail) float64 { return c.LaborHours() }),
		VentHours:      lo.SumBy(m.Vents, func(v *model.VentItem) float64 { return v.TotalHours() }),
		PerimeterHours: lo.SumBy(m.PerimeterSections, func(s *model.PerimeterSection) float64 { return s.InstallHours(m.Modifiers) }),
	}
}
