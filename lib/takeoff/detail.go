package takeoff

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/pricing"
	"github.com/pescuma/takeoff/lib/systems"
)

// DetailEngine prices the detail assemblies the drawing analysis detected,
// layer by layer. It trusts detected quantities in a fixed precision order:
// plan annotations first, then the detail's own scope estimate, then the
// global measurement backing the detail type.
type DetailEngine struct {
	resolver *pricing.Resolver
}

func NewDetailEngine(resolver *pricing.Resolver) *DetailEngine {
	return &DetailEngine{
		resolver: resolver,
	}
}

// defaultLayerWidthIn is assumed for converting between area and linear
// scopes when the drawing gives no cross-sectional width.
const defaultLayerWidthIn = 36.0

func (e *DetailEngine) Compute(a *model.Analysis, m *model.Measurements) *model.DetailTakeoff {
	sys := systems.ForType(m.System)

	result := &model.DetailTakeoff{
		Measurements: echo(m, sys),
		Warnings:     ValidateMeasurements(m),
	}

	planQ := a.PlanQuantities()
	pools := map[model.BidGroup]float64{}
	seenTypes := map[string]string{}

	for _, d := range a.AllDetails() {
		r := e.computeDetail(d, planQ, m)

		// the same assembly is often drawn more than once; the first
		// occurrence in document order carries the cost, the rest are
		// listed as alternatives so nothing is double counted
		if first, ok := seenTypes[d.Type]; ok && d.Type != "" {
			r.Suppressed = true
			r.Cost = 0
			for _, l := range r.Layers {
				l.LineCost = 0
			}
			r.Note = fmt.Sprintf("alternative of '%v', not costed", first)
		} else {
			seenTypes[d.Type] = d.Name
		}

		if !r.Suppressed {
			e.capRunaway(r, m)
			pools[groupForDetailType(d.Type)] += r.Cost
			result.TotalMaterialCost += r.Cost
		}

		result.Details = append(result.Details, r)
		result.Warnings = append(result.Warnings, r.Warnings...)
	}

	result.BidSummary = ComposeBid(sys, pools, m.ComputedRoofArea())

	return result
}

func (e *DetailEngine) computeDetail(d *model.DetailAssembly, planQ map[string]model.PlanQuantity,
	m *model.Measurements,
) *model.DetailResult {
	base, source := resolveQuantity(d, planQ, m)

	result := &model.DetailResult{
		Name:            d.Name,
		Type:            d.Type,
		DrawingRef:      d.DrawingRef,
		MeasurementType: d.MeasurementType,
		BaseQuantity:    base,
		QuantitySource:  source,
	}

	for _, layer := range d.Layers {
		item := e.computeLayer(layer, d.MeasurementType, base)
		result.Cost += item.LineCost
		if item.Warning != "" {
			result.AddWarning(fmt.Sprintf("%v / %v: %v", d.Name, item.Material, item.Warning))
		}
		result.Layers = append(result.Layers, item)
	}

	return result
}

// computeLayer quantifies one material layer. The material's own unit scope
// decides the conversion, not how the parent detail happens to be measured:
// a drain insert nested in a sqft-measured assembly is still one insert.
func (e *DetailEngine) computeLayer(layer *model.MaterialLayer, mt model.MeasurementType,
	base float64,
) *model.DetailLayerItem {
	item := &model.DetailLayerItem{
		Material:   layer.Material,
		PricingKey: layer.PricingKey,
		Notes:      layer.Notes,
	}

	if layer.PricingKey == "" {
		item.Quantity = 0
		item.Unit = "EA"
		item.Warning = "no pricing key suggested, listed unpriced"
		return item
	}

	cov, covKnown := pricing.CoverageFor(layer.PricingKey)
	if !covKnown {
		// an each-measured parent still carries its count; only area and
		// linear scopes collapse to a single assumed unit
		if mt == model.MeasuredEach {
			item.Quantity = math.Max(base, 1)
		} else {
			item.Quantity = 1
		}
		item.Unit = "unit"
		item.Notes = appendNote(item.Notes, "no coverage rate on file, priced per unit")
	} else {
		item.Quantity, item.Unit = layerQuantity(cov, mt, base, layer.WidthIn)
	}

	price, found := e.resolver.Price(layer.PricingKey)
	item.UnitPrice = price
	item.LineCost = item.Quantity * price
	if !found {
		item.Warning = "no price found, listed at $0, needs manual pricing"
	}

	return item
}

func layerQuantity(cov pricing.Coverage, mt model.MeasurementType, base float64, widthIn *float64) (float64, string) {
	width := defaultLayerWidthIn
	if widthIn != nil && *widthIn > 0 {
		width = *widthIn
	}

	switch cov.Scope() {
	case pricing.ScopeDiscrete:
		if mt == model.MeasuredEach {
			return base, cov.Unit
		}
		// discrete hardware inside a field or run detail: one per detail
		return 1, cov.Unit

	case pricing.ScopeArea:
		area := base
		switch mt {
		case model.MeasuredLinearFt:
			area = base * width / model.InchesPerFoot
		case model.MeasuredEach:
			// small allowance per instance rather than field coverage
			return math.Max(base, 1), cov.Unit
		}
		return math.Ceil(area / cov.SqftPerUnit), cov.Unit

	default:
		length := base
		switch mt {
		case model.MeasuredSqft:
			length = base / (width / model.InchesPerFoot)
		case model.MeasuredEach:
			return math.Max(base, 1), cov.Unit
		}
		return math.Ceil(length / cov.LfPerUnit), cov.Unit
	}
}

// resolveQuantity picks the detail's base quantity from the most precise
// source available.
func resolveQuantity(d *model.DetailAssembly, planQ map[string]model.PlanQuantity,
	m *model.Measurements,
) (float64, model.QuantitySource) {
	if q, ok := matchPlanQuantity(d, planQ); ok && q.Quantity > 0 {
		return q.Quantity, model.SourcePlan
	}

	if d.ScopeQuantity != nil && *d.ScopeQuantity > 0 {
		return *d.ScopeQuantity, model.SourceDetailScope
	}

	// expansion joints run along a fraction of the perimeter, typically at
	// structural breaks
	if d.Type == "expansion_joint" && m.PerimeterLf > 0 {
		return 0.25 * m.PerimeterLf, model.SourceMeasurements
	}

	attr := model.MeasurementAttrForDetailType(d.Type)
	if attr != model.AttrNone {
		if v := m.CountFor(attr); v > 0 {
			// a curb detail drawn as a run of flashing needs LF, not the
			// raw unit count
			if d.MeasurementType == model.MeasuredLinearFt {
				if per, ok := typicalCurbPerimeterLf[d.Type]; ok {
					v *= per
				}
			}
			return v, model.SourceMeasurements
		}
	}

	return 1, model.SourceDefault
}

// typicalCurbPerimeterLf is the assumed flashing run per curb instance,
// based on common curb plan sizes (48"x24" mechanical, 24"x24" sleeper).
var typicalCurbPerimeterLf = map[string]float64{
	"mechanical_curb": 12,
	"sleeper_curb":    8,
}

// matchPlanQuantity finds the plan-reported quantity for a detail. Exact
// name match wins; otherwise the plan entry sharing the drawing reference
// or most name tokens is taken. Candidate order is sorted so ties resolve
// the same way every run.
func matchPlanQuantity(d *model.DetailAssembly, planQ map[string]model.PlanQuantity) (model.PlanQuantity, bool) {
	if q, ok := planQ[d.Name]; ok {
		return q, true
	}

	wanted := nameTokens(d.Name)
	ref := strings.ToLower(d.DrawingRef)

	bestScore := 0
	var best model.PlanQuantity
	found := false

	for _, name := range sortedKeys(planQ) {
		candidate := nameTokens(name)

		if ref != "" && strings.Contains(strings.ToLower(name), ref) {
			return planQ[name], true
		}

		score := 0
		for t := range wanted {
			if _, ok := candidate[t]; ok {
				score++
			}
		}

		if score > bestScore {
			bestScore = score
			best = planQ[name]
			found = true
		}
	}

	// a single shared token like "roof" is not a match
	if bestScore < 2 {
		return model.PlanQuantity{}, false
	}

	return best, found
}

func nameTokens(name string) map[string]struct{} {
	result := map[string]struct{}{}

	for _, t := range strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if len(t) >= 3 {
			result[t] = struct{}{}
		}
	}

	return result
}

// capRunaway clips a detail whose cost is out of proportion to the roof.
// The uncapped value stays on the record for review.
func (e *DetailEngine) capRunaway(r *model.DetailResult, m *model.Measurements) {
	limit := runawayCostCap(m.ComputedRoofArea())

	if r.Cost <= limit {
		return
	}

	r.UncappedCost = r.Cost
	r.Cost = limit
	r.Capped = true
	r.AddWarning(fmt.Sprintf("%v: cost $%.0f exceeds the $%.0f sanity cap, clipped, quantities need review",
		r.Name, r.UncappedCost, limit))
}

// runawayCostCap is $5 per sqft of roof with a floor for small roofs, a
// blunt guard against a misread quantity unit turning one detail into the
// whole bid.
func runawayCostCap(roofAreaSqft float64) float64 {
	limit := 5 * roofAreaSqft
	if limit < 25_000 {
		limit = 25_000
	}
	return limit
}

func groupForDetailType(detailType string) model.BidGroup {
	switch detailType {
	case "mechanical_curb", "sleeper_curb", "pipe_support", "opening_cover":
		return model.GroupMechanical
	case "parapet", "curtain_wall", "expansion_joint", "scupper":
		return model.GroupFlashing
	default:
		return model.GroupRoofing
	}
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "; " + note
}

func sortedKeys(m map[string]model.PlanQuantity) []string {
	result := lo.Keys(m)
	sort.Strings(result)
	return result
}
