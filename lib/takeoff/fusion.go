package takeoff

import (
	"math"

	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/pricing"
	"github.com/pescuma/takeoff/lib/systems"
)

// FusionEngine joins the two independent extraction datasets: quantities
// come from the spatial drawing analysis, material identities only from the
// products confirmed against the project specification. A detail whose
// candidates have no confirmed match becomes a resolution failure record,
// never a guessed product.
//
// The join is pure: same inputs, same output, item for item.
type FusionEngine struct {
	resolver *pricing.Resolver
}

func NewFusionEngine(resolver *pricing.Resolver) *FusionEngine {
	return &FusionEngine{
		resolver: resolver,
	}
}

func (e *FusionEngine) Join(a *model.Analysis, specs *model.SpecMaterials,
	m *model.Measurements,
) *model.JoinedTakeoff {
	result := &model.JoinedTakeoff{}

	sys := systems.ForType(m.System)
	planQ := a.PlanQuantities()
	pools := map[model.BidGroup]float64{}
	seenTypes := map[string]bool{}

	for _, d := range a.AllDetails() {
		if d.Type != "" && seenTypes[d.Type] {
			continue
		}
		seenTypes[d.Type] = true

		candidates := candidateKeys(d)

		matched := ""
		for _, key := range candidates {
			if specs.Contains(key) {
				matched = key
				break
			}
		}

		if matched == "" {
			result.Failures = append(result.Failures, &model.MaterialResolutionFailure{
				DetailName: d.Name,
				DetailType: d.Type,
				DrawingRef: d.DrawingRef,
				Candidates: candidates,
			})
			continue
		}

		item := e.resolveItem(d, specs.Get(matched), planQ, m)
		pools[groupForDetailType(d.Type)] += item.LineCost
		result.TotalMaterialCost += item.LineCost
		result.Items = append(result.Items, item)
	}

	result.TotalLineItems = len(result.Items)
	result.TotalFailures = len(result.Failures)
	result.BidSummary = ComposeBid(sys, pools, m.ComputedRoofArea())

	return result
}

func (e *FusionEngine) resolveItem(d *model.DetailAssembly, mat *model.SpecMaterial,
	planQ map[string]model.PlanQuantity, m *model.Measurements,
) *model.ResolvedLineItem {
	base, source := resolveQuantity(d, planQ, m)

	item := &model.ResolvedLineItem{
		DetailName:     d.Name,
		DetailType:     d.Type,
		DrawingRef:     d.DrawingRef,
		PricingKey:     mat.PricingKey,
		ProductName:    mat.ProductName,
		SpecPages:      mat.Pages,
		QuantitySource: source,
	}

	cov, covKnown := pricing.CoverageFor(mat.PricingKey)
	switch {
	case covKnown:
		item.Quantity, item.Unit = layerQuantity(cov, d.MeasurementType, base, nil)
	case d.MeasurementType == model.MeasuredEach:
		item.Quantity, item.Unit = math.Max(base, 1), "unit"
	default:
		item.Quantity, item.Unit = 1, "unit"
	}

	price, _ := e.resolver.Price(mat.PricingKey)
	item.UnitPrice = price
	item.LineCost = item.Quantity * price

	return item
}

// candidateKeys is the ordered list of pricing keys to try against the
// confirmed set: the keys the analysis suggested per layer first, in layer
// order, then the static defaults for the detail type.
func candidateKeys(d *model.DetailAssembly) []string {
	var result []string
	seen := map[string]bool{}

	add := func(key string) {
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		result = append(result, key)
	}

	for _, l := range d.Layers {
		add(l.PricingKey)
	}

	for _, key := range staticCandidates[d.Type] {
		add(key)
	}

	return result
}

// staticCandidates backs the per-type fallback when the analysis suggested
// no usable keys. Order encodes preference.
var staticCandidates = map[string][]string{
	"field_assembly":         {"Cap_Membrane", "Base_Membrane", "EPDM_Membrane_60mil", "TPO_Membrane", "SBS_Membrane"},
	"parapet":                {"Cap_Membrane", "Flashing_General", "EPDM_Accessory", "TPO_Accessory"},
	"curtain_wall":           {"Flashing_General", "Cap_Membrane"},
	"drain":                  {"Roof_Drain"},
	"scupper":                {"Scupper"},
	"mechanical_curb":        {"Flashing_General", "Cap_Membrane"},
	"sleeper_curb":           {"Flashing_General", "Cap_Membrane"},
	"opening_cover":          {"Flashing_General", "Plywood_Sheathing"},
	"penetration_gas":        {"Pipe_Boot_Seal", "EPDM_Pipe_Flashing", "TPO_Pipe_Boot"},
	"penetration_electrical": {"Pipe_Boot_Seal", "EPDM_Pipe_Flashing", "TPO_Pipe_Boot"},
	"penetration_plumbing":   {"Plumbing_Vent", "Pipe_Boot_Seal", "EPDM_Pipe_Flashing", "TPO_Pipe_Boot"},
	"vent_hood":              {"Gooseneck_Vent", "Vent_Cap"},
	"pipe_support":           {"Pipe_Boot_Seal", "Plumbing_Vent"},
	"expansion_joint":        {"Flashing_General", "EPDM_Seam_Tape"},
}
