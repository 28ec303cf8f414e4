package takeoff

import (
	"fmt"

	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/systems"
)

// ComposeBid turns the per-group material pools into a bid form summary.
// Labor is carried as a multiplier on materials, per pool, so a pool's
// estimated cost already includes installation.
func ComposeBid(sys *systems.System, pools map[model.BidGroup]float64, roofAreaSqft float64) model.BidSummary {
	roofing := pools[model.GroupRoofing] + pools[model.GroupFlashing]
	mechanical := pools[model.GroupMechanical]
	other := pools[model.GroupOther]

	result := model.BidSummary{
		RoofingAndFlashing: model.BidItem{
			Description:     "Roofing & Flashing (supply and install)",
			MaterialCost:    roofing,
			LaborMultiplier: sys.Meta.LabourMultiplier,
			EstimatedCost:   roofing * sys.Meta.LabourMultiplier,
			Note:            sys.Meta.LabourNote,
		},
		MechanicalSupport: model.BidItem{
			Description:     "Mechanical Supports & Curbs",
			MaterialCost:    mechanical,
			LaborMultiplier: sys.Meta.MechanicalMultiplier,
			EstimatedCost:   mechanical * sys.Meta.MechanicalMultiplier,
		},
		OtherCosts: model.BidItem{
			Description:     "Other Costs",
			MaterialCost:    other,
			LaborMultiplier: 1,
			EstimatedCost:   other,
		},
	}

	if sys.Meta.IncludeBallastNote {
		result.OtherCosts.Note = ballastNote
	}

	subtotal := result.RoofingAndFlashing.EstimatedCost +
		result.MechanicalSupport.EstimatedCost +
		result.OtherCosts.EstimatedCost

	// general requirements follow the roofing material cost, before the
	// labor multiplier and without the mechanical pool
	result.GeneralRequirements = model.BidItem{
		Description:   fmt.Sprintf("General Requirements (%.0f%% of roofing & flashing materials)", sys.Meta.GeneralReqsPct*100),
		EstimatedCost: roofing * sys.Meta.GeneralReqsPct,
	}

	result.TotalEstimate = subtotal + result.GeneralRequirements.EstimatedCost
	if roofAreaSqft > 0 {
		result.PerSqft = result.TotalEstimate / roofAreaSqft
	}

	return result
}
