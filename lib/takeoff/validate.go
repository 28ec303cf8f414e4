package takeoff

import (
	"fmt"
	"math"

	"github.com/pescuma/takeoff/lib/model"
)

// ValidateMeasurements checks an input aggregate for values that are
// possible but unlikely. Findings never block the takeoff; they ride along
// as warnings so the estimator can double check the source drawings.
func ValidateMeasurements(m *model.Measurements) []string {
	var result []string

	warn := func(format string, args ...any) {
		result = append(result, fmt.Sprintf(format, args...))
	}

	area := m.ComputedRoofArea()

	switch {
	case area <= 0:
		warn("roof area is %.0f sqft: nothing to estimate", area)
	case area < 100:
		warn("roof area %.0f sqft is unusually small, check the units", area)
	case area > 1_000_000:
		warn("roof area %.0f sqft is unusually large, check the units", area)
	}

	if area > 0 && m.PerimeterLf > 0 {
		// a square roof has the shortest possible perimeter
		minPerimeter := 4 * math.Sqrt(area)
		if m.PerimeterLf < 0.9*minPerimeter {
			warn("perimeter %.0f LF is too short for a %.0f sqft roof (a square needs %.0f LF)",
				m.PerimeterLf, area, minPerimeter)
		}
		if m.PerimeterLf > 20*minPerimeter {
			warn("perimeter %.0f LF is very long for a %.0f sqft roof, check for double counting",
				m.PerimeterLf, area)
		}
	}

	if m.ParapetLengthLf > m.PerimeterLf && m.PerimeterLf > 0 && len(m.PerimeterSections) == 0 {
		warn("parapet length %.0f LF exceeds the perimeter %.0f LF", m.ParapetLengthLf, m.PerimeterLf)
	}

	if m.ParapetHeightFt > 10 {
		warn("parapet height %.1f ft is unusually tall, check the units", m.ParapetHeightFt)
	}
	if m.ParapetHeightFt < 0 {
		warn("parapet height %.1f ft is negative", m.ParapetHeightFt)
	}

	if m.TaperedAreaSqft != nil && *m.TaperedAreaSqft > area && area > 0 {
		warn("tapered insulation area %.0f sqft exceeds the roof area %.0f sqft", *m.TaperedAreaSqft, area)
	}
	if m.BallastAreaSqft != nil && *m.BallastAreaSqft > area && area > 0 {
		warn("ballast area %.0f sqft exceeds the roof area %.0f sqft", *m.BallastAreaSqft, area)
	}

	counts := []struct {
		name  string
		count int
	}{
		{"roof drains", m.RoofDrainCount},
		{"scuppers", m.ScupperCount},
		{"mechanical units", m.MechanicalUnitCount},
		{"sleeper curbs", m.SleeperCurbCount},
		{"vent hoods", m.VentHoodCount},
		{"gas penetrations", m.GasPenetrationCount},
		{"electrical penetrations", m.ElectricalPenetrationCount},
		{"plumbing vents", m.PlumbingVentCount},
	}
	for _, c := range counts {
		if c.count < 0 {
			warn("%v count is negative (%v)", c.name, c.count)
		}
	}

	if area > 10_000 && m.RoofDrainCount == 0 && m.ScupperCount == 0 {
		warn("no drains or scuppers on a %.0f sqft roof, check the plan counts", area)
	}

	for _, s := range m.PerimeterSections {
		if s.HeightIn > 120 {
			warn("perimeter section '%v' is %.0f in tall, check the units", s.Name, s.HeightIn)
		}
		if s.LengthFt < 0 {
			warn("perimeter section '%v' has negative length", s.Name)
		}
	}

	for _, c := range m.Curbs {
		if c.HeightIn > 120 {
			warn("curb '%v' is %.0f in tall, check the units", c.Name, c.HeightIn)
		}
	}

	return result
}
