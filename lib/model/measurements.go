package model

import (
	"github.com/samber/lo"
)

// MaterialToggles turns whole material categories on or off, independent of
// what the system catalog lists.
type MaterialToggles struct {
	VapourBarrier     bool
	Insulation        bool
	Coverboard        bool
	TaperedInsulation bool
	Drainage          bool
}

func DefaultToggles() MaterialToggles {
	return MaterialToggles{
		VapourBarrier:     true,
		Insulation:        true,
		Coverboard:        true,
		TaperedInsulation: true,
		Drainage:          true,
	}
}

// ProjectModifiers are project-level conditions that change labor, not
// material quantities.
type ProjectModifiers struct {
	FloorCount         int
	HotWork            bool
	TearOff            bool
	InteriorAccessOnly bool
	Winter             bool
}

// Measurements is the aggregate of everything measured or counted for one
// estimate. It is built once per request and read-only during computation.
//
// The scalar fields are the legacy form. When the itemized collections are
// present they take precedence over the scalars for every derived total.
type Measurements struct {
	TotalRoofAreaSqft float64
	PerimeterLf       float64
	ParapetLengthLf   float64
	ParapetHeightFt   float64

	RoofDrainCount             int
	ScupperCount               int
	MechanicalUnitCount        int
	SleeperCurbCount           int
	VentHoodCount              int
	GasPenetrationCount        int
	ElectricalPenetrationCount int
	PlumbingVentCount          int

	TaperedAreaSqft *float64
	BallastAreaSqft *float64

	System    SystemType
	Toggles   MaterialToggles
	Modifiers ProjectModifiers

	RoofSections      []*RoofSection
	Curbs             []*CurbDetail
	PerimeterSections []*PerimeterSection
	Vents             []*VentItem
	WoodWork          []*WoodWorkSection
	BattInsulation    []*BattInsulationSection
}

func NewMeasurements(areaSqft, perimeterLf float64) *Measurements {
	return &Measurements{
		TotalRoofAreaSqft: areaSqft,
		PerimeterLf:       perimeterLf,
		ParapetLengthLf:   perimeterLf,
		ParapetHeightFt:   2.0,
		System:            SystemSBS,
		Toggles:           DefaultToggles(),
	}
}

// ComputedRoofArea sums the itemized sections when present, otherwise the
// scalar total.
func (m *Measurements) ComputedRoofArea() float64 {
	if len(m.RoofSections) == 0 {
		return m.TotalRoofAreaSqft
	}

	return lo.SumBy(m.RoofSections, func(s *RoofSection) float64 { return s.AreaSqft() })
}

// ComputedParapetLength sums the top-of-parapet perimeter sections when
// present, otherwise the scalar parapet length.
func (m *Measurements) ComputedParapetLength() float64 {
	if len(m.PerimeterSections) == 0 {
		return m.ParapetLengthLf
	}

	return lo.SumBy(m.PerimeterSections, func(s *PerimeterSection) float64 {
		if !s.Type.TopOfParapet() {
			return 0
		}
		return s.LengthFt
	})
}

// ComputedStripAreaSqft is the membrane stripping area at the edges. The
// scalar fallback assumes a parapet with no facing at the recorded height.
func (m *Measurements) ComputedStripAreaSqft() float64 {
	if len(m.PerimeterSections) == 0 {
		legacy := PerimeterSection{Type: ParapetNoFacing, HeightIn: FeetToInches(m.ParapetHeightFt), LengthFt: m.ParapetLengthLf}
		return legacy.StripAreaSqft()
	}

	return lo.SumBy(m.PerimeterSections, func(s *PerimeterSection) float64 { return s.StripAreaSqft() })
}

// ComputedMetalAreaSqft is the cap / counter flashing metal area. Sections
// that do not terminate on a parapet top contribute nothing.
func (m *Measurements) ComputedMetalAreaSqft() float64 {
	if len(m.PerimeterSections) == 0 {
		legacy := PerimeterSection{Type: ParapetNoFacing, HeightIn: FeetToInches(m.ParapetHeightFt), LengthFt: m.ParapetLengthLf}
		return legacy.MetalAreaSqft()
	}

	return lo.SumBy(m.PerimeterSections, func(s *PerimeterSection) float64 {
		if !s.Type.TopOfParapet() {
			return 0
		}
		return s.MetalAreaSqft()
	})
}

func (m *Measurements) EffectiveTaperedArea() float64 {
	if m.TaperedAreaSqft != nil {
		return *m.TaperedAreaSqft
	}
	return m.ComputedRoofArea()
}

func (m *Measurements) EffectiveBallastArea() float64 {
	if m.BallastAreaSqft != nil {
		return *m.BallastAreaSqft
	}
	return m.ComputedRoofArea()
}

func (m *Measurements) TotalPenetrations() int {
	return m.MechanicalUnitCount + m.SleeperCurbCount + m.VentHoodCount +
		m.GasPenetrationCount + m.ElectricalPenetrationCount + m.PlumbingVentCount
}

// CountFor returns the measurement value backing a detail type, used as the
// least precise quantity fallback.
func (m *Measurements) CountFor(attr MeasurementAttr) float64 {
	switch attr {
	case AttrRoofArea:
		return m.ComputedRoofArea()
	case AttrPerimeter:
		return m.PerimeterLf
	case AttrParapetLength:
		return m.ComputedParapetLength()
	case AttrRoofDrains:
		return float64(m.RoofDrainCount)
	case AttrScuppers:
		return float64(m.ScupperCount)
	case AttrMechanicalUnits:
		return float64(m.MechanicalUnitCount)
	case AttrSleeperCurbs:
		return float64(m.SleeperCurbCount)
	case AttrVentHoods:
		return float64(m.VentHoodCount)
	case AttrGasPenetrations:
		return float64(m.GasPenetrationCount)
	case AttrElectricalPenetrations:
		return float64(m.ElectricalPenetrationCount)
	case AttrPlumbingVents:
		return float64(m.PlumbingVentCount)
	default:
		return 0
	}
}

type MeasurementAttr int

const (
	AttrNone MeasurementAttr = iota
	AttrRoofArea
	AttrPerimeter
	AttrParapetLength
	AttrRoofDrains
	AttrScuppers
	AttrMechanicalUnits
	AttrSleeperCurbs
	AttrVentHoods
	AttrGasPenetrations
	AttrElectricalPenetrations
	AttrPlumbingVents
)
