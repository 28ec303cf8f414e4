package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/takeoff/lib/model"
)

func TestComputedRoofAreaPrefersSections(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	assert.Equal(t, 10000.0, m.ComputedRoofArea())

	m.RoofSections = []*model.RoofSection{
		model.NewRoofSection("main", 1, 100, 80),
		model.NewRoofSection("wing", 2, 20, 10),
	}
	assert.Equal(t, 8400.0, m.ComputedRoofArea())
}

func TestComputedParapetLengthSkipsNonParapetSections(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	m.ParapetLengthLf = 380
	assert.Equal(t, 380.0, m.ComputedParapetLength())

	m.PerimeterSections = []*model.PerimeterSection{
		model.NewPerimeterSection("north", model.ParapetNoFacing, 24, 100),
		model.NewPerimeterSection("east", model.DividerWithFacing, 24, 50),
		model.NewPerimeterSection("wall", model.InteriorWall, 24, 60),
		model.NewPerimeterSection("cant", model.Cant, 24, 40),
	}
	assert.Equal(t, 150.0, m.ComputedParapetLength())
}

func TestComputedStripAreaScalarFallback(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	m.ParapetHeightFt = 2

	// treated as a 24" parapet with no facing, girth 40"
	assert.InDelta(t, 400*40.0/12, m.ComputedStripAreaSqft(), 0.001)
}

func TestEffectiveAreasUseOverridesWhenSet(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	assert.Equal(t, 10000.0, m.EffectiveTaperedArea())
	assert.Equal(t, 10000.0, m.EffectiveBallastArea())

	tapered := 3000.0
	ballast := 0.0
	m.TaperedAreaSqft = &tapered
	m.BallastAreaSqft = &ballast
	assert.Equal(t, 3000.0, m.EffectiveTaperedArea())
	assert.Equal(t, 0.0, m.EffectiveBallastArea())
}

func TestTotalPenetrations(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	m.MechanicalUnitCount = 2
	m.SleeperCurbCount = 3
	m.VentHoodCount = 1
	m.GasPenetrationCount = 4
	m.ElectricalPenetrationCount = 1
	m.PlumbingVentCount = 5

	assert.Equal(t, 16, m.TotalPenetrations())
}

func TestCountFor(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 4

	assert.Equal(t, 10000.0, m.CountFor(model.AttrRoofArea))
	assert.Equal(t, 400.0, m.CountFor(model.AttrPerimeter))
	assert.Equal(t, 4.0, m.CountFor(model.AttrRoofDrains))
	assert.Equal(t, 0.0, m.CountFor(model.AttrNone))
}

func TestUnitConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2.0, model.InchesToFeet(24))
	assert.Equal(t, 24.0, model.FeetToInches(2))
	assert.Equal(t, 1.0, model.MmToInches(25.4))
	assert.Equal(t, 1.0, model.MmToFeet(304.8))
}

func TestParseSystemType(t *testing.T) {
	t.Parallel()

	s, ok := model.ParseSystemType("TPO_Fully_Adhered")
	assert.True(t, ok)
	assert.Equal(t, model.SystemTPOFullyAdhered, s)

	s, ok = model.ParseSystemType("PVC_Something")
	assert.False(t, ok)
	assert.Equal(t, model.SystemSBS, s)
}
