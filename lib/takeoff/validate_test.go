package takeoff_test

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/takeoff"
)

func hasWarning(warnings []string, fragment string) bool {
	return lo.SomeBy(warnings, func(w string) bool { return strings.Contains(w, fragment) })
}

func TestValidateCleanInputHasNoWarnings(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 4

	assert.Empty(t, takeoff.ValidateMeasurements(m))
}

func TestValidateAreaBounds(t *testing.T) {
	t.Parallel()

	assert.True(t, hasWarning(takeoff.ValidateMeasurements(model.NewMeasurements(0, 0)), "nothing to estimate"))
	assert.True(t, hasWarning(takeoff.ValidateMeasurements(model.NewMeasurements(50, 30)), "unusually small"))
	assert.True(t, hasWarning(takeoff.ValidateMeasurements(model.NewMeasurements(2_000_000, 6000)), "unusually large"))
}

func TestValidatePerimeterAgainstArea(t *testing.T) {
	t.Parallel()

	// a square 10000 sqft roof needs 400 LF
	short := model.NewMeasurements(10000, 300)
	short.RoofDrainCount = 2
	assert.True(t, hasWarning(takeoff.ValidateMeasurements(short), "too short"))

	long := model.NewMeasurements(10000, 9000)
	long.RoofDrainCount = 2
	assert.True(t, hasWarning(takeoff.ValidateMeasurements(long), "very long"))
}

func TestValidateParapet(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 2
	m.ParapetLengthLf = 500
	assert.True(t, hasWarning(takeoff.ValidateMeasurements(m), "exceeds the perimeter"))

	m = model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 2
	m.ParapetHeightFt = 24
	assert.True(t, hasWarning(takeoff.ValidateMeasurements(m), "unusually tall"))
}

func TestValidateOverrideAreas(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 2
	tapered := 12000.0
	m.TaperedAreaSqft = &tapered

	assert.True(t, hasWarning(takeoff.ValidateMeasurements(m), "tapered insulation area"))
}

func TestValidateCounts(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 2
	m.ScupperCount = -1
	assert.True(t, hasWarning(takeoff.ValidateMeasurements(m), "scuppers count is negative"))

	dry := model.NewMeasurements(20000, 600)
	assert.True(t, hasWarning(takeoff.ValidateMeasurements(dry), "no drains or scuppers"))
}

func TestValidateSectionDimensions(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 2
	m.PerimeterSections = []*model.PerimeterSection{
		model.NewPerimeterSection("north", model.ParapetNoFacing, 200, 100),
	}
	m.Curbs = []*model.CurbDetail{
		model.NewCurbDetail("mechanical_unit", 1, 48, 24, 150),
	}

	warnings := takeoff.ValidateMeasurements(m)
	assert.True(t, hasWarning(warnings, "perimeter section 'north'"))
	assert.True(t, hasWarning(warnings, "curb"))
}

func TestValidateWarningsAreDeterministic(t *testing.T) {
	t.Parallel()

	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = -1
	m.ScupperCount = -1
	m.PlumbingVentCount = -2

	first := takeoff.ValidateMeasurements(m)
	second := takeoff.ValidateMeasurements(m)

	assert.Equal(t, first, second)
}
