package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/takeoff/lib/model"
)

func TestStripGirth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 40.0, girth(model.ParapetNoFacing, 24).strip)
	assert.Equal(t, 44.0, girth(model.ParapetWithFacing, 24).strip)
	assert.Equal(t, 40.0, girth(model.InteriorWall, 24).strip)
	assert.InDelta(t, math.Sqrt2*24+12, girth(model.Cant, 24).strip, 0.001)
	assert.Equal(t, 60.0, girth(model.DividerWithFacing, 24).strip)
}

func TestMetalGirth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30.0, girth(model.ParapetNoFacing, 24).metal)
	assert.Equal(t, 52.0, girth(model.ParapetWithFacing, 24).metal)
	assert.Equal(t, 28.0, girth(model.InteriorWall, 24).metal)
	assert.Equal(t, 0.0, girth(model.Cant, 24).metal)
	assert.Equal(t, 56.0, girth(model.DividerWithFacing, 24).metal)
}

type girths struct {
	strip float64
	metal float64
}

func girth(t model.PerimeterType, heightIn float64) girths {
	s := model.NewPerimeterSection("s", t, heightIn, 100)
	return girths{s.StripGirthIn(), s.MetalGirthIn()}
}

func TestStripArea(t *testing.T) {
	t.Parallel()

	s := model.NewPerimeterSection("north", model.ParapetNoFacing, 24, 100)

	assert.InDelta(t, 100*40.0/12, s.StripAreaSqft(), 0.001)
}

func TestMetalSheets(t *testing.T) {
	t.Parallel()

	// girth 30 gives 1 strip per 4' sheet, so 10' of run per sheet
	s := model.NewPerimeterSection("north", model.ParapetNoFacing, 24, 100)
	assert.Equal(t, 10, s.MetalSheetCount())

	// girth 16 gives 3 strips per sheet
	s = model.NewPerimeterSection("north", model.ParapetNoFacing, 10, 100)
	assert.Equal(t, 4, s.MetalSheetCount())

	cant := model.NewPerimeterSection("cant", model.Cant, 24, 100)
	assert.Equal(t, 0, cant.MetalSheetCount())
}

func TestInstallHoursSlowDownWithConditions(t *testing.T) {
	t.Parallel()

	base := model.NewPerimeterSection("s", model.ParapetNoFacing, 24, 90)
	assert.InDelta(t, 5.0, base.InstallHours(model.ProjectModifiers{}), 0.001)

	tall := model.NewPerimeterSection("s", model.ParapetNoFacing, 48, 90)
	assert.Greater(t, tall.InstallHours(model.ProjectModifiers{}), base.InstallHours(model.ProjectModifiers{}))

	hard := model.NewPerimeterSection("s", model.ParapetNoFacing, 24, 90)
	hard.Difficulty = 5
	assert.InDelta(t, 90/(18.0*0.6), hard.InstallHours(model.ProjectModifiers{}), 0.001)

	winter := base.InstallHours(model.ProjectModifiers{Winter: true})
	assert.InDelta(t, 5.0*1.25, winter, 0.001)

	empty := model.NewPerimeterSection("s", model.ParapetNoFacing, 24, 0)
	assert.Equal(t, 0.0, empty.InstallHours(model.ProjectModifiers{TearOff: true}))
}
