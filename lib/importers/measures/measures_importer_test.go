package measures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/takeoff/lib/consoles"
	"github.com/pescuma/takeoff/lib/model"
)

func importString(t *testing.T, contents string) (*model.Measurements, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "measurements.json")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return NewImporter(consoles.NewStdOutConsole()).Import(path)
}

func TestImportScalars(t *testing.T) {
	t.Parallel()

	m, err := importString(t, `{
		"total_roof_area_sqft": 10000,
		"perimeter_lf": 400,
		"parapet_length_lf": 380,
		"parapet_height_ft": 3,
		"roof_drains": 4,
		"plumbing_vents": 6,
		"tapered_area_sqft": 2500,
		"system": "TPO_Fully_Adhered"
	}`)
	assert.NoError(t, err)

	assert.Equal(t, 10000.0, m.TotalRoofAreaSqft)
	assert.Equal(t, 400.0, m.PerimeterLf)
	assert.Equal(t, 380.0, m.ParapetLengthLf)
	assert.Equal(t, 3.0, m.ParapetHeightFt)
	assert.Equal(t, 4, m.RoofDrainCount)
	assert.Equal(t, 6, m.PlumbingVentCount)
	assert.Equal(t, 2500.0, *m.TaperedAreaSqft)
	assert.Nil(t, m.BallastAreaSqft)
	assert.Equal(t, model.SystemTPOFullyAdhered, m.System)
}

func TestImportDefaults(t *testing.T) {
	t.Parallel()

	m, err := importString(t, `{"total_roof_area_sqft": 1000, "perimeter_lf": 130}`)
	assert.NoError(t, err)

	// parapet follows the perimeter at 2 ft unless given
	assert.Equal(t, 130.0, m.ParapetLengthLf)
	assert.Equal(t, 2.0, m.ParapetHeightFt)
	assert.Equal(t, model.SystemSBS, m.System)
	assert.Equal(t, model.DefaultToggles(), m.Toggles)
}

func TestImportItemizedSections(t *testing.T) {
	t.Parallel()

	m, err := importString(t, `{
		"total_roof_area_sqft": 10000,
		"perimeter_lf": 400,
		"roof_sections": [{"name": "main", "count": 2, "length_ft": 50, "width_ft": 40}],
		"perimeter_sections": [{"name": "north", "type": "cant", "height_in": 24, "length_ft": 100, "difficulty": 3}],
		"curbs": [{"name": "RTU-1", "type": "mechanical_unit", "count": 2, "length_in": 48, "width_in": 24, "height_in": 24}],
		"vents": [{"type": "b_vent", "count": 3, "difficulty": "Hard"}],
		"wood_work": [{"name": "parapet", "length_ft": 100, "height_ft": 2, "layers": 2}],
		"batt_insulation": [{"name": "parapet", "length_ft": 100, "height_ft": 2}]
	}`)
	assert.NoError(t, err)

	assert.Equal(t, 4000.0, m.ComputedRoofArea())

	assert.Len(t, m.PerimeterSections, 1)
	assert.Equal(t, model.Cant, m.PerimeterSections[0].Type)
	assert.Equal(t, 3, m.PerimeterSections[0].Difficulty)

	assert.Len(t, m.Curbs, 1)
	assert.Equal(t, "RTU-1", m.Curbs[0].Name)
	assert.Equal(t, 2, m.Curbs[0].Count)

	assert.Len(t, m.Vents, 1)
	assert.Equal(t, 3.5, m.Vents[0].HoursEach())

	assert.Len(t, m.WoodWork, 1)
	assert.Equal(t, 2, m.WoodWork[0].Layers)

	assert.Len(t, m.BattInsulation, 1)
}

func TestImportCountsDefaultToOne(t *testing.T) {
	t.Parallel()

	m, err := importString(t, `{
		"total_roof_area_sqft": 1000,
		"perimeter_lf": 130,
		"curbs": [{"type": "mechanical_unit", "length_in": 48, "width_in": 24, "height_in": 24}],
		"vents": [{"type": "plumbing_vent"}]
	}`)
	assert.NoError(t, err)

	assert.Equal(t, 1, m.Curbs[0].Count)
	assert.Equal(t, 1, m.Vents[0].Count)
}

func TestImportRejectsUnknownSystem(t *testing.T) {
	t.Parallel()

	_, err := importString(t, `{"total_roof_area_sqft": 1000, "perimeter_lf": 130, "system": "Thatch"}`)

	assert.ErrorContains(t, err, "unknown system type")
}

func TestImportRejectsUnknownPerimeterType(t *testing.T) {
	t.Parallel()

	_, err := importString(t, `{
		"total_roof_area_sqft": 1000,
		"perimeter_lf": 130,
		"perimeter_sections": [{"name": "north", "type": "moat", "height_in": 24, "length_ft": 100}]
	}`)

	assert.ErrorContains(t, err, "unknown perimeter type")
}

func TestImportTogglesReplaceDefaultsWholesale(t *testing.T) {
	t.Parallel()

	m, err := importString(t, `{
		"total_roof_area_sqft": 1000,
		"perimeter_lf": 130,
		"toggles": {"insulation": true}
	}`)
	assert.NoError(t, err)

	assert.True(t, m.Toggles.Insulation)
	assert.False(t, m.Toggles.VapourBarrier)
	assert.False(t, m.Toggles.Drainage)
}
