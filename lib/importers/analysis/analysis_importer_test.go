package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/takeoff/lib/consoles"
	"github.com/pescuma/takeoff/lib/model"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestImportFullEnvelope(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "analysis.json", `{
		"plan_analysis": [{
			"drawing_ref": "A-101",
			"scale": "1:100",
			"counts": {"roof_drains": 4, "plumbing_vents": 6},
			"detail_quantities": {"Parapet Flashing": {"quantity": 350, "unit": "LF"}},
			"zones": [{"name": "Zone A", "assembly_type": "SBS", "detail_refs": ["3/A-501"]}]
		}],
		"detail_analysis": [{
			"drawing_ref": "A-501",
			"details": [{
				"detail_name": "Parapet Flashing",
				"detail_type": "parapet",
				"measurement_type": "linear_ft",
				"scope_quantity": 120,
				"scope_unit": "LF",
				"layers": [
					{"position": 1, "material": "Cap sheet stripping", "pricing_key": "Cap_Membrane", "width_in": 18}
				]
			}]
		}]
	}`)

	a, err := NewImporter(consoles.NewStdOutConsole()).Import(path)
	assert.NoError(t, err)

	assert.Len(t, a.PlanPages, 1)
	assert.Equal(t, "A-101", a.PlanPages[0].DrawingRef)
	assert.Equal(t, 4, a.PlanPages[0].Counts["roof_drains"])
	assert.Equal(t, 350.0, a.PlanPages[0].DetailQuantities["Parapet Flashing"].Quantity)
	assert.Equal(t, "Zone A", a.PlanPages[0].Zones[0].Name)

	details := a.AllDetails()
	assert.Len(t, details, 1)
	d := details[0]
	assert.Equal(t, "Parapet Flashing", d.Name)
	assert.Equal(t, "parapet", d.Type)
	assert.Equal(t, model.MeasuredLinearFt, d.MeasurementType)
	assert.Equal(t, 120.0, *d.ScopeQuantity)
	assert.Equal(t, "A-501", d.DrawingRef)
	assert.Len(t, d.Layers, 1)
	assert.Equal(t, "Cap_Membrane", d.Layers[0].PricingKey)
	assert.Equal(t, 18.0, *d.Layers[0].WidthIn)
}

func TestImportToleratesMissingSections(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "analysis.json", `{"plan_analysis": [{"drawing_ref": "A-101"}]}`)

	a, err := NewImporter(consoles.NewStdOutConsole()).Import(path)
	assert.NoError(t, err)

	assert.Len(t, a.PlanPages, 1)
	assert.Empty(t, a.AllDetails())
	assert.Empty(t, a.AggregateCounts())
}

func TestImportSkipsParseErrorPages(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "analysis.json", `{
		"plan_analysis": [
			{"drawing_ref": "A-101", "parse_error": true, "counts": {"roof_drains": 99}},
			{"drawing_ref": "A-102", "counts": {"roof_drains": 4}}
		]
	}`)

	a, err := NewImporter(consoles.NewStdOutConsole()).Import(path)
	assert.NoError(t, err)

	assert.Equal(t, map[string]int{"roof_drains": 4}, a.AggregateCounts())
}

func TestImportUnknownMeasurementTypeDefaultsToEach(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "analysis.json", `{
		"detail_analysis": [{
			"drawing_ref": "A-501",
			"details": [{"detail_name": "X", "detail_type": "drain", "measurement_type": "furlongs"}]
		}]
	}`)

	a, err := NewImporter(consoles.NewStdOutConsole()).Import(path)
	assert.NoError(t, err)

	assert.Equal(t, model.MeasuredEach, a.AllDetails()[0].MeasurementType)
}

func TestImportAllMergesMatchingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "page1.json"),
		[]byte(`{"plan_analysis": [{"drawing_ref": "A-101", "counts": {"roof_drains": 2}}]}`), 0o600))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "page2.json"),
		[]byte(`{"plan_analysis": [{"drawing_ref": "A-102", "counts": {"roof_drains": 3}}]}`), 0o600))

	a, err := NewImporter(consoles.NewStdOutConsole()).ImportAll(dir, "*.json")
	assert.NoError(t, err)

	assert.Len(t, a.PlanPages, 2)
	assert.Equal(t, 5, a.AggregateCounts()["roof_drains"])
}

func TestApplyCountsFillsOnlyMissingFields(t *testing.T) {
	t.Parallel()

	a := model.NewAnalysis()
	a.PlanPages = []*model.PlanPage{
		{Counts: map[string]int{"roof_drains": 4, "plumbing_vents": 6}},
	}

	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 2

	ApplyCounts(m, a)

	// the estimator's own count wins over the extractor
	assert.Equal(t, 2, m.RoofDrainCount)
	assert.Equal(t, 6, m.PlumbingVentCount)
	assert.Equal(t, 0, m.ScupperCount)
}
