package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloomberg/go-testgroup"

	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/workspace"
)

func TestWorkspace(t *testing.T) {
	testgroup.RunInParallel(t, &WorkspaceTests{})
}

type WorkspaceTests struct {
}

func (g *WorkspaceTests) newWorkspace(t *testgroup.T) *workspace.Workspace {
	ws, err := workspace.NewWorkspace(":memory:")
	t.NoError(err)
	t.Cleanup(func() { _ = ws.Close() })

	return ws
}

func (g *WorkspaceTests) newMeasurements() *model.Measurements {
	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 4
	m.PlumbingVentCount = 6
	return m
}

func (g *WorkspaceTests) EstimateIsStoredAndListed(t *testgroup.T) {
	ws := g.newWorkspace(t)

	e, err := ws.Estimate("warehouse", g.newMeasurements())
	t.NoError(err)
	t.NotZero(e.BidSummary.TotalEstimate)

	all, err := ws.ListEstimates()
	t.NoError(err)
	t.Len(all, 1)
	t.Equal("warehouse", all[0].Name)

	loaded, err := ws.LoadEstimate(e.ID)
	t.NoError(err)
	t.Equal(e.BidSummary, loaded.BidSummary)
}

func (g *WorkspaceTests) EstimateCanBeDeleted(t *testgroup.T) {
	ws := g.newWorkspace(t)

	e, err := ws.Estimate("doomed", g.newMeasurements())
	t.NoError(err)

	t.NoError(ws.DeleteEstimate(e.ID))

	loaded, err := ws.LoadEstimate(e.ID)
	t.NoError(err)
	t.Nil(loaded)
}

func (g *WorkspaceTests) DetailTakeoffUsesAnalysisCounts(t *testgroup.T) {
	ws := g.newWorkspace(t)

	path := g.writeAnalysis(t, `{
		"plan_analysis": [{"drawing_ref": "A-101", "counts": {"roof_drains": 3}}],
		"detail_analysis": [{
			"drawing_ref": "A-501",
			"details": [{
				"detail_name": "Roof Drain Detail",
				"detail_type": "drain",
				"measurement_type": "each",
				"layers": [{"position": 1, "material": "Drain insert", "pricing_key": "Roof_Drain"}]
			}]
		}]
	}`)

	a, err := ws.ImportAnalysis(path)
	t.NoError(err)

	m := model.NewMeasurements(10000, 400)
	r := ws.DetailTakeoff(a, m)

	t.Len(r.Details, 1)
	t.Equal(3.0, r.Details[0].BaseQuantity)
	t.NotZero(r.TotalMaterialCost)
	t.NotNil(r.StandardComparison)
	t.NotZero(r.StandardComparison.TotalEstimate)
}

func (g *WorkspaceTests) JoinTakeoffResolvesAgainstSpecs(t *testgroup.T) {
	ws := g.newWorkspace(t)

	analysisPath := g.writeAnalysis(t, `{
		"detail_analysis": [{
			"drawing_ref": "A-501",
			"details": [{
				"detail_name": "Roof Drain Detail",
				"detail_type": "drain",
				"measurement_type": "each",
				"layers": [{"position": 1, "material": "Drain insert", "pricing_key": "Roof_Drain"}]
			}]
		}]
	}`)
	specPath := g.writeFile(t, "spec.json", `{
		"confirmed_materials": [{"material_name": "Roof Drain", "pricing_key": "Roof_Drain"}]
	}`)

	a, err := ws.ImportAnalysis(analysisPath)
	t.NoError(err)

	specs, err := ws.ImportSpecMaterials(specPath)
	t.NoError(err)

	m := model.NewMeasurements(10000, 400)
	m.RoofDrainCount = 4

	r := ws.JoinTakeoff(a, specs, m)

	t.Len(r.Items, 1)
	t.Empty(r.Failures)
	t.Equal("Roof_Drain", r.Items[0].PricingKey)
}

func (g *WorkspaceTests) GlobalConfigPersists(t *testgroup.T) {
	ws := g.newWorkspace(t)

	changed, err := ws.SetGlobalConfig("default.system", "TPO_Fully_Adhered")
	t.NoError(err)
	t.True(changed)

	changed, err = ws.SetGlobalConfig("default.system", "TPO_Fully_Adhered")
	t.NoError(err)
	t.False(changed)

	v, err := ws.GlobalConfig("default.system")
	t.NoError(err)
	t.Equal("TPO_Fully_Adhered", v)
}

func (g *WorkspaceTests) writeAnalysis(t *testgroup.T, contents string) string {
	return g.writeFile(t, "analysis.json", contents)
}

func (g *WorkspaceTests) writeFile(t *testgroup.T, name, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	t.NoError(os.WriteFile(path, []byte(contents), 0o600))
	return path
}
