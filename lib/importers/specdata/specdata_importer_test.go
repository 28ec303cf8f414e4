package specdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/takeoff/lib/consoles"
	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/pricing"
)

func importString(t *testing.T, contents string) (*model.SpecMaterials, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "spec.json")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return NewImporter(consoles.NewStdOutConsole(), pricing.NewDefaultResolver()).Import(path)
}

func TestImportPerPageExtraction(t *testing.T) {
	t.Parallel()

	s, err := importString(t, `{
		"spec_analysis": [
			{
				"source_page": 12,
				"spec_section": "07 52 01",
				"materials": [
					{"material_name": "Sopraply Traffic Cap", "pricing_key": "Cap_Membrane", "notes": "granulated"},
					{"material_name": "Mystery Product", "pricing_key": ""}
				]
			},
			{"source_page": 13, "parse_error": true, "materials": [
				{"material_name": "Garbage", "pricing_key": "Roof_Drain"}
			]}
		]
	}`)
	assert.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Contains("Roof_Drain"))

	m := s.Get("Cap_Membrane")
	assert.Equal(t, "Sopraply Traffic Cap", m.ProductName)
	assert.Equal(t, []int{12}, m.Pages)
	assert.Equal(t, []string{"granulated"}, m.Dimensions)
}

func TestImportFlatConfirmedList(t *testing.T) {
	t.Parallel()

	s, err := importString(t, `{
		"confirmed_materials": [
			{"material_name": "Roof Drain", "pricing_key": "Roof_Drain"},
			{"material_name": "Sopraply Base", "pricing_key": "Base_Membrane", "category": "Membranes"}
		]
	}`)
	assert.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "Membranes", s.Get("Base_Membrane").Category)

	// category falls back to the pricing catalog entry
	assert.Equal(t, "Drainage", s.Get("Roof_Drain").Category)
}

func TestImportMergesDuplicateKeyPages(t *testing.T) {
	t.Parallel()

	s, err := importString(t, `{
		"spec_analysis": [
			{"source_page": 3, "materials": [{"material_name": "Cap", "pricing_key": "Cap_Membrane"}]},
			{"source_page": 9, "materials": [{"material_name": "Cap", "pricing_key": "Cap_Membrane"}]}
		]
	}`)
	assert.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []int{3, 9}, s.Get("Cap_Membrane").Pages)
}

func TestImportRejectsUnrecognizedShape(t *testing.T) {
	t.Parallel()

	_, err := importString(t, `{"something_else": true}`)

	assert.ErrorContains(t, err, "neither spec_analysis nor confirmed_materials")
}
