package analysis

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/pescuma/takeoff/lib/consoles"
	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/utils"
)

// Importer loads drawing analysis JSON produced by the extraction service.
// The files are machine generated from drawings, so every section may be
// missing, partial or flagged with a parse error; the importer keeps what it
// can read and never fails on an incomplete page.
type Importer struct {
	console consoles.Console
}

func NewImporter(console consoles.Console) *Importer {
	return &Importer{
		console: console,
	}
}

func (i *Importer) Import(path string) (*model.Analysis, error) {
	result := model.NewAnalysis()

	err := i.importInto(result, path)
	if err != nil {
		return nil, err
	}

	i.console.Printf("Loaded %v plan page(s) and %v detail page(s) from %v\n",
		len(result.PlanPages), len(result.DetailPages), path)

	return result, nil
}

// ImportAll merges every file matching a doublestar pattern, in sorted path
// order so reruns build the same document order.
func (i *Importer) ImportAll(root, pattern string) (*model.Analysis, error) {
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %v", pattern)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no analysis files match %v under %v", pattern, root)
	}

	sort.Strings(matches)

	result := model.NewAnalysis()

	bar := utils.NewProgressBar(len(matches))
	for _, m := range matches {
		err = i.importInto(result, filepath.Join(root, m))
		if err != nil {
			return nil, err
		}

		_ = bar.Add(1)
	}
	_ = bar.Clear()

	i.console.Printf("Loaded %v plan page(s) and %v detail page(s) from %v file(s)\n",
		len(result.PlanPages), len(result.DetailPages), len(matches))

	return result, nil
}

func (i *Importer) importInto(result *model.Analysis, path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "error reading %v", path)
	}

	var file fileJson
	err = json.Unmarshal(contents, &file)
	if err != nil {
		return errors.Wrapf(err, "error parsing %v", path)
	}

	for _, p := range file.PlanAnalysis {
		result.PlanPages = append(result.PlanPages, p.toModel())
	}
	for _, p := range file.DetailAnalysis {
		result.DetailPages = append(result.DetailPages, p.toModel())
	}

	return nil
}

// ApplyCounts copies the aggregated plan counts onto the measurement
// aggregate. Counts the estimator already filled in by hand are kept.
func ApplyCounts(m *model.Measurements, a *model.Analysis) {
	counts := a.AggregateCounts()

	apply := func(target *int, key string) {
		if *target == 0 {
			*target = counts[key]
		}
	}

	apply(&m.RoofDrainCount, "roof_drains")
	apply(&m.ScupperCount, "scuppers")
	apply(&m.MechanicalUnitCount, "mechanical_units")
	apply(&m.SleeperCurbCount, "sleeper_curbs")
	apply(&m.VentHoodCount, "vent_hoods")
	apply(&m.GasPenetrationCount, "gas_penetrations")
	apply(&m.ElectricalPenetrationCount, "electrical_penetrations")
	apply(&m.PlumbingVentCount, "plumbing_vents")
}

type fileJson struct {
	PlanAnalysis   []planPageJson   `json:"plan_analysis"`
	DetailAnalysis []detailPageJson `json:"detail_analysis"`
}

type planPageJson struct {
	DrawingRef       string                  `json:"drawing_ref"`
	Scale            string                  `json:"scale"`
	ParseError       bool                    `json:"parse_error"`
	Counts           map[string]int          `json:"counts"`
	DetailQuantities map[string]quantityJson `json:"detail_quantities"`
	Zones            []zoneJson              `json:"zones"`
}

func (j *planPageJson) toModel() *model.PlanPage {
	result := &model.PlanPage{
		DrawingRef:       j.DrawingRef,
		Scale:            j.Scale,
		ParseError:       j.ParseError,
		Counts:           j.Counts,
		DetailQuantities: map[string]model.PlanQuantity{},
	}

	for name, q := range j.DetailQuantities {
		result.DetailQuantities[name] = model.PlanQuantity{Quantity: q.Quantity, Unit: q.Unit}
	}

	for _, z := range j.Zones {
		result.Zones = append(result.Zones, &model.Zone{
			Name:         z.Name,
			AssemblyType: z.AssemblyType,
			DetailRefs:   z.DetailRefs,
			Notes:        z.Notes,
		})
	}

	return result
}

type quantityJson struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type zoneJson struct {
	Name         string   `json:"name"`
	AssemblyType string   `json:"assembly_type"`
	DetailRefs   []string `json:"detail_refs"`
	Notes        string   `json:"notes"`
}

type detailPageJson struct {
	DrawingRef string       `json:"drawing_ref"`
	ParseError bool         `json:"parse_error"`
	Details    []detailJson `json:"details"`
}

func (j *detailPageJson) toModel() *model.DetailPage {
	result := &model.DetailPage{
		DrawingRef: j.DrawingRef,
		ParseError: j.ParseError,
	}

	for _, d := range j.Details {
		mt := model.MeasurementType(d.MeasurementType)
		if mt != model.MeasuredSqft && mt != model.MeasuredLinearFt {
			mt = model.MeasuredEach
		}

		detail := &model.DetailAssembly{
			Name:            d.DetailName,
			Type:            d.DetailType,
			DrawingRef:      j.DrawingRef,
			MeasurementType: mt,
			ScopeQuantity:   d.ScopeQuantity,
			ScopeUnit:       d.ScopeUnit,
		}

		for _, l := range d.Layers {
			detail.Layers = append(detail.Layers, &model.MaterialLayer{
				Position:   l.Position,
				Material:   l.Material,
				PricingKey: l.PricingKey,
				Notes:      l.Notes,
				WidthIn:    l.WidthIn,
			})
		}

		result.Details = append(result.Details, detail)
	}

	return result
}

type detailJson struct {
	DetailName      string      `json:"detail_name"`
	DetailType      string      `json:"detail_type"`
	MeasurementType string      `json:"measurement_type"`
	ScopeQuantity   *float64    `json:"scope_quantity"`
	ScopeUnit       string      `json:"scope_unit"`
	Layers          []layerJson `json:"layers"`
}

type layerJson struct {
	Position   int      `json:"position"`
	Material   string   `json:"material"`
	PricingKey string   `json:"pricing_key"`
	Notes      string   `json:"notes"`
	WidthIn    *float64 `json:"width_in"`
}
