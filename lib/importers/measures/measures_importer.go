package measures

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/pescuma/takeoff/lib/consoles"
	"github.com/pescuma/takeoff/lib/model"
)

// Importer loads a measurements file: the numbers the estimator took off
// the drawings by hand, in the scalar form, the itemized form or a mix.
type Importer struct {
	console consoles.Console
}

func NewImporter(console consoles.Console) *Importer {
	return &Importer{
		console: console,
	}
}

func (i *Importer) Import(path string) (*model.Measurements, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %v", path)
	}

	var file MeasurementsJson
	err = json.Unmarshal(contents, &file)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %v", path)
	}

	result, err := file.ToModel()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid measurements in %v", path)
	}

	i.console.Printf("Loaded measurements: %.0f sqft, %.0f LF perimeter\n",
		result.ComputedRoofArea(), result.PerimeterLf)

	return result, nil
}

// MeasurementsJson is the wire form of the measurement aggregate, shared by
// the measurements file and the server request bodies.
type MeasurementsJson struct {
	TotalRoofAreaSqft float64  `json:"total_roof_area_sqft"`
	PerimeterLf       float64  `json:"perimeter_lf"`
	ParapetLengthLf   *float64 `json:"parapet_length_lf"`
	ParapetHeightFt   *float64 `json:"parapet_height_ft"`

	RoofDrains             int `json:"roof_drains"`
	Scuppers               int `json:"scuppers"`
	MechanicalUnits        int `json:"mechanical_units"`
	SleeperCurbs           int `json:"sleeper_curbs"`
	VentHoods              int `json:"vent_hoods"`
	GasPenetrations        int `json:"gas_penetrations"`
	ElectricalPenetrations int `json:"electrical_penetrations"`
	PlumbingVents          int `json:"plumbing_vents"`

	TaperedAreaSqft *float64 `json:"tapered_area_sqft"`
	BallastAreaSqft *float64 `json:"ballast_area_sqft"`

	System  string        `json:"system"`
	Toggles *togglesJson  `json:"toggles"`
	Options *modifierJson `json:"modifiers"`

	RoofSections      []roofSectionJson      `json:"roof_sections"`
	PerimeterSections []perimeterSectionJson `json:"perimeter_sections"`
	Curbs             []curbJson             `json:"curbs"`
	Vents             []ventJson             `json:"vents"`
	WoodWork          []woodWorkJson         `json:"wood_work"`
	BattInsulation    []battJson             `json:"batt_insulation"`
}

func (j *MeasurementsJson) ToModel() (*model.Measurements, error) {
	result := model.NewMeasurements(j.TotalRoofAreaSqft, j.PerimeterLf)

	if j.ParapetLengthLf != nil {
		result.ParapetLengthLf = *j.ParapetLengthLf
	}
	if j.ParapetHeightFt != nil {
		result.ParapetHeightFt = *j.ParapetHeightFt
	}

	result.RoofDrainCount = j.RoofDrains
	result.ScupperCount = j.Scuppers
	result.MechanicalUnitCount = j.MechanicalUnits
	result.SleeperCurbCount = j.SleeperCurbs
	result.VentHoodCount = j.VentHoods
	result.GasPenetrationCount = j.GasPenetrations
	result.ElectricalPenetrationCount = j.ElectricalPenetrations
	result.PlumbingVentCount = j.PlumbingVents

	result.TaperedAreaSqft = j.TaperedAreaSqft
	result.BallastAreaSqft = j.BallastAreaSqft

	if j.System != "" {
		system, ok := model.ParseSystemType(j.System)
		if !ok {
			return nil, errors.Errorf("unknown system type: %v", j.System)
		}
		result.System = system
	}

	if j.Toggles != nil {
		result.Toggles = model.MaterialToggles{
			VapourBarrier:     j.Toggles.VapourBarrier,
			Insulation:        j.Toggles.Insulation,
			Coverboard:        j.Toggles.Coverboard,
			TaperedInsulation: j.Toggles.TaperedInsulation,
			Drainage:          j.Toggles.Drainage,
		}
	}

	if j.Options != nil {
		result.Modifiers = model.ProjectModifiers{
			FloorCount:         j.Options.FloorCount,
			HotWork:            j.Options.HotWork,
			TearOff:            j.Options.TearOff,
			InteriorAccessOnly: j.Options.InteriorAccessOnly,
			Winter:             j.Options.Winter,
		}
	}

	for _, s := range j.RoofSections {
		result.RoofSections = append(result.RoofSections, &model.RoofSection{
			Name:     s.Name,
			Count:    max(s.Count, 1),
			LengthFt: s.LengthFt,
			WidthFt:  s.WidthFt,
		})
	}

	for _, s := range j.PerimeterSections {
		t, ok := model.ParsePerimeterType(s.Type)
		if !ok {
			return nil, errors.Errorf("unknown perimeter type: %v", s.Type)
		}

		section := model.NewPerimeterSection(s.Name, t, s.HeightIn, s.LengthFt)
		if s.Difficulty > 0 {
			section.Difficulty = s.Difficulty
		}

		result.PerimeterSections = append(result.PerimeterSections, section)
	}

	for _, c := range j.Curbs {
		curb := model.NewCurbDetail(c.Type, max(c.Count, 1), c.LengthIn, c.WidthIn, c.HeightIn)
		curb.Name = c.Name

		result.Curbs = append(result.Curbs, curb)
	}

	for _, v := range j.Vents {
		result.Vents = append(result.Vents, model.NewVentItem(v.Type, max(v.Count, 1), v.Difficulty))
	}

	for _, w := range j.WoodWork {
		section := model.NewWoodWorkSection(w.Name, w.LengthFt, w.HeightFt)
		if w.AreaSqft > 0 {
			section.AreaSqft = w.AreaSqft
		}
		if w.SpacingIn > 0 {
			section.SpacingIn = w.SpacingIn
		}
		if w.Layers > 0 {
			section.Layers = w.Layers
		}

		result.WoodWork = append(result.WoodWork, section)
	}

	for _, b := range j.BattInsulation {
		result.BattInsulation = append(result.BattInsulation,
			model.NewBattInsulationSection(b.Name, b.LengthFt, b.HeightFt))
	}

	return result, nil
}

type togglesJson struct {
	VapourBarrier     bool `json:"vapour_barrier"`
	Insulation        bool `json:"insulation"`
	Coverboard        bool `json:"coverboard"`
	TaperedInsulation bool `json:"tapered_insulation"`
	Drainage          bool `json:"drainage"`
}

type modifierJson struct {
	FloorCount         int  `json:"floor_count"`
	HotWork            bool `json:"hot_work"`
	TearOff            bool `json:"tear_off"`
	InteriorAccessOnly bool `json:"interior_access_only"`
	Winter             bool `json:"winter"`
}

type roofSectionJson struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	LengthFt float64 `json:"length_ft"`
	WidthFt  float64 `json:"width_ft"`
}

type perimeterSectionJson struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	HeightIn   float64 `json:"height_in"`
	LengthFt   float64 `json:"length_ft"`
	Difficulty int     `json:"difficulty"`
}

type curbJson struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	LengthIn float64 `json:"length_in"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

type ventJson struct {
	Type       string `json:"type"`
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty"`
}

type woodWorkJson struct {
	Name      string  `json:"name"`
	LengthFt  float64 `json:"length_ft"`
	HeightFt  float64 `json:"height_ft"`
	AreaSqft  float64 `json:"area_sqft"`
	SpacingIn float64 `json:"spacing_in"`
	Layers    int     `json:"layers"`
}

type battJson struct {
	Name     string  `json:"name"`
	LengthFt float64 `json:"length_ft"`
	HeightFt float64 `json:"height_ft"`
}
