package systems

import (
	"math"

	"github.com/pescuma/takeoff/lib/model"
)

// All returns the supported systems. SBS first: it doubles as the fallback.
func All() []*System {
	return []*System{sbs(), epdmFullyAdhered(), epdmBallasted(), tpoMechanicallyAttached(), tpoFullyAdhered()}
}

// Linear and unit sections are shared between systems; only the pipe seal
// product differs.
func commonLinearItems() []LinearItem {
	return []LinearItem{
		{"Metal Cap Flashing (24ga prefinished galv.)", "Flashing_General", "10ft piece", 10, FromParapet, 0.10, model.GroupFlashing},
		{"Metal Counter Flashing (24ga prefinished galv.)", "Flashing_General", "10ft piece", 10, FromParapet, 0.10, model.GroupFlashing},
		{"Wood Blocking (SPF 2x)", "Wood_Blocking_Lumber", "8ft piece", 8, FromParapet, 0.15, model.GroupFlashing},
		{"Plywood Sheathing (12.5mm Douglas Fir)", "Plywood_Sheathing", "4'x8' sheet", 8, FromParapet, 0.15, model.GroupFlashing},
	}
}

func commonUnitItems(pipeSealKey, pipeSealName string) []UnitItem {
	return []UnitItem{
		{"Roof Drain Insert (spun aluminum, OMG/Thaler)", "Roof_Drain", "EA", model.AttrRoofDrains, 1, model.GroupRoofing},
		{"Overflow Scupper", "Scupper", "EA", model.AttrScuppers, 1, model.GroupRoofing},
		{"Mechanical Unit Curb Flashing", "Flashing_General", "EA", model.AttrMechanicalUnits, 4, model.GroupMechanical},
		{"Sleeper Curb Flashing", "Flashing_General", "EA", model.AttrSleeperCurbs, 2, model.GroupMechanical},
		{"Vent Hood Flashing", "Gooseneck_Vent", "EA", model.AttrVentHoods, 1, model.GroupRoofing},
		{"Gas " + pipeSealName, pipeSealKey, "EA", model.AttrGasPenetrations, 1, model.GroupRoofing},
		{"Electrical " + pipeSealName, pipeSealKey, "EA", model.AttrElectricalPenetrations, 1, model.GroupRoofing},
		{"Plumbing Vent Flashing", "Plumbing_Vent", "EA", model.AttrPlumbingVents, 1, model.GroupRoofing},
	}
}

func sbs() *System {
	return &System{
		Type: model.SystemSBS,
		Meta: Meta{
			DisplayName:          "Inverted Modified Bitumen (2-Ply SBS) - Soprema System",
			SpecRef:              "Div 07 52 01 / 07 62 00 / 07 92 00",
			LabourMultiplier:     1.65,
			LabourNote:           "Labour typically 1.5-1.8x material for SBS torch-applied",
			MechanicalMultiplier: 1.80,
			GeneralReqsPct:       0.10,
			IncludeBallastNote:   true,
		},
		AreaLayers: []AreaLayer{
			{"Asphaltic Primer", "Primer", "pail (5 gal)", 250, FromRoofArea, 0.05, model.GroupRoofing, CatAccessory},
			{"SBS Base Sheet (Sopraply Base 520)", "Base_Membrane", "roll", 100, FromRoofArea, 0.15, model.GroupRoofing, CatMembrane},
			{"SBS Cap Sheet (Sopraply Traffic Cap)", "Cap_Membrane", "roll", 86, FromRoofArea, 0.15, model.GroupRoofing, CatMembrane},
			{"Tapered ISO Insulation (Soprasmart Board 2:1)", "Polyisocyanurate_ISO_Insulation", "sheet (4'x4')", 16, FromTaperedArea, 0.10, model.GroupRoofing, CatTaperedInsulation},
			{"XPS Insulation (Sopra-XPS 40 Type 4)", "XPS_Insulation", "sheet (2'x8')", 16, FromRoofArea, 0.10, model.GroupRoofing, CatInsulation},
			{"Drainage Board (Sopradrain EcoVent)", "Drainage_Board", "roll (6'x50')", 300, FromRoofArea, 0.10, model.GroupRoofing, CatDrainage},
			{"Filter Fabric", "Fleece_Reinforcement_Fabric", "roll", 300, FromRoofArea, 0.10, model.GroupRoofing, CatDrainage},
		},
		LinearItems: commonLinearItems(),
		UnitItems:   commonUnitItems("Pipe_Boot_Seal", "Penetration Seal"),
		Consumables: []Consumable{
			{"Mastic (Sopramastic)", "Mastic", "pail", 2, model.GroupRoofing},
			{"Elastocol Adhesive", "Adhesive_Elastocol", "pail (19L)", 3, model.GroupRoofing},
			{"Polyurethane Sealant (Dymonic 100 / NP1)", "Sealant_General", "tube", 6, model.GroupFlashing},
		},
		Addenda: []Addendum{
			// end laps get a cover strip; one roll serves three cap rolls
			{"Sopralap Cover Strip (end laps)", "Sopralap_Cover_Strip", "roll", model.GroupRoofing,
				func(m *model.Measurements, pass *PassState) float64 {
					return math.Ceil(pass.Units("Cap_Membrane") / 3)
				}},
		},
		StripKey:     "Cap_Membrane",
		PipeSealKey:  "Pipe_Boot_Seal",
		PipeSealName: "Penetration Seal",
	}
}

func epdmFullyAdhered() *System {
	return &System{
		Type: model.SystemEPDMFullyAdhered,
		Meta: Meta{
			DisplayName:          "EPDM 60 mil Fully Adhered System",
			SpecRef:              "Div 07 53 23",
			LabourMultiplier:     1.55,
			LabourNote:           "Labour typically 1.4-1.6x material for EPDM fully adhered",
			MechanicalMultiplier: 1.80,
			GeneralReqsPct:       0.10,
		},
		AreaLayers: []AreaLayer{
			{"Vapour Barrier (Sopravap'r WG 45\")", "Vapour_Barrier_Sopravapor", "roll (45\" x 5Sq)", 500, FromRoofArea, 0.10, model.GroupRoofing, CatVapourBarrier},
			{"ISO Insulation 2.5\" (Sopra-ISO)", "ISO_2_5_inch", "sheet (4'x4')", 16, FromRoofArea, 0.10, model.GroupRoofing, CatInsulation},
			{"Tapered ISO Insulation (drainage slope)", "Tapered_ISO", "sqft", 1, FromTaperedArea, 0.10, model.GroupRoofing, CatTaperedInsulation},
			{"Densdeck Coverboard 1/2\"", "Densdeck_Half_Inch", "sheet (4'x8')", 32, FromRoofArea, 0.10, model.GroupRoofing, CatCoverboard},
			{"EPDM Membrane 60 mil (Carlisle Sure-Seal)", "EPDM_Membrane_60mil", "roll (10'x100')", 1000, FromRoofArea, 0.10, model.GroupRoofing, CatMembrane},
			{"EPDM Bonding Adhesive 90-8-30A", "EPDM_Bonding_Adhesive", "pail (5 gal)", 300, FromRoofArea, 0.05, model.GroupRoofing, CatAccessory},
			{"EPDM Seam Tape 3\"x100'", "EPDM_Seam_Tape", "roll (100 lf)", 1000, FromRoofArea, 0.10, model.GroupRoofing, CatAccessory},
		},
		LinearItems: commonLinearItems(),
		UnitItems:   commonUnitItems("EPDM_Pipe_Flashing", "EPDM Pipe Flashing (1\"-6\")"),
		Consumables: []Consumable{
			{"EPDM Lap Sealant", "EPDM_Lap_Sealant", "tube", 4, model.GroupRoofing},
			{"Duotack Foamable Adhesive (insulation bonding)", "Duotack_Adhesive", "case", 2, model.GroupRoofing},
			{"Polyurethane Sealant (Dymonic 100 / NP1)", "Sealant_General", "tube", 4, model.GroupFlashing},
		},
		Addenda: []Addendum{
			// seam primer is driven by the membrane rolls already counted:
			// each roll contributes ~100 LF of seam, a gallon primes 200 LF
			{"EPDM Primer HP-250 (seams)", "EPDM_Primer_HP250", "gallon", model.GroupRoofing,
				func(m *model.Measurements, pass *PassState) float64 {
					return math.Ceil(pass.Units("EPDM_Membrane_60mil") * 100 / 200)
				}},
			{"EPDM Peel & Stick Corners", "EPDM_PS_Corner", "piece", model.GroupRoofing,
				func(m *model.Measurements, pass *PassState) float64 {
					return float64(2 * m.TotalPenetrations())
				}},
		},
		StripKey:     "EPDM_Accessory",
		PipeSealKey:  "EPDM_Pipe_Flashing",
		PipeSealName: "EPDM Pipe Flashing (1\"-6\")",
	}
}

func epdmBallasted() *System {
	return &System{
		Type: model.SystemEPDMBallasted,
		Meta: Meta{
			DisplayName:          "EPDM 60 mil Ballasted / Inverted System",
			SpecRef:              "Div 07 53 23",
			LabourMultiplier:     1.40,
			LabourNote:           "Labour typically 1.3-1.5x material for EPDM ballasted",
			MechanicalMultiplier: 1.70,
			GeneralReqsPct:       0.10,
			IncludeBallastNote:   true,
		},
		AreaLayers: []AreaLayer{
			{"Vapour Barrier (Sopravap'r WG 45\")", "Vapour_Barrier_Sopravapor", "roll (45\" x 5Sq)", 500, FromRoofArea, 0.10, model.GroupRoofing, CatVapourBarrier},
			{"EPDM Membrane 60 mil (Carlisle Sure-Seal, loose laid)", "EPDM_Membrane_60mil", "roll (10'x100')", 1000, FromRoofArea, 0.10, model.GroupRoofing, CatMembrane},
			{"EPS Insulation Type II (2 layers x 2.5\")", "EPS_Insulation_EPDM", "sheet (4'x4')", 8, FromBallastArea, 0.10, model.GroupRoofing, CatInsulation},
			{"Filter Fabric (Soprafilter)", "EPDM_Filter_Fabric", "roll", 300, FromBallastArea, 0.10, model.GroupRoofing, CatDrainage},
			{"Drainage Mat (Sopradrain 15G 6'x50')", "EPDM_Drainage_Mat", "roll (6'x50')", 300, FromRoofArea, 0.10, model.GroupRoofing, CatDrainage},
			{"EPDM Seam Tape 3\"x100'", "EPDM_Seam_Tape", "roll (100 lf)", 1000, FromRoofArea, 0.10, model.GroupRoofing, CatAccessory},
		},
		LinearItems: commonLinearItems(),
		UnitItems:   commonUnitItems("EPDM_Pipe_Flashing", "EPDM Pipe Flashing (1\"-6\")"),
		Consumables: []Consumable{
			{"EPDM Lap Sealant", "EPDM_Lap_Sealant", "tube", 4, model.GroupRoofing},
			{"Polyurethane Sealant (Dymonic 100 / NP1)", "Sealant_General", "tube", 4, model.GroupFlashing},
		},
		Addenda: []Addendum{
			{"EPDM Primer HP-250 (seams)", "EPDM_Primer_HP250", "gallon", model.GroupRoofing,
				func(m *model.Measurements, pass *PassState) float64 {
					return math.Ceil(pass.Units("EPDM_Membrane_60mil") * 100 / 200)
				}},
		},
		StripKey:     "EPDM_Accessory",
		PipeSealKey:  "EPDM_Pipe_Flashing",
		PipeSealName: "EPDM Pipe Flashing (1\"-6\")",
	}
}

func tpoMechanicallyAttached() *System {
	return &System{
		Type: model.SystemTPOMechanicallyAttached,
		Meta: Meta{
			DisplayName:          "TPO 60 mil Mechanically Attached System",
			SpecRef:              "Div 07 54 23",
			LabourMultiplier:     1.50,
			LabourNote:           "Labour typically 1.4-1.6x material for TPO mechanically attached",
			MechanicalMultiplier: 1.80,
			GeneralReqsPct:       0.10,
		},
		AreaLayers: []AreaLayer{
			{"Vapour Barrier (Sopravap'r WG 45\")", "Vapour_Barrier_Sopravapor", "roll (45\" x 5Sq)", 500, FromRoofArea, 0.10, model.GroupRoofing, CatVapourBarrier},
			{"ISO Insulation 2.5\" (Sopra-ISO)", "ISO_2_5_inch", "sheet (4'x4')", 16, FromRoofArea, 0.10, model.GroupRoofing, CatInsulation},
			{"Tapered ISO Insulation (drainage slope)", "Tapered_ISO", "sqft", 1, FromTaperedArea, 0.10, model.GroupRoofing, CatTaperedInsulation},
			{"Densdeck Coverboard 1/2\"", "Densdeck_Half_Inch", "sheet (4'x8')", 32, FromRoofArea, 0.10, model.GroupRoofing, CatCoverboard},
			{"TPO Membrane 60 mil (Sure-Weld)", "TPO_Membrane", "roll (10'x100')", 1000, FromRoofArea, 0.10, model.GroupRoofing, CatMembrane},
			{"Rhinobond Induction Weld Plates", "TPO_Rhinobond_Plate", "pallet", 4000, FromRoofArea, 0.05, model.GroupRoofing, CatAccessory},
			{"TPO Fastening Screws", "TPO_Screws", "box", 4000, FromRoofArea, 0.05, model.GroupRoofing, CatAccessory},
		},
		LinearItems: commonLinearItems(),
		UnitItems:   commonUnitItems("TPO_Pipe_Boot", "TPO Universal Pipe Boot"),
		Consumables: []Consumable{
			{"TPO Lap Sealant", "TPO_Lap_Sealant", "tube", 3, model.GroupRoofing},
			{"Polyurethane Sealant (Dymonic 100 / NP1)", "Sealant_General", "tube", 4, model.GroupFlashing},
		},
		Addenda: []Addendum{
			{"TPO Inside/Outside Corners", "TPO_Corner", "piece", model.GroupRoofing,
				func(m *model.Measurements, pass *PassState) float64 {
					return float64(4 * (m.MechanicalUnitCount + m.SleeperCurbCount))
				}},
		},
		StripKey:     "TPO_Accessory",
		PipeSealKey:  "TPO_Pipe_Boot",
		PipeSealName: "TPO Universal Pipe Boot",
	}
}

func tpoFullyAdhered() *System {
	return &System{
		Type: model.SystemTPOFullyAdhered,
		Meta: Meta{
			DisplayName:          "TPO 60 mil Fully Adhered System",
			SpecRef:              "Div 07 54 23",
			LabourMultiplier:     1.65,
			LabourNote:           "Labour typically 1.5-1.8x material for TPO fully adhered",
			MechanicalMultiplier: 1.80,
			GeneralReqsPct:       0.10,
		},
		AreaLayers: []AreaLayer{
			{"Vapour Barrier (Sopravap'r WG 45\")", "Vapour_Barrier_Sopravapor", "roll (45\" x 5Sq)", 500, FromRoofArea, 0.10, model.GroupRoofing, CatVapourBarrier},
			{"ISO Insulation 2.5\" (Sopra-ISO)", "ISO_2_5_inch", "sheet (4'x4')", 16, FromRoofArea, 0.10, model.GroupRoofing, CatInsulation},
			{"Tapered ISO Insulation (drainage slope)", "Tapered_ISO", "sqft", 1, FromTaperedArea, 0.10, model.GroupRoofing, CatTaperedInsulation},
			{"Soprasmart ISO HD 1/2\" (factory laminated coverboard)", "Soprasmart_ISO_HD", "sheet (4'x8')", 32, FromRoofArea, 0.10, model.GroupRoofing, CatCoverboard},
			{"TPO Membrane 60 mil (Sure-Weld)", "TPO_Membrane", "roll (10'x100')", 1000, FromRoofArea, 0.10, model.GroupRoofing, CatMembrane},
			{"TPO Bonding Adhesive (SureWeld)", "TPO_Bonding_Adhesive_SureWeld", "pail (5 gal)", 300, FromRoofArea, 0.05, model.GroupRoofing, CatAccessory},
		},
		LinearItems: commonLinearItems(),
		UnitItems:   commonUnitItems("TPO_Pipe_Boot", "TPO Universal Pipe Boot"),
		Consumables: []Consumable{
			{"TPO Lap Sealant", "TPO_Lap_Sealant", "tube", 3, model.GroupRoofing},
			{"Polyurethane Sealant (Dymonic 100 / NP1)", "Sealant_General", "tube", 4, model.GroupFlashing},
		},
		Addenda: []Addendum{
			// primer follows the welded seam length of the counted rolls
			{"TPO Primer (seams)", "TPO_Primer", "gallon", model.GroupRoofing,
				func(m *model.Measurements, pass *PassState) float64 {
					return math.Ceil(pass.Units("TPO_Membrane") * 100 / 100)
				}},
			{"TPO Inside/Outside Corners", "TPO_Corner", "piece", model.GroupRoofing,
				func(m *model.Measurements, pass *PassState) float64 {
					return float64(4 * (m.MechanicalUnitCount + m.SleeperCurbCount))
				}},
		},
		StripKey:     "TPO_Accessory",
		PipeSealKey:  "TPO_Pipe_Boot",
		PipeSealName: "TPO Universal Pipe Boot",
	}
}
