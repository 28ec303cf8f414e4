package pricing

// Built-in catalogs, aggregated from supplier price lists. The general
// catalog is searched first, then the system-specific and common ones.

func DefaultCatalogs() []*Catalog {
	return []*Catalog{
		GeneralCatalog(),
		EPDMCatalog(),
		TPOCatalog(),
		CommonCatalog(),
	}
}

func GeneralCatalog() *Catalog {
	return NewCatalog("general", map[string]*Entry{
		"DensDeck_Coverboard":             {"DensDeck Coverboard", "Coverboard", 33.52, "SHT"},
		"Gypsum_Fiber_Coverboard":         {"Gypsum Fiber Coverboard", "Coverboard", 29.62, "Sheet"},
		"Drainage_Board":                  {"Drainage Board", "Drainage", 410.53, "Roll"},
		"Gutter_Downpipe":                 {"Gutter / Downpipe", "Drainage", 13.60, "Piece"},
		"Roof_Drain":                      {"Roof Drain", "Drainage", 181.77, "EA"},
		"Scupper":                         {"Scupper", "Drainage", 74.83, "EA"},
		"Clips":                           {"Clips", "Fasteners & Hardware", 10.19, "Piece"},
		"Fasteners":                       {"Fasteners", "Fasteners & Hardware", 447.76, "PL"},
		"Insulation_Plates":               {"Insulation Plates", "Fasteners & Hardware", 269.38, "PL"},
		"Nails_Staples":                   {"Nails / Staples", "Fasteners & Hardware", 29.75, "Box"},
		"Roof_Anchor":                     {"Roof Anchor", "Fasteners & Hardware", 16.99, "Box"},
		"Screws":                          {"Screws", "Fasteners & Hardware", 39.96, "Box"},
		"Batt_Insulation":                 {"Batt Insulation", "Insulation", 91.90, "Bdl"},
		"Fiberboard_Insulation":           {"Fiberboard Insulation", "Insulation", 24.85, "SH"},
		"Polyisocyanurate_ISO_Insulation": {"Polyisocyanurate (ISO) Insulation", "Insulation", 43.62, "Sheet"},
		"XPS_Insulation":                  {"XPS Insulation", "Insulation", 35.53, "Sheet"},
		"Base_Membrane":                   {"Base Membrane", "Membranes", 193.85, "RL"},
		"Cap_Membrane":                    {"Cap Membrane", "Membranes", 216.95, "Roll"},
		"EPDM_Accessory":                  {"EPDM Accessory", "Membranes", 398.99, "Roll"},
		"EPDM_Membrane":                   {"EPDM Membrane", "Membranes", 1119.86, "roll"},
		"PVC_Membrane":                    {"PVC Membrane", "Membranes", 810.07, "Roll"},
		"SBS_Membrane":                    {"SBS Membrane", "Membranes", 298.00, "Roll"},
		"TPO_Accessory":                   {"TPO Accessory", "Membranes", 499.33, "Pce"},
		"TPO_Membrane":                    {"TPO Membrane", "Membranes", 2865.53, "Roll"},
		"Vapour_Barrier_Membrane":         {"Vapour Barrier Membrane", "Membranes", 173.66, "Roll"},
		"Coated_Metal_Sheet":              {"Coated Metal Sheet", "Metal Flashings & Accessories", 583.11, "Sheet"},
		"Drip_Edge":                       {"Drip Edge", "Metal Flashings & Accessories", 6.85, "EA"},
		"Flashing_General":                {"Flashing (General)", "Metal Flashings & Accessories", 174.46, "Piece"},
		"Metal_Panel":                     {"Metal Panel", "Metal Flashings & Accessories", 10.95, "lin foot"},
		"Standing_Seam_Metal":             {"Standing Seam Metal", "Metal Flashings & Accessories", 6.34, "Piece"},
		"Coating_Paint":                   {"Coating / Paint", "Miscellaneous", 1088.17, "Pail"},
		"Equipment_Torch":                 {"Equipment / Torch", "Miscellaneous", 220.19, "Roll"},
		"Fleece_Reinforcement_Fabric":     {"Fleece Reinforcement Fabric", "Miscellaneous", 1192.69, "Roll"},
		"Tape":                            {"Tape", "Miscellaneous", 425.57, "Piece"},
		"Walkway_Pads":                    {"Walkway Pads", "Pavers & Walkways", 590.10, "RL"},
		"Adhesive":                        {"Adhesive", "Sealants & Adhesives", 735.19, "PL"},
		"Adhesive_Elastocol":              {"Adhesive (Elastocol)", "Sealants & Adhesives", 99.74, "Pail"},
		"Mastic":                          {"Mastic", "Sealants & Adhesives", 359.30, "Piece"},
		"Primer":                          {"Primer", "Sealants & Adhesives", 282.83, "Pail"},
		"Sealant_General":                 {"Sealant (General)", "Sealants & Adhesives", 29.86, "Tube"},
		"Gooseneck_Vent":                  {"Gooseneck Vent", "Vents & Penetrations", 53.21, "Piece"},
		"Pipe_Boot_Seal":                  {"Pipe Boot / Seal", "Vents & Penetrations", 50.48, "EA"},
		"Plumbing_Vent":                   {"Plumbing Vent", "Vents & Penetrations", 21.87, "Piece"},
		"Roof_Hatch":                      {"Roof Hatch", "Vents & Penetrations", 1822.12, "Piece"},
		"Vent_Cap":                        {"Vent Cap", "Vents & Penetrations", 57.75, "Piece"},
		"Plywood_Sheathing":               {"Plywood Sheathing", "Wood & Sheathing", 48.74, "Piece"},
		"Wood_Blocking_Lumber":            {"Wood Blocking / Lumber", "Wood & Sheathing", 16.59, "Piece"},
	})
}

func EPDMCatalog() *Catalog {
	return NewCatalog("epdm", map[string]*Entry{
		"EPDM_Membrane_60mil":   {"EPDM Membrane 60 mil", "Membranes", 1119.86, "roll"},
		"EPDM_Membrane_45mil":   {"EPDM Membrane 45 mil", "Membranes", 1000.00, "roll"},
		"EPDM_Filter_Fabric":    {"Filter Fabric (Soprafilter)", "Drainage", 380.25, "roll"},
		"EPDM_Drainage_Mat":     {"Drainage Mat (Sopradrain 15G)", "Drainage", 215.70, "roll"},
		"EPDM_Seam_Tape":        {"EPDM Seam Tape", "EPDM Accessories", 104.86, "roll"},
		"EPDM_PS_Corner":        {"EPDM Peel & Stick Corner", "EPDM Accessories", 10.75, "piece"},
		"EPDM_Pipe_Flashing":    {"EPDM Pipe Flashing", "EPDM Accessories", 71.65, "piece"},
		"EPDM_Curb_Flash":       {"EPDM Curb Flashing", "EPDM Accessories", 438.00, "roll"},
		"EPDM_RUSS_6":           {"RUSS 6 inch EPDM Accessory", "EPDM Accessories", 307.22, "roll"},
		"EPDM_Primer_HP250":     {"EPDM HP-250 Primer", "Sealants & Adhesives", 52.55, "gallon"},
		"EPDM_Bonding_Adhesive": {"EPDM Bonding Adhesive 90-8-30A", "Sealants & Adhesives", 198.95, "pail"},
		"EPDM_Cav_Grip":         {"Cav Grip Adhesive", "Sealants & Adhesives", 1000.00, "cylinder"},
		"EPDM_Lap_Sealant":      {"EPDM Lap Sealant", "Sealants & Adhesives", 12.71, "tube"},
		"EPS_Insulation_EPDM":   {"EPS Insulation (for EPDM Inverted)", "Insulation", 0.31, "sheet"},
		"XPS_Dow_EPDM":          {"Dow XPS (for EPDM)", "Insulation", 52.48, "sheet"},
	})
}

func TPOCatalog() *Catalog {
	return NewCatalog("tpo", map[string]*Entry{
		"TPO_Flashing_24in":             {"TPO Flashing 24 inch", "TPO Accessories", 565.00, "roll"},
		"TPO_Flashing_12in":             {"TPO Flashing 12 inch", "TPO Accessories", 285.00, "roll"},
		"TPO_Pipe_Boot":                 {"TPO Universal Pipe Boot", "TPO Accessories", 43.25, "piece"},
		"TPO_Corner":                    {"TPO Inside/Outside Corner", "TPO Accessories", 16.75, "piece"},
		"TPO_Rhinobond_Plate":           {"Rhinobond Plate", "TPO Fasteners", 603.75, "pallet"},
		"TPO_Screws":                    {"TPO Fastening Screws", "TPO Fasteners", 375.00, "box"},
		"TPO_Tuck_Tape":                 {"Tuck Tape", "TPO Accessories", 0.96, "roll"},
		"TPO_Lap_Sealant":               {"TPO Lap Sealant", "Sealants & Adhesives", 12.71, "tube"},
		"TPO_Primer":                    {"TPO Primer", "Sealants & Adhesives", 63.50, "gallon"},
		"TPO_Bonding_Adhesive_SureWeld": {"TPO Bonding Adhesive SureWeld", "Sealants & Adhesives", 205.60, "pail"},
	})
}

func CommonCatalog() *Catalog {
	return NewCatalog("common", map[string]*Entry{
		"Vapour_Barrier_Sopravapor": {"Sopravap'r WG 45in", "Vapour Barrier", 324.95, "roll"},
		"Vapour_Barrier_TieIn":      {"Vapour Barrier Tie In", "Vapour Barrier", 50.00, "allowance"},
		"ISO_2_5_inch":              {"2.5 inch ISO Glass", "Insulation", 25.60, "sheet"},
		"Tapered_ISO":               {"Tapered Insulation", "Insulation", 3.10, "sqft"},
		"Densdeck_Half_Inch":        {"Densdeck Primed 1/2 inch", "Coverboard", 34.20, "sheet"},
		"Soprasmart_ISO_HD":         {"Soprasmart ISO HD 1/2 inch", "Coverboard", 63.55, "sheet"},
		"Duotack_Adhesive":          {"Duotack Foamable Adhesive", "Sealants & Adhesives", 58.00, "case"},
		"Elastocol_Stick":           {"Elastocol Stick 19L", "Sealants & Adhesives", 160.00, "pail"},
		"Roof_Tape_IKO":             {"IKO 6 inch Roof Tape", "Roofing Accessories", 27.90, "roll"},
		"Sopralap_Cover_Strip":      {"Sopralap Cover Strip", "Roofing Accessories", 42.00, "roll"},
	})
}
