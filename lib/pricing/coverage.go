package pricing

// UnitScope is a material's own intrinsic way of being quantified, which is
// independent of how the detail containing it is measured.
type UnitScope int

const (
	ScopeDiscrete UnitScope = iota
	ScopeArea
	ScopeLinear
)

func (s UnitScope) String() string {
	switch s {
	case ScopeDiscrete:
		return "each"
	case ScopeArea:
		return "area"
	case ScopeLinear:
		return "linear"
	default:
		return "<unknown>"
	}
}

// Coverage is how much one purchase unit of a material covers.
type Coverage struct {
	SqftPerUnit float64
	LfPerUnit   float64
	Each        bool
	Unit        string
}

func (c Coverage) Scope() UnitScope {
	switch {
	case c.Each:
		return ScopeDiscrete
	case c.SqftPerUnit > 0:
		return ScopeArea
	default:
		return ScopeLinear
	}
}

// CoverageFor returns the coverage rate for a pricing key. Materials absent
// from this table have no known coverage and default to a single unit when
// nested in area or linear details.
func CoverageFor(pricingKey string) (Coverage, bool) {
	c, ok := coverageRates[pricingKey]
	return c, ok
}

var coverageRates = map[string]Coverage{
	"Primer":                          {SqftPerUnit: 250, Unit: "pail"},
	"Base_Membrane":                   {SqftPerUnit: 100, Unit: "roll"},
	"Cap_Membrane":                    {SqftPerUnit: 86, Unit: "roll"},
	"SBS_Membrane":                    {SqftPerUnit: 100, Unit: "roll"},
	"EPDM_Membrane":                   {SqftPerUnit: 100, Unit: "roll"},
	"EPDM_Membrane_60mil":             {SqftPerUnit: 1000, Unit: "roll"},
	"TPO_Membrane":                    {SqftPerUnit: 1000, Unit: "roll"},
	"PVC_Membrane":                    {SqftPerUnit: 100, Unit: "roll"},
	"Vapour_Barrier_Membrane":         {SqftPerUnit: 200, Unit: "roll"},
	"Vapour_Barrier_Sopravapor":       {SqftPerUnit: 500, Unit: "roll"},
	"EPDM_Accessory":                  {SqftPerUnit: 50, Unit: "roll"},
	"TPO_Accessory":                   {SqftPerUnit: 50, Unit: "piece"},
	"Polyisocyanurate_ISO_Insulation": {SqftPerUnit: 16, Unit: "sheet (4'x4')"},
	"ISO_2_5_inch":                    {SqftPerUnit: 16, Unit: "sheet (4'x4')"},
	"Tapered_ISO":                     {SqftPerUnit: 1, Unit: "sqft"},
	"XPS_Insulation":                  {SqftPerUnit: 16, Unit: "sheet (2'x8')"},
	"Fiberboard_Insulation":           {SqftPerUnit: 8, Unit: "sheet (2'x4')"},
	"Batt_Insulation":                 {SqftPerUnit: 40, Unit: "bundle"},
	"DensDeck_Coverboard":             {SqftPerUnit: 32, Unit: "sheet (4'x8')"},
	"Densdeck_Half_Inch":              {SqftPerUnit: 32, Unit: "sheet (4'x8')"},
	"Gypsum_Fiber_Coverboard":         {SqftPerUnit: 32, Unit: "sheet (4'x8')"},
	"Soprasmart_ISO_HD":               {SqftPerUnit: 32, Unit: "sheet (4'x8')"},
	"Drainage_Board":                  {SqftPerUnit: 300, Unit: "roll (6'x50')"},
	"EPDM_Drainage_Mat":               {SqftPerUnit: 300, Unit: "roll (6'x50')"},
	"EPDM_Filter_Fabric":              {SqftPerUnit: 300, Unit: "roll"},
	"Fleece_Reinforcement_Fabric":     {SqftPerUnit: 300, Unit: "roll"},
	"Flashing_General":                {LfPerUnit: 10, Unit: "10ft piece"},
	"Coated_Metal_Sheet":              {SqftPerUnit: 40, Unit: "sheet (4'x10')"},
	"Metal_Panel":                     {LfPerUnit: 1, Unit: "lin ft"},
	"Standing_Seam_Metal":             {LfPerUnit: 1, Unit: "lin ft"},
	"Drip_Edge":                       {LfPerUnit: 10, Unit: "10ft piece"},
	"Wood_Blocking_Lumber":            {LfPerUnit: 8, Unit: "8ft piece"},
	"Plywood_Sheathing":               {LfPerUnit: 8, Unit: "4'x8' sheet"},
	"Mastic":                          {SqftPerUnit: 500, Unit: "pail"},
	"Adhesive":                        {SqftPerUnit: 200, Unit: "pail"},
	"Adhesive_Elastocol":              {SqftPerUnit: 333, Unit: "pail (19L)"},
	"EPDM_Bonding_Adhesive":           {SqftPerUnit: 300, Unit: "pail"},
	"EPDM_Primer_HP250":               {SqftPerUnit: 50, Unit: "gallon"},
	"EPDM_Seam_Tape":                  {LfPerUnit: 100, Unit: "roll"},
	"TPO_Flashing_24in":               {LfPerUnit: 50, Unit: "roll"},
	"TPO_Flashing_12in":               {LfPerUnit: 50, Unit: "roll"},
	"Sealant_General":                 {LfPerUnit: 20, Unit: "tube"},
	"EPDM_Lap_Sealant":                {LfPerUnit: 20, Unit: "tube"},
	"TPO_Lap_Sealant":                 {LfPerUnit: 20, Unit: "tube"},
	"Coating_Paint":                   {SqftPerUnit: 200, Unit: "pail"},
	"Tape":                            {LfPerUnit: 150, Unit: "roll"},
	"Roof_Tape_IKO":                   {LfPerUnit: 75, Unit: "roll"},
	"Sopralap_Cover_Strip":            {LfPerUnit: 33, Unit: "roll"},
	"Walkway_Pads":                    {SqftPerUnit: 12, Unit: "pad"},
	"Roof_Drain":                      {Each: true, Unit: "EA"},
	"Scupper":                         {Each: true, Unit: "EA"},
	"Gooseneck_Vent":                  {Each: true, Unit: "EA"},
	"Pipe_Boot_Seal":                  {Each: true, Unit: "EA"},
	"EPDM_Pipe_Flashing":              {Each: true, Unit: "EA"},
	"TPO_Pipe_Boot":                   {Each: true, Unit: "EA"},
	"TPO_Corner":                      {Each: true, Unit: "EA"},
	"EPDM_PS_Corner":                  {Each: true, Unit: "EA"},
	"Plumbing_Vent":                   {Each: true, Unit: "EA"},
	"Vent_Cap":                        {Each: true, Unit: "EA"},
	"Roof_Hatch":                      {Each: true, Unit: "EA"},
	"Roof_Anchor":                     {Each: true, Unit: "EA"},
	"Gutter_Downpipe":                 {Each: true, Unit: "EA"},
	"Clips":                           {Each: true, Unit: "piece"},
	"Fasteners":                       {SqftPerUnit: 100, Unit: "box (1M)"},
	"Insulation_Plates":               {SqftPerUnit: 100, Unit: "box (1M)"},
	"Nails_Staples":                   {SqftPerUnit: 200, Unit: "box"},
	"Screws":                          {SqftPerUnit: 100, Unit: "box"},
	"Equipment_Torch":                 {SqftPerUnit: 100, Unit: "roll"},
}
