package model

// Analysis is the output of the spatial extraction service: per-page plan
// counts and detail assemblies read from drawing pages. Every field may be
// missing or partial; consumers must tolerate that.
type Analysis struct {
	PlanPages   []*PlanPage
	DetailPages []*DetailPage
}

func NewAnalysis() *Analysis {
	return &Analysis{}
}

// AllDetails returns the detail assemblies in document order, skipping
// pages the extractor failed to parse.
func (a *Analysis) AllDetails() []*DetailAssembly {
	var result []*DetailAssembly

	for _, page := range a.DetailPages {
		if page.ParseError {
			continue
		}
		for _, d := range page.Details {
			if d.DrawingRef == "" {
				d.DrawingRef = page.DrawingRef
			}
			result = append(result, d)
		}
	}

	return result
}

// AggregateCounts sums the plan-level item counts across pages, skipping
// pages with parse errors.
func (a *Analysis) AggregateCounts() map[string]int {
	counts := map[string]int{}

	for _, page := range a.PlanPages {
		if page.ParseError {
			continue
		}
		for k, v := range page.Counts {
			counts[k] += v
		}
	}

	return counts
}

// PlanQuantities merges the per-page plan-reported detail quantities. The
// first page reporting a name wins.
func (a *Analysis) PlanQuantities() map[string]PlanQuantity {
	result := map[string]PlanQuantity{}

	for _, page := range a.PlanPages {
		if page.ParseError {
			continue
		}
		for name, q := range page.DetailQuantities {
			if _, ok := result[name]; !ok {
				result[name] = q
			}
		}
	}

	return result
}

type PlanPage struct {
	DrawingRef string
	Scale      string
	ParseError bool

	Counts           map[string]int
	DetailQuantities map[string]PlanQuantity
	Zones            []*Zone
}

// PlanQuantity is a quantity the extractor read off a plan view and
// attributed to a named detail.
type PlanQuantity struct {
	Quantity float64
	Unit     string
}

type Zone struct {
	Name         string
	AssemblyType string
	DetailRefs   []string
	Notes        string
}

type DetailPage struct {
	DrawingRef string
	ParseError bool
	Details    []*DetailAssembly
}

// DetailAssembly is one detail drawing: a named build-up of material layers
// with an optional extractor-estimated scope quantity.
type DetailAssembly struct {
	Name            string
	Type            string
	DrawingRef      string
	MeasurementType MeasurementType

	// quantity read from annotations on the detail itself, if any
	ScopeQuantity *float64
	ScopeUnit     string

	Layers []*MaterialLayer
}

// MaterialLayer is one layer of a detail assembly, bottom to top.
type MaterialLayer struct {
	Position   int
	Material   string
	PricingKey string
	Notes      string

	// cross-sectional width of the layer, when the drawing gives one
	WidthIn *float64
}

// MeasurementType is how the parent detail is measured on the drawings.
// Individual layers may still resolve in their own unit scope.
type MeasurementType string

const (
	MeasuredEach     MeasurementType = "each"
	MeasuredSqft     MeasurementType = "sqft"
	MeasuredLinearFt MeasurementType = "linear_ft"
)

// detailTypeAttrs maps a detail type to the measurement attribute used as
// the global quantity fallback.
var detailTypeAttrs = map[string]MeasurementAttr{
	"field_assembly":         AttrRoofArea,
	"parapet":                AttrParapetLength,
	"curtain_wall":           AttrParapetLength,
	"drain":                  AttrRoofDrains,
	"mechanical_curb":        AttrMechanicalUnits,
	"sleeper_curb":           AttrSleeperCurbs,
	"penetration_gas":        AttrGasPenetrations,
	"penetration_electrical": AttrElectricalPenetrations,
	"penetration_plumbing":   AttrPlumbingVents,
	"vent_hood":              AttrVentHoods,
	"scupper":                AttrScuppers,
	"expansion_joint":        AttrPerimeter,
	"pipe_support":           AttrPlumbingVents,
	"opening_cover":          AttrMechanicalUnits,
}

func MeasurementAttrForDetailType(detailType string) MeasurementAttr {
	attr, ok := detailTypeAttrs[detailType]
	if !ok {
		return AttrNone
	}
	return attr
}
