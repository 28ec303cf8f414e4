package model

// QuantitySource tags where a detail quantity came from, in priority order.
type QuantitySource int

const (
	SourcePlan QuantitySource = iota
	SourceDetailScope
	SourceMeasurements
	SourceDefault
)

func (s QuantitySource) String() string {
	switch s {
	case SourcePlan:
		return "plan"
	case SourceDetailScope:
		return "detail_scope"
	case SourceMeasurements:
		return "measurements"
	case SourceDefault:
		return "default"
	default:
		return "<unknown>"
	}
}

// DetailLayerItem is one priced layer inside a detail result.
type DetailLayerItem struct {
	Material   string
	PricingKey string
	Quantity   float64
	Unit       string
	UnitPrice  float64
	LineCost   float64
	Notes      string
	Warning    string
}

// DetailResult is the priced takeoff of one detected detail assembly.
type DetailResult struct {
	Name            string
	Type            string
	DrawingRef      string
	MeasurementType MeasurementType

	BaseQuantity   float64
	QuantitySource QuantitySource

	Layers []*DetailLayerItem

	Cost float64

	// set when the detail cost hit the sanity ceiling
	UncappedCost float64
	Capped       bool

	// zero-cost alternative of another detail with the same type
	Suppressed bool

	Note     string
	Warnings []string
}

func (d *DetailResult) AddWarning(w string) {
	d.Warnings = append(d.Warnings, w)
}

// DetailTakeoff is the output of the detail-driven engine.
type DetailTakeoff struct {
	Measurements MeasurementsEcho

	Details []*DetailResult

	TotalMaterialCost float64
	BidSummary        BidSummary

	// standard catalog takeoff on the same measurements, for comparison
	StandardComparison *BidSummary

	Warnings []string
}
