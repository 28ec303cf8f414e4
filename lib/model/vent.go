package model

// VentItem is one vent or small penetration flashed individually.
type VentItem struct {
	Type       string
	Count      int
	Difficulty string
}

func NewVentItem(ventType string, count int, difficulty string) *VentItem {
	if difficulty == "" {
		difficulty = "Normal"
	}
	return &VentItem{
		Type:       ventType,
		Count:      count,
		Difficulty: difficulty,
	}
}

type ventRates struct {
	BaseHours   float64
	Adjustments map[string]float64
}

// Per-type base hours plus a signed adjustment for the named difficulty
// variant. Each type declares its own variants.
var ventHourRates = map[string]ventRates{
	"plumbing_vent":  {1.0, map[string]float64{"Normal": 0.0, "Hard": 1.0}},
	"gooseneck":      {1.5, map[string]float64{"Normal": 0.0, "Hard": 1.0}},
	"vent_hood":      {1.5, map[string]float64{"Normal": 0.0, "Congested": 0.75}},
	"b_vent":         {2.0, map[string]float64{"Normal": 0.0, "Insulated": 1.0, "Hard": 1.5}},
	"gas_line":       {0.75, map[string]float64{"Normal": 0.0, "Bundled": 0.5}},
	"electrical":     {0.75, map[string]float64{"Normal": 0.0, "Bundled": 0.5}},
	"pipe_support":   {0.5, map[string]float64{"Normal": 0.0}},
	"roof_anchor":    {1.25, map[string]float64{"Normal": 0.0, "Hard": 0.75}},
}

// HoursEach resolves the labor hours for one instance. Unknown types fall
// back to one hour; unknown difficulty names add nothing.
func (v *VentItem) HoursEach() float64 {
	rates, ok := ventHourRates[v.Type]
	if !ok {
		return 1.0
	}

	return rates.BaseHours + rates.Adjustments[v.Difficulty]
}

func (v *VentItem) TotalHours() float64 {
	return float64(v.Count) * v.HoursEach()
}
