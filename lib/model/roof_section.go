package model

// RoofSection is one rectangular piece of the field area, as measured on a
// plan view. Sections are never mutated after construction.
type RoofSection struct {
	Name     string
	Count    int
	LengthFt float64
	WidthFt  float64
}

func NewRoofSection(name string, count int, lengthFt, widthFt float64) *RoofSection {
	return &RoofSection{
		Name:     name,
		Count:    count,
		LengthFt: lengthFt,
		WidthFt:  widthFt,
	}
}

func (s *RoofSection) AreaSqft() float64 {
	return float64(s.Count) * s.LengthFt * s.WidthFt
}
