package model

// CurbDetail is a raised curb (mechanical unit, sleeper, roof hatch, ...)
// measured from detail drawings. Plan dimensions are in inches.
type CurbDetail struct {
	Type     string
	Name     string
	Count    int
	LengthIn float64
	WidthIn  float64
	HeightIn float64
}

func NewCurbDetail(curbType string, count int, lengthIn, widthIn, heightIn float64) *CurbDetail {
	return &CurbDetail{
		Type:     curbType,
		Count:    count,
		LengthIn: lengthIn,
		WidthIn:  widthIn,
		HeightIn: heightIn,
	}
}

// PerimeterFt is the total flashing run for all instances of this curb.
func (c *CurbDetail) PerimeterFt() float64 {
	return float64(c.Count) * 2 * (c.LengthIn + c.WidthIn) / InchesPerFoot
}

// FlashingAreaSqft is perimeter times curb height.
func (c *CurbDetail) FlashingAreaSqft() float64 {
	return c.PerimeterFt() * InchesToFeet(c.HeightIn)
}

// LaborHours is the sum of a rip rate and an install rate, both selected by
// the curb height band. Rates are in LF of curb perimeter per hour.
func (c *CurbDetail) LaborHours() float64 {
	p := c.PerimeterFt()
	if p <= 0 {
		return 0
	}

	var ripRate, installRate float64
	switch {
	case c.HeightIn < 25:
		ripRate, installRate = 22.5, 15.0
	case c.HeightIn <= 69:
		ripRate, installRate = 18.0, 12.0
	default:
		ripRate, installRate = 15.0, 9.0
	}

	return p/ripRate + p/installRate
}
