package model

// Exact conversion factors. All stored dimensions are imperial; metric
// values coming from drawings are converted at the boundary.
const (
	MmPerInch     = 25.4
	MmPerFoot     = 304.8
	InchesPerFoot = 12.0
)

func InchesToFeet(in float64) float64 {
	return in / InchesPerFoot
}

func FeetToInches(ft float64) float64 {
	return ft * InchesPerFoot
}

func MmToInches(mm float64) float64 {
	return mm / MmPerInch
}

func MmToFeet(mm float64) float64 {
	return mm / MmPerFoot
}
