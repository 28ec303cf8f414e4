package model

import (
	"math"
)

type PerimeterType int

const (
	ParapetNoFacing PerimeterType = iota
	ParapetWithFacing
	InteriorWall
	Cant
	DividerWithFacing
)

func (t PerimeterType) String() string {
	switch t {
	case ParapetNoFacing:
		return "parapet_no_facing"
	case ParapetWithFacing:
		return "parapet_w_facing"
	case InteriorWall:
		return "interior_wall"
	case Cant:
		return "cant"
	case DividerWithFacing:
		return "divider_w_facing"
	default:
		return "<unknown>"
	}
}

func ParsePerimeterType(s string) (PerimeterType, bool) {
	switch s {
	case "parapet_no_facing":
		return ParapetNoFacing, true
	case "parapet_w_facing":
		return ParapetWithFacing, true
	case "interior_wall":
		return InteriorWall, true
	case "cant":
		return Cant, true
	case "divider_w_facing":
		return DividerWithFacing, true
	default:
		return ParapetNoFacing, false
	}
}

// TopOfParapet reports whether sections of this type terminate on top of a
// parapet or divider wall. Only those count toward cap-metal totals.
func (t PerimeterType) TopOfParapet() bool {
	return t == ParapetNoFacing || t == ParapetWithFacing || t == DividerWithFacing
}

// PerimeterSection is one run of roof edge with a uniform wall condition.
type PerimeterSection struct {
	Name     string
	Type     PerimeterType
	HeightIn float64
	LengthFt float64

	// 1 (open roof, easy staging) .. 5 (congested, rope access)
	Difficulty int
}

func NewPerimeterSection(name string, t PerimeterType, heightIn, lengthFt float64) *PerimeterSection {
	return &PerimeterSection{
		Name:       name,
		Type:       t,
		HeightIn:   heightIn,
		LengthFt:   lengthFt,
		Difficulty: 1,
	}
}

// StripGirthIn is the membrane wrap width at the edge, in inches. The girth
// covers the vertical face plus the fixed field and top laps each condition
// needs.
func (s *PerimeterSection) StripGirthIn() float64 {
	h := s.HeightIn

	switch s.Type {
	case ParapetNoFacing:
		return h + 16
	case ParapetWithFacing:
		return h + 20
	case InteriorWall:
		return h + 16
	case Cant:
		return math.Sqrt2*h + 12
	case DividerWithFacing:
		return 2*h + 12
	default:
		return h + 16
	}
}

// MetalGirthIn is the cap / counter flashing width, in inches. Cants carry
// no metal.
func (s *PerimeterSection) MetalGirthIn() float64 {
	h := s.HeightIn

	switch s.Type {
	case ParapetNoFacing:
		return h + 6
	case ParapetWithFacing:
		return 2*h + 4
	case InteriorWall:
		return h + 4
	case Cant:
		return 0
	case DividerWithFacing:
		return 2*h + 8
	default:
		return h + 6
	}
}

func (s *PerimeterSection) StripAreaSqft() float64 {
	return s.LengthFt * InchesToFeet(s.StripGirthIn())
}

func (s *PerimeterSection) MetalAreaSqft() float64 {
	return s.LengthFt * InchesToFeet(s.MetalGirthIn())
}

// MetalSheetCount is how many 4'x10' coated sheets the cap/counter flashing
// of this section consumes. A sheet is cut lengthwise into strips of the
// metal girth.
func (s *PerimeterSection) MetalSheetCount() int {
	girth := s.MetalGirthIn()
	if girth <= 0 || s.LengthFt <= 0 {
		return 0
	}

	stripsPerSheet := math.Floor(48 / girth)
	if stripsPerSheet < 1 {
		stripsPerSheet = 1
	}

	return int(math.Ceil(s.LengthFt / 10 / stripsPerSheet))
}

// InstallHours estimates the labor to strip in and flash this section.
// Production slows with height, difficulty and the project modifiers.
func (s *PerimeterSection) InstallHours(mods ProjectModifiers) float64 {
	if s.LengthFt <= 0 {
		return 0
	}

	// base production in LF/hr for a 2-person crew at difficulty 1
	rate := 18.0
	switch s.Type {
	case Cant:
		rate = 24.0
	case ParapetWithFacing, DividerWithFacing:
		rate = 14.0
	}

	if s.HeightIn > 36 {
		rate *= 0.8
	}

	diff := s.Difficulty
	if diff < 1 {
		diff = 1
	}
	if diff > 5 {
		diff = 5
	}
	rate *= 1 - 0.1*float64(diff-1)

	hours := s.LengthFt / rate

	if mods.TearOff {
		hours *= 1.3
	}
	if mods.Winter {
		hours *= 1.25
	}
	if mods.InteriorAccessOnly {
		hours *= 1.15
	}
	if mods.FloorCount > 2 {
		hours *= 1 + 0.05*float64(mods.FloorCount-2)
	}

	return hours
}
