package model

import (
	"math"
)

// WoodWorkSection is blocking / framing / sheathing work along an edge or
// upstand.
type WoodWorkSection struct {
	Name      string
	LengthFt  float64
	HeightFt  float64
	AreaSqft  float64
	SpacingIn float64
	Layers    int
}

func NewWoodWorkSection(name string, lengthFt, heightFt float64) *WoodWorkSection {
	return &WoodWorkSection{
		Name:      name,
		LengthFt:  lengthFt,
		HeightFt:  heightFt,
		AreaSqft:  lengthFt * heightFt,
		SpacingIn: 16,
		Layers:    1,
	}
}

func (w *WoodWorkSection) layers() float64 {
	if w.Layers < 1 {
		return 1
	}
	return float64(w.Layers)
}

func (w *WoodWorkSection) spacingFt() float64 {
	if w.SpacingIn <= 0 {
		return 16.0 / InchesPerFoot
	}
	return w.SpacingIn / InchesPerFoot
}

// VerticalPieces is the stud count along the run at the given spacing.
func (w *WoodWorkSection) VerticalPieces() int {
	if w.LengthFt <= 0 {
		return 0
	}
	return int(math.Ceil(w.LengthFt/w.spacingFt()) * w.layers())
}

// PlywoodSheets covers the section area with 4'x8' sheets.
func (w *WoodWorkSection) PlywoodSheets() int {
	if w.AreaSqft <= 0 {
		return 0
	}
	return int(math.Ceil(w.AreaSqft/32) * w.layers())
}

// HorizontalPieces is rows of 8' lumber: one row per spacing interval of
// height, each row needing length/8 pieces.
func (w *WoodWorkSection) HorizontalPieces() int {
	if w.LengthFt <= 0 || w.HeightFt <= 0 {
		return 0
	}

	rows := math.Ceil(w.HeightFt / w.spacingFt())

	return int(rows * math.Ceil(w.LengthFt/8) * w.layers())
}

// BattInsulationSection is batt fill between framing, sold in bundles.
type BattInsulationSection struct {
	Name     string
	LengthFt float64
	HeightFt float64
}

func NewBattInsulationSection(name string, lengthFt, heightFt float64) *BattInsulationSection {
	return &BattInsulationSection{
		Name:     name,
		LengthFt: lengthFt,
		HeightFt: heightFt,
	}
}

func (b *BattInsulationSection) AreaSqft() float64 {
	return b.LengthFt * b.HeightFt
}

// Bundles covers the area at 40 sqft per bundle.
func (b *BattInsulationSection) Bundles() int {
	a := b.AreaSqft()
	if a <= 0 {
		return 0
	}
	return int(math.Ceil(a / 40))
}
