package orm

import (
	"time"

	"github.com/pescuma/takeoff/lib/model"
)

type sqlEstimate struct {
	ID   model.UUID `gorm:"primaryKey"`
	Name string     `gorm:"index"`

	System        string
	RoofAreaSqft  float64
	TotalEstimate float64
	PerSqft       float64

	Measurements *model.MeasurementsEcho `gorm:"serializer:json"`
	AreaItems    []*model.LineItem       `gorm:"serializer:json"`
	LinearItems  []*model.LineItem       `gorm:"serializer:json"`
	UnitItems    []*model.LineItem       `gorm:"serializer:json"`
	Consumables  []*model.LineItem       `gorm:"serializer:json"`
	WoodItems    []*model.LineItem       `gorm:"serializer:json"`
	Labor        *model.LaborSummary     `gorm:"embedded;embeddedPrefix:labor_"`
	BidSummary   *model.BidSummary       `gorm:"serializer:json"`
	Warnings     []string                `gorm:"serializer:json"`

	EstimatedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlEstimate(e *model.Estimate) *sqlEstimate {
	m := e.Measurements
	bid := e.BidSummary
	labor := e.Labor

	return &sqlEstimate{
		ID:            e.ID,
		Name:          e.Name,
		System:        string(m.System),
		RoofAreaSqft:  m.TotalRoofAreaSqft,
		TotalEstimate: bid.TotalEstimate,
		PerSqft:       bid.PerSqft,
		Measurements:  &m,
		AreaItems:     e.AreaItems,
		LinearItems:   e.LinearItems,
		UnitItems:     e.UnitItems,
		Consumables:   e.Consumables,
		WoodItems:     e.WoodItems,
		Labor:         &labor,
		BidSummary:    &bid,
		Warnings:      e.Warnings,
		EstimatedAt:   e.CreatedAt,
	}
}

func (s *sqlEstimate) ToModel() *model.Estimate {
	result := &model.Estimate{
		ID:          s.ID,
		Name:        s.Name,
		CreatedAt:   s.EstimatedAt,
		AreaItems:   s.AreaItems,
		LinearItems: s.LinearItems,
		UnitItems:   s.UnitItems,
		Consumables: s.Consumables,
		WoodItems:   s.WoodItems,
		Warnings:    s.Warnings,
	}

	if s.Measurements != nil {
		result.Measurements = *s.Measurements
	}
	if s.Labor != nil {
		result.Labor = *s.Labor
	}
	if s.BidSummary != nil {
		result.BidSummary = *s.BidSummary
	}

	return result
}

func (s *sqlEstimate) CacheKey() string {
	return string(s.ID)
}
