package model

import (
	"sort"

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
)

// SpecMaterial is one product the material confirmation service found
// spelled out in the project specification.
type SpecMaterial struct {
	PricingKey  string
	ProductName string
	Category    string
	Pages       []int
	Dimensions  []string
}

// SpecMaterials is the confirmed-material dataset, keyed by pricing key.
type SpecMaterials struct {
	byKey map[string]*SpecMaterial
}

func NewSpecMaterials() *SpecMaterials {
	return &SpecMaterials{
		byKey: map[string]*SpecMaterial{},
	}
}

func (s *SpecMaterials) Add(m *SpecMaterial) {
	existing, ok := s.byKey[m.PricingKey]
	if !ok {
		s.byKey[m.PricingKey] = m
		return
	}

	// keep one entry per key, merging page references
	pages := set.From(existing.Pages)
	pages.InsertSlice(m.Pages)
	existing.Pages = pages.Slice()
	sort.Ints(existing.Pages)
}

func (s *SpecMaterials) Get(pricingKey string) *SpecMaterial {
	return s.byKey[pricingKey]
}

func (s *SpecMaterials) Contains(pricingKey string) bool {
	_, ok := s.byKey[pricingKey]
	return ok
}

func (s *SpecMaterials) Len() int {
	return len(s.byKey)
}

func (s *SpecMaterials) Keys() *set.Set[string] {
	return set.From(lo.Keys(s.byKey))
}

func (s *SpecMaterials) List() []*SpecMaterial {
	result := lo.Values(s.byKey)

	sort.Slice(result, func(i, j int) bool { return result[i].PricingKey < result[j].PricingKey })

	return result
}

// CategoryCounts is the summary the confirmation service reports: how many
// distinct products were confirmed per category.
func (s *SpecMaterials) CategoryCounts() map[string]int {
	result := map[string]int{}

	for _, m := range s.byKey {
		result[m.Category]++
	}

	return result
}
