package filters_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/pescuma/takeoff/lib/filters"
	"github.com/pescuma/takeoff/lib/model"
)

func items() []*model.LineItem {
	return []*model.LineItem{
		{Name: "SBS Cap Sheet", PricingKey: "Cap_Membrane", BidGroup: model.GroupRoofing, Category: model.CategoryArea},
		{Name: "Metal Cap Flashing", PricingKey: "Flashing_General", BidGroup: model.GroupFlashing, Category: model.CategoryLinear},
		{Name: "Roof Drain Insert", PricingKey: "Roof_Drain", BidGroup: model.GroupRoofing, Category: model.CategoryUnit},
	}
}

func names(items []*model.LineItem) []string {
	return lo.Map(items, func(i *model.LineItem, _ int) string { return i.Name })
}

func TestNoRulesKeepsEverything(t *testing.T) {
	t.Parallel()

	result, err := filters.ParseAndFilterItems(items(), nil)

	assert.NoError(t, err)
	assert.Len(t, result, 3)
}

func TestNameSubstringMatch(t *testing.T) {
	t.Parallel()

	result, err := filters.ParseAndFilterItems(items(), []string{"cap"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"SBS Cap Sheet", "Metal Cap Flashing"}, names(result))
}

func TestKeyFilterIsExact(t *testing.T) {
	t.Parallel()

	result, err := filters.ParseAndFilterItems(items(), []string{"key:cap_membrane"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"SBS Cap Sheet"}, names(result))

	result, err = filters.ParseAndFilterItems(items(), []string{"key:cap"})

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestGroupAndCategoryFilters(t *testing.T) {
	t.Parallel()

	result, err := filters.ParseAndFilterItems(items(), []string{"group:roofing"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"SBS Cap Sheet", "Roof Drain Insert"}, names(result))

	result, err = filters.ParseAndFilterItems(items(), []string{"category:linear"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Metal Cap Flashing"}, names(result))
}

func TestExclusionRules(t *testing.T) {
	t.Parallel()

	result, err := filters.ParseAndFilterItems(items(), []string{"-group:flashing"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"SBS Cap Sheet", "Roof Drain Insert"}, names(result))

	// exclusion wins over a matching include
	result, err = filters.ParseAndFilterItems(items(), []string{"cap", "-metal"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"SBS Cap Sheet"}, names(result))
}

func TestGlobAndRegexpRules(t *testing.T) {
	t.Parallel()

	result, err := filters.ParseAndFilterItems(items(), []string{"key:*_membrane"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"SBS Cap Sheet"}, names(result))

	result, err = filters.ParseAndFilterItems(items(), []string{"re:^roof"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Roof Drain Insert"}, names(result))

	_, err = filters.ParseAndFilterItems(items(), []string{"re:["})
	assert.Error(t, err)
}
