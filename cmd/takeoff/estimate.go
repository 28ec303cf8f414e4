package main

import (
	"os"

	"github.com/pescuma/takeoff/lib/filters"
	"github.com/pescuma/takeoff/lib/importers/measures"
	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/reports"
)

type EstimateCmd struct {
	Name         string   `arg:"" help:"Name of the estimate."`
	Measurements string   `arg:"" help:"JSON file with the field measurements." type:"existingfile"`
	Filter       []string `short:"f" help:"Filter items in the output. Can be used multiple times. Prefix with - to exclude."`
	Json         bool     `help:"Output the estimate as JSON."`
}

func (c *EstimateCmd) Run(ctx *context) error {
	m, err := measures.NewImporter(ctx.ws.Console()).Import(c.Measurements)
	if err != nil {
		return err
	}

	e, err := ctx.ws.Estimate(c.Name, m)
	if err != nil {
		return err
	}

	err = filterEstimateItems(e, c.Filter)
	if err != nil {
		return err
	}

	if c.Json {
		return reports.WriteJson(os.Stdout, e)
	}

	reports.NewReporter(os.Stdout).WriteEstimate(e)
	return nil
}

func filterEstimateItems(e *model.Estimate, rules []string) error {
	if len(rules) == 0 {
		return nil
	}

	var err error
	for _, items := range []*[]*model.LineItem{
		&e.AreaItems, &e.LinearItems, &e.UnitItems, &e.Consumables, &e.WoodItems,
	} {
		*items, err = filters.ParseAndFilterItems(*items, rules)
		if err != nil {
			return err
		}
	}

	return nil
}
