package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/reports"
)

type ListCmd struct {
}

func (c *ListCmd) Run(ctx *context) error {
	es, err := ctx.ws.ListEstimates()
	if err != nil {
		return err
	}

	if len(es) == 0 {
		fmt.Println("No estimates stored in this workspace.")
		return nil
	}

	for _, e := range es {
		fmt.Printf("%v  %-30v %-10v $%12.2f   %v\n",
			e.ID, e.Name, e.Measurements.System,
			e.BidSummary.TotalEstimate,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

type ShowCmd struct {
	ID   string `arg:"" help:"ID of the estimate to show."`
	Json bool   `help:"Output the estimate as JSON."`
}

func (c *ShowCmd) Run(ctx *context) error {
	e, err := ctx.ws.LoadEstimate(model.UUID(c.ID))
	if err != nil {
		return err
	}
	if e == nil {
		return errors.Errorf("estimate not found: %v", c.ID)
	}

	if c.Json {
		return reports.WriteJson(os.Stdout, e)
	}

	reports.NewReporter(os.Stdout).WriteEstimate(e)
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the estimate to delete."`
}

func (c *DeleteCmd) Run(ctx *context) error {
	return ctx.ws.DeleteEstimate(model.UUID(c.ID))
}
