package main

import (
	"os"

	"github.com/pescuma/takeoff/lib/importers/measures"
	"github.com/pescuma/takeoff/lib/reports"
)

type DetailsCmd struct {
	Analysis     string `arg:"" help:"JSON file with the drawing analysis. Can be a glob to merge multiple files."`
	Measurements string `arg:"" help:"JSON file with the field measurements." type:"existingfile"`
	Json         bool   `help:"Output the takeoff as JSON."`
}

func (c *DetailsCmd) Run(ctx *context) error {
	a, err := ctx.ws.ImportAnalysis(c.Analysis)
	if err != nil {
		return err
	}

	m, err := measures.NewImporter(ctx.ws.Console()).Import(c.Measurements)
	if err != nil {
		return err
	}

	t := ctx.ws.DetailTakeoff(a, m)

	if c.Json {
		return reports.WriteJson(os.Stdout, t)
	}

	reports.NewReporter(os.Stdout).WriteDetailTakeoff(t)
	return nil
}

type JoinCmd struct {
	Analysis     string `arg:"" help:"JSON file with the drawing analysis. Can be a glob to merge multiple files."`
	Spec         string `arg:"" help:"JSON file with the spec-confirmed materials." type:"existingfile"`
	Measurements string `arg:"" help:"JSON file with the field measurements." type:"existingfile"`
	Json         bool   `help:"Output the joined takeoff as JSON."`
}

func (c *JoinCmd) Run(ctx *context) error {
	a, err := ctx.ws.ImportAnalysis(c.Analysis)
	if err != nil {
		return err
	}

	specs, err := ctx.ws.ImportSpecMaterials(c.Spec)
	if err != nil {
		return err
	}

	m, err := measures.NewImporter(ctx.ws.Console()).Import(c.Measurements)
	if err != nil {
		return err
	}

	t := ctx.ws.JoinTakeoff(a, specs, m)

	if c.Json {
		return reports.WriteJson(os.Stdout, t)
	}

	reports.NewReporter(os.Stdout).WriteJoinedTakeoff(t)
	return nil
}
