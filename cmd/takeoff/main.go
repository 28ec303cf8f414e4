package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/takeoff/lib/workspace"
)

var cli struct {
	Workspace string `short:"w" help:"Workspace to store data. Default is ./.takeoff or ~/.takeoff if that does not exist." type:"path"`

	Estimate EstimateCmd `cmd:"" help:"Run a standard takeoff from a measurements file and store the estimate."`
	Details  DetailsCmd  `cmd:"" help:"Run a detail-driven takeoff from a drawing analysis file."`
	Join     JoinCmd     `cmd:"" help:"Join a drawing analysis with spec-confirmed materials."`

	List   ListCmd   `cmd:"" help:"List stored estimates."`
	Show   ShowCmd   `cmd:"" help:"Show one stored estimate."`
	Delete DeleteCmd `cmd:"" help:"Delete a stored estimate."`

	Systems SystemsCmd `cmd:"" help:"List the supported roof systems."`
	Serve   ServeCmd   `cmd:"" help:"Start the API server."`

	Config struct {
		Set ConfigSetCmd `cmd:"" help:"Set configuration parameters."`
	} `cmd:""`
}

type context struct {
	ws *workspace.Workspace
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	ws, err := workspace.NewWorkspace(cli.Workspace)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws: ws,
	})

	_ = ws.Close()

	ctx.FatalIfErrorf(err)
}
