package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Report   ReportCmd        `cmd:"" help:"Analyze the stored history of a game"`
	Predict  PredictCmd       `cmd:"" help:"Generate frequency-weighted tickets"`
	Add      AddCmd           `cmd:"" help:"Record a drawn result by hand"`
	History  HistoryCmd       `cmd:"" help:"List stored draws, newest first"`
	Simulate SimulateCmd      `cmd:"" help:"Add simulated draws to the history"`
	Stats    StatsCmd         `cmd:"" help:"Show number frequencies for every game"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("baloto"),
		kong.Description("Draw history analytics and ticket generation for Baloto, Revancha and MiLoto"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
