package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doccatalog/cmd/doccatalog/commands"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	var cli commands.CLI
	global := &commands.Global{Out: os.Stdout}
	ctx := kong.Parse(&cli,
		kong.Name("doccatalog"),
		kong.Description("Classify documentation content into a catalog and publish its URL map"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Bind(global),
	)
	if err := ctx.Run(global, &cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
