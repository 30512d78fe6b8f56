package main

import (
	"os"

	"github.com/9seconds/cartographer/providers"
	"github.com/alecthomas/kingpin/v2"
	"github.com/rs/zerolog"
)

var version = "dev"

var (
	app = kingpin.New(
		"cartographer",
		"Consolidated IP range geolocation builder")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("CARTOGRAPHER_DEBUG").
		Bool()

	ingestCommand = app.Command("ingest",
		"Collect a single source into a dataset document.")
	ingestKind = ingestCommand.Arg("kind", "A kind of the source.").
			Required().
			Enum(providers.Names()...)
	ingestLocation = ingestCommand.Arg("source-location", "A path or http(s) URL of the source.").
			Required().
			String()
	ingestDataset = ingestCommand.Arg("dataset", "A path to the dataset document.").
			Required().
			String()
	ingestFamily = ingestCommand.Flag("family", "Address family to take from the source.").
			Default("all").
			Enum("all", "ipv4", "ipv6")
	ingestName = ingestCommand.Flag("name", "A name of the source for logs and reports.").
			String()

	consolidateCommand = app.Command("consolidate",
		"Consolidate a dataset document into non-overlapping form.")
	consolidateDataset = consolidateCommand.Arg("dataset", "A path to the dataset document.").
				Required().
				String()
	consolidateOutput = consolidateCommand.Flag("output", "A path to write a result to. Dataset is rewritten if empty.").
				Short('o').
				String()
	consolidateMMDB = consolidateCommand.Flag("mmdb", "A path to export MaxMind DB to.").
			String()
	consolidateReserved = consolidateCommand.Flag("reserved", "Extra reserved ranges to drop.").
				Strings()

	buildCommand = app.Command("build",
		"Collect all configured sources and consolidate them.")
	buildConfig = buildCommand.Arg("config", "A path to the TOML config.").
			Required().
			ExistingFile()
)

func main() {
	app.Version(version)
	app.HelpFlag.Short('h')

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	var err error

	switch command {
	case ingestCommand.FullCommand():
		err = runIngest(ctx)
	case consolidateCommand.FullCommand():
		err = runConsolidate(ctx)
	case buildCommand.FullCommand():
		err = runBuild(ctx)
	}

	app.FatalIfError(err, "%s has failed", command)
}
