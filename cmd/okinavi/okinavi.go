package main

import (
	"os"
	"time"

	"github.com/okinavi/okinavi/pkg/api"
	"github.com/okinavi/okinavi/pkg/dataaggregator/source/routeplanner"
	"github.com/okinavi/okinavi/pkg/dataloader"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("OKINAVI_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("OKINAVI_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "okinavi",
		Description: "Single binary of truth for Okinavi - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			dataloader.RegisterCLI(),
			routeplanner.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
