package api

import (
	"github.com/okinavi/okinavi/pkg/dataaggregator"
	"github.com/okinavi/okinavi/pkg/dataloader"
	"github.com/okinavi/okinavi/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						log.Info().Err(err).Msg("Redis unavailable, running without the results cache")
					}

					loader := dataloader.NewLoader()
					repository, err := loader.Load()
					if err != nil {
						return err
					}

					dataaggregator.GlobalSetup(repository.Timetable, repository.Fares)

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}
