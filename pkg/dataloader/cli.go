package dataloader

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-loader",
		Usage: "Load & validate the registered ferry datasets",
		Subcommands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "load every registered dataset and report what it contains",
				Action: func(c *cli.Context) error {
					repository, err := LoadDatasets(GetRegisteredDataSets())
					if err != nil {
						return err
					}

					log.Info().
						Int("trips", len(repository.Timetable.AllTrips())).
						Msg("Datasets are valid")

					return nil
				},
			},
			{
				Name:  "dataset",
				Usage: "show a registered dataset",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "ID of the dataset",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					datasetID := c.String("id")

					for _, dataset := range GetRegisteredDataSets() {
						if dataset.Identifier == datasetID {
							log.Info().Interface("dataset", dataset).Msg("Found dataset")
							return nil
						}
					}

					return errors.New("Dataset could not be found")
				},
			},
		},
	}
}
