package routeplanner

import (
	"errors"
	"time"

	"github.com/kr/pretty"
	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/dataloader"
	"github.com/okinavi/okinavi/pkg/oktf"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Route planning over the loaded timetable",
		Subcommands: []*cli.Command{
			{
				Name:  "search",
				Usage: "search for itineraries between two ports",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "origin",
						Usage:    "Origin port identifier",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "destination",
						Usage:    "Destination port identifier",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "datetime",
						Usage: "Target date & time (RFC3339), defaults to now",
					},
					&cli.StringFlag{
						Name:  "mode",
						Value: string(oktf.SearchModeDepartAfter),
						Usage: "DepartAfter or ArriveBefore",
					},
				},
				Action: func(c *cli.Context) error {
					originPort := oktf.PortByIdentifier(c.String("origin"))
					destinationPort := oktf.PortByIdentifier(c.String("destination"))

					if originPort == nil || destinationPort == nil {
						return errors.New("Unknown origin or destination port")
					}

					targetDateTime := time.Now()
					if c.String("datetime") != "" {
						var err error
						targetDateTime, err = time.Parse(time.RFC3339, c.String("datetime"))
						if err != nil {
							return err
						}
					}

					loader := dataloader.NewLoader()
					repository, err := loader.Load()
					if err != nil {
						return err
					}

					plannerSource := Source{
						Timetable: repository.Timetable,
						Fares:     repository.Fares,
					}

					results, err := plannerSource.RoutePlanQuery(query.RoutePlan{
						OriginPort:      originPort,
						DestinationPort: destinationPort,
						TargetDateTime:  targetDateTime,
						Mode:            oktf.SearchMode(c.String("mode")),
					})
					if err != nil {
						return err
					}

					pretty.Println(results)

					return nil
				},
			},
		},
	}
}
