package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/okinavi/okinavi/pkg/dataaggregator"
	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/oktf"
)

func PortsRouter(router fiber.Router) {
	router.Get("/", listPorts)
	router.Get("/:identifier", getPort)
	router.Get("/:identifier/departures", getPortDepartures)
}

func listPorts(c *fiber.Ctx) error {
	return c.JSON(oktf.Ports)
}

func getPort(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	port, err := dataaggregator.Lookup[*oktf.Port](query.Port{
		PrimaryIdentifier: identifier,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(port)
}

func getPortDepartures(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	count, err := strconv.Atoi(c.Query("count", "25"))
	startDateTimeString := c.Query("datetime")

	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter count should be an integer",
		})
	}

	port, err := dataaggregator.Lookup[*oktf.Port](query.Port{
		PrimaryIdentifier: identifier,
	})
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var startDateTime time.Time
	if startDateTimeString == "" {
		startDateTime = time.Now()
	} else {
		startDateTime, err = time.Parse(time.RFC3339, startDateTimeString)

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error":    "Parameter datetime should be an RFS3339/ISO8601 datetime",
				"detailed": err,
			})
		}
	}

	departureBoard, err := dataaggregator.Lookup[[]*oktf.DepartureBoard](query.DepartureBoard{
		Port:          port,
		Count:         count,
		StartDateTime: startDateTime,
	})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	departureBoardReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, departureBoard)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sorry could not marshal",
		})
	}

	return c.JSON(departureBoardReduced)
}
