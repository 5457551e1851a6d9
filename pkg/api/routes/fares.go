package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/okinavi/okinavi/pkg/dataaggregator"
	"github.com/okinavi/okinavi/pkg/dataaggregator/query"
	"github.com/okinavi/okinavi/pkg/oktf"
)

func FaresRouter(router fiber.Router) {
	router.Get("/:departure/:arrival", getFareBetweenPorts)
}

func getFareBetweenPorts(c *fiber.Ctx) error {
	departureIdentifier := c.Params("departure")
	arrivalIdentifier := c.Params("arrival")

	vesselTypeString := c.Query("vessel", string(oktf.VesselTypeFerry))
	dateString := c.Query("date")

	var vesselType oktf.VesselType
	switch vesselTypeString {
	case string(oktf.VesselTypeFerry):
		vesselType = oktf.VesselTypeFerry
	case string(oktf.VesselTypeHighspeed):
		vesselType = oktf.VesselTypeHighspeed
	case string(oktf.VesselTypeLocal):
		vesselType = oktf.VesselTypeLocal
	default:
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter vessel should be Ferry, Highspeed or Local",
		})
	}

	date := time.Now()
	if dateString != "" {
		var err error
		date, err = time.Parse(oktf.DateFormat, dateString)

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter date should be a YYYY-MM-DD date",
			})
		}
	}

	fareAmount, err := dataaggregator.Lookup[oktf.FareAmount](query.Fare{
		DeparturePortRef: departureIdentifier,
		ArrivalPortRef:   arrivalIdentifier,
		VesselType:       vesselType,
		Date:             date,
	})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fareAmount)
}
