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

func PlannerRouter(router fiber.Router) {
	router.Get("/:origin/:destination", getPlanBetweenPorts)
}

func getPlanBetweenPorts(c *fiber.Ctx) error {
	originIdentifier := c.Params("origin")
	destinationIdentifier := c.Params("destination")

	count, err := strconv.Atoi(c.Query("count", "25"))
	startDateTimeString := c.Query("datetime")
	modeString := c.Query("mode", string(oktf.SearchModeDepartAfter))

	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter count should be an integer",
		})
	}

	var mode oktf.SearchMode
	switch modeString {
	case string(oktf.SearchModeDepartAfter):
		mode = oktf.SearchModeDepartAfter
	case string(oktf.SearchModeArriveBefore):
		mode = oktf.SearchModeArriveBefore
	default:
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter mode should be DepartAfter or ArriveBefore",
		})
	}

	originPort, err := dataaggregator.Lookup[*oktf.Port](query.Port{
		PrimaryIdentifier: originIdentifier,
	})
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	destinationPort, err := dataaggregator.Lookup[*oktf.Port](query.Port{
		PrimaryIdentifier: destinationIdentifier,
	})
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var targetDateTime time.Time
	if startDateTimeString == "" {
		targetDateTime = time.Now()
	} else {
		targetDateTime, err = time.Parse(time.RFC3339, startDateTimeString)

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error":    "Parameter datetime should be an RFS3339/ISO8601 datetime",
				"detailed": err,
			})
		}
	}

	routePlanResults, err := dataaggregator.Lookup[*oktf.RoutePlanResults](query.RoutePlan{
		OriginPort:      originPort,
		DestinationPort: destinationPort,
		TargetDateTime:  targetDateTime,
		Mode:            mode,
		Count:           count,
	})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if count > 0 && len(routePlanResults.RoutePlans) > count {
		routePlanResults.RoutePlans = routePlanResults.RoutePlans[:count]
	}

	routePlanResultsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, routePlanResults)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sorry could not marshal",
		})
	}

	return c.JSON(routePlanResultsReduced)
}
