package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/okinavi/okinavi/pkg/oktf"
)

func ShipsRouter(router fiber.Router) {
	router.Get("/", listShips)
	router.Get("/:identifier", getShip)
}

func listShips(c *fiber.Ctx) error {
	return c.JSON(oktf.Ships)
}

func getShip(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	ship := oktf.ShipByIdentifier(identifier)
	if ship == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find a matching Ship",
		})
	}

	return c.JSON(ship)
}
