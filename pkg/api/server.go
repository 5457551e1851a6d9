package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/okinavi/okinavi/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PortsRouter(group.Group("/ports"))

	routes.ShipsRouter(group.Group("/ships"))

	routes.PlannerRouter(group.Group("/planner"))

	routes.FaresRouter(group.Group("/fares"))

	return webApp.Listen(listen)
}
