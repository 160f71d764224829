package routes

import (
	"github.com/gofiber/fiber/v2"

	locationController "github.com/sandeshcse/shopnearme/controllers/location"
)

func LocationRoutes(app *fiber.App, store *locationController.Store) {
	app.Post("/api/location", locationController.SetLocation(store))

	app.Post("/api/location/current", locationController.UseCurrentLocation(store))

	app.Get("/api/location", locationController.GetLocation(store))
}
