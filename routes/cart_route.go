package routes

import (
	"github.com/gofiber/fiber/v2"

	cartController "github.com/sandeshcse/shopnearme/controllers/cart"
	"github.com/sandeshcse/shopnearme/services/cart"
	"github.com/sandeshcse/shopnearme/services/catalog"
)

func CartRoutes(app *fiber.App, store *cart.Store, cat *catalog.Service) {
	app.Post("/api/add-to-cart", cartController.AddToCart(store, cat))

	app.Post("/api/remove-from-cart", cartController.RemoveFromCart(store))

	app.Post("/api/update-quantity", cartController.UpdateQuantity(store))

	app.Get("/api/fetchCartItems", cartController.FetchCartItems(store))

	app.Get("/api/getCartTotals", cartController.GetCartTotals(store))
}
