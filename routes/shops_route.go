package routes

import (
	"github.com/gofiber/fiber/v2"

	shopController "github.com/sandeshcse/shopnearme/controllers/shops"
	"github.com/sandeshcse/shopnearme/services/catalog"
)

func ShopRoutes(app *fiber.App, cat *catalog.Service) {
	app.Get("/api/shops", shopController.GetAllShops(cat))

	app.Get("/api/categories", shopController.GetCategories(cat))

	// Fetch shopDetails with products and reviews
	app.Get("/api/shop-details", shopController.GetShopDetails(cat))

	app.Get("/api/shops/:shopId/products", shopController.GetShopProducts(cat))

	app.Get("/api/shops/:shopId/product-categories", shopController.GetProductCategories(cat))

	app.Post("/api/register-shop", shopController.RegisterShop(cat))
}
