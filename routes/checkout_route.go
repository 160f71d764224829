package routes

import (
	"github.com/gofiber/fiber/v2"

	checkoutController "github.com/sandeshcse/shopnearme/controllers/checkout"
	"github.com/sandeshcse/shopnearme/services/cart"
	"github.com/sandeshcse/shopnearme/services/checkout"
)

func CheckoutRoutes(app *fiber.App, flow *checkout.Flow, store *cart.Store) {
	app.Post("/api/checkout/open", checkoutController.OpenCheckout(flow, store))

	app.Post("/api/checkout/field", checkoutController.UpdateField(flow))

	app.Post("/api/checkout/payment-method", checkoutController.SetPaymentMethod(flow))

	app.Post("/api/checkout/submit", checkoutController.SubmitOrder(flow))

	app.Get("/api/checkout/status", checkoutController.CheckoutStatus(flow))

	app.Post("/api/checkout/close", checkoutController.CloseCheckout(flow))
}
