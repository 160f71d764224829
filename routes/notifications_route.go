package routes

import (
	"github.com/gofiber/fiber/v2"

	notificationController "github.com/sandeshcse/shopnearme/controllers/notifications"
	"github.com/sandeshcse/shopnearme/services/notify"
)

func NotificationRoutes(app *fiber.App, notifier *notify.Notifier) {
	app.Get("/api/notifications", notificationController.GetNotifications(notifier))
}
