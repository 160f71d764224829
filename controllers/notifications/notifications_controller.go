package notificationController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sandeshcse/shopnearme/responses"
	"github.com/sandeshcse/shopnearme/services/notify"
)

// GetNotifications drains the transient messages, oldest first.
func GetNotifications(notifier *notify.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notifications := notifier.Drain()

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Fetched notifications",
			Result: &fiber.Map{
				"status":        "success",
				"count":         len(notifications),
				"notifications": notifications,
			},
		})
	}
}
