package checkoutController

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sandeshcse/shopnearme/responses"
	"github.com/sandeshcse/shopnearme/services/cart"
	"github.com/sandeshcse/shopnearme/services/checkout"
)

// OpenCheckout moves the flow from idle to form entry. The cart must be
// non-empty to offer the action.
func OpenCheckout(flow *checkout.Flow, store *cart.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store.LineCount() == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Cart is empty",
				Result:  nil,
			})
		}

		if err := flow.Open(); err != nil {
			return c.Status(fiber.StatusConflict).JSON(responses.StoreResponse{
				Status:  fiber.StatusConflict,
				Message: "Checkout is already open",
				Result:  nil,
			})
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Checkout opened",
			Result: &fiber.Map{
				"status": "success",
				"state":  flow.State(),
			},
		})
	}
}

type UpdateFieldRequest struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

// UpdateField edits one form field. A validation error carried by that field
// from an earlier submit is cleared; other fields keep theirs.
func UpdateField(flow *checkout.Flow) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request UpdateFieldRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid request",
				Result:  nil,
			})
		}

		if err := flow.SetField(request.Name, request.Value); err != nil {
			if errors.Is(err, checkout.ErrUnknownField) {
				return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
					Status:  fiber.StatusBadRequest,
					Message: "Unknown checkout field",
					Result:  nil,
				})
			}
			return notOpenResponse(c)
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Field updated",
			Result: &fiber.Map{
				"status": "success",
				"errors": flow.FormErrors(),
			},
		})
	}
}

type PaymentMethodRequest struct {
	Method string `json:"method" validate:"required,oneof=card cod"`
}

func SetPaymentMethod(flow *checkout.Flow) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request PaymentMethodRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid request",
				Result:  nil,
			})
		}

		if err := flow.SetPaymentMethod(request.Method); err != nil {
			if errors.Is(err, checkout.ErrInvalidPaymentMethod) {
				return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
					Status:  fiber.StatusBadRequest,
					Message: "Invalid payment method",
					Result:  nil,
				})
			}
			return notOpenResponse(c)
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Payment method updated",
			Result: &fiber.Map{
				"status":        "success",
				"paymentMethod": flow.PaymentMethod(),
			},
		})
	}
}

// SubmitOrder runs the validation gate. On failure the per-field messages
// come back and the flow stays in form entry; on success the simulated
// payment starts.
func SubmitOrder(flow *checkout.Flow) fiber.Handler {
	return func(c *fiber.Ctx) error {
		errs, err := flow.Submit()
		if err != nil {
			return notOpenResponse(c)
		}
		if len(errs) > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(responses.StoreResponse{
				Status:  fiber.StatusUnprocessableEntity,
				Message: "Validation failed",
				Result: &fiber.Map{
					"state":  flow.State(),
					"errors": errs,
				},
			})
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Processing your order...",
			Result: &fiber.Map{
				"status": "success",
				"state":  flow.State(),
			},
		})
	}
}

// CheckoutStatus reports the current state; while in success it carries the
// order confirmation.
func CheckoutStatus(flow *checkout.Flow) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := fiber.Map{
			"state":         flow.State(),
			"paymentMethod": flow.PaymentMethod(),
			"errors":        flow.FormErrors(),
		}
		if order, ok := flow.Order(); ok {
			result["order"] = order
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Checkout status",
			Result:  &result,
		})
	}
}

// CloseCheckout dismisses the checkout surface and cancels any pending
// transition.
func CloseCheckout(flow *checkout.Flow) fiber.Handler {
	return func(c *fiber.Ctx) error {
		flow.Close()

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Checkout closed",
			Result: &fiber.Map{
				"status": "success",
				"state":  flow.State(),
			},
		})
	}
}

func notOpenResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusConflict).JSON(responses.StoreResponse{
		Status:  fiber.StatusConflict,
		Message: "Checkout is not open",
		Result:  nil,
	})
}
