package cartController

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sandeshcse/shopnearme/responses"
	"github.com/sandeshcse/shopnearme/services/cart"
	"github.com/sandeshcse/shopnearme/services/catalog"
	"github.com/sandeshcse/shopnearme/utils"
)

type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	ShopID    string `json:"shopId" validate:"required"`
}

func AddToCart(store *cart.Store, cat *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request AddToCartRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid request",
				Result:  nil,
			})
		}

		product, shop, ok := cat.FindProduct(request.ShopID, request.ProductID)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(responses.StoreResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
				Result:  nil,
			})
		}

		if err := store.AddItem(product, shop); err != nil {
			return frozenCartResponse(c, err)
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Successfully added to cart",
			Result: &fiber.Map{
				"status":    "success",
				"cartCount": store.ItemCount(),
			},
		})
	}
}

type RemoveFromCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	ShopID    string `json:"shopId" validate:"required"`
}

func RemoveFromCart(store *cart.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request RemoveFromCartRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid request",
				Result:  nil,
			})
		}

		if err := store.RemoveItem(request.ProductID, request.ShopID); err != nil {
			return frozenCartResponse(c, err)
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Successfully removed from cart",
			Result: &fiber.Map{
				"status":    "success",
				"cartCount": store.ItemCount(),
			},
		})
	}
}

type UpdateQuantityRequest struct {
	ProductID string `json:"productId" validate:"required"`
	ShopID    string `json:"shopId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required"`
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are silently
// ignored, matching the storefront's minus button at quantity 1.
func UpdateQuantity(store *cart.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request UpdateQuantityRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid request",
				Result:  nil,
			})
		}

		if err := store.UpdateQuantity(request.ProductID, request.ShopID, request.Quantity); err != nil {
			return frozenCartResponse(c, err)
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Successfully updated quantity",
			Result: &fiber.Map{
				"status":    "success",
				"cartCount": store.ItemCount(),
			},
		})
	}
}

// FetchCartItems returns the cart grouped by shop for display.
func FetchCartItems(store *cart.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups := store.GroupByShop()

		status := "success"
		if len(groups) == 0 {
			status = "cart is empty"
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Successfully fetched cart items",
			Result: &fiber.Map{
				"status":    status,
				"cartCount": store.ItemCount(),
				"shops":     groups,
			},
		})
	}
}

// GetCartTotals returns the derived totals, raw and formatted.
func GetCartTotals(store *cart.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subtotal := store.Subtotal()
		deliveryFee := store.DeliveryFee()
		grandTotal := store.Total()

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Successfully calculated cart totals",
			Result: &fiber.Map{
				"subtotal":           subtotal,
				"deliveryFee":        deliveryFee,
				"grandTotal":         grandTotal,
				"subtotalDisplay":    utils.FormatCurrency(subtotal),
				"deliveryFeeDisplay": utils.FormatCurrency(deliveryFee),
				"grandTotalDisplay":  utils.FormatCurrency(grandTotal),
			},
		})
	}
}

func frozenCartResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, cart.ErrCartFrozen) {
		return c.Status(fiber.StatusConflict).JSON(responses.StoreResponse{
			Status:  fiber.StatusConflict,
			Message: "Cart is locked while your order is being processed",
			Result:  nil,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Failed to update cart",
		Result:  nil,
	})
}
