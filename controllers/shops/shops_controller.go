package shopController

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sandeshcse/shopnearme/models"
	"github.com/sandeshcse/shopnearme/responses"
	"github.com/sandeshcse/shopnearme/services/catalog"
)

// GetAllShops lists shops filtered by search query and category.
func GetAllShops(cat *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q", "")
		category := c.Query("category", catalog.CategoryAll)

		shops := cat.FilterShops(query, category)

		status := "success"
		if len(shops) == 0 {
			status = "no shops found"
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Fetched shops",
			Result: &fiber.Map{
				"status":     status,
				"totalShops": len(shops),
				"shops":      shops,
			},
		})
	}
}

func GetCategories(cat *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Fetched categories",
			Result: &fiber.Map{
				"status":     "success",
				"categories": cat.ListCategories(),
			},
		})
	}
}

// GetShopDetails returns a single shop with its products and reviews.
func GetShopDetails(cat *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shopId := c.Query("shopId")
		if shopId == "" {
			return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Missing shop Id",
				Result:  nil,
			})
		}

		shop, ok := cat.GetShop(shopId)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(responses.StoreResponse{
				Status:  fiber.StatusNotFound,
				Message: "Shop not found",
				Result:  nil,
			})
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Shop fetched successfully",
			Result: &fiber.Map{
				"status": "success",
				"shop":   shop,
			},
		})
	}
}

// GetShopProducts lists one shop's products filtered by search query and
// category.
func GetShopProducts(cat *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shop, ok := cat.GetShop(c.Params("shopId"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(responses.StoreResponse{
				Status:  fiber.StatusNotFound,
				Message: "Shop not found",
				Result:  nil,
			})
		}

		query := c.Query("q", "")
		category := c.Query("category", catalog.CategoryAll)
		products := cat.FilterProducts(shop, query, category)

		status := "success"
		if len(products) == 0 {
			status = "no products found"
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Fetched products",
			Result: &fiber.Map{
				"status":        status,
				"shopId":        shop.ID,
				"shopName":      shop.Name,
				"totalProducts": len(products),
				"products":      products,
			},
		})
	}
}

// GetProductCategories returns the category options for one shop's product
// filter, "all" first.
func GetProductCategories(cat *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shop, ok := cat.GetShop(c.Params("shopId"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(responses.StoreResponse{
				Status:  fiber.StatusNotFound,
				Message: "Shop not found",
				Result:  nil,
			})
		}

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Fetched product categories",
			Result: &fiber.Map{
				"status":     "success",
				"categories": cat.ProductCategories(shop),
			},
		})
	}
}

type RegisterShopRequest struct {
	ShopName     string `json:"shopName"`
	OwnerName    string `json:"ownerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Description  string `json:"description"`
	OpeningHours string `json:"openingHours"`
	Category     string `json:"category"`
}

// RegisterShop accepts a "Register Your Shop" submission and holds it for
// review. Description and opening hours are optional.
func RegisterShop(cat *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request RegisterShopRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid request",
				Result:  nil,
			})
		}

		required := map[string]string{
			"shopName":  request.ShopName,
			"ownerName": request.OwnerName,
			"email":     request.Email,
			"phone":     request.Phone,
			"address":   request.Address,
			"category":  request.Category,
		}
		errs := map[string]string{}
		for field, value := range required {
			if strings.TrimSpace(value) == "" {
				errs[field] = "This field is required"
			}
		}
		if len(errs) > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(responses.StoreResponse{
				Status:  fiber.StatusUnprocessableEntity,
				Message: "Validation failed",
				Result: &fiber.Map{
					"errors": errs,
				},
			})
		}

		reg := cat.RegisterShop(models.ShopRegistration{
			ShopName:     request.ShopName,
			OwnerName:    request.OwnerName,
			Email:        request.Email,
			Phone:        request.Phone,
			Address:      request.Address,
			Description:  request.Description,
			OpeningHours: request.OpeningHours,
			Category:     request.Category,
		})

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Shop registration submitted successfully",
			Result: &fiber.Map{
				"status":         "success",
				"registrationId": reg.ID,
			},
		})
	}
}
