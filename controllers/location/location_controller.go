package locationController

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/sandeshcse/shopnearme/responses"
)

// SimulatedLocation is what "Use Current Location" resolves to; there is no
// real geolocation.
const SimulatedLocation = "Current Location (Simulated)"

// Store holds the address the visitor entered in the location prompt.
type Store struct {
	mu      sync.Mutex
	address string
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = address
}

func (s *Store) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address
}

type SetLocationRequest struct {
	Address string `json:"address" validate:"required"`
}

func SetLocation(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request SetLocationRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid request",
				Result:  nil,
			})
		}

		address := strings.TrimSpace(request.Address)
		if address == "" {
			return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Location is required",
				Result:  nil,
			})
		}

		store.Set(address)

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Location updated",
			Result: &fiber.Map{
				"status":   "success",
				"location": address,
			},
		})
	}
}

func UseCurrentLocation(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store.Set(SimulatedLocation)

		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Location updated",
			Result: &fiber.Map{
				"status":   "success",
				"location": SimulatedLocation,
			},
		})
	}
}

func GetLocation(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
			Status:  fiber.StatusOK,
			Message: "Fetched location",
			Result: &fiber.Map{
				"status":   "success",
				"location": store.Get(),
			},
		})
	}
}
