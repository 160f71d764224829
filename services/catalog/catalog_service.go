package catalog

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sandeshcse/shopnearme/configs"
	"github.com/sandeshcse/shopnearme/models"
)

// CategoryAll is the sentinel selector that matches every category.
const CategoryAll = "all"

// Service answers read-only queries over the static shop directory and keeps
// the in-memory intake of "Register Your Shop" submissions.
type Service struct {
	shops      []models.Shop
	categories []models.CategoryOption

	mu            sync.Mutex
	registrations []models.ShopRegistration
}

func NewService(data *configs.CatalogData) *Service {
	return &Service{
		shops:      data.Shops,
		categories: data.Categories,
	}
}

func (s *Service) ListShops() []models.Shop {
	return s.shops
}

func (s *Service) ListCategories() []models.CategoryOption {
	return s.categories
}

// FilterShops returns the shops whose name contains the query
// (case-insensitive) and whose category equals the selector.
func (s *Service) FilterShops(query, category string) []models.Shop {
	query = strings.ToLower(query)

	matched := []models.Shop{}
	for _, shop := range s.shops {
		matchesCategory := category == CategoryAll || shop.Category == category
		matchesSearch := strings.Contains(strings.ToLower(shop.Name), query)
		if matchesCategory && matchesSearch {
			matched = append(matched, shop)
		}
	}
	return matched
}

func (s *Service) GetShop(shopID string) (models.Shop, bool) {
	for _, shop := range s.shops {
		if shop.ID == shopID {
			return shop, true
		}
	}
	return models.Shop{}, false
}

// FilterProducts applies the same two predicates over a shop's product list,
// using the product's own category field.
func (s *Service) FilterProducts(shop models.Shop, query, category string) []models.Product {
	query = strings.ToLower(query)

	matched := []models.Product{}
	for _, product := range shop.Products {
		matchesCategory := category == CategoryAll || product.Category == category
		matchesSearch := strings.Contains(strings.ToLower(product.Name), query)
		if matchesCategory && matchesSearch {
			matched = append(matched, product)
		}
	}
	return matched
}

// ProductCategories lists the distinct categories of a shop's products, in
// first-seen order, with the "all" sentinel prepended.
func (s *Service) ProductCategories(shop models.Shop) []string {
	seen := make(map[string]bool)
	categories := []string{CategoryAll}
	for _, product := range shop.Products {
		if !seen[product.Category] {
			seen[product.Category] = true
			categories = append(categories, product.Category)
		}
	}
	return categories
}

// FindProduct resolves a (shopId, productId) pair against the catalog.
func (s *Service) FindProduct(shopID, productID string) (models.Product, models.Shop, bool) {
	shop, ok := s.GetShop(shopID)
	if !ok {
		return models.Product{}, models.Shop{}, false
	}
	for _, product := range shop.Products {
		if product.ID == productID {
			return product, shop, true
		}
	}
	return models.Product{}, models.Shop{}, false
}

// RegisterShop records a pending registration and returns it with its
// assigned id. Submissions are held in memory only.
func (s *Service) RegisterShop(reg models.ShopRegistration) models.ShopRegistration {
	reg.ID = uuid.New().String()
	reg.SubmittedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrations = append(s.registrations, reg)
	return reg
}

func (s *Service) PendingRegistrations() []models.ShopRegistration {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ShopRegistration, len(s.registrations))
	copy(out, s.registrations)
	return out
}
