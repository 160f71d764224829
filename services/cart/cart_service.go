package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sandeshcse/shopnearme/models"
	"github.com/sandeshcse/shopnearme/services/notify"
)

// ErrCartFrozen is returned by mutating operations while a checkout is in
// its processing step.
var ErrCartFrozen = errors.New("cart is locked while the order is being processed")

// Store holds the session's cart. Lines keep insertion order; a
// (productId, shopId) pair appears at most once.
type Store struct {
	mu          sync.Mutex
	items       []models.CartItem
	frozen      bool
	deliveryFee int
	notifier    *notify.Notifier
}

func NewStore(deliveryFee int, notifier *notify.Notifier) *Store {
	if notifier == nil {
		notifier = notify.NewNotifier(nil)
	}
	return &Store{deliveryFee: deliveryFee, notifier: notifier}
}

// AddItem puts one unit of the product into the cart. If the same product
// from the same shop is already present its quantity is incremented instead
// of adding a second line.
func (s *Store) AddItem(product models.Product, shop models.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrCartFrozen
	}

	for i, item := range s.items {
		if item.Product.ID == product.ID && item.ShopID == shop.ID {
			s.items[i].Quantity += 1
			s.notifier.Push(fmt.Sprintf("%s quantity increased in cart", product.Name), notify.SeveritySuccess)
			return nil
		}
	}

	s.items = append(s.items, models.CartItem{
		Product:  product,
		Quantity: 1,
		ShopID:   shop.ID,
		ShopName: shop.Name,
	})
	s.notifier.Push(fmt.Sprintf("%s added to cart", product.Name), notify.SeveritySuccess)
	return nil
}

// RemoveItem deletes the matching line. Removing an absent line is not an
// error.
func (s *Store) RemoveItem(productID, shopID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrCartFrozen
	}

	for i, item := range s.items {
		if item.Product.ID == productID && item.ShopID == shopID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}

// UpdateQuantity replaces the line's quantity. Values below 1 are ignored;
// the line is never auto-removed.
func (s *Store) UpdateQuantity(productID, shopID string, newQuantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrCartFrozen
	}
	if newQuantity < 1 {
		return nil
	}

	for i, item := range s.items {
		if item.Product.ID == productID && item.ShopID == shopID {
			s.items[i].Quantity = newQuantity
			break
		}
	}
	return nil
}

// Items returns the cart lines in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// GroupByShop buckets the lines by shop for display. Line order within a
// shop follows insertion order.
func (s *Store) GroupByShop() map[string][]models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make(map[string][]models.CartItem)
	for _, item := range s.items {
		groups[item.ShopID] = append(groups[item.ShopID], item)
	}
	return groups
}

func (s *Store) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

// DeliveryFee is the flat fee, zero for an empty cart.
func (s *Store) DeliveryFee() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deliveryFeeLocked()
}

func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked() + s.deliveryFeeLocked()
}

// ItemCount is the badge count, the sum of all quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) LineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Clear empties the cart. Used by the checkout flow after a successful
// order, so it works even while the cart is frozen.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Freeze blocks mutations while an order is being processed.
func (s *Store) Freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frozen = true
}

func (s *Store) Unfreeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frozen = false
}

func (s *Store) subtotalLocked() int {
	total := 0
	for _, item := range s.items {
		total += item.Product.Price * item.Quantity
	}
	return total
}

func (s *Store) deliveryFeeLocked() int {
	if len(s.items) == 0 {
		return 0
	}
	return s.deliveryFee
}
