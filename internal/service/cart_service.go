package service

import (
	"sync"

	"sjsm-storefront/internal/domain"
)

// CartView is a read snapshot of a cart with its derived totals.
type CartView struct {
	Items          []domain.CartItem `json:"items"`
	ItemCount      int               `json:"item_count"`
	Subtotal       int               `json:"subtotal"`
	ShippingCharge int               `json:"shipping_charge"`
	CouponCode     string            `json:"coupon_code,omitempty"`
	Discount       int               `json:"discount"`
}

// CartService holds one in-memory cart per signed-in user. Carts are never
// persisted: they start empty, survive only as long as the process, and are
// dropped on logout or checkout completion.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

// NewCartService creates an empty cart registry.
func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*domain.Cart)}
}

func (s *CartService) cart(userID string) *domain.Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = domain.NewCart()
		s.carts[userID] = c
	}
	return c
}

// View returns the current cart snapshot for the user.
func (s *CartService) View(userID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(userID)
}

// AddItem adds one unit of the product to the user's cart.
func (s *CartService) AddItem(userID string, product domain.Product) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).AddItem(product)
	return s.view(userID)
}

// RemoveItem deletes the product's line from the user's cart.
func (s *CartService) RemoveItem(userID string, productID int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).RemoveItem(productID)
	return s.view(userID)
}

// SetQuantity overwrites a line's quantity; zero or less removes the line.
func (s *CartService) SetQuantity(userID string, productID, quantity int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).SetQuantity(productID, quantity)
	return s.view(userID)
}

// Clear empties the user's cart, including any applied coupon.
func (s *CartService) Clear(userID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).Clear()
	return s.view(userID)
}

// ApplyCoupon applies a coupon code to the user's cart.
func (s *CartService) ApplyCoupon(userID, code string) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart(userID).ApplyCoupon(code); err != nil {
		return s.view(userID), err
	}
	return s.view(userID), nil
}

// RemoveCoupon clears the applied coupon; a no-op when none is applied.
func (s *CartService) RemoveCoupon(userID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).RemoveCoupon()
	return s.view(userID)
}

// Snapshot returns a deep copy of the user's cart for checkout.
func (s *CartService) Snapshot(userID string) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	items := make([]domain.CartItem, len(c.Items))
	copy(items, c.Items)
	return &domain.Cart{Items: items, CouponCode: c.CouponCode}
}

// Drop discards the user's cart entirely.
func (s *CartService) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *CartService) view(userID string) CartView {
	c := s.cart(userID)
	items := make([]domain.CartItem, len(c.Items))
	copy(items, c.Items)
	return CartView{
		Items:          items,
		ItemCount:      c.ItemCount(),
		Subtotal:       c.Subtotal(),
		ShippingCharge: c.ShippingCharge(),
		CouponCode:     c.CouponCode,
		Discount:       c.Discount(),
	}
}
