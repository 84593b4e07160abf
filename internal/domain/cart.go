package domain

import (
	"errors"
	"strings"
)

const (
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = 2000
	// ShippingFee is the flat delivery charge below the free-shipping threshold.
	ShippingFee = 100

	// CouponWelcome50 gives a flat 50 rupees off, gated on a minimum order.
	CouponWelcome50 = "WELCOME50"
	// CouponSJSM10 gives 10% off the subtotal, no minimum.
	CouponSJSM10 = "SJSM10"

	welcome50Discount = 50
	welcome50MinOrder = 500
)

var (
	ErrCouponInvalid  = errors.New("invalid coupon code")
	ErrCouponMinOrder = errors.New("minimum order of 500 required for this coupon")
)

// CartItem is a cart line: a product snapshot plus a quantity.
// Quantity is always >= 1; a line that would reach zero is removed instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart holds the line items and the applied coupon for one shopping session.
// Carts live in memory only and are not safe for concurrent use; callers
// serialize access per session.
type Cart struct {
	Items      []CartItem `json:"items"`
	CouponCode string     `json:"coupon_code,omitempty"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the product, incrementing the quantity if the
// product is already in the cart. There is no quantity ceiling.
func (c *Cart) AddItem(p Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// RemoveItem deletes the line for the given product regardless of quantity.
func (c *Cart) RemoveItem(productID int) {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites the quantity of an existing line. A quantity of zero
// or less removes the line.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart. The applied coupon is tied to the cart lifetime and
// is cleared with it.
func (c *Cart) Clear() {
	c.Items = nil
	c.CouponCode = ""
}

// Subtotal is the sum of price times quantity over all lines, in whole rupees.
func (c *Cart) Subtotal() int {
	var total int
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

// ItemCount is the total number of units across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// ShippingCharge is free at or above the threshold, otherwise a flat fee.
func (c *Cart) ShippingCharge() int {
	if c.Subtotal() >= FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

// Discount returns the rupee value of the applied coupon against the current
// subtotal. SJSM10 tracks subtotal changes; WELCOME50 stays flat.
func (c *Cart) Discount() int {
	switch c.CouponCode {
	case CouponWelcome50:
		return welcome50Discount
	case CouponSJSM10:
		// 10% of subtotal, rounded to the nearest rupee.
		return (c.Subtotal() + 5) / 10
	default:
		return 0
	}
}

// ApplyCoupon matches the code case-insensitively against the fixed coupon
// table. Applying a coupon replaces any previously applied one; only one is
// active at a time. A failed application leaves the current coupon untouched.
func (c *Cart) ApplyCoupon(code string) error {
	switch strings.ToUpper(code) {
	case CouponWelcome50:
		if c.Subtotal() < welcome50MinOrder {
			return ErrCouponMinOrder
		}
		c.CouponCode = CouponWelcome50
		return nil
	case CouponSJSM10:
		c.CouponCode = CouponSJSM10
		return nil
	default:
		return ErrCouponInvalid
	}
}

// RemoveCoupon clears the applied coupon. Calling it with no coupon applied
// is a no-op.
func (c *Cart) RemoveCoupon() {
	c.CouponCode = ""
}
