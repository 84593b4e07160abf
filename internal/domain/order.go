package domain

import "time"

// OrderStatus is the fulfillment state of an order. Orders are created in
// Processing and never transition further in this system; the other values
// exist for display compatibility with historical records.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// PaymentMethod selects which payment details are validated at checkout.
type PaymentMethod string

const (
	PaymentMethodUPI  PaymentMethod = "UPI"
	PaymentMethodCard PaymentMethod = "CARD"
)

// Order is an immutable record of a completed checkout. Items are a snapshot
// of the cart at purchase time; Discount combines the coupon discount and any
// redeemed loyalty points.
type Order struct {
	ID             string        `json:"id"`
	Items          []CartItem    `json:"items"`
	Subtotal       int           `json:"subtotal"`
	DeliveryCharge int           `json:"delivery_charge"`
	Discount       int           `json:"discount"`
	Total          int           `json:"total"`
	Date           time.Time     `json:"date"`
	DeliveryDate   time.Time     `json:"delivery_date"`
	Status         OrderStatus   `json:"status"`
	Address        string        `json:"address"`
	PaymentMode    PaymentMethod `json:"payment_mode"`
	PointsEarned   int           `json:"points_earned"`
}
