// Package pricing derives the payable amount for a checkout from the cart
// totals and the shopper's loyalty balance, and validates the payment
// instrument before the simulated processing step.
package pricing

const (
	// PointsEarnRate is the rupees spent per loyalty point earned.
	PointsEarnRate = 100
	// PointsEarnCap is the maximum points earned on a single order.
	PointsEarnCap = 50
)

// Quote is the money breakdown for a checkout. All amounts are whole rupees.
type Quote struct {
	Subtotal       int `json:"subtotal"`
	ShippingCharge int `json:"shipping_charge"`
	CouponDiscount int `json:"coupon_discount"`
	PointsRedeemed int `json:"points_redeemed"`
	Total          int `json:"total"`
	PointsEarned   int `json:"points_earned"`
}

// Compute derives a quote. Redeemed points are capped both by the shopper's
// balance and by the amount still payable, so the total never goes negative.
// Points are earned on the post-discount total: one point per PointsEarnRate
// rupees, capped at PointsEarnCap.
func Compute(subtotal, shipping, couponDiscount, loyaltyBalance int, redeemPoints bool) Quote {
	payable := subtotal + shipping - couponDiscount
	if payable < 0 {
		payable = 0
	}

	var redeemed int
	if redeemPoints {
		redeemed = loyaltyBalance
		if redeemed > payable {
			redeemed = payable
		}
		if redeemed < 0 {
			redeemed = 0
		}
	}

	total := payable - redeemed
	if total < 0 {
		total = 0
	}

	earned := total / PointsEarnRate
	if earned > PointsEarnCap {
		earned = PointsEarnCap
	}

	return Quote{
		Subtotal:       subtotal,
		ShippingCharge: shipping,
		CouponDiscount: couponDiscount,
		PointsRedeemed: redeemed,
		Total:          total,
		PointsEarned:   earned,
	}
}

// NewBalance is the loyalty balance after a successful checkout with this
// quote: redeemed points are spent, earned points are credited.
func (q Quote) NewBalance(currentBalance int) int {
	return (currentBalance - q.PointsRedeemed) + q.PointsEarned
}
