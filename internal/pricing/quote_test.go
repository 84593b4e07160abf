package pricing

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		subtotal       int
		shipping       int
		couponDiscount int
		balance        int
		redeem         bool
		want           Quote
	}{
		{
			name:     "below free shipping threshold",
			subtotal: 1800,
			shipping: 100,
			want: Quote{
				Subtotal:       1800,
				ShippingCharge: 100,
				Total:          1900,
				PointsEarned:   19,
			},
		},
		{
			name:     "at free shipping threshold",
			subtotal: 2000,
			shipping: 0,
			want: Quote{
				Subtotal:     2000,
				Total:        2000,
				PointsEarned: 20,
			},
		},
		{
			name:           "redeeming a partial balance",
			subtotal:       400,
			shipping:       100,
			couponDiscount: 0,
			balance:        30,
			redeem:         true,
			want: Quote{
				Subtotal:       400,
				ShippingCharge: 100,
				PointsRedeemed: 30,
				Total:          470,
				PointsEarned:   4,
			},
		},
		{
			name:     "balance exceeds payable",
			subtotal: 40,
			shipping: 100,
			balance:  500,
			redeem:   true,
			want: Quote{
				Subtotal:       40,
				ShippingCharge: 100,
				PointsRedeemed: 140,
				Total:          0,
				PointsEarned:   0,
			},
		},
		{
			name:           "coupon exceeds order value",
			subtotal:       30,
			shipping:       100,
			couponDiscount: 500,
			want: Quote{
				Subtotal:       30,
				ShippingCharge: 100,
				CouponDiscount: 500,
				Total:          0,
			},
		},
		{
			name:     "earn cap on a large order",
			subtotal: 9000,
			shipping: 0,
			want: Quote{
				Subtotal:     9000,
				Total:        9000,
				PointsEarned: PointsEarnCap,
			},
		},
		{
			name:     "balance held when not redeeming",
			subtotal: 500,
			shipping: 100,
			balance:  30,
			redeem:   false,
			want: Quote{
				Subtotal:       500,
				ShippingCharge: 100,
				Total:          600,
				PointsEarned:   6,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.subtotal, tt.shipping, tt.couponDiscount, tt.balance, tt.redeem)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuote_NewBalance(t *testing.T) {
	q := Compute(400, 100, 0, 30, true)
	assert.Equal(t, 30, q.PointsRedeemed)
	assert.Equal(t, 4, q.PointsEarned)
	assert.Equal(t, 4, q.NewBalance(30))

	held := Compute(400, 100, 0, 30, false)
	assert.Equal(t, 35, held.NewBalance(30))
}

func TestProperty_ComputeInvariants(t *testing.T) {
	properties := gopter.NewProperties(nil)

	amounts := gen.IntRange(0, 100000)
	shippings := gen.IntRange(0, 100)
	discounts := gen.IntRange(0, 2000)
	balances := gen.IntRange(0, 5000)

	properties.Property("total is never negative", prop.ForAll(
		func(subtotal, shipping, discount, balance int) bool {
			q := Compute(subtotal, shipping, discount, balance, true)
			return q.Total >= 0
		},
		amounts, shippings, discounts, balances,
	))

	properties.Property("redeemed never exceeds balance or payable", prop.ForAll(
		func(subtotal, shipping, discount, balance int) bool {
			q := Compute(subtotal, shipping, discount, balance, true)
			payable := subtotal + shipping - discount
			if payable < 0 {
				payable = 0
			}
			return q.PointsRedeemed <= balance && q.PointsRedeemed <= payable
		},
		amounts, shippings, discounts, balances,
	))

	properties.Property("earned is total/100 capped at 50", prop.ForAll(
		func(subtotal, shipping, discount, balance int) bool {
			q := Compute(subtotal, shipping, discount, balance, true)
			want := q.Total / PointsEarnRate
			if want > PointsEarnCap {
				want = PointsEarnCap
			}
			return q.PointsEarned == want
		},
		amounts, shippings, discounts, balances,
	))

	properties.Property("new balance is never negative", prop.ForAll(
		func(subtotal, shipping, discount, balance int) bool {
			q := Compute(subtotal, shipping, discount, balance, true)
			return q.NewBalance(balance) >= 0
		},
		amounts, shippings, discounts, balances,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
