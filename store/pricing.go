package store

import (
	"errors"
	"math"
	"strings"
)

// ErrInvalidCoupon reports an unknown coupon code.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// Delivery is free above this subtotal, otherwise a flat fee applies.
// Taxes are a flat rate on the subtotal, rounded to whole rupees.
const (
	freeDeliveryAbove = 499.0
	flatDeliveryFee   = 40.0
	taxRate           = 0.05
)

// Coupon discounts as a fraction of the subtotal, rounded to whole
// rupees.
var coupons = map[string]float64{
	"FOODIE20":  0.20,
	"WELCOME10": 0.10,
}

// Pricing is the checkout cost breakdown for a cart subtotal.
type Pricing struct {
	Subtotal    float64
	DeliveryFee float64
	Taxes       float64
	Discount    float64
	CouponCode  string
	Total       float64
}

// PriceCart computes the checkout totals for a cart subtotal.
// couponCode may be empty; codes are case-insensitive and an unknown
// code returns ErrInvalidCoupon.
func PriceCart(subtotal float64, couponCode string) (Pricing, error) {
	p := Pricing{Subtotal: subtotal}
	if subtotal <= freeDeliveryAbove {
		p.DeliveryFee = flatDeliveryFee
	}
	p.Taxes = math.Round(subtotal * taxRate)
	if couponCode != "" {
		code := strings.ToUpper(couponCode)
		frac, ok := coupons[code]
		if !ok {
			return Pricing{}, ErrInvalidCoupon
		}
		p.CouponCode = code
		p.Discount = math.Round(subtotal * frac)
	}
	p.Total = p.Subtotal + p.DeliveryFee + p.Taxes - p.Discount
	return p, nil
}
