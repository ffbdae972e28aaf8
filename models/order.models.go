package models

import (
	"time"
)

// Address represents the delivery address collected at checkout
type Address struct {
	FullName string `bson:"full_name" json:"full_name"`
	Phone    string `bson:"phone" json:"phone"`
	Email    string `bson:"email" json:"email"`
	Street   string `bson:"street" json:"street"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	Pincode  string `bson:"pincode" json:"pincode"`
	Landmark string `bson:"landmark,omitempty" json:"landmark,omitempty"`
}

// OrderStatus is the delivery state of a placed order.
type OrderStatus string

const (
	StatusConfirmed      OrderStatus = "Confirmed"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// OrderDraft is the transient record assembled at checkout before it is
// stamped into an Order.
type OrderDraft struct {
	Items         []CartLine
	Address       Address
	PaymentMethod string
	Subtotal      float64
	DeliveryFee   float64
	Taxes         float64
	Discount      float64
	CouponCode    string
	Total         float64
}

// Order represents a placed order. The item snapshot is immutable once
// placed; only Status changes afterwards.
type Order struct {
	ID            string      `bson:"_id" json:"id"`
	Items         []CartLine  `bson:"items" json:"items"`
	Address       Address     `bson:"address" json:"address"`
	PaymentMethod string      `bson:"payment_method" json:"payment_method"`
	Subtotal      float64     `bson:"subtotal" json:"subtotal"`
	DeliveryFee   float64     `bson:"delivery_fee" json:"delivery_fee"`
	Taxes         float64     `bson:"taxes" json:"taxes"`
	Discount      float64     `bson:"discount" json:"discount"`
	CouponCode    string      `bson:"coupon_code,omitempty" json:"coupon_code,omitempty"`
	Total         float64     `bson:"total" json:"total"`
	Status        OrderStatus `bson:"status" json:"status"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
}
