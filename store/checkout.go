package store

import (
	"context"
	"errors"
	"fmt"

	"foodiehub-api/models"
)

var (
	// ErrEmptyCart rejects a checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidPayment rejects an unknown payment method.
	ErrInvalidPayment = errors.New("invalid payment method")
)

// Checkout places orders. It is the one writer that touches the cart
// and order stores together: the order is persisted first, then the
// cart is cleared, and a failed clear rolls the order back again so the
// two stores never disagree about whether an order is outstanding.
type Checkout struct {
	carts  *CartStore
	orders *OrderStore
}

// NewCheckout creates a Checkout over the given stores.
func NewCheckout(carts *CartStore, orders *OrderStore) *Checkout {
	return &Checkout{carts: carts, orders: orders}
}

// PlaceOrder prices the current cart, records the order and empties the
// cart as one unit of work. On success the placed order is returned and
// exposed as the order store's current order.
func (c *Checkout) PlaceOrder(ctx context.Context, address models.Address, paymentMethod, couponCode string) (models.Order, error) {
	if !models.ValidPaymentMethod(paymentMethod) {
		return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidPayment, paymentMethod)
	}

	items := c.carts.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	pricing, err := PriceCart(subtotal(items), couponCode)
	if err != nil {
		return models.Order{}, err
	}

	order, err := c.orders.PlaceOrder(ctx, models.OrderDraft{
		Items:         items,
		Address:       address,
		PaymentMethod: paymentMethod,
		Subtotal:      pricing.Subtotal,
		DeliveryFee:   pricing.DeliveryFee,
		Taxes:         pricing.Taxes,
		Discount:      pricing.Discount,
		CouponCode:    pricing.CouponCode,
		Total:         pricing.Total,
	})
	if err != nil {
		return models.Order{}, err
	}

	if err := c.carts.Clear(ctx); err != nil {
		if rbErr := c.orders.rollbackPlace(ctx, order.ID); rbErr != nil {
			return models.Order{}, fmt.Errorf("clear cart: %v; rollback order %s: %w", err, order.ID, rbErr)
		}
		return models.Order{}, fmt.Errorf("clear cart: %w", err)
	}
	return order, nil
}
