package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"foodiehub-api/models"
)

// ErrInvalidTransition reports an order-status change that is not the
// natural forward step and not a cancellation of a live order.
var ErrInvalidTransition = errors.New("invalid status transition")

// OrderStore holds the order history, most recent first, plus a pointer
// to the order placed by the latest checkout. Orders are only ever
// appended; the item snapshot inside an order never changes.
type OrderStore struct {
	mu      sync.Mutex
	storage Storage
	orders  []models.Order
	current *models.Order
	now     func() time.Time
}

// NewOrderStore loads any persisted order history.
func NewOrderStore(ctx context.Context, storage Storage) (*OrderStore, error) {
	s := &OrderStore{storage: storage, now: time.Now}
	if _, err := storage.Load(ctx, OrdersKey, &s.orders); err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return s, nil
}

// PlaceOrder stamps draft with a fresh id, the Confirmed status and the
// placement time, prepends it to the history and makes it the current
// order.
func (s *OrderStore) PlaceOrder(ctx context.Context, draft models.OrderDraft) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.Order{
		ID:            s.nextID(),
		Items:         cloneLines(draft.Items),
		Address:       draft.Address,
		PaymentMethod: draft.PaymentMethod,
		Subtotal:      draft.Subtotal,
		DeliveryFee:   draft.DeliveryFee,
		Taxes:         draft.Taxes,
		Discount:      draft.Discount,
		CouponCode:    draft.CouponCode,
		Total:         draft.Total,
		Status:        models.StatusConfirmed,
		CreatedAt:     s.now(),
	}

	next := append([]models.Order{order}, s.orders...)
	if err := s.commit(ctx, next); err != nil {
		return models.Order{}, err
	}
	s.current = &order
	return order, nil
}

// nextID derives a time-based id and bumps it past any id already in
// the history, so two orders placed in the same millisecond still get
// distinct ids.
func (s *OrderStore) nextID() string {
	ms := s.now().UnixMilli()
	for {
		id := fmt.Sprintf("FH%d", ms)
		if !s.hasID(id) {
			return id
		}
		ms++
	}
}

func (s *OrderStore) hasID(id string) bool {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return true
		}
	}
	return false
}

// UpdateStatus moves the order with the given id to newStatus. Unknown
// ids are a no-op and leave the history untouched. The allowed moves
// are the forward sequence Confirmed, Preparing, Out for Delivery,
// Delivered, plus Cancelled from any non-terminal state; anything else
// returns ErrInvalidTransition.
func (s *OrderStore) UpdateStatus(ctx context.Context, id string, newStatus models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	if !canTransition(s.orders[idx].Status, newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.orders[idx].Status, newStatus)
	}

	next := cloneOrders(s.orders)
	next[idx].Status = newStatus
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	if s.current != nil && s.current.ID == id {
		cur := next[idx]
		s.current = &cur
	}
	return nil
}

func canTransition(from, to models.OrderStatus) bool {
	if to == models.StatusCancelled {
		return !from.Terminal()
	}
	switch from {
	case models.StatusConfirmed:
		return to == models.StatusPreparing
	case models.StatusPreparing:
		return to == models.StatusOutForDelivery
	case models.StatusOutForDelivery:
		return to == models.StatusDelivered
	}
	return false
}

// ClearCurrentOrder detaches the current-order pointer. The history is
// not touched and nothing is persisted.
func (s *OrderStore) ClearCurrentOrder() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// CurrentOrder returns the most recently placed order, if one is still
// attached.
func (s *OrderStore) CurrentOrder() (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Order{}, false
	}
	return *s.current, true
}

// Orders returns a copy of the history, most recent first.
func (s *OrderStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.orders)
}

// Get returns the order with the given id.
func (s *OrderStore) Get(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			return s.orders[i], true
		}
	}
	return models.Order{}, false
}

func (s *OrderStore) commit(ctx context.Context, next []models.Order) error {
	if err := s.storage.Save(ctx, OrdersKey, next); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}
	s.orders = next
	return nil
}

// rollbackPlace removes a just-placed order from history and storage.
// Checkout uses it when the cart clear fails after the order was
// already persisted.
func (s *OrderStore) rollbackPlace(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if o.ID != id {
			next = append(next, o)
		}
	}
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	return nil
}

func cloneOrders(orders []models.Order) []models.Order {
	next := make([]models.Order, len(orders))
	copy(next, orders)
	return next
}
