package store

import (
	"context"
	"fmt"
	"sync"

	"foodiehub-api/models"
)

// CartStore holds the shopper's cart. Every mutation persists the full
// line collection and only then advances the in-memory state, so the
// persisted document and memory never disagree. Mutations on ids that
// are not in the cart are no-ops, not errors.
type CartStore struct {
	mu      sync.Mutex
	storage Storage
	lines   []models.CartLine
}

// NewCartStore loads any persisted cart. A missing document yields an
// empty cart; an unreadable one is reported, not discarded.
func NewCartStore(ctx context.Context, storage Storage) (*CartStore, error) {
	s := &CartStore{storage: storage}
	if _, err := storage.Load(ctx, CartKey, &s.lines); err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return s, nil
}

// AddItem appends item as a new line with quantity 1, or bumps the
// quantity when a line with the same id already exists.
func (s *CartStore) AddItem(ctx context.Context, item models.FoodItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, addLine(s.lines, item))
}

// RemoveItem drops the line with the given id.
func (s *CartStore) RemoveItem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, removeLine(s.lines, id))
}

// IncrementQuantity raises the quantity of the line with the given id
// by one.
func (s *CartStore) IncrementQuantity(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, bumpQuantity(s.lines, id, 1))
}

// DecrementQuantity lowers the quantity of the line with the given id
// by one, but never below 1: a decrement at quantity 1 is a no-op, not
// a removal.
func (s *CartStore) DecrementQuantity(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, bumpQuantity(s.lines, id, -1))
}

// Clear empties the cart.
func (s *CartStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []models.CartLine{})
}

// Items returns a copy of the current lines in insertion order.
func (s *CartStore) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.lines)
}

// Subtotal is the sum of price times quantity over all lines, computed
// from the current collection on every call.
func (s *CartStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.lines)
}

// ItemCount is the sum of quantities over all lines.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return itemCount(s.lines)
}

// commit persists next and only then replaces the in-memory lines. On a
// save failure the old state stays in place and the error is returned.
func (s *CartStore) commit(ctx context.Context, next []models.CartLine) error {
	if err := s.storage.Save(ctx, CartKey, next); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	s.lines = next
	return nil
}

// Pure transitions. Each returns a fresh slice and leaves its input
// untouched.

func addLine(lines []models.CartLine, item models.FoodItem) []models.CartLine {
	next := cloneLines(lines)
	for i := range next {
		if next[i].ID == item.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, models.CartLine{FoodItem: item, Quantity: 1})
}

func removeLine(lines []models.CartLine, id int64) []models.CartLine {
	next := make([]models.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != id {
			next = append(next, l)
		}
	}
	return next
}

func bumpQuantity(lines []models.CartLine, id int64, delta int) []models.CartLine {
	next := cloneLines(lines)
	for i := range next {
		if next[i].ID == id {
			if q := next[i].Quantity + delta; q >= 1 {
				next[i].Quantity = q
			}
			break
		}
	}
	return next
}

func subtotal(lines []models.CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

func itemCount(lines []models.CartLine) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}

func cloneLines(lines []models.CartLine) []models.CartLine {
	next := make([]models.CartLine, len(lines))
	copy(next, lines)
	return next
}
