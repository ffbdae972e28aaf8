package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"foodiehub-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft(total float64) models.OrderDraft {
	return models.OrderDraft{
		Items: []models.CartLine{
			{FoodItem: testItem(1, "Butter Chicken", 320), Quantity: 1},
			{FoodItem: testItem(3, "Masala Dosa", 120), Quantity: 1},
			{FoodItem: testItem(8, "Pani Puri", 60), Quantity: 1},
		},
		Address:       models.Address{FullName: "Demo User", City: "Mumbai"},
		PaymentMethod: models.PaymentCash,
		Subtotal:      500,
		DeliveryFee:   0,
		Taxes:         25,
		Total:         total,
	}
}

func newTestOrders(t *testing.T) (*OrderStore, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	orders, err := NewOrderStore(context.Background(), storage)
	require.NoError(t, err)
	return orders, storage
}

func TestPlaceOrderStampsAndPrepends(t *testing.T) {
	orders, _ := newTestOrders(t)
	ctx := context.Background()

	first, err := orders.PlaceOrder(ctx, testDraft(575))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, models.StatusConfirmed, first.Status)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, 575.0, first.Total)
	assert.Len(t, first.Items, 3)

	cur, ok := orders.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, first.ID, cur.ID)

	second, err := orders.PlaceOrder(ctx, testDraft(355))
	require.NoError(t, err)

	history := orders.Orders()
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestPlaceOrderUniqueIDsSameMillisecond(t *testing.T) {
	orders, _ := newTestOrders(t)
	orders.now = func() time.Time { return time.UnixMilli(1700000000000) }
	ctx := context.Background()

	a, err := orders.PlaceOrder(ctx, testDraft(575))
	require.NoError(t, err)
	b, err := orders.PlaceOrder(ctx, testDraft(575))
	require.NoError(t, err)

	assert.Equal(t, "FH1700000000000", a.ID)
	assert.Equal(t, "FH1700000000001", b.ID)
}

func TestPlaceOrderSnapshotIsACopy(t *testing.T) {
	orders, _ := newTestOrders(t)
	draft := testDraft(575)

	placed, err := orders.PlaceOrder(context.Background(), draft)
	require.NoError(t, err)

	draft.Items[0].Quantity = 99
	got := orders.Orders()[0]
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.Equal(t, 1, placed.Items[0].Quantity)
}

func TestUpdateStatusForwardSequence(t *testing.T) {
	orders, _ := newTestOrders(t)
	ctx := context.Background()
	placed, err := orders.PlaceOrder(ctx, testDraft(575))
	require.NoError(t, err)

	for _, next := range []models.OrderStatus{
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	} {
		require.NoError(t, orders.UpdateStatus(ctx, placed.ID, next))
		got, ok := orders.Get(placed.ID)
		require.True(t, ok)
		assert.Equal(t, next, got.Status)
	}

	// Delivered is terminal
	err = orders.UpdateStatus(ctx, placed.ID, models.StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusRejectsSkips(t *testing.T) {
	orders, _ := newTestOrders(t)
	ctx := context.Background()
	placed, err := orders.PlaceOrder(ctx, testDraft(575))
	require.NoError(t, err)

	err = orders.UpdateStatus(ctx, placed.ID, models.StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = orders.UpdateStatus(ctx, placed.ID, models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, _ := orders.Get(placed.ID)
	assert.Equal(t, models.StatusConfirmed, got.Status)
}

func TestCancelFromAnyNonTerminalState(t *testing.T) {
	orders, _ := newTestOrders(t)
	ctx := context.Background()

	placed, err := orders.PlaceOrder(ctx, testDraft(575))
	require.NoError(t, err)
	require.NoError(t, orders.UpdateStatus(ctx, placed.ID, models.StatusPreparing))
	require.NoError(t, orders.UpdateStatus(ctx, placed.ID, models.StatusCancelled))

	// Cancelled is terminal too
	err = orders.UpdateStatus(ctx, placed.ID, models.StatusPreparing)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusUnknownIDLeavesHistoryUntouched(t *testing.T) {
	orders, storage := newTestOrders(t)
	ctx := context.Background()
	_, err := orders.PlaceOrder(ctx, testDraft(575))
	require.NoError(t, err)

	before, err := json.Marshal(orders.Orders())
	require.NoError(t, err)
	beforeDoc := append([]byte(nil), storage.docs[OrdersKey]...)

	require.NoError(t, orders.UpdateStatus(ctx, "FH0", models.StatusPreparing))

	after, err := json.Marshal(orders.Orders())
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, beforeDoc, storage.docs[OrdersKey])
}

func TestClearCurrentOrder(t *testing.T) {
	orders, _ := newTestOrders(t)
	_, err := orders.PlaceOrder(context.Background(), testDraft(575))
	require.NoError(t, err)

	orders.ClearCurrentOrder()
	_, ok := orders.CurrentOrder()
	assert.False(t, ok)
	assert.Len(t, orders.Orders(), 1)
}

func TestOrdersPersistRoundTrip(t *testing.T) {
	orders, storage := newTestOrders(t)
	ctx := context.Background()
	placed, err := orders.PlaceOrder(ctx, testDraft(575))
	require.NoError(t, err)
	require.NoError(t, orders.UpdateStatus(ctx, placed.ID, models.StatusPreparing))

	reloaded, err := NewOrderStore(ctx, storage)
	require.NoError(t, err)

	want, err := json.Marshal(orders.Orders())
	require.NoError(t, err)
	got, err := json.Marshal(reloaded.Orders())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestPlaceOrderPersistFailure(t *testing.T) {
	storage := newFlakyStorage()
	ctx := context.Background()
	orders, err := NewOrderStore(ctx, storage)
	require.NoError(t, err)

	storage.failKeys[OrdersKey] = true
	_, err = orders.PlaceOrder(ctx, testDraft(575))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Empty(t, orders.Orders())
	_, ok := orders.CurrentOrder()
	assert.False(t, ok)
}
