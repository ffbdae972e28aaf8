package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodiehub-api/models"
	"foodiehub-api/store"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrderController(t *testing.T) (*OrderController, *store.CartStore) {
	t.Helper()
	ctx := context.Background()
	storage := store.NewMemoryStorage()
	cart, err := store.NewCartStore(ctx, storage)
	require.NoError(t, err)
	orders, err := store.NewOrderStore(ctx, storage)
	require.NoError(t, err)
	users, err := store.NewUserStore(ctx, storage)
	require.NoError(t, err)
	checkout := store.NewCheckout(cart, orders)
	return NewOrderController(checkout, orders, users, nil), cart
}

func fillCart(t *testing.T, cart *store.CartStore) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, cart.AddItem(ctx, models.FoodItem{ID: 1, Name: "Butter Chicken", Price: 320}))
	require.NoError(t, cart.AddItem(ctx, models.FoodItem{ID: 3, Name: "Masala Dosa", Price: 120}))
	require.NoError(t, cart.AddItem(ctx, models.FoodItem{ID: 8, Name: "Pani Puri", Price: 60}))
}

const checkoutBody = `{
	"address": {
		"full_name": "Demo User",
		"phone": "9876543210",
		"email": "demo@foodiehub.com",
		"street": "42 MG Road",
		"city": "Mumbai",
		"state": "Maharashtra",
		"pincode": "400001"
	},
	"payment_method": "upi"
}`

func TestCheckoutHandlerPlacesOrder(t *testing.T) {
	oc, cart := newTestOrderController(t)
	fillCart(t, cart)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(checkoutBody))
	w := httptest.NewRecorder()
	oc.PlaceOrder(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&order))
	assert.Equal(t, models.StatusConfirmed, order.Status)
	assert.Equal(t, 525.0, order.Total)
	assert.Empty(t, cart.Items())
}

func TestCheckoutHandlerEmptyCart(t *testing.T) {
	oc, _ := newTestOrderController(t)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(checkoutBody))
	w := httptest.NewRecorder()
	oc.PlaceOrder(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutHandlerRejectsBadAddress(t *testing.T) {
	oc, cart := newTestOrderController(t)
	fillCart(t, cart)

	body := `{"address":{"full_name":"Demo User","phone":"123","email":"demo@foodiehub.com","street":"x","city":"y","state":"z","pincode":"400001"},"payment_method":"cash"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	w := httptest.NewRecorder()
	oc.PlaceOrder(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, cart.Items(), 3)
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	oc, cart := newTestOrderController(t)
	fillCart(t, cart)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(checkoutBody))
	w := httptest.NewRecorder()
	oc.PlaceOrder(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&order))

	router := mux.NewRouter()
	router.HandleFunc("/orders/{id}/status", oc.UpdateOrderStatus).Methods("PATCH")

	patch := func(id, status string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/orders/%s/status", id),
			strings.NewReader(fmt.Sprintf(`{"status":%q}`, status)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, patch(order.ID, "Preparing").Code)
	// skipping ahead is rejected
	assert.Equal(t, http.StatusConflict, patch(order.ID, "Delivered").Code)
	// unknown order
	assert.Equal(t, http.StatusNotFound, patch("FH0", "Preparing").Code)
	// unknown status
	assert.Equal(t, http.StatusBadRequest, patch(order.ID, "Lost").Code)
}

func TestCurrentOrderLifecycle(t *testing.T) {
	oc, cart := newTestOrderController(t)
	fillCart(t, cart)

	w := httptest.NewRecorder()
	oc.GetCurrentOrder(w, httptest.NewRequest(http.MethodGet, "/orders/current", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	oc.PlaceOrder(w, httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(checkoutBody)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	oc.GetCurrentOrder(w, httptest.NewRequest(http.MethodGet, "/orders/current", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	oc.ClearCurrentOrder(w, httptest.NewRequest(http.MethodDelete, "/orders/current", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	oc.GetCurrentOrder(w, httptest.NewRequest(http.MethodGet, "/orders/current", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// clearing the pointer never touches the history
	w = httptest.NewRecorder()
	oc.GetOrders(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	var orders []models.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
	assert.Len(t, orders, 1)
}
