// controllers/order.go
package controllers

import (
	"encoding/json"
	"errors"
	"foodiehub-api/models"
	"foodiehub-api/store"
	"foodiehub-api/utils"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// OrderController handles checkout and order-history requests
type OrderController struct {
	Checkout     *store.Checkout
	Orders       *store.OrderStore
	Users        *store.UserStore
	EmailService *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(checkout *store.Checkout, orders *store.OrderStore, users *store.UserStore, emailService *utils.EmailService) *OrderController {
	return &OrderController{
		Checkout:     checkout,
		Orders:       orders,
		Users:        users,
		EmailService: emailService,
	}
}

// PlaceOrder prices the cart and places the order, clearing the cart as
// part of the same unit of work
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Address       models.Address `json:"address"`
		PaymentMethod string         `json:"payment_method"`
		CouponCode    string         `json:"coupon_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if msg := validateAddress(req.Address); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	paymentMethod := strings.ToLower(req.PaymentMethod)
	order, err := oc.Checkout.PlaceOrder(r.Context(), req.Address, paymentMethod, req.CouponCode)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyCart):
			http.Error(w, "Cart is empty", http.StatusBadRequest)
		case errors.Is(err, store.ErrInvalidPayment):
			http.Error(w, "Invalid payment method", http.StatusBadRequest)
		case errors.Is(err, store.ErrInvalidCoupon):
			http.Error(w, "Invalid coupon code", http.StatusBadRequest)
		default:
			storageError(w, err)
		}
		return
	}

	if oc.EmailService != nil {
		go func(email string, order models.Order) {
			if err := oc.EmailService.SendOrderConfirmationEmail(email, order); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(req.Address.Email, order)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func validateAddress(a models.Address) string {
	switch {
	case a.FullName == "":
		return "Full name is required"
	case !utils.ValidatePhone(a.Phone):
		return "Enter valid 10-digit phone number"
	case !utils.ValidateEmail(a.Email):
		return "Invalid email address"
	case a.Street == "":
		return "Address is required"
	case a.City == "":
		return "City is required"
	case a.State == "":
		return "State is required"
	case !utils.ValidatePincode(a.Pincode):
		return "Enter valid 6-digit pincode"
	}
	return ""
}

// GetOrders retrieves the order history, most recent first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(oc.Orders.Orders())
}

// GetCurrentOrder retrieves the order placed by the latest checkout
func (oc *OrderController) GetCurrentOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := oc.Orders.CurrentOrder()
	if !ok {
		http.Error(w, "No current order", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// ClearCurrentOrder detaches the current-order pointer
func (oc *OrderController) ClearCurrentOrder(w http.ResponseWriter, r *http.Request) {
	oc.Orders.ClearCurrentOrder()
	w.WriteHeader(http.StatusNoContent)
}

// UpdateOrderStatus moves an order to a new delivery status
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["id"]

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		http.Error(w, "Invalid order status", http.StatusBadRequest)
		return
	}

	if _, ok := oc.Orders.Get(orderID); !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	if err := oc.Orders.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		if errors.Is(err, store.ErrInvalidTransition) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		storageError(w, err)
		return
	}

	order, _ := oc.Orders.Get(orderID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}
