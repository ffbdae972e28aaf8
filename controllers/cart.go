package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"foodiehub-api/models"
	"foodiehub-api/store"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartController handles cart-related requests
type CartController struct {
	Cart *store.CartStore
	Menu *mongo.Collection
}

// NewCartController creates a new CartController
func NewCartController(cart *store.CartStore, client *mongo.Client) *CartController {
	menu := client.Database("foodiehub").Collection("menu")
	return &CartController{
		Cart: cart,
		Menu: menu,
	}
}

// cartView is the response body for every cart endpoint: the lines plus
// the derived totals.
type cartView struct {
	Items     []models.CartLine `json:"items"`
	Subtotal  float64           `json:"subtotal"`
	ItemCount int               `json:"item_count"`
}

func (cc *CartController) writeCart(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartView{
		Items:     cc.Cart.Items(),
		Subtotal:  cc.Cart.Subtotal(),
		ItemCount: cc.Cart.ItemCount(),
	})
}

// storageError maps a store failure to an HTTP status. Unavailable
// storage is a 503 so clients can tell it apart from a bad request.
func storageError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrStorageUnavailable) {
		http.Error(w, "Storage unavailable", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// AddItem adds a menu item to the cart, copying its catalog fields
func (cc *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var item models.FoodItem
	err := cc.Menu.FindOne(ctx, bson.M{"_id": req.ID}).Decode(&item)
	if err != nil {
		http.Error(w, "Food item not found", http.StatusNotFound)
		return
	}

	if err := cc.Cart.AddItem(ctx, item); err != nil {
		storageError(w, err)
		return
	}
	cc.writeCart(w)
}

// GetCart retrieves the cart with its derived totals
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cc.writeCart(w)
}

// RemoveItem removes a line from the cart
func (cc *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := cartLineID(r)
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}
	if err := cc.Cart.RemoveItem(r.Context(), id); err != nil {
		storageError(w, err)
		return
	}
	cc.writeCart(w)
}

// IncrementQuantity raises a line's quantity by one
func (cc *CartController) IncrementQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := cartLineID(r)
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}
	if err := cc.Cart.IncrementQuantity(r.Context(), id); err != nil {
		storageError(w, err)
		return
	}
	cc.writeCart(w)
}

// DecrementQuantity lowers a line's quantity by one, never below 1
func (cc *CartController) DecrementQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := cartLineID(r)
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}
	if err := cc.Cart.DecrementQuantity(r.Context(), id); err != nil {
		storageError(w, err)
		return
	}
	cc.writeCart(w)
}

// ClearCart empties the cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := cc.Cart.Clear(r.Context()); err != nil {
		storageError(w, err)
		return
	}
	cc.writeCart(w)
}

func cartLineID(r *http.Request) (int64, error) {
	params := mux.Vars(r)
	return strconv.ParseInt(params["id"], 10, 64)
}
