// routes/routes.go
package routes

import (
	"foodiehub-api/controllers"
	"foodiehub-api/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, menuController *controllers.MenuController, cartController *controllers.CartController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")

	// Menu routes
	router.HandleFunc("/menu", menuController.GetMenu).Methods("GET")
	router.HandleFunc("/menu/{id}", menuController.GetFoodByID).Methods("GET")
	router.HandleFunc("/categories", menuController.GetCategories).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	protected.HandleFunc("/logout", userController.Logout).Methods("POST")
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", userController.UpdateProfile).Methods("PUT")

	// Cart routes
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	protected.HandleFunc("/cart/items", cartController.AddItem).Methods("POST")
	protected.HandleFunc("/cart/items/{id}", cartController.RemoveItem).Methods("DELETE")
	protected.HandleFunc("/cart/items/{id}/increment", cartController.IncrementQuantity).Methods("POST")
	protected.HandleFunc("/cart/items/{id}/decrement", cartController.DecrementQuantity).Methods("POST")

	// Order routes
	protected.HandleFunc("/checkout", orderController.PlaceOrder).Methods("POST")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/current", orderController.GetCurrentOrder).Methods("GET")
	protected.HandleFunc("/orders/current", orderController.ClearCurrentOrder).Methods("DELETE")
	protected.HandleFunc("/orders/{id}/status", orderController.UpdateOrderStatus).Methods("PATCH")
}
