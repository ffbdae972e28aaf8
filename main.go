// main.go
package main

import (
	"context"
	"fmt"
	"foodiehub-api/controllers"
	"foodiehub-api/routes"
	"foodiehub-api/store"
	"foodiehub-api/utils"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()
	if emailService == nil {
		log.Println("POSTMARK_API_TOKEN not set. Order confirmation emails disabled.")
	}

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Load persisted state. A store that cannot read its document is a
	// startup failure, not an empty state.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	storage := store.NewMongoStorage(client, "foodiehub")
	cartStore, err := store.NewCartStore(ctx, storage)
	if err != nil {
		log.Fatal(err)
	}
	orderStore, err := store.NewOrderStore(ctx, storage)
	if err != nil {
		log.Fatal(err)
	}
	userStore, err := store.NewUserStore(ctx, storage)
	if err != nil {
		log.Fatal(err)
	}
	checkout := store.NewCheckout(cartStore, orderStore)

	// Initialize controllers
	menuController := controllers.NewMenuController(client)
	if err := menuController.Seed(ctx); err != nil {
		log.Fatal(err)
	}
	cartController := controllers.NewCartController(cartStore, client)
	orderController := controllers.NewOrderController(checkout, orderStore, userStore, emailService)
	userController := controllers.NewUserController(userStore)

	// Set up the router
	router := mux.NewRouter()
	// Register routes
	routes.RegisterRoutes(router, userController, menuController, cartController, orderController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
