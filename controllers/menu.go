package controllers

import (
	"context"
	"encoding/json"
	"foodiehub-api/data"
	"foodiehub-api/models"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuController serves the food catalog
type MenuController struct {
	Collection *mongo.Collection
}

// NewMenuController creates a new MenuController
func NewMenuController(client *mongo.Client) *MenuController {
	collection := client.Database("foodiehub").Collection("menu")
	return &MenuController{
		Collection: collection,
	}
}

// Seed inserts the bundled catalog when the menu collection is empty
func (mc *MenuController) Seed(ctx context.Context) error {
	count, err := mc.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(data.FoodItems))
	for i, item := range data.FoodItems {
		docs[i] = item
	}
	_, err = mc.Collection.InsertMany(ctx, docs)
	return err
}

// GetMenu retrieves all food items, optionally filtered by ?category=
func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := mc.Collection.Find(ctx, filter)
	if err != nil {
		http.Error(w, "Error fetching menu", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	items := []models.FoodItem{}
	for cursor.Next(ctx) {
		var item models.FoodItem
		if err := cursor.Decode(&item); err != nil {
			http.Error(w, "Error decoding menu item", http.StatusInternalServerError)
			return
		}
		items = append(items, item)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading menu", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// GetFoodByID retrieves a single food item by ID
func (mc *MenuController) GetFoodByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.ParseInt(params["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid food item ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var item models.FoodItem
	err = mc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		http.Error(w, "Food item not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// GetCategories retrieves the category list
func (mc *MenuController) GetCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data.Categories)
}
