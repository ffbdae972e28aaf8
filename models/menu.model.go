package models

// FoodItem represents one dish on the menu. Cart lines copy these
// fields at add time, so an order snapshot is unaffected by later menu
// edits.
type FoodItem struct {
	ID              int64   `bson:"_id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Description     string  `bson:"description" json:"description"`
	Price           float64 `bson:"price" json:"price"`
	OriginalPrice   float64 `bson:"original_price" json:"original_price"`
	Image           string  `bson:"image" json:"image"`
	Category        string  `bson:"category" json:"category"`
	IsVeg           bool    `bson:"is_veg" json:"is_veg"`
	IsSpicy         bool    `bson:"is_spicy" json:"is_spicy"`
	IsBestseller    bool    `bson:"is_bestseller" json:"is_bestseller"`
	Rating          float64 `bson:"rating" json:"rating"`
	Reviews         int     `bson:"reviews" json:"reviews"`
	PreparationTime string  `bson:"preparation_time" json:"preparation_time"`
}

// Category groups menu items for browsing
type Category struct {
	ID        int64  `bson:"_id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Image     string `bson:"image" json:"image"`
	ItemCount int    `bson:"item_count" json:"item_count"`
	Color     string `bson:"color" json:"color"`
}
