package models

// CartLine is one distinct menu item in the cart together with the
// requested quantity. The menu fields are copied into the line when the
// item is first added.
type CartLine struct {
	FoodItem `bson:",inline"`
	Quantity int `bson:"quantity" json:"quantity"`
}
