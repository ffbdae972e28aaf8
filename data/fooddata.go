package data

import "foodiehub-api/models"

// Categories is the browsable category list.
var Categories = []models.Category{
	{ID: 1, Name: "North Indian", Image: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400", ItemCount: 45, Color: "#FF6B35"},
	{ID: 2, Name: "South Indian", Image: "https://images.unsplash.com/photo-1630383249896-424e482df921?w=400", ItemCount: 32, Color: "#2EC4B6"},
	{ID: 3, Name: "Chinese", Image: "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400", ItemCount: 28, Color: "#F7931E"},
	{ID: 4, Name: "Street Food", Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400", ItemCount: 25, Color: "#E74C3C"},
	{ID: 5, Name: "Desserts", Image: "https://images.unsplash.com/photo-1571115177098-24ec42ed204d?w=400", ItemCount: 18, Color: "#9B59B6"},
	{ID: 6, Name: "Beverages", Image: "https://images.unsplash.com/photo-1527661591475-527312dd65f5?w=400", ItemCount: 15, Color: "#00B894"},
}

// FoodItems seeds the menu collection on first start.
var FoodItems = []models.FoodItem{
	{
		ID: 1, Name: "Butter Chicken", Category: "North Indian",
		Description: "Tender chicken in a rich tomato and butter gravy",
		Price:       320, OriginalPrice: 380,
		Image:  "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=400",
		Rating: 4.6, Reviews: 412, PreparationTime: "25-30 mins",
		IsBestseller: true,
	},
	{
		ID: 2, Name: "Paneer Tikka Masala", Category: "North Indian",
		Description: "Char-grilled paneer cubes simmered in spiced gravy",
		Price:       280, OriginalPrice: 320,
		Image:  "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?w=400",
		Rating: 4.4, Reviews: 286, PreparationTime: "20-25 mins",
		IsVeg: true, IsSpicy: true,
	},
	{
		ID: 3, Name: "Masala Dosa", Category: "South Indian",
		Description: "Crisp rice crepe with spiced potato filling, sambar and chutney",
		Price:       120, OriginalPrice: 150,
		Image:  "https://images.unsplash.com/photo-1630383249896-424e482df921?w=400",
		Rating: 4.7, Reviews: 534, PreparationTime: "15-20 mins",
		IsVeg: true, IsBestseller: true,
	},
	{
		ID: 4, Name: "Idli Sambar", Category: "South Indian",
		Description: "Steamed rice cakes with lentil stew and coconut chutney",
		Price:       90, OriginalPrice: 110,
		Image:  "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?w=400",
		Rating: 4.3, Reviews: 198, PreparationTime: "10-15 mins",
		IsVeg: true,
	},
	{
		ID: 5, Name: "Hakka Noodles", Category: "Chinese",
		Description: "Wok-tossed noodles with crunchy vegetables",
		Price:       180, OriginalPrice: 210,
		Image:  "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=400",
		Rating: 4.2, Reviews: 164, PreparationTime: "15-20 mins",
		IsVeg: true,
	},
	{
		ID: 6, Name: "Chilli Chicken", Category: "Chinese",
		Description: "Crispy chicken tossed with peppers in a fiery sauce",
		Price:       260, OriginalPrice: 290,
		Image:  "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400",
		Rating: 4.5, Reviews: 241, PreparationTime: "20-25 mins",
		IsSpicy: true,
	},
	{
		ID: 7, Name: "Pav Bhaji", Category: "Street Food",
		Description: "Mashed vegetable curry with buttered buns",
		Price:       110, OriginalPrice: 130,
		Image:  "https://images.unsplash.com/photo-1606491956689-2ea866880c84?w=400",
		Rating: 4.4, Reviews: 322, PreparationTime: "15-20 mins",
		IsVeg: true, IsSpicy: true,
	},
	{
		ID: 8, Name: "Pani Puri", Category: "Street Food",
		Description: "Crisp shells with tangy tamarind water and spiced filling",
		Price:       60, OriginalPrice: 80,
		Image:  "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400",
		Rating: 4.6, Reviews: 451, PreparationTime: "5-10 mins",
		IsVeg: true, IsBestseller: true,
	},
	{
		ID: 9, Name: "Gulab Jamun", Category: "Desserts",
		Description: "Soft milk dumplings soaked in cardamom syrup",
		Price:       90, OriginalPrice: 100,
		Image:  "https://images.unsplash.com/photo-1571115177098-24ec42ed204d?w=400",
		Rating: 4.8, Reviews: 389, PreparationTime: "5-10 mins",
		IsVeg: true,
	},
	{
		ID: 10, Name: "Rasmalai", Category: "Desserts",
		Description: "Cottage cheese patties in saffron milk",
		Price:       120, OriginalPrice: 140,
		Image:  "https://images.unsplash.com/photo-1589119908995-c6837fa14848?w=400",
		Rating: 4.5, Reviews: 213, PreparationTime: "5-10 mins",
		IsVeg: true,
	},
	{
		ID: 11, Name: "Masala Chai", Category: "Beverages",
		Description: "Spiced milk tea brewed with ginger and cardamom",
		Price:       40, OriginalPrice: 50,
		Image:  "https://images.unsplash.com/photo-1527661591475-527312dd65f5?w=400",
		Rating: 4.3, Reviews: 156, PreparationTime: "5-10 mins",
		IsVeg: true,
	},
	{
		ID: 12, Name: "Mango Lassi", Category: "Beverages",
		Description: "Thick yogurt shake with Alphonso mango pulp",
		Price:       80, OriginalPrice: 95,
		Image:  "https://images.unsplash.com/photo-1553787499-6f9133860278?w=400",
		Rating: 4.7, Reviews: 274, PreparationTime: "5-10 mins",
		IsVeg: true, IsBestseller: true,
	},
}
