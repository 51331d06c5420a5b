package catalog

var pizzaCustomizations = []Customization{
	{
		ID:   "size",
		Name: "Size",
		Kind: KindSingle,
		Options: []CustomizationOption{
			{ID: "small", Name: `Small (10")`, PriceAdjustment: 0},
			{ID: "medium", Name: `Medium (12")`, PriceAdjustment: 150},
			{ID: "large", Name: `Large (14")`, PriceAdjustment: 300},
		},
		DefaultOptionID: "small",
	},
	{
		ID:   "crust",
		Name: "Crust",
		Kind: KindSingle,
		Options: []CustomizationOption{
			{ID: "classic", Name: "Classic Hand-Tossed", PriceAdjustment: 0},
			{ID: "thin", Name: "Thin Crust", PriceAdjustment: 0},
			{ID: "stuffed", Name: "Cheese-Stuffed Crust", PriceAdjustment: 125},
		},
		DefaultOptionID: "classic",
	},
	{
		ID:   "toppings",
		Name: "Extra Toppings",
		Kind: KindMultiple,
		Options: []CustomizationOption{
			{ID: "pepperoni", Name: "Pepperoni", PriceAdjustment: 75},
			{ID: "mushrooms", Name: "Mushrooms", PriceAdjustment: 50},
			{ID: "olives", Name: "Olives", PriceAdjustment: 50},
			{ID: "extra_cheese", Name: "Extra Cheese", PriceAdjustment: 100},
		},
	},
}

var burgerCustomizations = []Customization{
	{
		ID:   "patty_doneness",
		Name: "Patty Doneness",
		Kind: KindSingle,
		Options: []CustomizationOption{
			{ID: "medium_rare", Name: "Medium Rare", PriceAdjustment: 0},
			{ID: "medium", Name: "Medium", PriceAdjustment: 0},
			{ID: "medium_well", Name: "Medium Well", PriceAdjustment: 0},
			{ID: "well_done", Name: "Well Done", PriceAdjustment: 0},
		},
		DefaultOptionID: "medium",
	},
	{
		ID:   "addons",
		Name: "Add-ons",
		Kind: KindMultiple,
		Options: []CustomizationOption{
			{ID: "bacon", Name: "Crispy Bacon", PriceAdjustment: 100},
			{ID: "extra_patty", Name: "Extra Patty", PriceAdjustment: 150},
			{ID: "avocado", Name: "Avocado Slices", PriceAdjustment: 75},
		},
	},
}

var saladCustomizations = []Customization{
	{
		ID:   "dressing",
		Name: "Dressing",
		Kind: KindSingle,
		Options: []CustomizationOption{
			{ID: "vinaigrette", Name: "Balsamic Vinaigrette", PriceAdjustment: 0},
			{ID: "ranch", Name: "Ranch", PriceAdjustment: 0},
			{ID: "caesar", Name: "Caesar Dressing", PriceAdjustment: 0},
		},
		DefaultOptionID: "vinaigrette",
	},
	{
		ID:   "protein",
		Name: "Add Protein",
		Kind: KindSingle,
		Options: []CustomizationOption{
			{ID: "none", Name: "None", PriceAdjustment: 0},
			{ID: "chicken", Name: "Grilled Chicken", PriceAdjustment: 150},
			{ID: "salmon", Name: "Grilled Salmon", PriceAdjustment: 250},
			{ID: "tofu", Name: "Marinated Tofu", PriceAdjustment: 125},
		},
		DefaultOptionID: "none",
	},
}

// seedCategories adalah data menu demo Antarctican Co.
var seedCategories = []Category{
	{
		ID:   "pizzas",
		Name: "Pizzas from the Permafrost",
		Items: []MenuItem{
			{
				ID:             "penguin_pepperoni",
				Name:           "Penguin Pepperoni Blast",
				Description:    "Classic pepperoni pizza with a zesty tomato sauce and mozzarella cheese, baked to perfection.",
				Price:          975.00,
				ImageURL:       "/pic1.png",
				Category:       "Pizzas from the Permafrost",
				Customizations: pizzaCustomizations,
			},
			{
				ID:             "glacial_veggie",
				Name:           "Glacial Veggie Delight",
				Description:    "A delightful mix of fresh bell peppers, onions, olives, mushrooms, and spinach on a creamy garlic base.",
				Price:          900.00,
				ImageURL:       "/pic2.png",
				Category:       "Pizzas from the Permafrost",
				Customizations: pizzaCustomizations,
			},
		},
	},
	{
		ID:   "burgers",
		Name: "Blizzard Burgers",
		Items: []MenuItem{
			{
				ID:             "antarctic_classic",
				Name:           "The Antarctic Classic Burger",
				Description:    "Juicy beef patty with lettuce, tomato, onion, pickles, and our signature polar sauce on a toasted brioche bun.",
				Price:          715.00,
				ImageURL:       "/pic3.png",
				Category:       "Blizzard Burgers",
				Customizations: burgerCustomizations,
			},
			{
				ID:          "iceberg_chicken",
				Name:        "Iceberg Crispy Chicken Sandwich",
				Description: "Crispy fried chicken breast, spicy mayo, lettuce, and pickles on a soft potato roll.",
				Price:       770.00,
				ImageURL:    "/pic4.png",
				Category:    "Blizzard Burgers",
			},
		},
	},
	{
		ID:   "salads",
		Name: "Subzero Salads",
		Items: []MenuItem{
			{
				ID:             "arctic_garden",
				Name:           "Arctic Garden Salad",
				Description:    "A refreshing mix of mixed greens, cherry tomatoes, cucumbers, carrots, and croutons.",
				Price:          600.00,
				ImageURL:       "/pic5.png",
				Category:       "Subzero Salads",
				Customizations: saladCustomizations,
			},
		},
	},
	{
		ID:   "drinks",
		Name: "Frosty Beverages",
		Items: []MenuItem{
			{
				ID:          "polar_punch",
				Name:        "Polar Punch",
				Description: "A fruity and refreshing punch, perfect for a warm day (or a cold one!).",
				Price:       260.00,
				ImageURL:    "/pic6.png",
				Category:    "Frosty Beverages",
			},
			{
				ID:          "glacial_water",
				Name:        "Glacial Spring Water",
				Description: "Pure, crisp Antarctic spring water.",
				Price:       150.00,
				ImageURL:    "/pic7.png",
				Category:    "Frosty Beverages",
			},
		},
	},
}
