package menu

import "github.com/shopspring/decimal"

const unsplash = "https://images.unsplash.com/"

// DefaultItems is the built-in Lumière menu.
func DefaultItems() []Item {
	return []Item{
		{
			ID:          1,
			Category:    "Starters",
			Name:        "Truffle Arancini",
			Description: "Crispy risotto balls infused with black truffle oil, served with garlic aioli.",
			Price:       decimal.NewFromInt(12),
			ImageRef:    unsplash + "photo-1626071476906-ac6d05f335e2?auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Vegetarian", "Crispy"},
		},
		{
			ID:          2,
			Category:    "Starters",
			Name:        "Wagyu Beef Carpaccio",
			Description: "Thinly sliced seared beef with parmesan shavings, capers, and truffle glaze.",
			Price:       decimal.NewFromInt(18),
			ImageRef:    unsplash + "photo-1544025162-d76690b67f61?auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Gluten Free", "Raw"},
		},
		{
			ID:          3,
			Category:    "Mains",
			Name:        "Pan-Seared Sea Bass",
			Description: "Fresh sea bass fillet on a bed of asparagus risotto with lemon butter sauce.",
			Price:       decimal.NewFromInt(28),
			ImageRef:    unsplash + "photo-1519708227418-c8fd9a32b7a2?auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Seafood", "Healthy"},
		},
		{
			ID:          4,
			Category:    "Mains",
			Name:        "Herb-Crusted Lamb Rack",
			Description: "Served pink with fondant potatoes, seasonal greens, and a red wine jus.",
			Price:       decimal.NewFromInt(34),
			ImageRef:    unsplash + "photo-1600891964092-4316c288032e?auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Signature", "Meat"},
		},
		{
			ID:          5,
			Category:    "Mains",
			Name:        "Wild Mushroom Risotto",
			Description: "Arborio rice cooked with porcini mushrooms, parmesan crisp, and fresh herbs.",
			Price:       decimal.NewFromInt(24),
			ImageRef:    unsplash + "photo-1476124369491-e7addf5db371?auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Vegetarian", "Rich"},
		},
		{
			ID:          6,
			Category:    "Desserts",
			Name:        "Dark Chocolate Fondant",
			Description: "Molten center chocolate cake served with Madagascar vanilla bean ice cream.",
			Price:       decimal.NewFromInt(14),
			ImageRef:    unsplash + "photo-1617305855067-160d5b128549?auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Sweet", "Decadent"},
		},
		{
			ID:          7,
			Category:    "Desserts",
			Name:        "Lemon Basil Tart",
			Description: "Zesty lemon curd in a buttery pastry shell, topped with italian meringue.",
			Price:       decimal.NewFromInt(12),
			ImageRef:    unsplash + "photo-1519915028121-7d3463d20b13?auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Citrus", "Fresh"},
		},
	}
}

// Default returns the built-in catalog. It panics only if the literal above is broken.
func Default() *Catalog {
	c, err := NewCatalog(DefaultItems())
	if err != nil {
		panic(err)
	}
	return c
}
