package configs

import (
	"tableside/entity"
)

// DefaultMenu is the starter catalog, used only on first boot when the
// menuItems slot has never been written.
func DefaultMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{
			ID:          "seed-bruschetta",
			Name:        "Tomato Bruschetta",
			Description: "Grilled bread, marinated tomatoes, basil and olive oil",
			Price:       6.50,
			Category:    entity.CategoryStarters,
			Image:       "https://images.tableside.dev/bruschetta.jpg",
			Available:   true,
			Stock:       20,
		},
		{
			ID:          "seed-calamari",
			Name:        "Crispy Calamari",
			Description: "Lightly fried squid with lemon aioli",
			Price:       8.90,
			Category:    entity.CategoryStarters,
			Image:       "https://images.tableside.dev/calamari.jpg",
			Available:   true,
			Stock:       15,
		},
		{
			ID:          "seed-carbonara",
			Name:        "Spaghetti Carbonara",
			Description: "Guanciale, egg yolk, pecorino and black pepper",
			Price:       13.50,
			Category:    entity.CategoryMains,
			Image:       "https://images.tableside.dev/carbonara.jpg",
			Available:   true,
			Stock:       25,
		},
		{
			ID:          "seed-ribeye",
			Name:        "Grilled Ribeye",
			Description: "300g ribeye with rosemary butter and fries",
			Price:       24.00,
			Category:    entity.CategoryMains,
			Image:       "https://images.tableside.dev/ribeye.jpg",
			Available:   true,
			Stock:       10,
		},
		{
			ID:          "seed-margherita",
			Name:        "Pizza Margherita",
			Description: "San Marzano tomatoes, fior di latte, basil",
			Price:       11.00,
			Category:    entity.CategoryMains,
			Image:       "https://images.tableside.dev/margherita.jpg",
			Available:   true,
			Stock:       30,
		},
		{
			ID:          "seed-lemonade",
			Name:        "House Lemonade",
			Description: "Fresh lemon, mint and sparkling water",
			Price:       3.80,
			Category:    entity.CategoryDrinks,
			Image:       "https://images.tableside.dev/lemonade.jpg",
			Available:   true,
			Stock:       40,
		},
		{
			ID:          "seed-espresso",
			Name:        "Double Espresso",
			Description: "Single-origin arabica",
			Price:       2.50,
			Category:    entity.CategoryDrinks,
			Image:       "https://images.tableside.dev/espresso.jpg",
			Available:   true,
			Stock:       60,
		},
		{
			ID:          "seed-truffle-risotto",
			Name:        "Black Truffle Risotto",
			Description: "Carnaroli rice, parmesan, shaved black truffle",
			Price:       19.50,
			Category:    entity.CategorySpecials,
			Image:       "https://images.tableside.dev/risotto.jpg",
			Available:   true,
			Stock:       8,
		},
	}
}
