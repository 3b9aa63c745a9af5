package entity

type Category string

const (
	CategoryStarters Category = "Starters"
	CategoryMains    Category = "Mains"
	CategoryDrinks   Category = "Drinks"
	CategorySpecials Category = "Specials"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryStarters, CategoryMains, CategoryDrinks, CategorySpecials:
		return true
	}
	return false
}
