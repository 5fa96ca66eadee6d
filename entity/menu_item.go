package entity

type MenuCategory string

const (
	CategoryStarters  MenuCategory = "starters"
	CategoryMain      MenuCategory = "main"
	CategoryBreads    MenuCategory = "breads"
	CategoryRice      MenuCategory = "rice"
	CategoryBeverages MenuCategory = "beverages"
	CategoryDesserts  MenuCategory = "desserts"
)

// MenuCategories in display order.
var MenuCategories = []MenuCategory{
	CategoryStarters, CategoryMain, CategoryBreads,
	CategoryRice, CategoryBeverages, CategoryDesserts,
}

type MenuItem struct {
	ID          string       `json:"id" yaml:"id"`
	Category    MenuCategory `json:"category" yaml:"category"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Price       int          `json:"price" yaml:"price"`
	Image       string       `json:"image" yaml:"image"`
	IsVeg       bool         `json:"isVeg" yaml:"isVeg"`
}
