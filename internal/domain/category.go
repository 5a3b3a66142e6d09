package domain

// Category groups object kinds, e.g. "Furniture" (categories table).
type Category struct {
	CategoryID   string `db:"category_id" json:"category_id"`
	CategoryName string `db:"category_name" json:"category_name"`
}
