package domain

// ObjectKind is a catalog entry ("Mirror", "Chair") under exactly one
// Category (object_kinds table). Names are globally unique.
type ObjectKind struct {
	KindID       string `db:"kind_id" json:"kind_id"`
	KindName     string `db:"kind_name" json:"kind_name"`
	CategoryID   string `db:"category_id" json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
}
