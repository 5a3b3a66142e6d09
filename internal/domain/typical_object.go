package domain

// TypicalObject links a RoomType to an ObjectVariant expected in rooms of
// that type (room_type_typical_objects table). Unique per (room type,
// variant); SortOrder sequences display only.
type TypicalObject struct {
	TypicalID    string `db:"typical_id" json:"typical_id"`
	RoomTypeID   string `db:"room_type_id" json:"room_type_id"`
	VariantID    string `db:"variant_id" json:"variant_id"`
	Active       bool   `db:"active" json:"active"`
	SortOrder    int    `db:"sort_order" json:"sort_order"`
	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	KindID       string `json:"kind_id,omitempty"`
	KindName     string `json:"kind_name,omitempty"`
	Brand        string `json:"brand,omitempty"`
	Material     string `json:"material,omitempty"`
}
