package domain

// RoomType classifies rooms ("Bathroom", "Locker room") and drives
// typical-object suggestions. Names are globally unique.
type RoomType struct {
	RoomTypeID   string `db:"room_type_id" json:"room_type_id"`
	RoomTypeName string `db:"room_type_name" json:"room_type_name"`
}
