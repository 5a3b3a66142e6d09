package domain

// Room belongs to exactly one Floor and is tagged with exactly one RoomType
// (rooms table).
type Room struct {
	RoomID       string `db:"room_id" json:"room_id"`
	RoomName     string `db:"room_name" json:"room_name"`
	FloorID      string `db:"floor_id" json:"floor_id"`
	RoomTypeID   string `db:"room_type_id" json:"room_type_id"`
	FloorNumber  int    `json:"floor_number,omitempty"`
	LocationName string `json:"location_name,omitempty"`
	RoomTypeName string `json:"room_type_name,omitempty"`
}
