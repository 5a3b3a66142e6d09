package domain

// Floor belongs to exactly one Location (floors table).
type Floor struct {
	FloorID      string `db:"floor_id" json:"floor_id"`
	FloorNumber  int    `db:"floor_number" json:"floor_number"`
	LocationID   string `db:"location_id" json:"location_id"`
	LocationName string `json:"location_name,omitempty"`
}
