package domain

import (
	"database/sql"
	"time"
)

// Condition statuses for a placed item.
const (
	StatusGood    = "good"
	StatusPending = "pending"
	StatusBad     = "bad"
)

// StatusLabel maps a status code to its display name.
func StatusLabel(status string) string {
	switch status {
	case StatusGood:
		return "Good"
	case StatusPending:
		return "Pending"
	case StatusBad:
		return "Bad"
	}
	return status
}

// ValidStatus reports whether status is one of the three condition codes.
func ValidStatus(status string) bool {
	return status == StatusGood || status == StatusPending || status == StatusBad
}

// PlacedItem is one inventory record of a variant located in a room
// (placed_items table). Room and variant are nullable: an item may be
// unassigned. RecordedDate is set once at creation and never advanced by
// edits; ordinary updates only read it into the history snapshot.
type PlacedItem struct {
	ItemID       string         `db:"item_id" json:"item_id"`
	RoomID       sql.NullString `db:"room_id" json:"room_id"`
	VariantID    sql.NullString `db:"variant_id" json:"variant_id"`
	Quantity     int            `db:"quantity" json:"quantity"`
	Status       string         `db:"status" json:"status"`
	Detail       string         `db:"detail" json:"detail"`
	RecordedDate time.Time      `db:"recorded_date" json:"recorded_date"`

	// Joined display fields, filled by list queries.
	SectorName   string `json:"sector_name,omitempty"`
	LocationName string `json:"location_name,omitempty"`
	FloorNumber  int    `json:"floor_number,omitempty"`
	RoomName     string `json:"room_name,omitempty"`
	KindName     string `json:"kind_name,omitempty"`
	Brand        string `json:"brand,omitempty"`
	Material     string `json:"material,omitempty"`
}
