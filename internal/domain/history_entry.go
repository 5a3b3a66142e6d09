package domain

import "time"

// HistoryEntry is an immutable snapshot of a PlacedItem's prior values,
// created when an update changes quantity, status or detail
// (history_entries table). Deleting the item cascades to its history.
type HistoryEntry struct {
	HistoryID        string    `db:"history_id" json:"history_id"`
	ItemID           string    `db:"item_id" json:"item_id"`
	PrevQuantity     int       `db:"prev_quantity" json:"prev_quantity"`
	PrevStatus       string    `db:"prev_status" json:"prev_status"`
	PrevDetail       string    `db:"prev_detail" json:"prev_detail"`
	PrevRecordedDate time.Time `db:"prev_recorded_date" json:"prev_recorded_date"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`

	// Joined display fields, filled by list queries.
	KindName     string `json:"kind_name,omitempty"`
	RoomName     string `json:"room_name,omitempty"`
	LocationName string `json:"location_name,omitempty"`
}
