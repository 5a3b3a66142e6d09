package domain

// Location belongs to exactly one Sector (locations table).
// SectorName is filled by list queries for display; it is not a column.
type Location struct {
	LocationID   string `db:"location_id" json:"location_id"`
	LocationName string `db:"location_name" json:"location_name"`
	SectorID     string `db:"sector_id" json:"sector_id"`
	SectorName   string `json:"sector_name,omitempty"`
}
