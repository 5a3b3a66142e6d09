package domain

// Sector is the root of the physical hierarchy (corresponds to the sectors table).
// Sector names are globally unique.
type Sector struct {
	SectorID   string `db:"sector_id" json:"sector_id"`
	SectorName string `db:"sector_name" json:"sector_name"`
}
