package repository

import (
	"context"
	"time"
)

// SummaryFilter narrows the placed-item base set for the summary report.
// All fields are optional and compose with AND. Brand and material are
// exact matches against the variant.
type SummaryFilter struct {
	SectorID   string
	LocationID string
	FloorID    string
	RoomTypeID string
	CategoryID string
	KindID     string
	VariantID  string
	Status     string
	Brand      string
	Material   string
}

// GroupTotals holds summed quantities for one summary group. SectorName is
// only set for location groups (display of the parent sector).
type GroupTotals struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SectorName string `json:"sector_name,omitempty"`
	Total      int    `json:"total"`
	Good       int    `json:"good"`
	Pending    int    `json:"pending"`
	Bad        int    `json:"bad"`
}

// BadItem is one bad-condition placed item annotated with its full location
// path, for the per-object detail listing.
type BadItem struct {
	ItemID       string    `json:"item_id"`
	KindID       string    `json:"kind_id"`
	KindName     string    `json:"kind_name"`
	SectorName   string    `json:"sector_name"`
	LocationName string    `json:"location_name"`
	FloorNumber  int       `json:"floor_number"`
	RoomName     string    `json:"room_name"`
	Quantity     int       `json:"quantity"`
	Detail       string    `json:"detail"`
	RecordedDate time.Time `json:"recorded_date"`
}

// SummaryData is the raw aggregation output: grouped quantity sums at three
// granularities plus the bad-item rows. Percentages are derived by the
// service layer. Items without a room appear only in ByObject and Bad.
type SummaryData struct {
	BySector   []GroupTotals
	ByLocation []GroupTotals
	ByObject   []GroupTotals
	Bad        []BadItem
}

// Export tree: the full inventory ordered sector-by-location for the Excel
// workbook, one ExportLocation per worksheet.
type ExportItem struct {
	KindName     string
	Brand        string
	Material     string
	Quantity     int
	Status       string
	Detail       string
	RecordedDate time.Time
}

type ExportRoom struct {
	RoomID   string
	RoomName string
	Items    []ExportItem
}

type ExportFloor struct {
	FloorID     string
	FloorNumber int
	Rooms       []ExportRoom
}

type ExportLocation struct {
	LocationID   string
	LocationName string
	SectorName   string
	Floors       []ExportFloor
}

// SummaryRepo computes the aggregate report and the export tree. Every call
// recomputes from current persisted state; nothing is cached.
type SummaryRepo interface {
	Aggregate(ctx context.Context, f SummaryFilter) (*SummaryData, error)
	ExportTree(ctx context.Context) ([]*ExportLocation, error)
}
