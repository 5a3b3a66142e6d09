package repository

import (
	"context"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

// ItemFilter narrows placed-item listings. Empty fields are ignored.
type ItemFilter struct {
	RoomID    string
	KindID    string
	VariantID string
	Status    string
}

// HistoryFilter narrows history listings. Status matches the snapshotted
// prior status. Empty fields are ignored.
type HistoryFilter struct {
	RoomID    string
	KindID    string
	VariantID string
	Status    string
}

// StructureItem is one inventory row of a bulk structure submission. Either
// the id fields or the name fields are set per level; names trigger
// get-or-create.
type StructureItem struct {
	CategoryID   string
	CategoryName string
	KindID       string
	KindName     string
	VariantID    string
	Brand        string
	Material     string
	Quantity     int
	Status       string
	Detail       string
}

// Structure is a bulk structure-creation submission: existing-or-new choices
// for sector/location/floor/room type, a new room, and its initial items.
type Structure struct {
	SectorID     string
	SectorName   string
	LocationID   string
	LocationName string
	FloorID      string
	FloorNumber  *int
	RoomTypeID   string
	RoomTypeName string
	RoomName     string
	Items        []StructureItem
}

// InventoryRepo covers placed items, their history, and the bulk
// structure-creation flow.
type InventoryRepo interface {
	ListPlacedItems(ctx context.Context, f ItemFilter) ([]*domain.PlacedItem, error)
	GetPlacedItem(ctx context.Context, itemID string) (*domain.PlacedItem, error)

	// CreatePlacedItem persists a new item. The creation path never writes
	// history.
	CreatePlacedItem(ctx context.Context, item *domain.PlacedItem) error

	// UpdatePlacedItem is the only update path for placed items. Inside one
	// transaction it re-reads the persisted row, compares quantity, status
	// and detail (absent detail equals empty string), persists the new
	// values, and - only when something changed - inserts one history entry
	// holding the prior values including the prior recorded date. The
	// stored recorded date is never modified. Returns whether a history
	// entry was created.
	UpdatePlacedItem(ctx context.Context, item *domain.PlacedItem) (bool, error)

	DeletePlacedItem(ctx context.Context, itemID string) error

	ListHistory(ctx context.Context, f HistoryFilter) ([]*domain.HistoryEntry, error)
	ListHistoryForItem(ctx context.Context, itemID string) ([]*domain.HistoryEntry, error)
	GetHistoryEntry(ctx context.Context, historyID string) (*domain.HistoryEntry, error)

	// CreateHistoryEntry is the manual creation endpoint's path; the
	// change-detection rule never goes through it.
	CreateHistoryEntry(ctx context.Context, e *domain.HistoryEntry) error

	DeleteHistoryEntry(ctx context.Context, historyID string) error

	// CreateStructure runs the whole bulk submission in one transaction:
	// get-or-create per "new" choice at every level, then the room and its
	// items. Returns the new room's id. Any failure rolls back everything.
	CreateStructure(ctx context.Context, s *Structure) (string, error)
}
