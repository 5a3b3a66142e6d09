package repository

import (
	"sync"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

// MemoryStore backs the whole API when the DB is not ready, and the unit
// tests. One store implements HierarchyRepo, CatalogRepo, InventoryRepo and
// SummaryRepo so cross-entity rules (restrict-on-delete, cascades, the
// summary joins) can be enforced over shared maps. IDs are uuids. All
// methods serialize on one mutex; good enough for dev and tests.
type MemoryStore struct {
	mu sync.RWMutex

	sectors   map[string]*domain.Sector
	locations map[string]*domain.Location
	floors    map[string]*domain.Floor
	roomTypes map[string]*domain.RoomType
	rooms     map[string]*domain.Room

	categories map[string]*domain.Category
	kinds      map[string]*domain.ObjectKind
	variants   map[string]*domain.ObjectVariant
	typicals   map[string]*domain.TypicalObject

	items   map[string]*domain.PlacedItem
	history map[string]*domain.HistoryEntry

	// historyInsertErr, when set, makes the next history insert inside
	// UpdatePlacedItem fail. Tests use it to verify the update rolls back
	// with its snapshot.
	historyInsertErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sectors:    map[string]*domain.Sector{},
		locations:  map[string]*domain.Location{},
		floors:     map[string]*domain.Floor{},
		roomTypes:  map[string]*domain.RoomType{},
		rooms:      map[string]*domain.Room{},
		categories: map[string]*domain.Category{},
		kinds:      map[string]*domain.ObjectKind{},
		variants:   map[string]*domain.ObjectVariant{},
		typicals:   map[string]*domain.TypicalObject{},
		items:      map[string]*domain.PlacedItem{},
		history:    map[string]*domain.HistoryEntry{},
	}
}

// FailNextHistoryInsert arms the history-insert failure hook.
func (m *MemoryStore) FailNextHistoryInsert(err error) {
	m.mu.Lock()
	m.historyInsertErr = err
	m.mu.Unlock()
}

// itemPath resolves the joined display fields of an item. Callers hold mu.
func (m *MemoryStore) itemPath(it *domain.PlacedItem) (sectorName, locationName string, floorNumber int, roomName string) {
	if !it.RoomID.Valid {
		return
	}
	room := m.rooms[it.RoomID.String]
	if room == nil {
		return
	}
	roomName = room.RoomName
	floor := m.floors[room.FloorID]
	if floor == nil {
		return
	}
	floorNumber = floor.FloorNumber
	loc := m.locations[floor.LocationID]
	if loc == nil {
		return
	}
	locationName = loc.LocationName
	if s := m.sectors[loc.SectorID]; s != nil {
		sectorName = s.SectorName
	}
	return
}

// itemCatalog resolves the variant/kind labels of an item. Callers hold mu.
func (m *MemoryStore) itemCatalog(it *domain.PlacedItem) (kindID, kindName, brand, material string) {
	if !it.VariantID.Valid {
		return
	}
	v := m.variants[it.VariantID.String]
	if v == nil {
		return
	}
	brand, material = v.Brand, v.Material
	if k := m.kinds[v.KindID]; k != nil {
		kindID, kindName = k.KindID, k.KindName
	}
	return
}

func cloneItem(it *domain.PlacedItem) *domain.PlacedItem {
	c := *it
	return &c
}

func cloneHistory(h *domain.HistoryEntry) *domain.HistoryEntry {
	c := *h
	return &c
}
