package repository

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

// itemView is a decorated copy with the joined display fields. Callers hold mu.
func (m *MemoryStore) itemView(it *domain.PlacedItem) *domain.PlacedItem {
	c := *it
	c.SectorName, c.LocationName, c.FloorNumber, c.RoomName = m.itemPath(it)
	_, c.KindName, c.Brand, c.Material = m.itemCatalog(it)
	return &c
}

func (m *MemoryStore) itemMatches(it *domain.PlacedItem, f ItemFilter) bool {
	if f.RoomID != "" && (!it.RoomID.Valid || it.RoomID.String != f.RoomID) {
		return false
	}
	if f.VariantID != "" && (!it.VariantID.Valid || it.VariantID.String != f.VariantID) {
		return false
	}
	if f.KindID != "" {
		kindID, _, _, _ := m.itemCatalog(it)
		if kindID != f.KindID {
			return false
		}
	}
	if f.Status != "" && it.Status != f.Status {
		return false
	}
	return true
}

func (m *MemoryStore) ListPlacedItems(_ context.Context, f ItemFilter) ([]*domain.PlacedItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.PlacedItem
	for _, it := range m.items {
		if m.itemMatches(it, f) {
			out = append(out, m.itemView(it))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.SectorName != b.SectorName {
			return a.SectorName < b.SectorName
		}
		if a.LocationName != b.LocationName {
			return a.LocationName < b.LocationName
		}
		if a.FloorNumber != b.FloorNumber {
			return a.FloorNumber < b.FloorNumber
		}
		if a.RoomName != b.RoomName {
			return a.RoomName < b.RoomName
		}
		return a.KindName < b.KindName
	})
	return out, nil
}

func (m *MemoryStore) GetPlacedItem(_ context.Context, itemID string) (*domain.PlacedItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, ok := m.items[itemID]
	if !ok {
		return nil, ErrNotFound
	}
	return m.itemView(it), nil
}

func (m *MemoryStore) CreatePlacedItem(_ context.Context, item *domain.PlacedItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.RoomID.Valid {
		if _, ok := m.rooms[item.RoomID.String]; !ok {
			return ErrConflict
		}
	}
	if item.VariantID.Valid {
		if _, ok := m.variants[item.VariantID.String]; !ok {
			return ErrConflict
		}
	}
	if item.ItemID == "" {
		item.ItemID = uuid.NewString()
	}
	if item.RecordedDate.IsZero() {
		item.RecordedDate = time.Now().UTC()
	}
	m.items[item.ItemID] = cloneItem(item)
	return nil
}

func (m *MemoryStore) UpdatePlacedItem(_ context.Context, item *domain.PlacedItem) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.items[item.ItemID]
	if !ok {
		return false, ErrNotFound
	}
	if item.RoomID.Valid {
		if _, ok := m.rooms[item.RoomID.String]; !ok {
			return false, ErrConflict
		}
	}
	if item.VariantID.Valid {
		if _, ok := m.variants[item.VariantID.String]; !ok {
			return false, ErrConflict
		}
	}
	changed := prev.Quantity != item.Quantity ||
		prev.Status != item.Status ||
		prev.Detail != item.Detail
	if changed {
		if err := m.historyInsertErr; err != nil {
			m.historyInsertErr = nil
			return false, err
		}
		id := uuid.NewString()
		m.history[id] = &domain.HistoryEntry{
			HistoryID:        id,
			ItemID:           prev.ItemID,
			PrevQuantity:     prev.Quantity,
			PrevStatus:       prev.Status,
			PrevDetail:       prev.Detail,
			PrevRecordedDate: prev.RecordedDate,
			CreatedAt:        time.Now().UTC(),
		}
	}
	next := cloneItem(item)
	next.RecordedDate = prev.RecordedDate
	m.items[item.ItemID] = next
	item.RecordedDate = prev.RecordedDate
	return changed, nil
}

func (m *MemoryStore) DeletePlacedItem(_ context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[itemID]; !ok {
		return ErrNotFound
	}
	for id, h := range m.history {
		if h.ItemID == itemID {
			delete(m.history, id)
		}
	}
	delete(m.items, itemID)
	return nil
}

func (m *MemoryStore) historyView(h *domain.HistoryEntry) *domain.HistoryEntry {
	c := *h
	if it := m.items[h.ItemID]; it != nil {
		_, c.LocationName, _, c.RoomName = m.itemPath(it)
		_, c.KindName, _, _ = m.itemCatalog(it)
	}
	return &c
}

func (m *MemoryStore) ListHistory(_ context.Context, f HistoryFilter) ([]*domain.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.HistoryEntry
	for _, h := range m.history {
		if f.Status != "" && h.PrevStatus != f.Status {
			continue
		}
		it := m.items[h.ItemID]
		if f.RoomID != "" && (it == nil || !it.RoomID.Valid || it.RoomID.String != f.RoomID) {
			continue
		}
		if f.VariantID != "" && (it == nil || !it.VariantID.Valid || it.VariantID.String != f.VariantID) {
			continue
		}
		if f.KindID != "" {
			if it == nil {
				continue
			}
			kindID, _, _, _ := m.itemCatalog(it)
			if kindID != f.KindID {
				continue
			}
		}
		out = append(out, m.historyView(h))
	}
	sortHistory(out)
	return out, nil
}

func (m *MemoryStore) ListHistoryForItem(_ context.Context, itemID string) ([]*domain.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.HistoryEntry
	for _, h := range m.history {
		if h.ItemID == itemID {
			out = append(out, m.historyView(h))
		}
	}
	sortHistory(out)
	return out, nil
}

// sortHistory orders entries by prior recorded date, newest first, with
// creation time as the tiebreaker.
func sortHistory(out []*domain.HistoryEntry) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PrevRecordedDate.Equal(out[j].PrevRecordedDate) {
			return out[i].PrevRecordedDate.After(out[j].PrevRecordedDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
}

func (m *MemoryStore) GetHistoryEntry(_ context.Context, historyID string) (*domain.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.history[historyID]
	if !ok {
		return nil, ErrNotFound
	}
	return m.historyView(h), nil
}

func (m *MemoryStore) CreateHistoryEntry(_ context.Context, e *domain.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[e.ItemID]; !ok {
		return ErrConflict
	}
	if e.HistoryID == "" {
		e.HistoryID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	m.history[e.HistoryID] = cloneHistory(e)
	return nil
}

func (m *MemoryStore) DeleteHistoryEntry(_ context.Context, historyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.history[historyID]; !ok {
		return ErrNotFound
	}
	delete(m.history, historyID)
	return nil
}

func (m *MemoryStore) CreateStructure(_ context.Context, s *Structure) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sectorID := s.SectorID
	if sectorID == "" {
		for _, e := range m.sectors {
			if e.SectorName == s.SectorName {
				sectorID = e.SectorID
				break
			}
		}
		if sectorID == "" {
			sectorID = uuid.NewString()
			m.sectors[sectorID] = &domain.Sector{SectorID: sectorID, SectorName: s.SectorName}
		}
	} else if _, ok := m.sectors[sectorID]; !ok {
		return "", ErrNotFound
	}

	locationID := s.LocationID
	if locationID == "" {
		for _, e := range m.locations {
			if e.LocationName == s.LocationName {
				locationID = e.LocationID
				break
			}
		}
		if locationID == "" {
			locationID = uuid.NewString()
			m.locations[locationID] = &domain.Location{LocationID: locationID, LocationName: s.LocationName, SectorID: sectorID}
		}
	} else if _, ok := m.locations[locationID]; !ok {
		return "", ErrNotFound
	}

	floorID := s.FloorID
	if floorID == "" {
		for _, e := range m.floors {
			if e.LocationID == locationID && s.FloorNumber != nil && e.FloorNumber == *s.FloorNumber {
				floorID = e.FloorID
				break
			}
		}
		if floorID == "" {
			if s.FloorNumber == nil {
				return "", ErrConflict
			}
			floorID = uuid.NewString()
			m.floors[floorID] = &domain.Floor{FloorID: floorID, FloorNumber: *s.FloorNumber, LocationID: locationID}
		}
	} else if _, ok := m.floors[floorID]; !ok {
		return "", ErrNotFound
	}

	roomTypeID := s.RoomTypeID
	if roomTypeID == "" {
		for _, e := range m.roomTypes {
			if e.RoomTypeName == s.RoomTypeName {
				roomTypeID = e.RoomTypeID
				break
			}
		}
		if roomTypeID == "" {
			roomTypeID = uuid.NewString()
			m.roomTypes[roomTypeID] = &domain.RoomType{RoomTypeID: roomTypeID, RoomTypeName: s.RoomTypeName}
		}
	} else if _, ok := m.roomTypes[roomTypeID]; !ok {
		return "", ErrNotFound
	}

	roomID := uuid.NewString()
	m.rooms[roomID] = &domain.Room{RoomID: roomID, RoomName: s.RoomName, FloorID: floorID, RoomTypeID: roomTypeID}

	now := time.Now().UTC()
	for _, row := range s.Items {
		catID := row.CategoryID
		if catID == "" {
			for _, c := range m.categories {
				if c.CategoryName == row.CategoryName {
					catID = c.CategoryID
					break
				}
			}
			if catID == "" {
				catID = uuid.NewString()
				m.categories[catID] = &domain.Category{CategoryID: catID, CategoryName: row.CategoryName}
			}
		}
		kindID := row.KindID
		if kindID == "" {
			for _, k := range m.kinds {
				if k.KindName == row.KindName {
					kindID = k.KindID
					break
				}
			}
			if kindID == "" {
				kindID = uuid.NewString()
				m.kinds[kindID] = &domain.ObjectKind{KindID: kindID, KindName: row.KindName, CategoryID: catID}
			}
		}
		variantID := row.VariantID
		if variantID == "" {
			for _, v := range m.variants {
				if v.KindID == kindID && v.Brand == row.Brand && v.Material == row.Material {
					variantID = v.VariantID
					break
				}
			}
			if variantID == "" {
				variantID = uuid.NewString()
				m.variants[variantID] = &domain.ObjectVariant{VariantID: variantID, KindID: kindID, Brand: row.Brand, Material: row.Material}
			}
		}
		itemID := uuid.NewString()
		m.items[itemID] = &domain.PlacedItem{
			ItemID:       itemID,
			RoomID:       sql.NullString{String: roomID, Valid: true},
			VariantID:    sql.NullString{String: variantID, Valid: true},
			Quantity:     row.Quantity,
			Status:       row.Status,
			Detail:       row.Detail,
			RecordedDate: now,
		}
	}
	return roomID, nil
}
