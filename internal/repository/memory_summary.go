package repository

import (
	"context"
	"sort"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

// summaryMatches applies a SummaryFilter to one item. Callers hold mu.
func (m *MemoryStore) summaryMatches(it *domain.PlacedItem, f SummaryFilter) bool {
	if f.Status != "" && it.Status != f.Status {
		return false
	}
	if f.SectorID != "" || f.LocationID != "" || f.FloorID != "" || f.RoomTypeID != "" {
		if !it.RoomID.Valid {
			return false
		}
		room := m.rooms[it.RoomID.String]
		if room == nil {
			return false
		}
		if f.RoomTypeID != "" && room.RoomTypeID != f.RoomTypeID {
			return false
		}
		if f.FloorID != "" && room.FloorID != f.FloorID {
			return false
		}
		if f.LocationID != "" || f.SectorID != "" {
			floor := m.floors[room.FloorID]
			if floor == nil {
				return false
			}
			if f.LocationID != "" && floor.LocationID != f.LocationID {
				return false
			}
			if f.SectorID != "" {
				loc := m.locations[floor.LocationID]
				if loc == nil || loc.SectorID != f.SectorID {
					return false
				}
			}
		}
	}
	if f.VariantID != "" || f.KindID != "" || f.CategoryID != "" || f.Brand != "" || f.Material != "" {
		if !it.VariantID.Valid {
			return false
		}
		v := m.variants[it.VariantID.String]
		if v == nil {
			return false
		}
		if f.VariantID != "" && v.VariantID != f.VariantID {
			return false
		}
		if f.Brand != "" && v.Brand != f.Brand {
			return false
		}
		if f.Material != "" && v.Material != f.Material {
			return false
		}
		if f.KindID != "" || f.CategoryID != "" {
			k := m.kinds[v.KindID]
			if k == nil {
				return false
			}
			if f.KindID != "" && k.KindID != f.KindID {
				return false
			}
			if f.CategoryID != "" && k.CategoryID != f.CategoryID {
				return false
			}
		}
	}
	return true
}

func addTotals(g *GroupTotals, it *domain.PlacedItem) {
	g.Total += it.Quantity
	switch it.Status {
	case domain.StatusGood:
		g.Good += it.Quantity
	case domain.StatusPending:
		g.Pending += it.Quantity
	case domain.StatusBad:
		g.Bad += it.Quantity
	}
}

func (m *MemoryStore) Aggregate(_ context.Context, f SummaryFilter) (*SummaryData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bySector := map[string]*GroupTotals{}
	byLocation := map[string]*GroupTotals{}
	byObject := map[string]*GroupTotals{}
	var bad []BadItem

	for _, it := range m.items {
		if !m.summaryMatches(it, f) {
			continue
		}

		// sector and location tables only count items placed in a room
		if it.RoomID.Valid {
			if room := m.rooms[it.RoomID.String]; room != nil {
				if floor := m.floors[room.FloorID]; floor != nil {
					if loc := m.locations[floor.LocationID]; loc != nil {
						sec := m.sectors[loc.SectorID]
						if sec != nil {
							g := bySector[sec.SectorID]
							if g == nil {
								g = &GroupTotals{ID: sec.SectorID, Name: sec.SectorName}
								bySector[sec.SectorID] = g
							}
							addTotals(g, it)
						}
						g := byLocation[loc.LocationID]
						if g == nil {
							g = &GroupTotals{ID: loc.LocationID, Name: loc.LocationName}
							if sec != nil {
								g.SectorName = sec.SectorName
							}
							byLocation[loc.LocationID] = g
						}
						addTotals(g, it)
					}
				}
			}
		}

		kindID, kindName, _, _ := m.itemCatalog(it)
		g := byObject[kindID]
		if g == nil {
			g = &GroupTotals{ID: kindID, Name: kindName}
			byObject[kindID] = g
		}
		addTotals(g, it)

		if it.Status == domain.StatusBad {
			sectorName, locationName, floorNumber, roomName := m.itemPath(it)
			bad = append(bad, BadItem{
				ItemID:       it.ItemID,
				KindID:       kindID,
				KindName:     kindName,
				SectorName:   sectorName,
				LocationName: locationName,
				FloorNumber:  floorNumber,
				RoomName:     roomName,
				Quantity:     it.Quantity,
				Detail:       it.Detail,
				RecordedDate: it.RecordedDate,
			})
		}
	}

	data := &SummaryData{}
	for _, g := range bySector {
		data.BySector = append(data.BySector, *g)
	}
	sort.Slice(data.BySector, func(i, j int) bool { return data.BySector[i].Name < data.BySector[j].Name })
	for _, g := range byLocation {
		data.ByLocation = append(data.ByLocation, *g)
	}
	sort.Slice(data.ByLocation, func(i, j int) bool {
		a, b := data.ByLocation[i], data.ByLocation[j]
		if a.SectorName != b.SectorName {
			return a.SectorName < b.SectorName
		}
		return a.Name < b.Name
	})
	for _, g := range byObject {
		data.ByObject = append(data.ByObject, *g)
	}
	sort.Slice(data.ByObject, func(i, j int) bool { return data.ByObject[i].Name < data.ByObject[j].Name })
	sort.Slice(bad, func(i, j int) bool {
		a, b := bad[i], bad[j]
		if a.KindName != b.KindName {
			return a.KindName < b.KindName
		}
		if a.SectorName != b.SectorName {
			return a.SectorName < b.SectorName
		}
		if a.LocationName != b.LocationName {
			return a.LocationName < b.LocationName
		}
		if a.FloorNumber != b.FloorNumber {
			return a.FloorNumber < b.FloorNumber
		}
		return a.RoomName < b.RoomName
	})
	data.Bad = bad
	return data, nil
}

func (m *MemoryStore) ExportTree(_ context.Context) ([]*ExportLocation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	itemsByRoom := map[string][]ExportItem{}
	for _, it := range m.items {
		if !it.RoomID.Valid {
			continue
		}
		_, kindName, brand, material := m.itemCatalog(it)
		itemsByRoom[it.RoomID.String] = append(itemsByRoom[it.RoomID.String], ExportItem{
			KindName:     kindName,
			Brand:        brand,
			Material:     material,
			Quantity:     it.Quantity,
			Status:       it.Status,
			Detail:       it.Detail,
			RecordedDate: it.RecordedDate,
		})
	}
	for _, items := range itemsByRoom {
		sort.Slice(items, func(i, j int) bool {
			if items[i].KindName != items[j].KindName {
				return items[i].KindName < items[j].KindName
			}
			return items[i].RecordedDate.Before(items[j].RecordedDate)
		})
	}

	roomsByFloor := map[string][]ExportRoom{}
	for _, r := range m.rooms {
		roomsByFloor[r.FloorID] = append(roomsByFloor[r.FloorID], ExportRoom{
			RoomID:   r.RoomID,
			RoomName: r.RoomName,
			Items:    itemsByRoom[r.RoomID],
		})
	}
	for _, rooms := range roomsByFloor {
		sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomName < rooms[j].RoomName })
	}

	floorsByLocation := map[string][]ExportFloor{}
	for _, fl := range m.floors {
		floorsByLocation[fl.LocationID] = append(floorsByLocation[fl.LocationID], ExportFloor{
			FloorID:     fl.FloorID,
			FloorNumber: fl.FloorNumber,
			Rooms:       roomsByFloor[fl.FloorID],
		})
	}
	for _, floors := range floorsByLocation {
		sort.Slice(floors, func(i, j int) bool { return floors[i].FloorNumber < floors[j].FloorNumber })
	}

	var out []*ExportLocation
	for _, loc := range m.locations {
		el := &ExportLocation{
			LocationID:   loc.LocationID,
			LocationName: loc.LocationName,
			Floors:       floorsByLocation[loc.LocationID],
		}
		if s := m.sectors[loc.SectorID]; s != nil {
			el.SectorName = s.SectorName
		}
		out = append(out, el)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SectorName != out[j].SectorName {
			return out[i].SectorName < out[j].SectorName
		}
		return out[i].LocationName < out[j].LocationName
	})
	return out, nil
}
