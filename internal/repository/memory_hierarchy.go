package repository

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

func (m *MemoryStore) ListSectors(_ context.Context) ([]*domain.Sector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Sector, 0, len(m.sectors))
	for _, s := range m.sectors {
		c := *s
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SectorName < out[j].SectorName })
	return out, nil
}

func (m *MemoryStore) GetSector(_ context.Context, sectorID string) (*domain.Sector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sectors[sectorID]
	if !ok {
		return nil, ErrNotFound
	}
	c := *s
	return &c, nil
}

func (m *MemoryStore) CreateSector(_ context.Context, s *domain.Sector) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.sectors {
		if e.SectorName == s.SectorName {
			return ErrConflict
		}
	}
	if s.SectorID == "" {
		s.SectorID = uuid.NewString()
	}
	c := *s
	m.sectors[s.SectorID] = &c
	return nil
}

func (m *MemoryStore) UpdateSector(_ context.Context, s *domain.Sector) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sectors[s.SectorID]; !ok {
		return ErrNotFound
	}
	for id, e := range m.sectors {
		if id != s.SectorID && e.SectorName == s.SectorName {
			return ErrConflict
		}
	}
	c := *s
	m.sectors[s.SectorID] = &c
	return nil
}

func (m *MemoryStore) DeleteSector(_ context.Context, sectorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sectors[sectorID]; !ok {
		return ErrNotFound
	}
	for _, l := range m.locations {
		if l.SectorID == sectorID {
			return ErrConflict
		}
	}
	delete(m.sectors, sectorID)
	return nil
}

func (m *MemoryStore) ListLocations(_ context.Context, sectorID string) ([]*domain.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Location
	for _, l := range m.locations {
		if sectorID != "" && l.SectorID != sectorID {
			continue
		}
		c := *l
		if s := m.sectors[l.SectorID]; s != nil {
			c.SectorName = s.SectorName
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SectorName != out[j].SectorName {
			return out[i].SectorName < out[j].SectorName
		}
		return out[i].LocationName < out[j].LocationName
	})
	return out, nil
}

func (m *MemoryStore) GetLocation(_ context.Context, locationID string) (*domain.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.locations[locationID]
	if !ok {
		return nil, ErrNotFound
	}
	c := *l
	if s := m.sectors[l.SectorID]; s != nil {
		c.SectorName = s.SectorName
	}
	return &c, nil
}

func (m *MemoryStore) CreateLocation(_ context.Context, l *domain.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sectors[l.SectorID]; !ok {
		return ErrConflict
	}
	for _, e := range m.locations {
		if e.LocationName == l.LocationName {
			return ErrConflict
		}
	}
	if l.LocationID == "" {
		l.LocationID = uuid.NewString()
	}
	c := *l
	m.locations[l.LocationID] = &c
	return nil
}

func (m *MemoryStore) UpdateLocation(_ context.Context, l *domain.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.locations[l.LocationID]; !ok {
		return ErrNotFound
	}
	if _, ok := m.sectors[l.SectorID]; !ok {
		return ErrConflict
	}
	for id, e := range m.locations {
		if id != l.LocationID && e.LocationName == l.LocationName {
			return ErrConflict
		}
	}
	c := *l
	m.locations[l.LocationID] = &c
	return nil
}

func (m *MemoryStore) DeleteLocation(_ context.Context, locationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.locations[locationID]; !ok {
		return ErrNotFound
	}
	for _, f := range m.floors {
		if f.LocationID == locationID {
			return ErrConflict
		}
	}
	delete(m.locations, locationID)
	return nil
}

func (m *MemoryStore) ListFloors(_ context.Context, locationID string) ([]*domain.Floor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Floor
	for _, f := range m.floors {
		if locationID != "" && f.LocationID != locationID {
			continue
		}
		c := *f
		if l := m.locations[f.LocationID]; l != nil {
			c.LocationName = l.LocationName
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LocationName != out[j].LocationName {
			return out[i].LocationName < out[j].LocationName
		}
		return out[i].FloorNumber < out[j].FloorNumber
	})
	return out, nil
}

func (m *MemoryStore) GetFloor(_ context.Context, floorID string) (*domain.Floor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.floors[floorID]
	if !ok {
		return nil, ErrNotFound
	}
	c := *f
	if l := m.locations[f.LocationID]; l != nil {
		c.LocationName = l.LocationName
	}
	return &c, nil
}

func (m *MemoryStore) CreateFloor(_ context.Context, f *domain.Floor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.locations[f.LocationID]; !ok {
		return ErrConflict
	}
	for _, e := range m.floors {
		if e.LocationID == f.LocationID && e.FloorNumber == f.FloorNumber {
			return ErrConflict
		}
	}
	if f.FloorID == "" {
		f.FloorID = uuid.NewString()
	}
	c := *f
	m.floors[f.FloorID] = &c
	return nil
}

func (m *MemoryStore) UpdateFloor(_ context.Context, f *domain.Floor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.floors[f.FloorID]; !ok {
		return ErrNotFound
	}
	if _, ok := m.locations[f.LocationID]; !ok {
		return ErrConflict
	}
	for id, e := range m.floors {
		if id != f.FloorID && e.LocationID == f.LocationID && e.FloorNumber == f.FloorNumber {
			return ErrConflict
		}
	}
	c := *f
	m.floors[f.FloorID] = &c
	return nil
}

func (m *MemoryStore) DeleteFloor(_ context.Context, floorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.floors[floorID]; !ok {
		return ErrNotFound
	}
	for _, r := range m.rooms {
		if r.FloorID == floorID {
			return ErrConflict
		}
	}
	delete(m.floors, floorID)
	return nil
}

func (m *MemoryStore) ListRoomTypes(_ context.Context) ([]*domain.RoomType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.RoomType, 0, len(m.roomTypes))
	for _, rt := range m.roomTypes {
		c := *rt
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomTypeName < out[j].RoomTypeName })
	return out, nil
}

func (m *MemoryStore) GetRoomType(_ context.Context, roomTypeID string) (*domain.RoomType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rt, ok := m.roomTypes[roomTypeID]
	if !ok {
		return nil, ErrNotFound
	}
	c := *rt
	return &c, nil
}

func (m *MemoryStore) CreateRoomType(_ context.Context, rt *domain.RoomType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.roomTypes {
		if e.RoomTypeName == rt.RoomTypeName {
			return ErrConflict
		}
	}
	if rt.RoomTypeID == "" {
		rt.RoomTypeID = uuid.NewString()
	}
	c := *rt
	m.roomTypes[rt.RoomTypeID] = &c
	return nil
}

func (m *MemoryStore) UpdateRoomType(_ context.Context, rt *domain.RoomType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roomTypes[rt.RoomTypeID]; !ok {
		return ErrNotFound
	}
	for id, e := range m.roomTypes {
		if id != rt.RoomTypeID && e.RoomTypeName == rt.RoomTypeName {
			return ErrConflict
		}
	}
	c := *rt
	m.roomTypes[rt.RoomTypeID] = &c
	return nil
}

func (m *MemoryStore) DeleteRoomType(_ context.Context, roomTypeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roomTypes[roomTypeID]; !ok {
		return ErrNotFound
	}
	for _, r := range m.rooms {
		if r.RoomTypeID == roomTypeID {
			return ErrConflict
		}
	}
	// typical-object links go with the room type
	for id, t := range m.typicals {
		if t.RoomTypeID == roomTypeID {
			delete(m.typicals, id)
		}
	}
	delete(m.roomTypes, roomTypeID)
	return nil
}

func (m *MemoryStore) ListRooms(_ context.Context, floorID, roomTypeID string) ([]*domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Room
	for _, r := range m.rooms {
		if floorID != "" && r.FloorID != floorID {
			continue
		}
		if roomTypeID != "" && r.RoomTypeID != roomTypeID {
			continue
		}
		out = append(out, m.roomView(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LocationName != out[j].LocationName {
			return out[i].LocationName < out[j].LocationName
		}
		if out[i].FloorNumber != out[j].FloorNumber {
			return out[i].FloorNumber < out[j].FloorNumber
		}
		return out[i].RoomName < out[j].RoomName
	})
	return out, nil
}

func (m *MemoryStore) roomView(r *domain.Room) *domain.Room {
	c := *r
	if f := m.floors[r.FloorID]; f != nil {
		c.FloorNumber = f.FloorNumber
		if l := m.locations[f.LocationID]; l != nil {
			c.LocationName = l.LocationName
		}
	}
	if rt := m.roomTypes[r.RoomTypeID]; rt != nil {
		c.RoomTypeName = rt.RoomTypeName
	}
	return &c
}

func (m *MemoryStore) GetRoom(_ context.Context, roomID string) (*domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrNotFound
	}
	return m.roomView(r), nil
}

func (m *MemoryStore) CreateRoom(_ context.Context, r *domain.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.floors[r.FloorID]; !ok {
		return ErrConflict
	}
	if _, ok := m.roomTypes[r.RoomTypeID]; !ok {
		return ErrConflict
	}
	if r.RoomID == "" {
		r.RoomID = uuid.NewString()
	}
	c := *r
	m.rooms[r.RoomID] = &c
	return nil
}

func (m *MemoryStore) UpdateRoom(_ context.Context, r *domain.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[r.RoomID]; !ok {
		return ErrNotFound
	}
	if _, ok := m.floors[r.FloorID]; !ok {
		return ErrConflict
	}
	if _, ok := m.roomTypes[r.RoomTypeID]; !ok {
		return ErrConflict
	}
	c := *r
	m.rooms[r.RoomID] = &c
	return nil
}

func (m *MemoryStore) DeleteRoom(_ context.Context, roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[roomID]; !ok {
		return ErrNotFound
	}
	for _, it := range m.items {
		if it.RoomID.Valid && it.RoomID.String == roomID {
			return ErrConflict
		}
	}
	delete(m.rooms, roomID)
	return nil
}
