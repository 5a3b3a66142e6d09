package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

func seedCatalog(t *testing.T, m *MemoryStore) *domain.ObjectVariant {
	t.Helper()
	ctx := context.Background()
	c := &domain.Category{CategoryName: "Sanitario"}
	require.NoError(t, m.CreateCategory(ctx, c))
	k := &domain.ObjectKind{CategoryID: c.CategoryID, KindName: "Lavamanos"}
	require.NoError(t, m.CreateObjectKind(ctx, k))
	v := &domain.ObjectVariant{KindID: k.KindID}
	require.NoError(t, m.CreateObjectVariant(ctx, v))
	return v
}

func TestDeleteVariantRestrictedByItems(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	v := seedCatalog(t, m)

	item := &domain.PlacedItem{
		VariantID: sql.NullString{String: v.VariantID, Valid: true},
		Quantity:  1,
		Status:    domain.StatusGood,
	}
	require.NoError(t, m.CreatePlacedItem(ctx, item))

	err := m.DeleteObjectVariant(ctx, v.VariantID)
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, m.DeletePlacedItem(ctx, item.ItemID))
	assert.NoError(t, m.DeleteObjectVariant(ctx, v.VariantID))
}

func TestDeleteVariantCascadesTypicalLinks(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	v := seedCatalog(t, m)
	rt := &domain.RoomType{RoomTypeName: "Baño"}
	require.NoError(t, m.CreateRoomType(ctx, rt))
	require.NoError(t, m.ReplaceTypicalObjects(ctx, rt.RoomTypeID, []string{v.VariantID}))

	require.NoError(t, m.DeleteObjectVariant(ctx, v.VariantID))

	list, err := m.ListTypicalObjects(ctx, rt.RoomTypeID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReplaceTypicalObjectsUnknownVariant(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	rt := &domain.RoomType{RoomTypeName: "Baño"}
	require.NoError(t, m.CreateRoomType(ctx, rt))

	err := m.ReplaceTypicalObjects(ctx, rt.RoomTypeID, []string{"missing"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteRoomRestrictedByItems(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	sec := &domain.Sector{SectorName: "Planta"}
	require.NoError(t, m.CreateSector(ctx, sec))
	loc := &domain.Location{SectorID: sec.SectorID, LocationName: "Edificio A"}
	require.NoError(t, m.CreateLocation(ctx, loc))
	fl := &domain.Floor{LocationID: loc.LocationID, FloorNumber: 1}
	require.NoError(t, m.CreateFloor(ctx, fl))
	rt := &domain.RoomType{RoomTypeName: "Baño"}
	require.NoError(t, m.CreateRoomType(ctx, rt))
	room := &domain.Room{RoomName: "Baño hombres", FloorID: fl.FloorID, RoomTypeID: rt.RoomTypeID}
	require.NoError(t, m.CreateRoom(ctx, room))

	item := &domain.PlacedItem{
		RoomID:   sql.NullString{String: room.RoomID, Valid: true},
		Quantity: 1,
		Status:   domain.StatusGood,
	}
	require.NoError(t, m.CreatePlacedItem(ctx, item))

	assert.ErrorIs(t, m.DeleteRoom(ctx, room.RoomID), ErrConflict)
	// and up the chain everything with children is protected too
	assert.ErrorIs(t, m.DeleteFloor(ctx, fl.FloorID), ErrConflict)
	assert.ErrorIs(t, m.DeleteLocation(ctx, loc.LocationID), ErrConflict)
	assert.ErrorIs(t, m.DeleteSector(ctx, sec.SectorID), ErrConflict)

	require.NoError(t, m.DeletePlacedItem(ctx, item.ItemID))
	assert.NoError(t, m.DeleteRoom(ctx, room.RoomID))
}

func TestUniqueNamesEnforced(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	sec := &domain.Sector{SectorName: "Planta"}
	require.NoError(t, m.CreateSector(ctx, sec))
	assert.ErrorIs(t, m.CreateSector(ctx, &domain.Sector{SectorName: "Planta"}), ErrConflict)

	other := &domain.Sector{SectorName: "Oficinas"}
	require.NoError(t, m.CreateSector(ctx, other))
	require.NoError(t, m.CreateLocation(ctx, &domain.Location{SectorID: sec.SectorID, LocationName: "Edificio A"}))
	// location names are unique across sectors, not per sector
	assert.ErrorIs(t, m.CreateLocation(ctx, &domain.Location{SectorID: other.SectorID, LocationName: "Edificio A"}), ErrConflict)

	require.NoError(t, m.CreateRoomType(ctx, &domain.RoomType{RoomTypeName: "Baño"}))
	assert.ErrorIs(t, m.CreateRoomType(ctx, &domain.RoomType{RoomTypeName: "Baño"}), ErrConflict)
}
