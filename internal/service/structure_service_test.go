package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

func intPtr(n int) *int { return &n }

func TestCreateStructureFromScratch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.structure.CreateStructure(ctx, CreateStructureRequest{
		SectorName:   "Planta",
		LocationName: "Edificio A",
		FloorNumber:  intPtr(2),
		RoomTypeName: "Baño",
		RoomName:     "Baño hombres",
		Items: []StructureItemRequest{
			{CategoryName: "Sanitario", KindName: "Lavamanos", Quantity: 3, Status: domain.StatusGood},
			{CategoryName: "Decoración", KindName: "Espejos", Quantity: 1, Status: domain.StatusBad, Detail: "trizado"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ItemCount)

	room, err := env.hierarchy.GetRoom(ctx, resp.RoomID)
	require.NoError(t, err)
	assert.Equal(t, "Baño hombres", room.RoomName)
	assert.Equal(t, 2, room.FloorNumber)
	assert.Equal(t, "Edificio A", room.LocationName)
	assert.Equal(t, "Baño", room.RoomTypeName)

	items, err := env.inventory.ListItems(ctx, repository.ItemFilter{RoomID: resp.RoomID})
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestCreateStructureReusesExistingLevels(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")

	resp, err := env.structure.CreateStructure(ctx, CreateStructureRequest{
		SectorID:   fx.Sector.SectorID,
		LocationID: fx.Location.LocationID,
		FloorID:    fx.Floor.FloorID,
		RoomTypeID: fx.RoomType.RoomTypeID,
		RoomName:   "Baño mujeres",
	})
	require.NoError(t, err)

	sectors, err := env.hierarchy.ListSectors(ctx)
	require.NoError(t, err)
	assert.Len(t, sectors, 1)

	rooms, err := env.hierarchy.ListRooms(ctx, fx.Floor.FloorID, "")
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	room, err := env.hierarchy.GetRoom(ctx, resp.RoomID)
	require.NoError(t, err)
	assert.Equal(t, "Baño mujeres", room.RoomName)
}

func TestCreateStructureMatchesExistingNames(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")

	// new-by-name resolves to the existing sector/location instead of
	// creating duplicates
	_, err := env.structure.CreateStructure(ctx, CreateStructureRequest{
		SectorName:   "Planta",
		LocationName: "Edificio A",
		FloorNumber:  intPtr(3),
		RoomTypeName: "Baño",
		RoomName:     "Baño tercer piso",
	})
	require.NoError(t, err)

	sectors, err := env.hierarchy.ListSectors(ctx)
	require.NoError(t, err)
	assert.Len(t, sectors, 1)
	locations, err := env.hierarchy.ListLocations(ctx, "")
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}

func TestCreateStructureSkipsBlankRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.structure.CreateStructure(ctx, CreateStructureRequest{
		SectorName:   "Planta",
		LocationName: "Edificio A",
		FloorNumber:  intPtr(1),
		RoomTypeName: "Comedor",
		RoomName:     "Comedor principal",
		Items: []StructureItemRequest{
			{CategoryName: "Mobiliario", KindName: "Mesas", Quantity: 4, Status: domain.StatusGood},
			{}, // empty form row
			{CategoryName: "Mobiliario", KindName: "Sillas", Quantity: 16, Status: domain.StatusGood},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ItemCount)
}

func TestCreateStructureValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.structure.CreateStructure(ctx, CreateStructureRequest{
		LocationName: "Edificio A",
		FloorNumber:  intPtr(1),
		RoomTypeName: "Baño",
		RoomName:     "Baño",
	})
	assert.Error(t, err, "missing sector")

	_, err = env.structure.CreateStructure(ctx, CreateStructureRequest{
		SectorName:   "Planta",
		LocationName: "Edificio A",
		RoomTypeName: "Baño",
		RoomName:     "Baño",
	})
	assert.Error(t, err, "missing floor")

	_, err = env.structure.CreateStructure(ctx, CreateStructureRequest{
		SectorName:   "Planta",
		LocationName: "Edificio A",
		FloorNumber:  intPtr(1),
		RoomTypeName: "Baño",
		RoomName:     "Baño",
		Items: []StructureItemRequest{
			{CategoryName: "Sanitario", KindName: "Lavamanos", Quantity: 0, Status: domain.StatusGood},
		},
	})
	assert.Error(t, err, "zero quantity")

	// nothing was persisted by the failed submissions
	sectors, err := env.hierarchy.ListSectors(ctx)
	require.NoError(t, err)
	assert.Empty(t, sectors)
}
