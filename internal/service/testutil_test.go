package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

// testEnv wires every service onto one shared memory store.
type testEnv struct {
	store     *repository.MemoryStore
	hierarchy HierarchyService
	catalog   CatalogService
	inventory InventoryService
	typical   TypicalService
	structure StructureService
	summary   SummaryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := repository.NewMemoryStore()
	log := zap.NewNop()
	return &testEnv{
		store:     store,
		hierarchy: NewHierarchyService(store, log),
		catalog:   NewCatalogService(store, log),
		inventory: NewInventoryService(store, log),
		typical:   NewTypicalService(store, store, log),
		structure: NewStructureService(store, log),
		summary:   NewSummaryService(store, log),
	}
}

// roomFixture is a fully wired room with its hierarchy path.
type roomFixture struct {
	Sector   *domain.Sector
	Location *domain.Location
	Floor    *domain.Floor
	RoomType *domain.RoomType
	Room     *domain.Room
}

func (e *testEnv) makeRoom(t *testing.T, sectorName, locationName string, floorNumber int, roomTypeName, roomName string) roomFixture {
	t.Helper()
	ctx := context.Background()

	sec, err := e.hierarchy.CreateSector(ctx, sectorName)
	require.NoError(t, err)
	loc, err := e.hierarchy.CreateLocation(ctx, sec.SectorID, locationName)
	require.NoError(t, err)
	fl, err := e.hierarchy.CreateFloor(ctx, loc.LocationID, floorNumber)
	require.NoError(t, err)
	rt, err := e.hierarchy.CreateRoomType(ctx, roomTypeName)
	require.NoError(t, err)
	room, err := e.hierarchy.CreateRoom(ctx, roomName, fl.FloorID, rt.RoomTypeID)
	require.NoError(t, err)

	return roomFixture{Sector: sec, Location: loc, Floor: fl, RoomType: rt, Room: room}
}

// makeVariant creates category, kind and variant in one go, reusing
// existing rows with the same names.
func (e *testEnv) makeVariant(t *testing.T, categoryName, kindName, brand, material string) *domain.ObjectVariant {
	t.Helper()
	ctx := context.Background()

	cat, err := e.catalog.CreateCategory(ctx, categoryName)
	if err != nil {
		cats, lerr := e.catalog.ListCategories(ctx)
		require.NoError(t, lerr)
		for _, c := range cats {
			if c.CategoryName == categoryName {
				cat = c
			}
		}
		require.NotNil(t, cat)
	}
	kind, err := e.catalog.CreateObjectKind(ctx, cat.CategoryID, kindName)
	if err != nil {
		kinds, lerr := e.catalog.ListObjectKinds(ctx, "")
		require.NoError(t, lerr)
		for _, k := range kinds {
			if k.KindName == kindName {
				kind = k
			}
		}
		require.NotNil(t, kind)
	}
	v, err := e.catalog.CreateObjectVariant(ctx, kind.KindID, brand, material)
	require.NoError(t, err)
	return v
}

func (e *testEnv) makeItem(t *testing.T, roomID, variantID string, quantity int, status, detail string) *domain.PlacedItem {
	t.Helper()
	item, err := e.inventory.CreateItem(context.Background(), CreateItemRequest{
		RoomID:    roomID,
		VariantID: variantID,
		Quantity:  quantity,
		Status:    status,
		Detail:    detail,
	})
	require.NoError(t, err)
	return item
}
