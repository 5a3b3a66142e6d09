//go:build integration
// +build integration

package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiascayunao/pvsa-p/internal/config"
	"github.com/matiascayunao/pvsa-p/internal/database"
	"github.com/matiascayunao/pvsa-p/internal/domain"
)

func getTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set, skipping integration test")
	}
	cfg := config.Load()
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	return db
}

// seedItemPath creates sector -> location -> floor -> room plus one variant
// and returns their ids. Rows are cleaned up via t.Cleanup in reverse order.
func seedItemPath(t *testing.T, db *sql.DB) (roomID, variantID string) {
	t.Helper()
	ctx := context.Background()

	hier := NewPostgresHierarchyRepo(db)
	cat := NewPostgresCatalogRepo(db)

	sec := &domain.Sector{SectorName: "_it Planta"}
	require.NoError(t, hier.CreateSector(ctx, sec))
	loc := &domain.Location{SectorID: sec.SectorID, LocationName: "_it Edificio"}
	require.NoError(t, hier.CreateLocation(ctx, loc))
	fl := &domain.Floor{LocationID: loc.LocationID, FloorNumber: 99}
	require.NoError(t, hier.CreateFloor(ctx, fl))
	rt := &domain.RoomType{RoomTypeName: "_it Baño"}
	require.NoError(t, hier.CreateRoomType(ctx, rt))
	room := &domain.Room{RoomName: "_it Baño hombres", FloorID: fl.FloorID, RoomTypeID: rt.RoomTypeID}
	require.NoError(t, hier.CreateRoom(ctx, room))

	c := &domain.Category{CategoryName: "_it Sanitario"}
	require.NoError(t, cat.CreateCategory(ctx, c))
	k := &domain.ObjectKind{CategoryID: c.CategoryID, KindName: "_it Lavamanos"}
	require.NoError(t, cat.CreateObjectKind(ctx, k))
	v := &domain.ObjectVariant{KindID: k.KindID}
	require.NoError(t, cat.CreateObjectVariant(ctx, v))

	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM placed_items WHERE room_id = $1`, room.RoomID)
		_, _ = db.Exec(`DELETE FROM rooms WHERE room_id = $1`, room.RoomID)
		_, _ = db.Exec(`DELETE FROM room_types WHERE room_type_id = $1`, rt.RoomTypeID)
		_, _ = db.Exec(`DELETE FROM floors WHERE floor_id = $1`, fl.FloorID)
		_, _ = db.Exec(`DELETE FROM locations WHERE location_id = $1`, loc.LocationID)
		_, _ = db.Exec(`DELETE FROM sectors WHERE sector_id = $1`, sec.SectorID)
		_, _ = db.Exec(`DELETE FROM object_variants WHERE variant_id = $1`, v.VariantID)
		_, _ = db.Exec(`DELETE FROM object_kinds WHERE kind_id = $1`, k.KindID)
		_, _ = db.Exec(`DELETE FROM categories WHERE category_id = $1`, c.CategoryID)
	})
	return room.RoomID, v.VariantID
}

func TestPostgresUpdatePlacedItemHistory(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	roomID, variantID := seedItemPath(t, db)
	repo := NewPostgresInventoryRepo(db)

	item := &domain.PlacedItem{
		RoomID:    sql.NullString{String: roomID, Valid: true},
		VariantID: sql.NullString{String: variantID, Valid: true},
		Quantity:  5,
		Status:    domain.StatusGood,
		Detail:    "ok",
	}
	require.NoError(t, repo.CreatePlacedItem(ctx, item))
	created := item.RecordedDate

	// no-op update: nothing changed, no snapshot
	same := *item
	changed, err := repo.UpdatePlacedItem(ctx, &same)
	require.NoError(t, err)
	assert.False(t, changed)

	// real change: one snapshot with the prior values
	edited := *item
	edited.Quantity = 3
	edited.Status = domain.StatusPending
	changed, err = repo.UpdatePlacedItem(ctx, &edited)
	require.NoError(t, err)
	assert.True(t, changed)

	hist, err := repo.ListHistoryForItem(ctx, item.ItemID)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, 5, hist[0].PrevQuantity)
	assert.Equal(t, domain.StatusGood, hist[0].PrevStatus)
	assert.Equal(t, "ok", hist[0].PrevDetail)

	got, err := repo.GetPlacedItem(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
	assert.True(t, got.RecordedDate.Equal(created))
}
