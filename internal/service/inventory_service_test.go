package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

func TestCreateItemWritesNoHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")

	item := env.makeItem(t, fx.Room.RoomID, v.VariantID, 3, domain.StatusGood, "")
	require.NotEmpty(t, item.ItemID)
	assert.False(t, item.RecordedDate.IsZero())

	hist, err := env.inventory.ListItemHistory(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestUpdateItemNoChangeNoHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")
	item := env.makeItem(t, fx.Room.RoomID, v.VariantID, 5, domain.StatusGood, "ok")

	resp, err := env.inventory.UpdateItem(ctx, UpdateItemRequest{
		ItemID:    item.ItemID,
		RoomID:    fx.Room.RoomID,
		VariantID: v.VariantID,
		Quantity:  5,
		Status:    domain.StatusGood,
		Detail:    "ok",
	})
	require.NoError(t, err)
	assert.False(t, resp.HistoryCreated)

	hist, err := env.inventory.ListItemHistory(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestUpdateItemChangeSnapshotsPriorValues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")
	item := env.makeItem(t, fx.Room.RoomID, v.VariantID, 5, domain.StatusGood, "ok")
	created := item.RecordedDate

	resp, err := env.inventory.UpdateItem(ctx, UpdateItemRequest{
		ItemID:    item.ItemID,
		RoomID:    fx.Room.RoomID,
		VariantID: v.VariantID,
		Quantity:  3,
		Status:    domain.StatusPending,
		Detail:    "ok",
	})
	require.NoError(t, err)
	assert.True(t, resp.HistoryCreated)

	hist, err := env.inventory.ListItemHistory(ctx, item.ItemID)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, 5, hist[0].PrevQuantity)
	assert.Equal(t, domain.StatusGood, hist[0].PrevStatus)
	assert.Equal(t, "ok", hist[0].PrevDetail)
	assert.True(t, hist[0].PrevRecordedDate.Equal(created))

	// the stored recorded date never moves on edits
	got, err := env.inventory.GetItem(ctx, item.ItemID)
	require.NoError(t, err)
	assert.True(t, got.RecordedDate.Equal(created))
	assert.Equal(t, 3, got.Quantity)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestUpdateItemDetailOnlyChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")
	item := env.makeItem(t, fx.Room.RoomID, v.VariantID, 5, domain.StatusGood, "")

	resp, err := env.inventory.UpdateItem(ctx, UpdateItemRequest{
		ItemID:    item.ItemID,
		RoomID:    fx.Room.RoomID,
		VariantID: v.VariantID,
		Quantity:  5,
		Status:    domain.StatusGood,
		Detail:    "grieta en la base",
	})
	require.NoError(t, err)
	assert.True(t, resp.HistoryCreated)

	hist, err := env.inventory.ListItemHistory(ctx, item.ItemID)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "", hist[0].PrevDetail)
}

func TestUpdateItemMoveRoomOnlyNoHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	other, err := env.hierarchy.CreateRoom(ctx, "Baño mujeres", fx.Floor.FloorID, fx.RoomType.RoomTypeID)
	require.NoError(t, err)
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")
	item := env.makeItem(t, fx.Room.RoomID, v.VariantID, 5, domain.StatusGood, "ok")

	// relocation alone does not count as a condition change
	resp, err := env.inventory.UpdateItem(ctx, UpdateItemRequest{
		ItemID:    item.ItemID,
		RoomID:    other.RoomID,
		VariantID: v.VariantID,
		Quantity:  5,
		Status:    domain.StatusGood,
		Detail:    "ok",
	})
	require.NoError(t, err)
	assert.False(t, resp.HistoryCreated)

	got, err := env.inventory.GetItem(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, other.RoomID, got.RoomID.String)
}

func TestUpdateItemHistoryFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")
	item := env.makeItem(t, fx.Room.RoomID, v.VariantID, 5, domain.StatusGood, "ok")

	boom := errors.New("history insert failed")
	env.store.FailNextHistoryInsert(boom)

	_, err := env.inventory.UpdateItem(ctx, UpdateItemRequest{
		ItemID:    item.ItemID,
		RoomID:    fx.Room.RoomID,
		VariantID: v.VariantID,
		Quantity:  1,
		Status:    domain.StatusBad,
		Detail:    "roto",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// neither the update nor the snapshot landed
	got, err := env.inventory.GetItem(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, domain.StatusGood, got.Status)
	hist, err := env.inventory.ListItemHistory(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestUpdateItemValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.inventory.UpdateItem(ctx, UpdateItemRequest{ItemID: "", Quantity: 1, Status: domain.StatusGood})
	assert.Error(t, err)

	_, err = env.inventory.UpdateItem(ctx, UpdateItemRequest{ItemID: "x", Quantity: 0, Status: domain.StatusGood})
	assert.Error(t, err)

	_, err = env.inventory.UpdateItem(ctx, UpdateItemRequest{ItemID: "x", Quantity: 1, Status: "broken"})
	assert.Error(t, err)

	_, err = env.inventory.UpdateItem(ctx, UpdateItemRequest{ItemID: "missing", Quantity: 1, Status: domain.StatusGood})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteItemCascadesHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")
	item := env.makeItem(t, fx.Room.RoomID, v.VariantID, 5, domain.StatusGood, "")

	_, err := env.inventory.UpdateItem(ctx, UpdateItemRequest{
		ItemID:    item.ItemID,
		RoomID:    fx.Room.RoomID,
		VariantID: v.VariantID,
		Quantity:  4,
		Status:    domain.StatusGood,
	})
	require.NoError(t, err)

	require.NoError(t, env.inventory.DeleteItem(ctx, item.ItemID))

	all, err := env.inventory.ListHistory(ctx, repository.HistoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListItemsFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	lav := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")
	esp := env.makeVariant(t, "Decoración", "Espejos", "", "")
	env.makeItem(t, fx.Room.RoomID, lav.VariantID, 2, domain.StatusGood, "")
	env.makeItem(t, fx.Room.RoomID, esp.VariantID, 1, domain.StatusBad, "trizado")

	bad, err := env.inventory.ListItems(ctx, repository.ItemFilter{Status: domain.StatusBad})
	require.NoError(t, err)
	require.Len(t, bad, 1)
	assert.Equal(t, "Espejos", bad[0].KindName)
	assert.Equal(t, "Baño hombres", bad[0].RoomName)
	assert.Equal(t, "Edificio A", bad[0].LocationName)

	byKind, err := env.inventory.ListItems(ctx, repository.ItemFilter{KindID: lav.KindID})
	require.NoError(t, err)
	require.Len(t, byKind, 1)
	assert.Equal(t, "Lavamanos", byKind[0].KindName)
}
