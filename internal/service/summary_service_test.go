package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

func TestSummaryPercentages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")

	env.makeItem(t, fx.Room.RoomID, v.VariantID, 6, domain.StatusGood, "")
	env.makeItem(t, fx.Room.RoomID, v.VariantID, 3, domain.StatusPending, "")
	env.makeItem(t, fx.Room.RoomID, v.VariantID, 1, domain.StatusBad, "oxidado")

	report, err := env.summary.BuildSummary(ctx, repository.SummaryFilter{})
	require.NoError(t, err)

	require.Len(t, report.BySector, 1)
	row := report.BySector[0]
	assert.Equal(t, "Planta", row.Name)
	assert.Equal(t, 10, row.Total)
	assert.Equal(t, 6, row.Good)
	assert.Equal(t, 3, row.Pending)
	assert.Equal(t, 1, row.Bad)
	assert.InDelta(t, 60.0, row.GoodPct, 0.001)
	assert.InDelta(t, 30.0, row.PendingPct, 0.001)
	assert.InDelta(t, 10.0, row.BadPct, 0.001)
}

func TestSummaryRoundsToOneDecimal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")

	// 1/3 good, 2/3 bad: 33.3 and 66.7
	env.makeItem(t, fx.Room.RoomID, v.VariantID, 1, domain.StatusGood, "")
	env.makeItem(t, fx.Room.RoomID, v.VariantID, 2, domain.StatusBad, "roto")

	report, err := env.summary.BuildSummary(ctx, repository.SummaryFilter{})
	require.NoError(t, err)
	require.Len(t, report.BySector, 1)
	assert.InDelta(t, 33.3, report.BySector[0].GoodPct, 0.001)
	assert.InDelta(t, 66.7, report.BySector[0].BadPct, 0.001)
}

func TestSummaryEmptyReport(t *testing.T) {
	env := newTestEnv(t)

	report, err := env.summary.BuildSummary(context.Background(), repository.SummaryFilter{})
	require.NoError(t, err)
	assert.Empty(t, report.BySector)
	assert.Empty(t, report.ByLocation)
	assert.Empty(t, report.ByObject)
}

func TestSummaryUnassignedItemOnlyInByObject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")

	// no room: the item exists but is not placed anywhere
	env.makeItem(t, "", v.VariantID, 4, domain.StatusGood, "")

	report, err := env.summary.BuildSummary(ctx, repository.SummaryFilter{})
	require.NoError(t, err)
	assert.Empty(t, report.BySector)
	assert.Empty(t, report.ByLocation)
	require.Len(t, report.ByObject, 1)
	assert.Equal(t, "Lavamanos", report.ByObject[0].Name)
	assert.Equal(t, 4, report.ByObject[0].Total)
}

func TestSummaryBadItemsAttachedToObjectRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 2, "Baño", "Baño hombres")
	lav := env.makeVariant(t, "Sanitario", "Lavamanos", "", "")
	esp := env.makeVariant(t, "Decoración", "Espejos", "", "")

	env.makeItem(t, fx.Room.RoomID, lav.VariantID, 2, domain.StatusGood, "")
	env.makeItem(t, fx.Room.RoomID, esp.VariantID, 1, domain.StatusBad, "trizado")

	report, err := env.summary.BuildSummary(ctx, repository.SummaryFilter{})
	require.NoError(t, err)
	require.Len(t, report.ByObject, 2)

	// ordered by kind name: Espejos before Lavamanos
	espRow := report.ByObject[0]
	assert.Equal(t, "Espejos", espRow.Name)
	require.Len(t, espRow.BadItems, 1)
	assert.Equal(t, "trizado", espRow.BadItems[0].Detail)
	assert.Equal(t, "Planta", espRow.BadItems[0].SectorName)
	assert.Equal(t, "Edificio A", espRow.BadItems[0].LocationName)
	assert.Equal(t, 2, espRow.BadItems[0].FloorNumber)
	assert.Equal(t, "Baño hombres", espRow.BadItems[0].RoomName)

	lavRow := report.ByObject[1]
	assert.Equal(t, "Lavamanos", lavRow.Name)
	assert.Empty(t, lavRow.BadItems)
}

func TestSummarySectorFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	bSec, err := env.hierarchy.CreateSector(ctx, "Oficinas")
	require.NoError(t, err)
	bLoc, err := env.hierarchy.CreateLocation(ctx, bSec.SectorID, "Edificio B")
	require.NoError(t, err)
	bFl, err := env.hierarchy.CreateFloor(ctx, bLoc.LocationID, 1)
	require.NoError(t, err)
	bRoom, err := env.hierarchy.CreateRoom(ctx, "Comedor norte", bFl.FloorID, a.RoomType.RoomTypeID)
	require.NoError(t, err)

	v := env.makeVariant(t, "Mobiliario", "Sillas", "", "")
	env.makeItem(t, a.Room.RoomID, v.VariantID, 5, domain.StatusGood, "")
	env.makeItem(t, bRoom.RoomID, v.VariantID, 7, domain.StatusGood, "")

	report, err := env.summary.BuildSummary(ctx, repository.SummaryFilter{SectorID: bSec.SectorID})
	require.NoError(t, err)
	require.Len(t, report.BySector, 1)
	assert.Equal(t, "Oficinas", report.BySector[0].Name)
	assert.Equal(t, 7, report.BySector[0].Total)
	require.Len(t, report.ByLocation, 1)
	assert.Equal(t, "Edificio B", report.ByLocation[0].Name)
	assert.Equal(t, "Oficinas", report.ByLocation[0].SectorName)
}

func TestSummaryStatusValidation(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.summary.BuildSummary(context.Background(), repository.SummaryFilter{Status: "weird"})
	assert.Error(t, err)
}

func TestExportTreeShape(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fx := env.makeRoom(t, "Planta", "Edificio A", 1, "Baño", "Baño hombres")
	v := env.makeVariant(t, "Sanitario", "Lavamanos", "Roca", "Cerámica")
	env.makeItem(t, fx.Room.RoomID, v.VariantID, 2, domain.StatusGood, "")

	tree, err := env.summary.ExportTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Planta", tree[0].SectorName)
	assert.Equal(t, "Edificio A", tree[0].LocationName)
	require.Len(t, tree[0].Floors, 1)
	assert.Equal(t, 1, tree[0].Floors[0].FloorNumber)
	require.Len(t, tree[0].Floors[0].Rooms, 1)
	room := tree[0].Floors[0].Rooms[0]
	assert.Equal(t, "Baño hombres", room.RoomName)
	require.Len(t, room.Items, 1)
	assert.Equal(t, "Lavamanos", room.Items[0].KindName)
	assert.Equal(t, "Roca", room.Items[0].Brand)
	assert.Equal(t, "Cerámica", room.Items[0].Material)
}
