package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypicalObjectsSeededOnFirstList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rt, err := env.hierarchy.CreateRoomType(ctx, "Baño")
	require.NoError(t, err)

	list, err := env.typical.ListForRoomType(ctx, rt.RoomTypeID)
	require.NoError(t, err)
	require.Len(t, list, len(typicalSeeds["Baño"]))

	// seed order is preserved
	assert.Equal(t, "Paredes", list[0].KindName)
	assert.Equal(t, "Infraestructura", list[0].CategoryName)
	assert.Equal(t, "Dispensadores de jabón", list[len(list)-1].KindName)
	assert.Equal(t, "Higiene", list[len(list)-1].CategoryName)
}

func TestTypicalObjectsSeedIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rt, err := env.hierarchy.CreateRoomType(ctx, "Vestidor")
	require.NoError(t, err)

	first, err := env.typical.ListForRoomType(ctx, rt.RoomTypeID)
	require.NoError(t, err)
	second, err := env.typical.ListForRoomType(ctx, rt.RoomTypeID)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].TypicalID, second[i].TypicalID)
	}
}

func TestTypicalObjectsUnknownRoomTypeStaysEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rt, err := env.hierarchy.CreateRoomType(ctx, "Sala de reuniones")
	require.NoError(t, err)

	list, err := env.typical.ListForRoomType(ctx, rt.RoomTypeID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTypicalObjectsSeedKeepsExistingKindCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// "Espejos" already cataloged under a category the seed table does not use
	other, err := env.catalog.CreateCategory(ctx, "Vidriería")
	require.NoError(t, err)
	_, err = env.catalog.CreateObjectKind(ctx, other.CategoryID, "Espejos")
	require.NoError(t, err)

	rt, err := env.hierarchy.CreateRoomType(ctx, "Baño")
	require.NoError(t, err)
	list, err := env.typical.ListForRoomType(ctx, rt.RoomTypeID)
	require.NoError(t, err)

	var espejos bool
	for _, to := range list {
		if to.KindName == "Espejos" {
			espejos = true
			// the kind keeps its original category; seeding never reassigns
			assert.Equal(t, "Vidriería", to.CategoryName)
		}
	}
	assert.True(t, espejos)
}

func TestTypicalObjectsReplace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rt, err := env.hierarchy.CreateRoomType(ctx, "Cafetería")
	require.NoError(t, err)

	_, err = env.typical.ListForRoomType(ctx, rt.RoomTypeID)
	require.NoError(t, err)

	mesa := env.makeVariant(t, "Mobiliario especial", "Mesas altas", "", "")
	silla := env.makeVariant(t, "Mobiliario especial", "Sillas plegables", "", "")

	list, err := env.typical.Replace(ctx, rt.RoomTypeID, []string{mesa.VariantID, silla.VariantID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Mesas altas", list[0].KindName)
	assert.Equal(t, "Sillas plegables", list[1].KindName)

	// replacement is persistent: the next list returns it, no re-seed
	again, err := env.typical.ListForRoomType(ctx, rt.RoomTypeID)
	require.NoError(t, err)
	require.Len(t, again, 2)
}
