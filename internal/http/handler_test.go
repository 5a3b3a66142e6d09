package httpapi

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
	"github.com/matiascayunao/pvsa-p/internal/service"
)

func newTestRouter(t *testing.T) (*Router, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	log := zap.NewNop()

	hierarchySvc := service.NewHierarchyService(store, log)
	catalogSvc := service.NewCatalogService(store, log)
	inventorySvc := service.NewInventoryService(store, log)
	typicalSvc := service.NewTypicalService(store, store, log)
	structureSvc := service.NewStructureService(store, log)
	summarySvc := service.NewSummaryService(store, log)

	r := NewRouter(log)
	r.Register(
		NewHierarchyHandler(hierarchySvc, log),
		NewCatalogHandler(catalogSvc, log),
		NewPlacedItemHandler(inventorySvc, log),
		NewTypicalHandler(typicalSvc, log),
		NewStructureHandler(structureSvc, log),
		NewSummaryHandler(summarySvc, log),
		NewLookupHandler(hierarchySvc, catalogSvc, log),
	)
	return r, store
}

// seedItem builds a minimal hierarchy, catalog and one good-condition item
// with quantity 3, returning the item id.
func seedItem(t *testing.T, store *repository.MemoryStore) string {
	t.Helper()
	ctx := context.Background()

	sec := &domain.Sector{SectorName: "Planta"}
	require.NoError(t, store.CreateSector(ctx, sec))
	loc := &domain.Location{SectorID: sec.SectorID, LocationName: "Edificio A"}
	require.NoError(t, store.CreateLocation(ctx, loc))
	fl := &domain.Floor{LocationID: loc.LocationID, FloorNumber: 1}
	require.NoError(t, store.CreateFloor(ctx, fl))
	rt := &domain.RoomType{RoomTypeName: "Baño"}
	require.NoError(t, store.CreateRoomType(ctx, rt))
	room := &domain.Room{RoomName: "Baño hombres", FloorID: fl.FloorID, RoomTypeID: rt.RoomTypeID}
	require.NoError(t, store.CreateRoom(ctx, room))

	cat := &domain.Category{CategoryName: "Sanitario"}
	require.NoError(t, store.CreateCategory(ctx, cat))
	kind := &domain.ObjectKind{CategoryID: cat.CategoryID, KindName: "Lavamanos"}
	require.NoError(t, store.CreateObjectKind(ctx, kind))
	v := &domain.ObjectVariant{KindID: kind.KindID}
	require.NoError(t, store.CreateObjectVariant(ctx, v))

	item := &domain.PlacedItem{
		RoomID:    sql.NullString{String: room.RoomID, Valid: true},
		VariantID: sql.NullString{String: v.VariantID, Valid: true},
		Quantity:  3,
		Status:    domain.StatusGood,
	}
	require.NoError(t, store.CreatePlacedItem(ctx, item))
	return item.ItemID
}

func doJSON(t *testing.T, r *Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestSectorCRUDOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sectors", map[string]string{"sector_name": "Planta"})
	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeResult(t, w)
	assert.Equal(t, float64(ResultSuccess), env["code"])
	sectorID := env["result"].(map[string]any)["sector_id"].(string)
	require.NotEmpty(t, sectorID)

	w = doJSON(t, r, http.MethodGet, "/api/v1/sectors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeResult(t, w)
	assert.Len(t, env["result"], 1)

	w = doJSON(t, r, http.MethodPut, "/api/v1/sectors/"+sectorID, map[string]string{"sector_name": "Planta Norte"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/sectors/"+sectorID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeResult(t, w)
	assert.Equal(t, "Planta Norte", env["result"].(map[string]any)["sector_name"])

	w = doJSON(t, r, http.MethodDelete, "/api/v1/sectors/"+sectorID, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetMissingSectorReturns404Envelope(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sectors/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeResult(t, w)
	assert.Equal(t, float64(ResultError), env["code"])
	assert.Equal(t, "error", env["type"])
}

func TestDuplicateSectorNameConflicts(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sectors", map[string]string{"sector_name": "Planta"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/sectors", map[string]string{"sector_name": "Planta"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteSectorWithLocationsConflicts(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sectors", map[string]string{"sector_name": "Planta"})
	sectorID := decodeResult(t, w)["result"].(map[string]any)["sector_id"].(string)
	w = doJSON(t, r, http.MethodPost, "/api/v1/locations", map[string]string{"sector_id": sectorID, "location_name": "Edificio A"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/sectors/"+sectorID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestItemUpdateReportsHistoryCreated(t *testing.T) {
	r, store := newTestRouter(t)
	itemID := seedItem(t, store)

	update := map[string]any{"quantity": 2, "status": domain.StatusPending, "detail": ""}
	w := doJSON(t, r, http.MethodPut, "/api/v1/items/"+itemID, update)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeResult(t, w)
	result := env["result"].(map[string]any)
	assert.Equal(t, true, result["history_created"])

	// same payload again: no further change, no snapshot
	w = doJSON(t, r, http.MethodPut, "/api/v1/items/"+itemID, update)
	require.Equal(t, http.StatusOK, w.Code)
	result = decodeResult(t, w)["result"].(map[string]any)
	assert.Equal(t, false, result["history_created"])

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/items/%s/history", itemID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeResult(t, w)
	assert.Len(t, env["result"], 1)
}

func TestStructureEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	floor := 1
	w := doJSON(t, r, http.MethodPost, "/api/v1/structure", service.CreateStructureRequest{
		SectorName:   "Planta",
		LocationName: "Edificio A",
		FloorNumber:  &floor,
		RoomTypeName: "Baño",
		RoomName:     "Baño hombres",
		Items: []service.StructureItemRequest{
			{CategoryName: "Sanitario", KindName: "Lavamanos", Quantity: 2, Status: domain.StatusGood},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	result := decodeResult(t, w)["result"].(map[string]any)
	assert.NotEmpty(t, result["room_id"])
	assert.Equal(t, float64(1), result["item_count"])
}

func TestSummaryEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	seedItem(t, store)

	w := doJSON(t, r, http.MethodGet, "/api/v1/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeResult(t, w)["result"].(map[string]any)
	bySector := result["by_sector"].([]any)
	require.Len(t, bySector, 1)
	row := bySector[0].(map[string]any)
	assert.Equal(t, float64(3), row["total"])
	assert.Equal(t, float64(100), row["good_pct"])
}

func TestLookupStatuses(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/lookups/statuses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	opts := decodeResult(t, w)["result"].([]any)
	require.Len(t, opts, 3)
	first := opts[0].(map[string]any)
	assert.Equal(t, domain.StatusGood, first["id"])
	assert.Equal(t, "Good", first["label"])
}

func TestExportEndpointReturnsWorkbook(t *testing.T) {
	r, store := newTestRouter(t)
	seedItem(t, store)

	w := doJSON(t, r, http.MethodGet, "/api/v1/summary/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}

func TestListItemsPaged(t *testing.T) {
	r, store := newTestRouter(t)
	seedItem(t, store)

	w := doJSON(t, r, http.MethodGet, "/api/v1/items?page=1&size=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeResult(t, w)["result"].(map[string]any)
	require.Len(t, result["items"], 1)
	paging := result["pagination"].(map[string]any)
	assert.Equal(t, float64(1), paging["count"])
	assert.Equal(t, float64(1), paging["page"])
}
