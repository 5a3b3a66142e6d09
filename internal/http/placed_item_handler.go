package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/models"
	"github.com/matiascayunao/pvsa-p/internal/repository"
	"github.com/matiascayunao/pvsa-p/internal/service"
)

// PlacedItemHandler serves the placed-item and history endpoints.
type PlacedItemHandler struct {
	svc    service.InventoryService
	logger *zap.Logger
}

func NewPlacedItemHandler(svc service.InventoryService, logger *zap.Logger) *PlacedItemHandler {
	return &PlacedItemHandler{svc: svc, logger: logger}
}

func (h *PlacedItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/items" && r.Method == http.MethodGet:
		h.ListItems(w, r)
	case r.URL.Path == "/api/v1/items" && r.Method == http.MethodPost:
		h.CreateItem(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/items/") && strings.HasSuffix(r.URL.Path, "/history") && r.Method == http.MethodGet:
		h.ListItemHistory(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/items/") && r.Method == http.MethodGet:
		h.GetItem(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/items/") && r.Method == http.MethodPut:
		h.UpdateItem(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/items/") && r.Method == http.MethodDelete:
		h.DeleteItem(w, r)

	case r.URL.Path == "/api/v1/history" && r.Method == http.MethodGet:
		h.ListHistory(w, r)
	case r.URL.Path == "/api/v1/history" && r.Method == http.MethodPost:
		h.CreateHistoryEntry(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/history/") && r.Method == http.MethodGet:
		h.GetHistoryEntry(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/history/") && r.Method == http.MethodDelete:
		h.DeleteHistoryEntry(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func itemFilterFromQuery(r *http.Request) repository.ItemFilter {
	q := r.URL.Query()
	return repository.ItemFilter{
		RoomID:    q.Get("room_id"),
		KindID:    q.Get("kind_id"),
		VariantID: q.Get("variant_id"),
		Status:    q.Get("status"),
	}
}

func (h *PlacedItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListItems(r.Context(), itemFilterFromQuery(r))
	if err != nil {
		failErr(w, err)
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, Ok(models.NewPaged(list, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 0))))
}

func (h *PlacedItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.GetItem(r.Context(), pathTail(r.URL.Path, "/api/v1/items/"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(item))
}

func (h *PlacedItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req service.CreateItemRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	item, err := h.svc.CreateItem(r.Context(), req)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(item))
}

func (h *PlacedItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateItemRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	req.ItemID = pathTail(r.URL.Path, "/api/v1/items/")
	resp, err := h.svc.UpdateItem(r.Context(), req)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

func (h *PlacedItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteItem(r.Context(), pathTail(r.URL.Path, "/api/v1/items/")); err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}

func (h *PlacedItemHandler) ListItemHistory(w http.ResponseWriter, r *http.Request) {
	itemID := pathTail(r.URL.Path, "/api/v1/items/")
	list, err := h.svc.ListItemHistory(r.Context(), itemID)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

func (h *PlacedItemHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.ListHistory(r.Context(), repository.HistoryFilter{
		RoomID:    q.Get("room_id"),
		KindID:    q.Get("kind_id"),
		VariantID: q.Get("variant_id"),
		Status:    q.Get("status"),
	})
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(models.NewPaged(list, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 0))))
}

func (h *PlacedItemHandler) GetHistoryEntry(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetHistoryEntry(r.Context(), pathTail(r.URL.Path, "/api/v1/history/"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(e))
}

func (h *PlacedItemHandler) CreateHistoryEntry(w http.ResponseWriter, r *http.Request) {
	var req service.CreateHistoryRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	e, err := h.svc.CreateHistoryEntry(r.Context(), req)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(e))
}

func (h *PlacedItemHandler) DeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteHistoryEntry(r.Context(), pathTail(r.URL.Path, "/api/v1/history/")); err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}
