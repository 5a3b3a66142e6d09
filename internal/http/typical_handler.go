package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/service"
)

// TypicalHandler serves the typical-objects endpoints:
//
//	GET /api/v1/typical-objects/{roomTypeID}  list (seeding on first call)
//	PUT /api/v1/typical-objects/{roomTypeID}  replace
type TypicalHandler struct {
	svc    service.TypicalService
	logger *zap.Logger
}

func NewTypicalHandler(svc service.TypicalService, logger *zap.Logger) *TypicalHandler {
	return &TypicalHandler{svc: svc, logger: logger}
}

func (h *TypicalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasPrefix(r.URL.Path, "/api/v1/typical-objects/") && r.Method == http.MethodGet:
		h.List(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/typical-objects/") && r.Method == http.MethodPut:
		h.Replace(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *TypicalHandler) List(w http.ResponseWriter, r *http.Request) {
	roomTypeID := pathTail(r.URL.Path, "/api/v1/typical-objects/")
	list, err := h.svc.ListForRoomType(r.Context(), roomTypeID)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

type replaceBody struct {
	VariantIDs []string `json:"variant_ids"`
}

func (h *TypicalHandler) Replace(w http.ResponseWriter, r *http.Request) {
	roomTypeID := pathTail(r.URL.Path, "/api/v1/typical-objects/")
	var body replaceBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	list, err := h.svc.Replace(r.Context(), roomTypeID, body.VariantIDs)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}
