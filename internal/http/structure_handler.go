package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/service"
)

// StructureHandler serves POST /api/v1/structure, the bulk
// hierarchy-plus-inventory creation endpoint.
type StructureHandler struct {
	svc    service.StructureService
	logger *zap.Logger
}

func NewStructureHandler(svc service.StructureService, logger *zap.Logger) *StructureHandler {
	return &StructureHandler{svc: svc, logger: logger}
}

func (h *StructureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/v1/structure" || r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var req service.CreateStructureRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	resp, err := h.svc.CreateStructure(r.Context(), req)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(resp))
}
