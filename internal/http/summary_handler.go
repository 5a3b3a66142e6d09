package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/repository"
	"github.com/matiascayunao/pvsa-p/internal/service"
)

// SummaryHandler serves the aggregate report and the Excel export:
//
//	GET /api/v1/summary         report with optional filters
//	GET /api/v1/summary/export  xlsx download of the whole inventory
type SummaryHandler struct {
	svc    service.SummaryService
	logger *zap.Logger
}

func NewSummaryHandler(svc service.SummaryService, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, logger: logger}
}

func (h *SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/summary" && r.Method == http.MethodGet:
		h.GetSummary(w, r)
	case r.URL.Path == "/api/v1/summary/export" && r.Method == http.MethodGet:
		h.Export(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func summaryFilterFromQuery(r *http.Request) repository.SummaryFilter {
	q := r.URL.Query()
	return repository.SummaryFilter{
		SectorID:   q.Get("sector_id"),
		LocationID: q.Get("location_id"),
		FloorID:    q.Get("floor_id"),
		RoomTypeID: q.Get("room_type_id"),
		CategoryID: q.Get("category_id"),
		KindID:     q.Get("kind_id"),
		VariantID:  q.Get("variant_id"),
		Status:     q.Get("status"),
		Brand:      q.Get("brand"),
		Material:   q.Get("material"),
	}
}

func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.BuildSummary(r.Context(), summaryFilterFromQuery(r))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(report))
}

func (h *SummaryHandler) Export(w http.ResponseWriter, r *http.Request) {
	tree, err := h.svc.ExportTree(r.Context())
	if err != nil {
		failErr(w, err)
		return
	}
	buf, err := BuildInventoryWorkbook(tree)
	if err != nil {
		h.logger.Error("failed to build inventory workbook", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to build workbook"))
		return
	}
	filename := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(buf.Bytes())
}
