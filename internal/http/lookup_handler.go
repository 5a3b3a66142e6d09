package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/service"
)

// Option is one entry of a cascading select.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// LookupHandler serves the {id,label} option lists the frontend's cascading
// selects consume. Each list narrows by the parent id passed in the query
// string.
type LookupHandler struct {
	hierarchy service.HierarchyService
	catalog   service.CatalogService
	logger    *zap.Logger
}

func NewLookupHandler(hierarchy service.HierarchyService, catalog service.CatalogService, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{hierarchy: hierarchy, catalog: catalog, logger: logger}
}

func (h *LookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/v1/lookups/sectors":
		h.Sectors(w, r)
	case "/api/v1/lookups/locations":
		h.Locations(w, r)
	case "/api/v1/lookups/floors":
		h.Floors(w, r)
	case "/api/v1/lookups/rooms":
		h.Rooms(w, r)
	case "/api/v1/lookups/room-types":
		h.RoomTypes(w, r)
	case "/api/v1/lookups/categories":
		h.Categories(w, r)
	case "/api/v1/lookups/object-kinds":
		h.ObjectKinds(w, r)
	case "/api/v1/lookups/object-variants":
		h.ObjectVariants(w, r)
	case "/api/v1/lookups/statuses":
		h.Statuses(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *LookupHandler) Sectors(w http.ResponseWriter, r *http.Request) {
	list, err := h.hierarchy.ListSectors(r.Context())
	if err != nil {
		failErr(w, err)
		return
	}
	opts := make([]Option, 0, len(list))
	for _, s := range list {
		opts = append(opts, Option{ID: s.SectorID, Label: s.SectorName})
	}
	writeJSON(w, http.StatusOK, Ok(opts))
}

func (h *LookupHandler) Locations(w http.ResponseWriter, r *http.Request) {
	list, err := h.hierarchy.ListLocations(r.Context(), r.URL.Query().Get("sector_id"))
	if err != nil {
		failErr(w, err)
		return
	}
	opts := make([]Option, 0, len(list))
	for _, l := range list {
		opts = append(opts, Option{ID: l.LocationID, Label: l.LocationName})
	}
	writeJSON(w, http.StatusOK, Ok(opts))
}

func (h *LookupHandler) Floors(w http.ResponseWriter, r *http.Request) {
	list, err := h.hierarchy.ListFloors(r.Context(), r.URL.Query().Get("location_id"))
	if err != nil {
		failErr(w, err)
		return
	}
	opts := make([]Option, 0, len(list))
	for _, f := range list {
		opts = append(opts, Option{ID: f.FloorID, Label: "Piso " + strconv.Itoa(f.FloorNumber)})
	}
	writeJSON(w, http.StatusOK, Ok(opts))
}

func (h *LookupHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.hierarchy.ListRooms(r.Context(), q.Get("floor_id"), q.Get("room_type_id"))
	if err != nil {
		failErr(w, err)
		return
	}
	opts := make([]Option, 0, len(list))
	for _, rm := range list {
		label := rm.RoomName
		if q.Get("floor_id") == "" && rm.LocationName != "" {
			label = fmt.Sprintf("%s / Piso %d / %s", rm.LocationName, rm.FloorNumber, rm.RoomName)
		}
		opts = append(opts, Option{ID: rm.RoomID, Label: label})
	}
	writeJSON(w, http.StatusOK, Ok(opts))
}

func (h *LookupHandler) RoomTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.hierarchy.ListRoomTypes(r.Context())
	if err != nil {
		failErr(w, err)
		return
	}
	opts := make([]Option, 0, len(list))
	for _, rt := range list {
		opts = append(opts, Option{ID: rt.RoomTypeID, Label: rt.RoomTypeName})
	}
	writeJSON(w, http.StatusOK, Ok(opts))
}

func (h *LookupHandler) Categories(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		failErr(w, err)
		return
	}
	opts := make([]Option, 0, len(list))
	for _, c := range list {
		opts = append(opts, Option{ID: c.CategoryID, Label: c.CategoryName})
	}
	writeJSON(w, http.StatusOK, Ok(opts))
}

func (h *LookupHandler) ObjectKinds(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListObjectKinds(r.Context(), r.URL.Query().Get("category_id"))
	if err != nil {
		failErr(w, err)
		return
	}
	opts := make([]Option, 0, len(list))
	for _, k := range list {
		opts = append(opts, Option{ID: k.KindID, Label: k.KindName})
	}
	writeJSON(w, http.StatusOK, Ok(opts))
}

func (h *LookupHandler) ObjectVariants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.catalog.ListObjectVariants(r.Context(), q.Get("kind_id"), q.Get("category_id"))
	if err != nil {
		failErr(w, err)
		return
	}
	opts := make([]Option, 0, len(list))
	for _, v := range list {
		opts = append(opts, Option{ID: v.VariantID, Label: v.Label()})
	}
	writeJSON(w, http.StatusOK, Ok(opts))
}

func (h *LookupHandler) Statuses(w http.ResponseWriter, _ *http.Request) {
	opts := []Option{
		{ID: domain.StatusGood, Label: domain.StatusLabel(domain.StatusGood)},
		{ID: domain.StatusPending, Label: domain.StatusLabel(domain.StatusPending)},
		{ID: domain.StatusBad, Label: domain.StatusLabel(domain.StatusBad)},
	}
	writeJSON(w, http.StatusOK, Ok(opts))
}
