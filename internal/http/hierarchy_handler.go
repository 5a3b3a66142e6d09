package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/service"
)

// HierarchyHandler serves the sector/location/floor/room-type/room CRUD
// endpoints.
type HierarchyHandler struct {
	svc    service.HierarchyService
	logger *zap.Logger
}

func NewHierarchyHandler(svc service.HierarchyService, logger *zap.Logger) *HierarchyHandler {
	return &HierarchyHandler{svc: svc, logger: logger}
}

func (h *HierarchyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/sectors" && r.Method == http.MethodGet:
		h.ListSectors(w, r)
	case r.URL.Path == "/api/v1/sectors" && r.Method == http.MethodPost:
		h.CreateSector(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/sectors/") && r.Method == http.MethodGet:
		h.GetSector(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/sectors/") && r.Method == http.MethodPut:
		h.UpdateSector(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/sectors/") && r.Method == http.MethodDelete:
		h.DeleteSector(w, r)

	case r.URL.Path == "/api/v1/locations" && r.Method == http.MethodGet:
		h.ListLocations(w, r)
	case r.URL.Path == "/api/v1/locations" && r.Method == http.MethodPost:
		h.CreateLocation(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/locations/") && r.Method == http.MethodGet:
		h.GetLocation(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/locations/") && r.Method == http.MethodPut:
		h.UpdateLocation(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/locations/") && r.Method == http.MethodDelete:
		h.DeleteLocation(w, r)

	case r.URL.Path == "/api/v1/floors" && r.Method == http.MethodGet:
		h.ListFloors(w, r)
	case r.URL.Path == "/api/v1/floors" && r.Method == http.MethodPost:
		h.CreateFloor(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/floors/") && r.Method == http.MethodGet:
		h.GetFloor(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/floors/") && r.Method == http.MethodPut:
		h.UpdateFloor(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/floors/") && r.Method == http.MethodDelete:
		h.DeleteFloor(w, r)

	case r.URL.Path == "/api/v1/room-types" && r.Method == http.MethodGet:
		h.ListRoomTypes(w, r)
	case r.URL.Path == "/api/v1/room-types" && r.Method == http.MethodPost:
		h.CreateRoomType(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/room-types/") && r.Method == http.MethodGet:
		h.GetRoomType(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/room-types/") && r.Method == http.MethodPut:
		h.UpdateRoomType(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/room-types/") && r.Method == http.MethodDelete:
		h.DeleteRoomType(w, r)

	case r.URL.Path == "/api/v1/rooms" && r.Method == http.MethodGet:
		h.ListRooms(w, r)
	case r.URL.Path == "/api/v1/rooms" && r.Method == http.MethodPost:
		h.CreateRoom(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/rooms/") && r.Method == http.MethodGet:
		h.GetRoom(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/rooms/") && r.Method == http.MethodPut:
		h.UpdateRoom(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/rooms/") && r.Method == http.MethodDelete:
		h.DeleteRoom(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type sectorBody struct {
	SectorName string `json:"sector_name"`
}

func (h *HierarchyHandler) ListSectors(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListSectors(r.Context())
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

func (h *HierarchyHandler) GetSector(w http.ResponseWriter, r *http.Request) {
	sec, err := h.svc.GetSector(r.Context(), pathTail(r.URL.Path, "/api/v1/sectors/"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(sec))
}

func (h *HierarchyHandler) CreateSector(w http.ResponseWriter, r *http.Request) {
	var body sectorBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	sec, err := h.svc.CreateSector(r.Context(), body.SectorName)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(sec))
}

func (h *HierarchyHandler) UpdateSector(w http.ResponseWriter, r *http.Request) {
	var body sectorBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	sec, err := h.svc.UpdateSector(r.Context(), pathTail(r.URL.Path, "/api/v1/sectors/"), body.SectorName)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(sec))
}

func (h *HierarchyHandler) DeleteSector(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSector(r.Context(), pathTail(r.URL.Path, "/api/v1/sectors/")); err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}

type locationBody struct {
	SectorID     string `json:"sector_id"`
	LocationName string `json:"location_name"`
}

func (h *HierarchyHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListLocations(r.Context(), r.URL.Query().Get("sector_id"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

func (h *HierarchyHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := h.svc.GetLocation(r.Context(), pathTail(r.URL.Path, "/api/v1/locations/"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(loc))
}

func (h *HierarchyHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var body locationBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	loc, err := h.svc.CreateLocation(r.Context(), body.SectorID, body.LocationName)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(loc))
}

func (h *HierarchyHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var body locationBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	loc, err := h.svc.UpdateLocation(r.Context(), pathTail(r.URL.Path, "/api/v1/locations/"), body.SectorID, body.LocationName)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(loc))
}

func (h *HierarchyHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteLocation(r.Context(), pathTail(r.URL.Path, "/api/v1/locations/")); err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}

type floorBody struct {
	LocationID  string `json:"location_id"`
	FloorNumber int    `json:"floor_number"`
}

func (h *HierarchyHandler) ListFloors(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListFloors(r.Context(), r.URL.Query().Get("location_id"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

func (h *HierarchyHandler) GetFloor(w http.ResponseWriter, r *http.Request) {
	fl, err := h.svc.GetFloor(r.Context(), pathTail(r.URL.Path, "/api/v1/floors/"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(fl))
}

func (h *HierarchyHandler) CreateFloor(w http.ResponseWriter, r *http.Request) {
	var body floorBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	fl, err := h.svc.CreateFloor(r.Context(), body.LocationID, body.FloorNumber)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(fl))
}

func (h *HierarchyHandler) UpdateFloor(w http.ResponseWriter, r *http.Request) {
	var body floorBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	fl, err := h.svc.UpdateFloor(r.Context(), pathTail(r.URL.Path, "/api/v1/floors/"), body.LocationID, body.FloorNumber)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(fl))
}

func (h *HierarchyHandler) DeleteFloor(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteFloor(r.Context(), pathTail(r.URL.Path, "/api/v1/floors/")); err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}

type roomTypeBody struct {
	RoomTypeName string `json:"room_type_name"`
}

func (h *HierarchyHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListRoomTypes(r.Context())
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

func (h *HierarchyHandler) GetRoomType(w http.ResponseWriter, r *http.Request) {
	rt, err := h.svc.GetRoomType(r.Context(), pathTail(r.URL.Path, "/api/v1/room-types/"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(rt))
}

func (h *HierarchyHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var body roomTypeBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	rt, err := h.svc.CreateRoomType(r.Context(), body.RoomTypeName)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(rt))
}

func (h *HierarchyHandler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	var body roomTypeBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	rt, err := h.svc.UpdateRoomType(r.Context(), pathTail(r.URL.Path, "/api/v1/room-types/"), body.RoomTypeName)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(rt))
}

func (h *HierarchyHandler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRoomType(r.Context(), pathTail(r.URL.Path, "/api/v1/room-types/")); err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}

type roomBody struct {
	RoomName   string `json:"room_name"`
	FloorID    string `json:"floor_id"`
	RoomTypeID string `json:"room_type_id"`
}

func (h *HierarchyHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.ListRooms(r.Context(), q.Get("floor_id"), q.Get("room_type_id"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

func (h *HierarchyHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.svc.GetRoom(r.Context(), pathTail(r.URL.Path, "/api/v1/rooms/"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(room))
}

func (h *HierarchyHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var body roomBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	room, err := h.svc.CreateRoom(r.Context(), body.RoomName, body.FloorID, body.RoomTypeID)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(room))
}

func (h *HierarchyHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var body roomBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	room, err := h.svc.UpdateRoom(r.Context(), pathTail(r.URL.Path, "/api/v1/rooms/"), body.RoomName, body.FloorID, body.RoomTypeID)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(room))
}

func (h *HierarchyHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRoom(r.Context(), pathTail(r.URL.Path, "/api/v1/rooms/")); err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}
