package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/service"
)

// CatalogHandler serves the category/object-kind/object-variant CRUD
// endpoints.
type CatalogHandler struct {
	svc    service.CatalogService
	logger *zap.Logger
}

func NewCatalogHandler(svc service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, logger: logger}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/categories" && r.Method == http.MethodGet:
		h.ListCategories(w, r)
	case r.URL.Path == "/api/v1/categories" && r.Method == http.MethodPost:
		h.CreateCategory(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/categories/") && r.Method == http.MethodGet:
		h.GetCategory(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/categories/") && r.Method == http.MethodPut:
		h.UpdateCategory(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/categories/") && r.Method == http.MethodDelete:
		h.DeleteCategory(w, r)

	case r.URL.Path == "/api/v1/object-kinds" && r.Method == http.MethodGet:
		h.ListObjectKinds(w, r)
	case r.URL.Path == "/api/v1/object-kinds" && r.Method == http.MethodPost:
		h.CreateObjectKind(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/object-kinds/") && r.Method == http.MethodGet:
		h.GetObjectKind(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/object-kinds/") && r.Method == http.MethodPut:
		h.UpdateObjectKind(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/object-kinds/") && r.Method == http.MethodDelete:
		h.DeleteObjectKind(w, r)

	case r.URL.Path == "/api/v1/object-variants" && r.Method == http.MethodGet:
		h.ListObjectVariants(w, r)
	case r.URL.Path == "/api/v1/object-variants" && r.Method == http.MethodPost:
		h.CreateObjectVariant(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/object-variants/") && r.Method == http.MethodGet:
		h.GetObjectVariant(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/object-variants/") && r.Method == http.MethodPut:
		h.UpdateObjectVariant(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/object-variants/") && r.Method == http.MethodDelete:
		h.DeleteObjectVariant(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type categoryBody struct {
	CategoryName string `json:"category_name"`
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCategories(r.Context())
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCategory(r.Context(), pathTail(r.URL.Path, "/api/v1/categories/"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(c))
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	c, err := h.svc.CreateCategory(r.Context(), body.CategoryName)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(c))
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	c, err := h.svc.UpdateCategory(r.Context(), pathTail(r.URL.Path, "/api/v1/categories/"), body.CategoryName)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(c))
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCategory(r.Context(), pathTail(r.URL.Path, "/api/v1/categories/")); err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}

type kindBody struct {
	CategoryID string `json:"category_id"`
	KindName   string `json:"kind_name"`
}

func (h *CatalogHandler) ListObjectKinds(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListObjectKinds(r.Context(), r.URL.Query().Get("category_id"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

func (h *CatalogHandler) GetObjectKind(w http.ResponseWriter, r *http.Request) {
	k, err := h.svc.GetObjectKind(r.Context(), pathTail(r.URL.Path, "/api/v1/object-kinds/"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(k))
}

func (h *CatalogHandler) CreateObjectKind(w http.ResponseWriter, r *http.Request) {
	var body kindBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	k, err := h.svc.CreateObjectKind(r.Context(), body.CategoryID, body.KindName)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(k))
}

func (h *CatalogHandler) UpdateObjectKind(w http.ResponseWriter, r *http.Request) {
	var body kindBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	k, err := h.svc.UpdateObjectKind(r.Context(), pathTail(r.URL.Path, "/api/v1/object-kinds/"), body.CategoryID, body.KindName)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(k))
}

func (h *CatalogHandler) DeleteObjectKind(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteObjectKind(r.Context(), pathTail(r.URL.Path, "/api/v1/object-kinds/")); err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}

type variantBody struct {
	KindID   string `json:"kind_id"`
	Brand    string `json:"brand"`
	Material string `json:"material"`
}

func (h *CatalogHandler) ListObjectVariants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.ListObjectVariants(r.Context(), q.Get("kind_id"), q.Get("category_id"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

func (h *CatalogHandler) GetObjectVariant(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetObjectVariant(r.Context(), pathTail(r.URL.Path, "/api/v1/object-variants/"))
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(v))
}

func (h *CatalogHandler) CreateObjectVariant(w http.ResponseWriter, r *http.Request) {
	var body variantBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	v, err := h.svc.CreateObjectVariant(r.Context(), body.KindID, body.Brand, body.Material)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(v))
}

func (h *CatalogHandler) UpdateObjectVariant(w http.ResponseWriter, r *http.Request) {
	var body variantBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	v, err := h.svc.UpdateObjectVariant(r.Context(), pathTail(r.URL.Path, "/api/v1/object-variants/"), body.KindID, body.Brand, body.Material)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(v))
}

func (h *CatalogHandler) DeleteObjectVariant(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteObjectVariant(r.Context(), pathTail(r.URL.Path, "/api/v1/object-variants/")); err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}
