package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library ServeMux; the route surface is small
// enough that a third-party router buys nothing.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Register wires every API handler under /api/v1/.
func (r *Router) Register(
	hierarchy *HierarchyHandler,
	catalog *CatalogHandler,
	items *PlacedItemHandler,
	typicals *TypicalHandler,
	structure *StructureHandler,
	summary *SummaryHandler,
	lookups *LookupHandler,
) {
	r.Handle("/api/v1/sectors", hierarchy)
	r.Handle("/api/v1/sectors/", hierarchy)
	r.Handle("/api/v1/locations", hierarchy)
	r.Handle("/api/v1/locations/", hierarchy)
	r.Handle("/api/v1/floors", hierarchy)
	r.Handle("/api/v1/floors/", hierarchy)
	r.Handle("/api/v1/room-types", hierarchy)
	r.Handle("/api/v1/room-types/", hierarchy)
	r.Handle("/api/v1/rooms", hierarchy)
	r.Handle("/api/v1/rooms/", hierarchy)

	r.Handle("/api/v1/categories", catalog)
	r.Handle("/api/v1/categories/", catalog)
	r.Handle("/api/v1/object-kinds", catalog)
	r.Handle("/api/v1/object-kinds/", catalog)
	r.Handle("/api/v1/object-variants", catalog)
	r.Handle("/api/v1/object-variants/", catalog)

	r.Handle("/api/v1/items", items)
	r.Handle("/api/v1/items/", items)
	r.Handle("/api/v1/history", items)
	r.Handle("/api/v1/history/", items)

	r.Handle("/api/v1/typical-objects", typicals)
	r.Handle("/api/v1/typical-objects/", typicals)

	r.Handle("/api/v1/structure", structure)

	r.Handle("/api/v1/summary", summary)
	r.Handle("/api/v1/summary/", summary)

	r.Handle("/api/v1/lookups/", lookups)
}
