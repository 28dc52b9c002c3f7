package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kalyanram2201/KrishiSathi/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		writeJSON(w, http.StatusOK, h.catalog.ListByCategory(category))
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.List())
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")
	p, ok := h.catalog.Lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
