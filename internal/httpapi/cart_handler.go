package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kalyanram2201/KrishiSathi/internal/cart"
	"github.com/kalyanram2201/KrishiSathi/internal/catalog"
)

type CartHandler struct {
	store   *cart.Store
	catalog *catalog.Catalog
}

func NewCartHandler(store *cart.Store, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{store: store, catalog: cat}
}

type cartResponse struct {
	Items     []cart.LineItem `json:"items"`
	Subtotal  int64           `json:"subtotal"`
	ItemCount int             `json:"itemCount"`
}

func (h *CartHandler) cartResponse() cartResponse {
	t := h.store.Totals()
	return cartResponse{
		Items:     h.store.Items(),
		Subtotal:  t.Subtotal,
		ItemCount: t.ItemCount,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	snapshot, ok := h.catalog.Snapshot(body.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	if err := h.store.Add(snapshot, body.Quantity); err != nil {
		h.writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.store.UpdateQuantity(productID, body.Quantity); err != nil {
		h.writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	if err := h.store.Remove(productID); err != nil {
		h.writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(); err != nil {
		h.writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrLocked):
		writeError(w, http.StatusLocked, "cart is locked while an order is being placed")
	case errors.Is(err, cart.ErrEmptyProductID):
		writeError(w, http.StatusBadRequest, "missing productId")
	default:
		writeError(w, http.StatusInternalServerError, "cart operation failed")
	}
}
