package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/kalyanram2201/KrishiSathi/internal/orders"
)

type OrdersHandler struct {
	repo orders.Repository
}

func NewOrdersHandler(repo orders.Repository) *OrdersHandler {
	return &OrdersHandler{repo: repo}
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	list, err := h.repo.ListRecent(ctx, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	writeJSON(w, http.StatusOK, list)
}
