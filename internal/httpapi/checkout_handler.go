package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kalyanram2201/KrishiSathi/internal/checkout"
	"github.com/kalyanram2201/KrishiSathi/internal/order"
)

type CheckoutHandler struct {
	manager *checkout.Manager
}

func NewCheckoutHandler(m *checkout.Manager) *CheckoutHandler {
	return &CheckoutHandler{manager: m}
}

func (h *CheckoutHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.View())
}

func (h *CheckoutHandler) Open(w http.ResponseWriter, r *http.Request) {
	v, err := h.manager.Open()
	if err != nil {
		h.writeCheckoutError(w, v, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CheckoutHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var c order.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	v, err := h.manager.UpdateContact(c)
	if err != nil {
		h.writeCheckoutError(w, v, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	v, err := h.manager.Submit(r.Context())
	if err != nil {
		h.writeCheckoutError(w, v, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	v, err := h.manager.Cancel()
	if err != nil {
		h.writeCheckoutError(w, v, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CheckoutHandler) Retry(w http.ResponseWriter, r *http.Request) {
	v, err := h.manager.Retry()
	if err != nil {
		h.writeCheckoutError(w, v, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

type checkoutErrorResponse struct {
	Error   string        `json:"error"`
	Session checkout.View `json:"session"`
}

// writeCheckoutError maps session errors onto statuses: phase guards are
// conflicts, validation is unprocessable, and a placement failure is a bad
// gateway. The session view rides along so the client can re-render.
func (h *CheckoutHandler) writeCheckoutError(w http.ResponseWriter, v checkout.View, err error) {
	var vErr *checkout.ValidationError

	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusUnprocessableEntity, checkoutErrorResponse{
			Error:   vErr.Error(),
			Session: v,
		})
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrNoSession),
		errors.Is(err, checkout.ErrBadPhase),
		errors.Is(err, checkout.ErrSubmitInFlight):
		writeJSON(w, http.StatusConflict, checkoutErrorResponse{
			Error:   err.Error(),
			Session: v,
		})
	default:
		writeJSON(w, http.StatusBadGateway, checkoutErrorResponse{
			Error:   "order submission failed",
			Session: v,
		})
	}
}
