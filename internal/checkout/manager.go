package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kalyanram2201/KrishiSathi/internal/cart"
	"github.com/kalyanram2201/KrishiSathi/internal/order"
)

var (
	ErrEmptyCart      = errors.New("checkout: cart is empty")
	ErrNoSession      = errors.New("checkout: no active session")
	ErrBadPhase       = errors.New("checkout: operation not allowed in current phase")
	ErrSubmitInFlight = errors.New("checkout: submission already in flight")
)

// ValidationError reports per-field contact validation failures. The
// session stays in form_open when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return "checkout: invalid contact fields: " + strings.Join(keys, ", ")
}

// Archiver records completed orders. Archive failures never fail a
// checkout.
type Archiver interface {
	Create(ctx context.Context, o *order.Order) error
}

// View is an immutable snapshot of the session handed to the presentation
// layer.
type View struct {
	SessionID    string            `json:"sessionId"`
	Phase        Phase             `json:"phase"`
	Contact      order.Contact     `json:"contact"`
	Subtotal     int64             `json:"subtotal"`
	ShippingCost int64             `json:"shippingCost"`
	GrandTotal   int64             `json:"grandTotal"`
	FieldErrors  map[string]string `json:"fieldErrors,omitempty"`
	LastError    string            `json:"lastError,omitempty"`
	OrderID      string            `json:"orderId,omitempty"`
}

type session struct {
	id          string
	phase       Phase
	contact     order.Contact
	subtotal    int64
	shipping    int64
	grandTotal  int64
	fieldErrors map[string]string
	lastError   string
	orderID     string
}

// Manager drives the checkout state machine over an injected cart store.
// It owns at most one session at a time and is the only component that
// clears the cart on a successful order.
type Manager struct {
	mu       sync.Mutex
	cart     *cart.Store
	placer   order.Placer
	log      *logrus.Logger
	timeout  time.Duration
	archiver Archiver
	session  *session
}

func NewManager(store *cart.Store, placer order.Placer, log *logrus.Logger, submitTimeout time.Duration) *Manager {
	m := &Manager{
		cart:    store,
		placer:  placer,
		log:     log,
		timeout: submitTimeout,
	}
	store.OnChange(m.onCartChange)
	return m
}

// SetArchiver wires an optional order archive consulted on success.
func (m *Manager) SetArchiver(a Archiver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.archiver = a
}

// Open starts a checkout session over a non-empty cart, deriving shipping
// cost and grand total from the current subtotal. Opening while a session
// is already in form_open returns that session unchanged.
func (m *Manager) Open() (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s := m.session; s != nil {
		switch s.phase {
		case PhaseSubmitting:
			return m.viewLocked(), ErrSubmitInFlight
		case PhaseFormOpen:
			return m.viewLocked(), nil
		}
	}

	t := m.cart.Totals()
	if t.ItemCount == 0 {
		return View{Phase: PhaseIdle}, ErrEmptyCart
	}

	m.session = &session{
		id:    uuid.NewString(),
		phase: PhaseFormOpen,
	}
	m.deriveLocked(t.Subtotal)
	return m.viewLocked(), nil
}

// UpdateContact stores the contact draft. Allowed only while the form is
// open.
func (m *Manager) UpdateContact(c order.Contact) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session
	if s == nil {
		return View{Phase: PhaseIdle}, ErrNoSession
	}
	if s.phase != PhaseFormOpen {
		return m.viewLocked(), ErrBadPhase
	}
	s.contact = c
	s.fieldErrors = nil
	return m.viewLocked(), nil
}

// Submit validates the contact draft and places the order. Exactly one
// placement call is issued; a second Submit while the first is in flight
// is rejected. On success the cart is cleared atomically with the phase
// transition; on failure the cart is left untouched.
func (m *Manager) Submit(ctx context.Context) (View, error) {
	m.mu.Lock()
	s := m.session
	if s == nil {
		m.mu.Unlock()
		return View{Phase: PhaseIdle}, ErrNoSession
	}
	if s.phase == PhaseSubmitting {
		v := m.viewLocked()
		m.mu.Unlock()
		return v, ErrSubmitInFlight
	}
	if s.phase != PhaseFormOpen {
		v := m.viewLocked()
		m.mu.Unlock()
		return v, ErrBadPhase
	}

	if fields := validateContact(s.contact); len(fields) > 0 {
		s.fieldErrors = fields
		v := m.viewLocked()
		m.mu.Unlock()
		return v, &ValidationError{Fields: fields}
	}
	s.fieldErrors = nil

	// Freeze before reading: the order's line items and totals must
	// describe the same cart state, and nothing may land between the
	// snapshot and the drain on success.
	m.cart.Freeze()
	items := m.cart.Items()
	if len(items) == 0 {
		// The auto-cancel listener should have caught this already.
		m.cart.Unfreeze()
		s.phase = PhaseCancelled
		v := m.viewLocked()
		m.mu.Unlock()
		return v, ErrEmptyCart
	}

	// Recompute from the frozen snapshot; the listener-driven totals may
	// trail a mutation that committed just before the freeze.
	var subtotal int64
	for _, it := range items {
		subtotal += it.UnitPrice * int64(it.Quantity)
	}
	m.deriveLocked(subtotal)

	s.phase = PhaseSubmitting
	o := m.buildOrderLocked(items)
	m.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	err := m.placer.PlaceOrder(cctx, o)

	m.mu.Lock()
	if err != nil {
		s.phase = PhaseFailed
		s.lastError = err.Error()
		m.cart.Unfreeze()
		v := m.viewLocked()
		m.mu.Unlock()
		m.log.WithError(err).WithField("order_id", o.ID).Warn("order submission failed")
		return v, fmt.Errorf("place order: %w", err)
	}

	s.phase = PhaseCompleted
	s.orderID = o.ID
	s.lastError = ""
	m.cart.Drain()
	v := m.viewLocked()
	archiver := m.archiver
	m.mu.Unlock()

	m.log.WithFields(logrus.Fields{
		"order_id":    o.ID,
		"grand_total": o.GrandTotal,
		"items":       len(o.Items),
	}).Info("order placed")

	if archiver != nil {
		actx, acancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer acancel()
		if err := archiver.Create(actx, o); err != nil {
			m.log.WithError(err).WithField("order_id", o.ID).Warn("order archive failed")
		}
	}
	return v, nil
}

// Cancel dismisses the form before submission. The cart is untouched.
func (m *Manager) Cancel() (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session
	if s == nil {
		return View{Phase: PhaseIdle}, ErrNoSession
	}
	if s.phase != PhaseFormOpen {
		return m.viewLocked(), ErrBadPhase
	}
	s.phase = PhaseCancelled
	return m.viewLocked(), nil
}

// Retry moves a failed session back to form_open, preserving the contact
// draft. If the cart was emptied in the meantime the session is cancelled
// instead.
func (m *Manager) Retry() (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session
	if s == nil {
		return View{Phase: PhaseIdle}, ErrNoSession
	}
	if s.phase != PhaseFailed {
		return m.viewLocked(), ErrBadPhase
	}

	t := m.cart.Totals()
	if t.ItemCount == 0 {
		s.phase = PhaseCancelled
		return m.viewLocked(), ErrEmptyCart
	}

	s.phase = PhaseFormOpen
	s.lastError = ""
	m.deriveLocked(t.Subtotal)
	return m.viewLocked(), nil
}

// View returns the current session snapshot, or an idle view when no
// session exists. A session in a terminal phase (completed, failed,
// cancelled) stays visible, order id included, until the next successful
// Open replaces it.
func (m *Manager) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewLocked()
}

// Phase reports the current phase, PhaseIdle when no session exists.
func (m *Manager) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return PhaseIdle
	}
	return m.session.phase
}

// onCartChange keeps an open form's totals in sync with the cart and
// cancels the session if the cart empties underneath it.
func (m *Manager) onCartChange(t cart.Totals) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session
	if s == nil || s.phase != PhaseFormOpen {
		return
	}
	if t.ItemCount == 0 {
		s.phase = PhaseCancelled
		m.log.WithField("session_id", s.id).Info("cart emptied, checkout cancelled")
		return
	}
	m.deriveLocked(t.Subtotal)
}

func (m *Manager) deriveLocked(subtotal int64) {
	s := m.session
	s.subtotal = subtotal
	s.shipping = ShippingCost(subtotal)
	s.grandTotal = subtotal + s.shipping
}

func (m *Manager) buildOrderLocked(items []cart.LineItem) *order.Order {
	s := m.session
	o := &order.Order{
		ID:           uuid.NewString(),
		Contact:      s.contact,
		Subtotal:     s.subtotal,
		ShippingCost: s.shipping,
		GrandTotal:   s.grandTotal,
		PlacedAt:     time.Now().UTC(),
	}
	for _, it := range items {
		o.Items = append(o.Items, order.Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return o
}

func (m *Manager) viewLocked() View {
	s := m.session
	if s == nil {
		return View{Phase: PhaseIdle}
	}
	v := View{
		SessionID:    s.id,
		Phase:        s.phase,
		Contact:      s.contact,
		Subtotal:     s.subtotal,
		ShippingCost: s.shipping,
		GrandTotal:   s.grandTotal,
		LastError:    s.lastError,
		OrderID:      s.orderID,
	}
	if len(s.fieldErrors) > 0 {
		v.FieldErrors = make(map[string]string, len(s.fieldErrors))
		for k, val := range s.fieldErrors {
			v.FieldErrors[k] = val
		}
	}
	return v
}

func validateContact(c order.Contact) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = "required"
	}
	if strings.TrimSpace(c.Phone) == "" {
		fields["phone"] = "required"
	}
	if strings.TrimSpace(c.Address) == "" {
		fields["address"] = "required"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
