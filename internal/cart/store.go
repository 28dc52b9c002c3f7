package cart

import (
	"errors"
	"sync"
)

var (
	// ErrLocked is returned by every mutator while an order submission is
	// in flight. The cart must not change between the totals the user
	// confirmed and the order that gets placed.
	ErrLocked = errors.New("cart: locked during order submission")

	ErrEmptyProductID = errors.New("cart: empty product id")
)

// Store is the sole owner of the cart's line items. Insertion order is
// preserved for display. There is at most one line item per product id;
// adding the same product again increments its quantity.
//
// Totals are recomputed from the line items on every read, never cached.
type Store struct {
	mu       sync.Mutex
	items    []LineItem
	frozen   bool
	onChange []func(Totals)
}

func NewStore() *Store {
	return &Store{}
}

// OnChange registers a listener invoked after every successful mutation
// with the new derived totals. Listeners run outside the store lock and
// must not mutate the store.
func (s *Store) OnChange(fn func(Totals)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Add inserts a new line item or increments the quantity of an existing
// one. A quantity below 1 is clamped to 1.
func (s *Store) Add(p ProductSnapshot, quantity int) error {
	if p.ProductID == "" {
		return ErrEmptyProductID
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	if s.frozen {
		s.mu.Unlock()
		return ErrLocked
	}

	found := false
	for i := range s.items {
		if s.items[i].ProductID == p.ProductID {
			s.items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, LineItem{
			ProductID: p.ProductID,
			Name:      p.Name,
			Category:  p.Category,
			Image:     p.Image,
			UnitPrice: p.UnitPrice,
			Quantity:  quantity,
		})
	}
	s.notifyLocked()
	return nil
}

// UpdateQuantity sets the quantity of an existing line item. A quantity of
// zero or less removes the item entirely. Unknown product ids are a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) error {
	s.mu.Lock()
	if s.frozen {
		s.mu.Unlock()
		return ErrLocked
	}

	for i := range s.items {
		if s.items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		s.notifyLocked()
		return nil
	}

	s.mu.Unlock()
	return nil
}

// Remove deletes a line item. Unknown product ids are a no-op.
func (s *Store) Remove(productID string) error {
	return s.UpdateQuantity(productID, 0)
}

// Clear empties the cart. Used by the explicit empty-cart action; the
// checkout success path goes through Drain instead.
func (s *Store) Clear() error {
	s.mu.Lock()
	if s.frozen {
		s.mu.Unlock()
		return ErrLocked
	}
	s.items = nil
	s.notifyLocked()
	return nil
}

// Freeze rejects all mutations until Unfreeze or Drain. Called by the
// checkout session when it enters the submitting phase.
func (s *Store) Freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frozen = true
}

func (s *Store) Unfreeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frozen = false
}

// Drain empties the cart and releases the submission freeze in one step,
// so there is no window where the order is completed but the cart still
// holds items. Change listeners are not notified: the checkout transition
// invoking Drain is itself the observer.
func (s *Store) Drain() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.frozen = false
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Subtotal is the sum of unit price times quantity across all line items.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

// ItemCount is the sum of quantities, used for the cart badge.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCountLocked()
}

func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Totals{Subtotal: s.subtotalLocked(), ItemCount: s.itemCountLocked()}
}

func (s *Store) subtotalLocked() int64 {
	var sum int64
	for _, it := range s.items {
		sum += it.UnitPrice * int64(it.Quantity)
	}
	return sum
}

func (s *Store) itemCountLocked() int {
	count := 0
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

// notifyLocked snapshots totals and listeners under the lock, unlocks, and
// invokes the listeners. Callers must hold s.mu and must not touch the
// store afterwards.
func (s *Store) notifyLocked() {
	t := Totals{Subtotal: s.subtotalLocked(), ItemCount: s.itemCountLocked()}
	listeners := make([]func(Totals), len(s.onChange))
	copy(listeners, s.onChange)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(t)
	}
}
