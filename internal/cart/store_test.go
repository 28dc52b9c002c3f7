package cart_test

import (
	"errors"
	"testing"

	"github.com/kalyanram2201/KrishiSathi/internal/cart"
)

func snapshot(id string, price int64) cart.ProductSnapshot {
	return cart.ProductSnapshot{
		ProductID: id,
		Name:      "Product " + id,
		Category:  "seeds",
		Image:     "https://example.com/" + id + ".png",
		UnitPrice: price,
	}
}

func TestAdd(t *testing.T) {
	t.Run("repeated adds accumulate into one line item", func(t *testing.T) {
		s := cart.NewStore()

		if err := s.Add(snapshot("seeds-0", 100), 2); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := s.Add(snapshot("seeds-0", 100), 3); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := s.Add(snapshot("seeds-0", 100), 1); err != nil {
			t.Fatalf("add: %v", err)
		}

		items := s.Items()
		if len(items) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(items))
		}
		if items[0].Quantity != 6 {
			t.Fatalf("expected quantity 6, got %d", items[0].Quantity)
		}
	})

	t.Run("non-positive quantity clamps to 1", func(t *testing.T) {
		s := cart.NewStore()

		if err := s.Add(snapshot("seeds-0", 100), 0); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := s.Add(snapshot("tools-1", 200), -5); err != nil {
			t.Fatalf("add: %v", err)
		}

		for _, it := range s.Items() {
			if it.Quantity != 1 {
				t.Fatalf("expected quantity 1 for %s, got %d", it.ProductID, it.Quantity)
			}
		}
	})

	t.Run("empty product id rejected", func(t *testing.T) {
		s := cart.NewStore()

		err := s.Add(snapshot("", 100), 1)
		if !errors.Is(err, cart.ErrEmptyProductID) {
			t.Fatalf("expected ErrEmptyProductID, got %v", err)
		}
		if len(s.Items()) != 0 {
			t.Fatalf("cart should stay empty")
		}
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		s := cart.NewStore()
		ids := []string{"seeds-0", "tools-2", "fertilizers-1"}
		for _, id := range ids {
			if err := s.Add(snapshot(id, 10), 1); err != nil {
				t.Fatalf("add %s: %v", id, err)
			}
		}
		// incrementing an existing item must not move it
		if err := s.Add(snapshot("seeds-0", 10), 1); err != nil {
			t.Fatalf("add: %v", err)
		}

		items := s.Items()
		for i, id := range ids {
			if items[i].ProductID != id {
				t.Fatalf("expected %s at position %d, got %s", id, i, items[i].ProductID)
			}
		}
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("sets quantity", func(t *testing.T) {
		s := cart.NewStore()
		if err := s.Add(snapshot("seeds-0", 100), 2); err != nil {
			t.Fatalf("add: %v", err)
		}

		if err := s.UpdateQuantity("seeds-0", 7); err != nil {
			t.Fatalf("update: %v", err)
		}
		if got := s.Items()[0].Quantity; got != 7 {
			t.Fatalf("expected quantity 7, got %d", got)
		}
	})

	t.Run("zero removes the item like Remove", func(t *testing.T) {
		viaUpdate := cart.NewStore()
		viaRemove := cart.NewStore()
		for _, s := range []*cart.Store{viaUpdate, viaRemove} {
			if err := s.Add(snapshot("seeds-0", 100), 2); err != nil {
				t.Fatalf("add: %v", err)
			}
		}

		if err := viaUpdate.UpdateQuantity("seeds-0", 0); err != nil {
			t.Fatalf("update: %v", err)
		}
		if err := viaRemove.Remove("seeds-0"); err != nil {
			t.Fatalf("remove: %v", err)
		}

		if len(viaUpdate.Items()) != 0 || len(viaRemove.Items()) != 0 {
			t.Fatalf("expected both carts empty, got %d and %d items",
				len(viaUpdate.Items()), len(viaRemove.Items()))
		}
	})

	t.Run("negative quantity removes the item", func(t *testing.T) {
		s := cart.NewStore()
		if err := s.Add(snapshot("seeds-0", 100), 2); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := s.UpdateQuantity("seeds-0", -1); err != nil {
			t.Fatalf("update: %v", err)
		}
		if len(s.Items()) != 0 {
			t.Fatalf("expected empty cart")
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := cart.NewStore()
		if err := s.Add(snapshot("seeds-0", 100), 2); err != nil {
			t.Fatalf("add: %v", err)
		}

		if err := s.UpdateQuantity("nope", 5); err != nil {
			t.Fatalf("update: %v", err)
		}
		if err := s.Remove("nope"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if len(s.Items()) != 1 || s.Items()[0].Quantity != 2 {
			t.Fatalf("cart changed unexpectedly: %+v", s.Items())
		}
	})
}

func TestTotals(t *testing.T) {
	s := cart.NewStore()

	if s.Subtotal() != 0 || s.ItemCount() != 0 {
		t.Fatalf("expected zero totals on empty cart")
	}

	if err := s.Add(snapshot("seeds-0", 100), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(snapshot("tools-1", 250), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := s.Subtotal(); got != 450 {
		t.Fatalf("expected subtotal 450, got %d", got)
	}
	if got := s.ItemCount(); got != 3 {
		t.Fatalf("expected item count 3, got %d", got)
	}

	if err := s.UpdateQuantity("seeds-0", 5); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := s.Subtotal(); got != 750 {
		t.Fatalf("expected subtotal 750 after update, got %d", got)
	}

	if err := s.Remove("tools-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := s.Subtotal(); got != 500 {
		t.Fatalf("expected subtotal 500 after remove, got %d", got)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.Subtotal() != 0 || s.ItemCount() != 0 {
		t.Fatalf("expected zero totals after clear")
	}
}

func TestFreeze(t *testing.T) {
	s := cart.NewStore()
	if err := s.Add(snapshot("seeds-0", 100), 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	s.Freeze()

	if err := s.Add(snapshot("tools-1", 50), 1); !errors.Is(err, cart.ErrLocked) {
		t.Fatalf("expected ErrLocked from Add, got %v", err)
	}
	if err := s.UpdateQuantity("seeds-0", 5); !errors.Is(err, cart.ErrLocked) {
		t.Fatalf("expected ErrLocked from UpdateQuantity, got %v", err)
	}
	if err := s.Clear(); !errors.Is(err, cart.ErrLocked) {
		t.Fatalf("expected ErrLocked from Clear, got %v", err)
	}
	if got := s.Subtotal(); got != 200 {
		t.Fatalf("frozen cart changed: subtotal %d", got)
	}

	s.Unfreeze()
	if err := s.Add(snapshot("tools-1", 50), 1); err != nil {
		t.Fatalf("add after unfreeze: %v", err)
	}
}

func TestDrain(t *testing.T) {
	s := cart.NewStore()
	if err := s.Add(snapshot("seeds-0", 100), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Freeze()

	s.Drain()

	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart after drain")
	}
	// drain must also release the freeze
	if err := s.Add(snapshot("seeds-0", 100), 1); err != nil {
		t.Fatalf("add after drain: %v", err)
	}
}

func TestOnChange(t *testing.T) {
	s := cart.NewStore()

	var got []cart.Totals
	s.OnChange(func(t cart.Totals) { got = append(got, t) })

	if err := s.Add(snapshot("seeds-0", 100), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.UpdateQuantity("seeds-0", 1); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.Remove("seeds-0"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	want := []cart.Totals{
		{Subtotal: 200, ItemCount: 2},
		{Subtotal: 100, ItemCount: 1},
		{Subtotal: 0, ItemCount: 0},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("notification %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
