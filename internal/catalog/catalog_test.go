package catalog_test

import (
	"testing"

	"github.com/kalyanram2201/KrishiSathi/internal/catalog"
)

func TestCatalog(t *testing.T) {
	c := catalog.New()

	t.Run("generates full product list", func(t *testing.T) {
		products := c.List()
		if len(products) != 25 {
			t.Fatalf("expected 25 products, got %d", len(products))
		}
		for _, p := range products {
			if p.Price <= 0 || p.Price > p.OriginalPrice {
				t.Fatalf("product %s has inconsistent pricing: %d / %d", p.ID, p.Price, p.OriginalPrice)
			}
			if p.Discount < 5 || p.Discount > 40 {
				t.Fatalf("product %s discount out of range: %d", p.ID, p.Discount)
			}
		}
	})

	t.Run("stable across constructions", func(t *testing.T) {
		other := catalog.New()
		a, _ := c.Lookup("seeds-0")
		b, _ := other.Lookup("seeds-0")
		if a.Price != b.Price || a.Name != b.Name {
			t.Fatalf("catalog is not deterministic: %+v vs %+v", a, b)
		}
	})

	t.Run("lookup", func(t *testing.T) {
		p, ok := c.Lookup("seeds-0")
		if !ok {
			t.Fatalf("expected seeds-0 to exist")
		}
		if p.Name != "Hybrid Tomato Seeds" || p.Category != "seeds" {
			t.Fatalf("unexpected product: %+v", p)
		}

		if _, ok := c.Lookup("does-not-exist"); ok {
			t.Fatalf("expected miss for unknown id")
		}
	})

	t.Run("list by category", func(t *testing.T) {
		tools := c.ListByCategory("tools")
		if len(tools) != 5 {
			t.Fatalf("expected 5 tools, got %d", len(tools))
		}
		for _, p := range tools {
			if p.Category != "tools" {
				t.Fatalf("wrong category in filter: %+v", p)
			}
		}
	})

	t.Run("snapshot copies cart fields", func(t *testing.T) {
		snap, ok := c.Snapshot("seeds-0")
		if !ok {
			t.Fatalf("expected snapshot for seeds-0")
		}
		p, _ := c.Lookup("seeds-0")
		if snap.UnitPrice != p.Price || snap.Name != p.Name || snap.Category != p.Category {
			t.Fatalf("snapshot mismatch: %+v vs %+v", snap, p)
		}
		if snap.Image == "" {
			t.Fatalf("expected snapshot image")
		}

		if _, ok := c.Snapshot("nope"); ok {
			t.Fatalf("expected miss for unknown id")
		}
	})
}
