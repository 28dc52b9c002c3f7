package catalog

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/kalyanram2201/KrishiSathi/internal/cart"
)

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"originalPrice"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Discount      int      `json:"discount"`
	InStock       bool     `json:"inStock"`
	Description   string   `json:"description"`
}

var productNames = map[string][]string{
	"seeds":       {"Hybrid Tomato Seeds", "Organic Wheat Seeds", "Corn Seeds Premium", "Cucumber Seeds", "Carrot Seeds"},
	"fertilizers": {"NPK Fertilizer 20-20-20", "Organic Compost", "Phosphate Fertilizer", "Potash Fertilizer", "Bio Fertilizer"},
	"tools":       {"Hand Cultivator", "Pruning Shears", "Garden Spade", "Watering Can", "Garden Hoe"},
	"pesticides":  {"Organic Neem Oil", "Fungicide Spray", "Insecticide 500ml", "Weed Killer", "Plant Protection"},
	"equipment":   {"Irrigation Pump", "Sprayer Machine", "Soil pH Meter", "Greenhouse Kit", "Drip Irrigation Set"},
}

var categories = []string{"seeds", "fertilizers", "tools", "pesticides", "equipment"}

var brands = []string{"AgriGold", "KisanCare", "GreenHarvest", "BharatAgro", "FarmRich"}

// Catalog is the read-only product list the marketplace renders and the
// cart copies snapshots from. The list is generated deterministically so
// ids and prices are stable across restarts.
type Catalog struct {
	products []Product
	index    map[string]int
}

func New() *Catalog {
	rnd := rand.New(rand.NewSource(2201))
	c := &Catalog{index: make(map[string]int)}

	for _, category := range categories {
		for i, name := range productNames[category] {
			originalPrice := int64(rnd.Intn(1951) + 50) // 50..2000
			discount := rnd.Intn(36) + 5                // 5..40
			price := originalPrice * int64(100-discount) / 100
			slug := strings.ReplaceAll(name, " ", "+")

			p := Product{
				ID:            fmt.Sprintf("%s-%d", category, i),
				Name:          name,
				Price:         price,
				OriginalPrice: originalPrice,
				Rating:        float64(rnd.Intn(16)+35) / 10, // 3.5..5.0
				Reviews:       rnd.Intn(491) + 10,
				Images: []string{
					fmt.Sprintf("https://placehold.co/600x600/e0e0e0/333?text=%s", slug),
					fmt.Sprintf("https://placehold.co/600x600/f0f0f0/555?text=%s+View+2", slug),
				},
				Category:    category,
				Brand:       brands[rnd.Intn(len(brands))],
				Discount:    discount,
				InStock:     rnd.Intn(10) > 0,
				Description: fmt.Sprintf("%s for Indian farm conditions, quality checked and ready to ship.", name),
			}
			c.index[p.ID] = len(c.products)
			c.products = append(c.products, p)
		}
	}
	return c
}

func (c *Catalog) Lookup(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ListByCategory(category string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Snapshot converts a product into the slice of fields the cart stores.
func (c *Catalog) Snapshot(id string) (cart.ProductSnapshot, bool) {
	p, ok := c.Lookup(id)
	if !ok {
		return cart.ProductSnapshot{}, false
	}
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return cart.ProductSnapshot{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Image:     image,
		UnitPrice: p.Price,
	}, true
}
