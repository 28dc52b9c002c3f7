package cart

// ProductSnapshot is the slice of catalog data the cart copies at add time.
// Later catalog changes do not propagate into existing line items.
type ProductSnapshot struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Image     string `json:"image"`
	UnitPrice int64  `json:"unitPrice"`
}

type LineItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Image     string `json:"image"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// Totals carries the derived values handed to change listeners.
type Totals struct {
	Subtotal  int64 `json:"subtotal"`
	ItemCount int   `json:"itemCount"`
}
