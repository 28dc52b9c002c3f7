package order

import "time"

type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID           string    `json:"orderId"`
	Contact      Contact   `json:"contact"`
	Items        []Item    `json:"items"`
	Subtotal     int64     `json:"subtotal"`
	ShippingCost int64     `json:"shippingCost"`
	GrandTotal   int64     `json:"grandTotal"`
	PlacedAt     time.Time `json:"placedAt"`
}
