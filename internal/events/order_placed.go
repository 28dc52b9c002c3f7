package events

import (
	"time"

	"github.com/kalyanram2201/KrishiSathi/internal/order"
)

// OrderPlaced is the contract consumed by the downstream order service.
type OrderPlaced struct {
	EventType    string           `json:"eventType"`
	OrderID      string           `json:"orderId"`
	CustomerName string           `json:"customerName"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address"`
	Items        []OrderItemEvent `json:"items"`
	Subtotal     int64            `json:"subtotal"`
	ShippingCost int64            `json:"shippingCost"`
	TotalAmount  int64            `json:"totalAmount"`
	Timestamp    time.Time        `json:"timestamp"`
}

type OrderItemEvent struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// NewOrderPlaced maps a placed order onto the event contract.
func NewOrderPlaced(o *order.Order) OrderPlaced {
	ev := OrderPlaced{
		EventType:    "OrderPlaced",
		OrderID:      o.ID,
		CustomerName: o.Contact.Name,
		Phone:        o.Contact.Phone,
		Address:      o.Contact.Address,
		Subtotal:     o.Subtotal,
		ShippingCost: o.ShippingCost,
		TotalAmount:  o.GrandTotal,
		Timestamp:    o.PlacedAt,
	}
	for _, it := range o.Items {
		ev.Items = append(ev.Items, OrderItemEvent{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return ev
}
