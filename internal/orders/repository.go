package orders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kalyanram2201/KrishiSathi/internal/order"
)

// Repository is the order archive: a read model of successfully placed
// orders. The cart itself is never persisted.
type Repository interface {
	Create(ctx context.Context, o *order.Order) error
	ListRecent(ctx context.Context, limit int) ([]order.Order, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, o *order.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertOrder = `
INSERT INTO orders (id, customer_name, phone, address, subtotal, shipping_cost, grand_total, placed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	if _, err = tx.ExecContext(ctx, insertOrder,
		o.ID, o.Contact.Name, o.Contact.Phone, o.Contact.Address,
		o.Subtotal, o.ShippingCost, o.GrandTotal, o.PlacedAt,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	const insertItem = `
INSERT INTO order_items (id, order_id, product_id, name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5, $6)
`
	for _, it := range o.Items {
		if _, err = tx.ExecContext(ctx, insertItem,
			uuid.NewString(), o.ID, it.ProductID, it.Name, it.UnitPrice, it.Quantity,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	err = tx.Commit()
	return err
}

func (r *repo) ListRecent(ctx context.Context, limit int) ([]order.Order, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, customer_name, phone, address, subtotal, shipping_cost, grand_total, placed_at
FROM orders ORDER BY placed_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.Contact.Name, &o.Contact.Phone, &o.Contact.Address,
			&o.Subtotal, &o.ShippingCost, &o.GrandTotal, &o.PlacedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.listItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *repo) listItems(ctx context.Context, orderID string) ([]order.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, name, unit_price, quantity FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var it order.Item
		if err := rows.Scan(&it.ProductID, &it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
