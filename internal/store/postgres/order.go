package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

type OrderStore struct {
	pool *pgxpool.Pool
}

func (s *OrderStore) Insert(ctx context.Context, o *model.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO orders (id, user_id, items, total_amount, status, delivery_address, order_date, delivery_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.UserID, items, o.TotalAmount, o.Status, o.DeliveryAddress, o.OrderDate, o.DeliveryDate,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", mapErr(err))
	}
	return nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, items, total_amount, status, delivery_address, order_date, delivery_date
		 FROM orders WHERE user_id = $1 ORDER BY order_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	return scanOrders(rows)
}

func (s *OrderStore) ListAll(ctx context.Context) ([]model.Order, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, items, total_amount, status, delivery_address, order_date, delivery_date
		 FROM orders ORDER BY order_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return scanOrders(rows)
}

func (s *OrderStore) Recent(ctx context.Context, n int) ([]model.Order, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, items, total_amount, status, delivery_address, order_date, delivery_date
		 FROM orders ORDER BY order_date DESC LIMIT $1`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	return scanOrders(rows)
}

func (s *OrderStore) UpdateStatus(ctx context.Context, orderID, status string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update order status: %w", store.ErrNotFound)
	}
	return nil
}

func (s *OrderStore) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := s.pool.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (s *OrderStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		var items []byte
		if err := rows.Scan(&o.ID, &o.UserID, &items, &o.TotalAmount, &o.Status, &o.DeliveryAddress, &o.OrderDate, &o.DeliveryDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
