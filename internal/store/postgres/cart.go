package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
)

type CartStore struct {
	pool *pgxpool.Pool
}

func (s *CartStore) Line(ctx context.Context, userID, productID string) (*model.CartLine, error) {
	var line model.CartLine
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, product_id, quantity, added_at FROM cart_lines
		 WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	).Scan(&line.UserID, &line.ProductID, &line.Quantity, &line.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("cart line: %w", mapErr(err))
	}
	return &line, nil
}

func (s *CartStore) Insert(ctx context.Context, line *model.CartLine) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO cart_lines (user_id, product_id, quantity, added_at) VALUES ($1, $2, $3, $4)`,
		line.UserID, line.ProductID, line.Quantity, line.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart line: %w", mapErr(err))
	}
	return nil
}

func (s *CartStore) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE cart_lines SET quantity = $1 WHERE user_id = $2 AND product_id = $3`,
		quantity, userID, productID,
	)
	if err != nil {
		return fmt.Errorf("set cart quantity: %w", err)
	}
	return nil
}

func (s *CartStore) ListByUser(ctx context.Context, userID string) ([]model.CartLine, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT user_id, product_id, quantity, added_at FROM cart_lines
		 WHERE user_id = $1 ORDER BY added_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	defer rows.Close()

	lines := []model.CartLine{}
	for rows.Next() {
		var line model.CartLine
		if err := rows.Scan(&line.UserID, &line.ProductID, &line.Quantity, &line.AddedAt); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *CartStore) Delete(ctx context.Context, userID, productID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM cart_lines WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	)
	if err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

func (s *CartStore) ClearUser(ctx context.Context, userID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM cart_lines WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
