package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

const productColumns = `id, name, description, price, category, brand, image_url, stock, unit`

type ProductStore struct {
	pool *pgxpool.Pool
}

func (s *ProductStore) Insert(ctx context.Context, p *model.Product) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO products (id, name, description, price, category, brand, image_url, stock, unit)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Brand, p.ImageURL, p.Stock, p.Unit,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", mapErr(err))
	}
	return nil
}

func (s *ProductStore) ByID(ctx context.Context, id string) (*model.Product, error) {
	return s.one(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

func (s *ProductStore) ByName(ctx context.Context, name string) (*model.Product, error) {
	return s.one(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1`, name)
}

func (s *ProductStore) one(ctx context.Context, query string, arg any) (*model.Product, error) {
	var p model.Product
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Brand, &p.ImageURL, &p.Stock, &p.Unit,
	)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", mapErr(err))
	}
	return &p, nil
}

func (s *ProductStore) List(ctx context.Context, f store.ProductFilter) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Brand != "" {
		args = append(args, f.Brand)
		query += fmt.Sprintf(" AND brand = $%d", len(args))
	}
	query += " ORDER BY name"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Brand, &p.ImageURL, &p.Stock, &p.Unit); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *ProductStore) Update(ctx context.Context, p *model.Product) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE products SET name = $1, description = $2, price = $3, category = $4,
		 brand = $5, image_url = $6, stock = $7, unit = $8 WHERE id = $9`,
		p.Name, p.Description, p.Price, p.Category, p.Brand, p.ImageURL, p.Stock, p.Unit, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", mapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update product: %w", store.ErrNotFound)
	}
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete product: %w", store.ErrNotFound)
	}
	return nil
}

func (s *ProductStore) CountByCategory(ctx context.Context, category string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category = $1`, category).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}

func (s *ProductStore) CountByBrand(ctx context.Context, brand string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE brand = $1`, brand).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by brand: %w", err)
	}
	return n, nil
}

func (s *ProductStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
