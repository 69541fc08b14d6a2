package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

type CategoryStore struct {
	pool *pgxpool.Pool
}

func (s *CategoryStore) Insert(ctx context.Context, c *model.Category) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO categories (id, name, description, icon) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Description, c.Icon,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", mapErr(err))
	}
	return nil
}

func (s *CategoryStore) ByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, description, icon FROM categories WHERE name = $1`, name,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Icon)
	if err != nil {
		return nil, fmt.Errorf("category by name: %w", mapErr(err))
	}
	return &c, nil
}

func (s *CategoryStore) ByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, description, icon FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Icon)
	if err != nil {
		return nil, fmt.Errorf("category by id: %w", mapErr(err))
	}
	return &c, nil
}

func (s *CategoryStore) List(ctx context.Context) ([]model.Category, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, description, icon FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete category: %w", store.ErrNotFound)
	}
	return nil
}

func (s *CategoryStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

type BrandStore struct {
	pool *pgxpool.Pool
}

func (s *BrandStore) Insert(ctx context.Context, b *model.Brand) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO brands (id, name, logo) VALUES ($1, $2, $3)`,
		b.ID, b.Name, b.Logo,
	)
	if err != nil {
		return fmt.Errorf("insert brand: %w", mapErr(err))
	}
	return nil
}

func (s *BrandStore) ByName(ctx context.Context, name string) (*model.Brand, error) {
	var b model.Brand
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, logo FROM brands WHERE name = $1`, name,
	).Scan(&b.ID, &b.Name, &b.Logo)
	if err != nil {
		return nil, fmt.Errorf("brand by name: %w", mapErr(err))
	}
	return &b, nil
}

func (s *BrandStore) ByID(ctx context.Context, id string) (*model.Brand, error) {
	var b model.Brand
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, logo FROM brands WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.Logo)
	if err != nil {
		return nil, fmt.Errorf("brand by id: %w", mapErr(err))
	}
	return &b, nil
}

func (s *BrandStore) List(ctx context.Context) ([]model.Brand, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, logo FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	brands := []model.Brand{}
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Logo); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (s *BrandStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete brand: %w", store.ErrNotFound)
	}
	return nil
}

func (s *BrandStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM brands`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count brands: %w", err)
	}
	return n, nil
}
