// Package postgres implements the store interfaces on PostgreSQL via pgx.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

const uniqueViolation = "23505"

type Stores struct {
	Users      *UserStore
	Products   *ProductStore
	Categories *CategoryStore
	Brands     *BrandStore
	Cart       *CartStore
	Orders     *OrderStore
}

func New(pool *pgxpool.Pool) *Stores {
	return &Stores{
		Users:      &UserStore{pool: pool},
		Products:   &ProductStore{pool: pool},
		Categories: &CategoryStore{pool: pool},
		Brands:     &BrandStore{pool: pool},
		Cart:       &CartStore{pool: pool},
		Orders:     &OrderStore{pool: pool},
	}
}

// mapErr translates pgx-level failures into the store taxonomy.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return store.ErrConflict
	}
	return err
}
