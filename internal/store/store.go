package store

import (
	"context"
	"errors"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
)

var (
	// ErrNotFound means the id or name did not resolve to a record.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a unique field collided, or a delete is blocked by
	// a record that still references the target.
	ErrConflict = errors.New("conflict")
)

// ProductFilter narrows a product listing. Empty fields match everything;
// set fields are exact-match and AND-combined.
type ProductFilter struct {
	Category string
	Brand    string
}

type UserStore interface {
	Insert(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int, error)
}

type ProductStore interface {
	Insert(ctx context.Context, p *model.Product) error
	ByID(ctx context.Context, id string) (*model.Product, error)
	ByName(ctx context.Context, name string) (*model.Product, error)
	List(ctx context.Context, f ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, category string) (int, error)
	CountByBrand(ctx context.Context, brand string) (int, error)
	Count(ctx context.Context) (int, error)
}

type CategoryStore interface {
	Insert(ctx context.Context, c *model.Category) error
	ByName(ctx context.Context, name string) (*model.Category, error)
	ByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type BrandStore interface {
	Insert(ctx context.Context, b *model.Brand) error
	ByName(ctx context.Context, name string) (*model.Brand, error)
	ByID(ctx context.Context, id string) (*model.Brand, error)
	List(ctx context.Context) ([]model.Brand, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type CartStore interface {
	// Line returns the line for (userID, productID), or ErrNotFound.
	Line(ctx context.Context, userID, productID string) (*model.CartLine, error)
	Insert(ctx context.Context, line *model.CartLine) error
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error
	ListByUser(ctx context.Context, userID string) ([]model.CartLine, error)
	// Delete is idempotent: removing an absent line is not an error.
	Delete(ctx context.Context, userID, productID string) error
	// ClearUser removes every line the user has.
	ClearUser(ctx context.Context, userID string) error
}

type OrderStore interface {
	Insert(ctx context.Context, o *model.Order) error
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	Recent(ctx context.Context, n int) ([]model.Order, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	Count(ctx context.Context) (int, error)
}
