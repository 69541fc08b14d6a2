package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

type CartService struct {
	cart     store.CartStore
	products store.ProductStore
}

func NewCartService(cart store.CartStore, products store.ProductStore) *CartService {
	return &CartService{cart: cart, products: products}
}

// AddLine puts quantity units of a product into the user's cart. If the
// product is already there the quantities merge into the existing line.
func (s *CartService) AddLine(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1: %w", ErrInvalidState)
	}

	if _, err := s.products.ByID(ctx, productID); err != nil {
		return err
	}

	line, err := s.cart.Line(ctx, userID, productID)
	switch {
	case err == nil:
		return s.cart.SetQuantity(ctx, userID, productID, line.Quantity+quantity)
	case errors.Is(err, store.ErrNotFound):
		return s.cart.Insert(ctx, &model.CartLine{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		})
	default:
		return err
	}
}

// ListItems returns the user's cart joined with each product as the catalog
// has it right now. Lines whose product has since been deleted keep a nil
// product rather than failing the listing.
func (s *CartService) ListItems(ctx context.Context, userID string) ([]model.CartItem, error) {
	lines, err := s.cart.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]model.CartItem, 0, len(lines))
	for _, line := range lines {
		item := model.CartItem{CartLine: line}
		product, err := s.products.ByID(ctx, line.ProductID)
		switch {
		case err == nil:
			item.Product = product
		case errors.Is(err, store.ErrNotFound):
			// stale line, carried without a product
		default:
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// RemoveLine deletes a line. Removing an absent line is a no-op.
func (s *CartService) RemoveLine(ctx context.Context, userID, productID string) error {
	return s.cart.Delete(ctx, userID, productID)
}
