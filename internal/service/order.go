package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

// OrderService owns the cart-to-order transition and order reads. The
// checkout sequence is read cart, price against the live catalog, persist the
// order, then clear the cart. It is not transactionally isolated; the one
// hard ordering rule is that the cart is never cleared before the order is
// durably written.
type OrderService struct {
	orders   store.OrderStore
	cart     store.CartStore
	products store.ProductStore
}

func NewOrderService(orders store.OrderStore, cart store.CartStore, products store.ProductStore) *OrderService {
	return &OrderService{orders: orders, cart: cart, products: products}
}

// CreateOrder checks out the user's cart to deliveryAddress and returns the
// new order's id and total. An empty cart fails with ErrInvalidState. Lines
// whose product has been deleted since being added are skipped, not errors.
// If the order insert fails the cart is left untouched; if the clear fails
// after a successful insert, the error is returned with the order kept.
func (s *OrderService) CreateOrder(ctx context.Context, userID, deliveryAddress string) (string, float64, error) {
	lines, err := s.cart.ListByUser(ctx, userID)
	if err != nil {
		return "", 0, err
	}
	if len(lines) == 0 {
		return "", 0, fmt.Errorf("cart is empty: %w", ErrInvalidState)
	}

	var totalAmount float64
	items := []model.LineSnapshot{}
	for _, line := range lines {
		product, err := s.products.ByID(ctx, line.ProductID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return "", 0, err
		}

		lineTotal := product.Price * float64(line.Quantity)
		totalAmount += lineTotal
		items = append(items, model.LineSnapshot{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Price:       product.Price,
			Total:       lineTotal,
		})
	}

	order := &model.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     totalAmount,
		Status:          model.OrderStatusPending,
		DeliveryAddress: deliveryAddress,
		OrderDate:       time.Now().UTC(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return "", 0, fmt.Errorf("failed to create order: %v", err)
	}

	// The order exists from here on. A failed clear leaves stale cart
	// lines behind; surface it so the caller knows, but keep the order.
	if err := s.cart.ClearUser(ctx, userID); err != nil {
		return "", 0, fmt.Errorf("order %s created but cart not cleared: %v", order.ID, err)
	}

	return order.ID, totalAmount, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orders.ListAll(ctx)
}

// UpdateStatus sets a new status string on an order. Status values are not
// enumerated; any string the admin sends is stored as-is.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	return s.orders.UpdateStatus(ctx, orderID, status)
}
