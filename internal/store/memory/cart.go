package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

type CartStore struct {
	mu    sync.RWMutex
	lines map[string]map[string]model.CartLine // user id -> product id -> line
}

func (s *CartStore) Line(_ context.Context, userID, productID string) (*model.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	line, ok := s.lines[userID][productID]
	if !ok {
		return nil, fmt.Errorf("cart line: %w", store.ErrNotFound)
	}
	return &line, nil
}

func (s *CartStore) Insert(_ context.Context, line *model.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lines[line.UserID] == nil {
		s.lines[line.UserID] = map[string]model.CartLine{}
	}
	s.lines[line.UserID][line.ProductID] = *line
	return nil
}

func (s *CartStore) SetQuantity(_ context.Context, userID, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	line, ok := s.lines[userID][productID]
	if !ok {
		return fmt.Errorf("set cart quantity: %w", store.ErrNotFound)
	}
	line.Quantity = quantity
	s.lines[userID][productID] = line
	return nil
}

func (s *CartStore) ListByUser(_ context.Context, userID string) ([]model.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := []model.CartLine{}
	for _, line := range s.lines[userID] {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].AddedAt.After(lines[j].AddedAt) })
	return lines, nil
}

func (s *CartStore) Delete(_ context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lines[userID], productID)
	return nil
}

func (s *CartStore) ClearUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lines, userID)
	return nil
}

type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]model.Order
}

func (s *OrderStore) Insert(_ context.Context, o *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; ok {
		return fmt.Errorf("insert order: %w", store.ErrConflict)
	}
	s.orders[o.ID] = *o
	return nil
}

func (s *OrderStore) ListByUser(_ context.Context, userID string) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := []model.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sortByDateDesc(orders)
	return orders, nil
}

func (s *OrderStore) ListAll(_ context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sortByDateDesc(orders)
	return orders, nil
}

func (s *OrderStore) Recent(ctx context.Context, n int) ([]model.Order, error) {
	orders, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) > n {
		orders = orders[:n]
	}
	return orders, nil
}

func (s *OrderStore) UpdateStatus(_ context.Context, orderID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return fmt.Errorf("update order status: %w", store.ErrNotFound)
	}
	o.Status = status
	s.orders[orderID] = o
	return nil
}

func (s *OrderStore) CountByStatus(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := map[string]int{}
	for _, o := range s.orders {
		counts[o.Status]++
	}
	return counts, nil
}

func (s *OrderStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders), nil
}

func sortByDateDesc(orders []model.Order) {
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderDate.After(orders[j].OrderDate) })
}
