// Package memory implements the store interfaces on mutex-guarded maps.
// It backs the unit tests and STORE=memory runs; there is no persistence.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

type Stores struct {
	Users      *UserStore
	Products   *ProductStore
	Categories *CategoryStore
	Brands     *BrandStore
	Cart       *CartStore
	Orders     *OrderStore
}

func New() *Stores {
	return &Stores{
		Users:      &UserStore{users: map[string]model.User{}},
		Products:   &ProductStore{products: map[string]model.Product{}},
		Categories: &CategoryStore{categories: map[string]model.Category{}},
		Brands:     &BrandStore{brands: map[string]model.Brand{}},
		Cart:       &CartStore{lines: map[string]map[string]model.CartLine{}},
		Orders:     &OrderStore{orders: map[string]model.Order{}},
	}
}

type UserStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func (s *UserStore) Insert(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return fmt.Errorf("insert user: %w", store.ErrConflict)
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) ByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user by email: %w", store.ErrNotFound)
}

func (s *UserStore) List(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (s *UserStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

type ProductStore struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

func (s *ProductStore) Insert(_ context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = *p
	return nil
}

func (s *ProductStore) ByID(_ context.Context, id string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("get product: %w", store.ErrNotFound)
	}
	return &p, nil
}

func (s *ProductStore) ByName(_ context.Context, name string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Name == name {
			out := p
			return &out, nil
		}
	}
	return nil, fmt.Errorf("get product: %w", store.ErrNotFound)
}

func (s *ProductStore) List(_ context.Context, f store.ProductFilter) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := []model.Product{}
	for _, p := range s.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (s *ProductStore) Update(_ context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; !ok {
		return fmt.Errorf("update product: %w", store.ErrNotFound)
	}
	s.products[p.ID] = *p
	return nil
}

func (s *ProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return fmt.Errorf("delete product: %w", store.ErrNotFound)
	}
	delete(s.products, id)
	return nil
}

func (s *ProductStore) CountByCategory(_ context.Context, category string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, p := range s.products {
		if p.Category == category {
			n++
		}
	}
	return n, nil
}

func (s *ProductStore) CountByBrand(_ context.Context, brand string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, p := range s.products {
		if p.Brand == brand {
			n++
		}
	}
	return n, nil
}

func (s *ProductStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products), nil
}

type CategoryStore struct {
	mu         sync.RWMutex
	categories map[string]model.Category
}

func (s *CategoryStore) Insert(_ context.Context, c *model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.Name == c.Name {
			return fmt.Errorf("insert category: %w", store.ErrConflict)
		}
	}
	s.categories[c.ID] = *c
	return nil
}

func (s *CategoryStore) ByName(_ context.Context, name string) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			out := c
			return &out, nil
		}
	}
	return nil, fmt.Errorf("category by name: %w", store.ErrNotFound)
}

func (s *CategoryStore) ByID(_ context.Context, id string) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, fmt.Errorf("category by id: %w", store.ErrNotFound)
	}
	return &c, nil
}

func (s *CategoryStore) List(_ context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (s *CategoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return fmt.Errorf("delete category: %w", store.ErrNotFound)
	}
	delete(s.categories, id)
	return nil
}

func (s *CategoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.categories), nil
}

type BrandStore struct {
	mu     sync.RWMutex
	brands map[string]model.Brand
}

func (s *BrandStore) Insert(_ context.Context, b *model.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.brands {
		if existing.Name == b.Name {
			return fmt.Errorf("insert brand: %w", store.ErrConflict)
		}
	}
	s.brands[b.ID] = *b
	return nil
}

func (s *BrandStore) ByName(_ context.Context, name string) (*model.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.brands {
		if b.Name == name {
			out := b
			return &out, nil
		}
	}
	return nil, fmt.Errorf("brand by name: %w", store.ErrNotFound)
}

func (s *BrandStore) ByID(_ context.Context, id string) (*model.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.brands[id]
	if !ok {
		return nil, fmt.Errorf("brand by id: %w", store.ErrNotFound)
	}
	return &b, nil
}

func (s *BrandStore) List(_ context.Context) ([]model.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	brands := make([]model.Brand, 0, len(s.brands))
	for _, b := range s.brands {
		brands = append(brands, b)
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].Name < brands[j].Name })
	return brands, nil
}

func (s *BrandStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brands[id]; !ok {
		return fmt.Errorf("delete brand: %w", store.ErrNotFound)
	}
	delete(s.brands, id)
	return nil
}

func (s *BrandStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.brands), nil
}
