package service

import (
	"context"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

const recentOrderCount = 5

type Dashboard struct {
	TotalUsers      int            `json:"total_users"`
	TotalProducts   int            `json:"total_products"`
	TotalCategories int            `json:"total_categories"`
	TotalBrands     int            `json:"total_brands"`
	TotalOrders     int            `json:"total_orders"`
	RecentOrders    []model.Order  `json:"recent_orders"`
	OrdersByStatus  map[string]int `json:"orders_by_status"`
}

// AdminService aggregates the dashboard counters.
type AdminService struct {
	users      store.UserStore
	products   store.ProductStore
	categories store.CategoryStore
	brands     store.BrandStore
	orders     store.OrderStore
}

func NewAdminService(users store.UserStore, products store.ProductStore, categories store.CategoryStore, brands store.BrandStore, orders store.OrderStore) *AdminService {
	return &AdminService{users: users, products: products, categories: categories, brands: brands, orders: orders}
}

func (s *AdminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}
	var err error

	if d.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if d.TotalProducts, err = s.products.Count(ctx); err != nil {
		return nil, err
	}
	if d.TotalCategories, err = s.categories.Count(ctx); err != nil {
		return nil, err
	}
	if d.TotalBrands, err = s.brands.Count(ctx); err != nil {
		return nil, err
	}
	if d.TotalOrders, err = s.orders.Count(ctx); err != nil {
		return nil, err
	}
	if d.RecentOrders, err = s.orders.Recent(ctx, recentOrderCount); err != nil {
		return nil, err
	}
	if d.OrdersByStatus, err = s.orders.CountByStatus(ctx); err != nil {
		return nil, err
	}
	return d, nil
}
