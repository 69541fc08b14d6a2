package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

// CatalogService covers product, category and brand management. Categories
// and brands are referenced by products through their denormalized name;
// deleting one is blocked while any product still uses it. Renames are not
// offered, so names never cascade.
type CatalogService struct {
	products   store.ProductStore
	categories store.CategoryStore
	brands     store.BrandStore
}

func NewCatalogService(products store.ProductStore, categories store.CategoryStore, brands store.BrandStore) *CatalogService {
	return &CatalogService{products: products, categories: categories, brands: brands}
}

func (s *CatalogService) ListProducts(ctx context.Context, f store.ProductFilter) ([]model.Product, error) {
	return s.products.List(ctx, f)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.products.ByID(ctx, id)
}

type ProductParams struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	ImageURL    string
	Stock       int
	Unit        string
}

func (s *CatalogService) CreateProduct(ctx context.Context, p ProductParams) (*model.Product, error) {
	product := &model.Product{
		ID:          uuid.NewString(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Brand:       p.Brand,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Unit:        p.Unit,
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial update. A patch that sets nothing fails
// with ErrInvalidState.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("no fields supplied: %w", ErrInvalidState)
	}

	product, err := s.products.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Brand != nil {
		product.Brand = *patch.Brand
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.Unit != nil {
		product.Unit = *patch.Unit
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name, description, icon string) (*model.Category, error) {
	category := &model.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Icon:        icon,
	}
	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category unless a product still references its name.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categories.ByID(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.products.CountByCategory(ctx, category.Name)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("category %q is referenced by %d products: %w", category.Name, n, store.ErrConflict)
	}

	return s.categories.Delete(ctx, id)
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return s.brands.List(ctx)
}

func (s *CatalogService) CreateBrand(ctx context.Context, name, logo string) (*model.Brand, error) {
	brand := &model.Brand{
		ID:   uuid.NewString(),
		Name: name,
		Logo: logo,
	}
	if err := s.brands.Insert(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *CatalogService) DeleteBrand(ctx context.Context, id string) error {
	brand, err := s.brands.ByID(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.products.CountByBrand(ctx, brand.Name)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("brand %q is referenced by %d products: %w", brand.Name, n, store.ErrConflict)
	}

	return s.brands.Delete(ctx, id)
}
