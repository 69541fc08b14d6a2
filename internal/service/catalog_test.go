package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/service"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store/memory"
)

func newCatalogFixture(t *testing.T) (*memory.Stores, *service.CatalogService) {
	t.Helper()
	m := memory.New()
	return m, service.NewCatalogService(m.Products, m.Categories, m.Brands)
}

func TestProductFilter(t *testing.T) {
	_, catalog := newCatalogFixture(t)
	ctx := context.Background()

	mk := func(name, category, brand string) {
		_, err := catalog.CreateProduct(ctx, service.ProductParams{
			Name: name, Price: 10, Category: category, Brand: brand,
		})
		require.NoError(t, err)
	}
	mk("Cream", "Dairy", "Farm King")
	mk("Cheese", "Dairy", "Amul")
	mk("Soy Sauce", "Sauces & Condiments", "Ching's Secret")

	all, err := catalog.ListProducts(ctx, store.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	dairy, err := catalog.ListProducts(ctx, store.ProductFilter{Category: "Dairy"})
	require.NoError(t, err)
	assert.Len(t, dairy, 2)

	// both filters AND-combine
	dairyAmul, err := catalog.ListProducts(ctx, store.ProductFilter{Category: "Dairy", Brand: "Amul"})
	require.NoError(t, err)
	require.Len(t, dairyAmul, 1)
	assert.Equal(t, "Cheese", dairyAmul[0].Name)

	// no matches is an empty list, not an error
	none, err := catalog.ListProducts(ctx, store.ProductFilter{Category: "Frozen Foods"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetProductNotFound(t *testing.T) {
	_, catalog := newCatalogFixture(t)

	_, err := catalog.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateProductPatch(t *testing.T) {
	_, catalog := newCatalogFixture(t)
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, service.ProductParams{
		Name: "Butter", Price: 180, Category: "Dairy", Brand: "Nutralite", Stock: 40,
	})
	require.NoError(t, err)

	price := 200.0
	updated, err := catalog.UpdateProduct(ctx, created.ID, model.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.Price)
	// untouched fields stay
	assert.Equal(t, "Butter", updated.Name)
	assert.Equal(t, 40, updated.Stock)
}

func TestUpdateProductEmptyPatch(t *testing.T) {
	_, catalog := newCatalogFixture(t)
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, service.ProductParams{
		Name: "Butter", Price: 180, Category: "Dairy", Brand: "Nutralite",
	})
	require.NoError(t, err)

	_, err = catalog.UpdateProduct(ctx, created.ID, model.ProductPatch{})
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestCategoryNameConflict(t *testing.T) {
	_, catalog := newCatalogFixture(t)
	ctx := context.Background()

	_, err := catalog.CreateCategory(ctx, "Dairy", "Fresh dairy products", "")
	require.NoError(t, err)

	_, err = catalog.CreateCategory(ctx, "Dairy", "again", "")
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	_, catalog := newCatalogFixture(t)
	ctx := context.Background()

	dairy, err := catalog.CreateCategory(ctx, "Dairy", "", "")
	require.NoError(t, err)

	_, err = catalog.CreateProduct(ctx, service.ProductParams{
		Name: "Cream", Price: 150, Category: "Dairy", Brand: "Farm King",
	})
	require.NoError(t, err)

	err = catalog.DeleteCategory(ctx, dairy.ID)
	assert.ErrorIs(t, err, store.ErrConflict)

	// unreferenced categories delete fine
	frozen, err := catalog.CreateCategory(ctx, "Frozen Foods", "", "")
	require.NoError(t, err)
	require.NoError(t, catalog.DeleteCategory(ctx, frozen.ID))

	categories, err := catalog.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Dairy", categories[0].Name)
}

func TestDeleteBrandBlockedWhileReferenced(t *testing.T) {
	_, catalog := newCatalogFixture(t)
	ctx := context.Background()

	brand, err := catalog.CreateBrand(ctx, "Farm King", "")
	require.NoError(t, err)

	_, err = catalog.CreateProduct(ctx, service.ProductParams{
		Name: "Cream", Price: 150, Category: "Dairy", Brand: "Farm King",
	})
	require.NoError(t, err)

	err = catalog.DeleteBrand(ctx, brand.ID)
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	_, catalog := newCatalogFixture(t)

	err := catalog.DeleteCategory(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
