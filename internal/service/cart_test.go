package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/service"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

func TestAddLineMergesQuantities(t *testing.T) {
	m, cart, _ := newCheckoutFixture(t)
	ctx := context.Background()
	p := addProduct(t, m, "Bread", 55.0)

	require.NoError(t, cart.AddLine(ctx, "u1", p.ID, 2))
	require.NoError(t, cart.AddLine(ctx, "u1", p.ID, 3))

	items, err := cart.ListItems(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1, "adding the same product twice must not create a second line")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddLineUnknownProduct(t *testing.T) {
	_, cart, _ := newCheckoutFixture(t)

	err := cart.AddLine(context.Background(), "u1", "missing", 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddLineRejectsZeroQuantity(t *testing.T) {
	m, cart, _ := newCheckoutFixture(t)
	p := addProduct(t, m, "Bread", 55.0)

	err := cart.AddLine(context.Background(), "u1", p.ID, 0)
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestListItemsReflectsLiveCatalog(t *testing.T) {
	m, cart, _ := newCheckoutFixture(t)
	ctx := context.Background()
	p := addProduct(t, m, "Bread", 55.0)
	require.NoError(t, cart.AddLine(ctx, "u1", p.ID, 1))

	// a later price edit shows up when the cart is browsed
	p.Price = 60.0
	require.NoError(t, m.Products.Update(ctx, p))

	items, err := cart.ListItems(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, 60.0, items[0].Product.Price)
}

func TestListItemsCarriesStaleLines(t *testing.T) {
	m, cart, _ := newCheckoutFixture(t)
	ctx := context.Background()
	p := addProduct(t, m, "Bread", 55.0)
	require.NoError(t, cart.AddLine(ctx, "u1", p.ID, 1))
	require.NoError(t, m.Products.Delete(ctx, p.ID))

	items, err := cart.ListItems(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Product)
}

func TestRemoveLineIdempotent(t *testing.T) {
	m, cart, _ := newCheckoutFixture(t)
	ctx := context.Background()
	p := addProduct(t, m, "Bread", 55.0)
	require.NoError(t, cart.AddLine(ctx, "u1", p.ID, 1))

	require.NoError(t, cart.RemoveLine(ctx, "u1", p.ID))
	// removing again is not an error
	require.NoError(t, cart.RemoveLine(ctx, "u1", p.ID))

	items, err := cart.ListItems(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartsAreScopedPerUser(t *testing.T) {
	m, cart, _ := newCheckoutFixture(t)
	ctx := context.Background()
	p := addProduct(t, m, "Bread", 55.0)

	require.NoError(t, cart.AddLine(ctx, "u1", p.ID, 2))
	require.NoError(t, cart.AddLine(ctx, "u2", p.ID, 7))

	items, err := cart.ListItems(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}
