package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/service"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store/memory"
)

func newCheckoutFixture(t *testing.T) (*memory.Stores, *service.CartService, *service.OrderService) {
	t.Helper()
	m := memory.New()
	cart := service.NewCartService(m.Cart, m.Products)
	orders := service.NewOrderService(m.Orders, m.Cart, m.Products)
	return m, cart, orders
}

func addProduct(t *testing.T, m *memory.Stores, name string, price float64) *model.Product {
	t.Helper()
	p := &model.Product{ID: name + "-id", Name: name, Price: price, Category: "Dairy", Brand: "Farm King"}
	require.NoError(t, m.Products.Insert(context.Background(), p))
	return p
}

func TestCreateOrderEmptyCart(t *testing.T) {
	_, _, orders := newCheckoutFixture(t)

	_, _, err := orders.CreateOrder(context.Background(), "u1", "12 Main St")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestCreateOrderSingleLine(t *testing.T) {
	m, cart, orders := newCheckoutFixture(t)
	ctx := context.Background()
	p := addProduct(t, m, "Whole Wheat Bread", 55.0)

	require.NoError(t, cart.AddLine(ctx, "u1", p.ID, 2))

	orderID, total, err := orders.CreateOrder(ctx, "u1", "12 Main St")
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)
	assert.Equal(t, 110.0, total)

	placed, err := orders.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, placed, 1)

	o := placed[0]
	assert.Equal(t, orderID, o.ID)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	assert.Equal(t, "12 Main St", o.DeliveryAddress)
	assert.Nil(t, o.DeliveryDate)
	require.Len(t, o.Items, 1)
	assert.Equal(t, p.ID, o.Items[0].ProductID)
	assert.Equal(t, "Whole Wheat Bread", o.Items[0].ProductName)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, 55.0, o.Items[0].Price)
	assert.Equal(t, 110.0, o.Items[0].Total)

	// cart must be empty after a successful checkout
	items, err := cart.ListItems(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateOrderTotalMatchesLineSum(t *testing.T) {
	m, cart, orders := newCheckoutFixture(t)
	ctx := context.Background()
	bread := addProduct(t, m, "Bread", 55.0)
	cheese := addProduct(t, m, "Cheese", 280.0)

	require.NoError(t, cart.AddLine(ctx, "u1", bread.ID, 3))
	require.NoError(t, cart.AddLine(ctx, "u1", cheese.ID, 1))

	_, total, err := orders.CreateOrder(ctx, "u1", "addr")
	require.NoError(t, err)

	placed, err := orders.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, placed, 1)

	var lineSum float64
	for _, item := range placed[0].Items {
		assert.Equal(t, item.Price*float64(item.Quantity), item.Total)
		lineSum += item.Total
	}
	assert.Equal(t, lineSum, total)
	assert.Equal(t, lineSum, placed[0].TotalAmount)
}

func TestCreateOrderSkipsDeletedProducts(t *testing.T) {
	m, cart, orders := newCheckoutFixture(t)
	ctx := context.Background()
	bread := addProduct(t, m, "Bread", 55.0)
	ghost := addProduct(t, m, "Ghost", 999.0)

	require.NoError(t, cart.AddLine(ctx, "u1", bread.ID, 2))
	require.NoError(t, cart.AddLine(ctx, "u1", ghost.ID, 1))

	// product deleted after it was added to the cart
	require.NoError(t, m.Products.Delete(ctx, ghost.ID))

	_, total, err := orders.CreateOrder(ctx, "u1", "addr")
	require.NoError(t, err)
	assert.Equal(t, 110.0, total)

	placed, err := orders.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, placed, 1)
	require.Len(t, placed[0].Items, 1)
	assert.Equal(t, bread.ID, placed[0].Items[0].ProductID)

	// the stale line is cleared along with the rest of the cart
	items, err := cart.ListItems(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

type failingOrderStore struct {
	store.OrderStore
	insertErr error
}

func (s *failingOrderStore) Insert(ctx context.Context, o *model.Order) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	return s.OrderStore.Insert(ctx, o)
}

type failingCartStore struct {
	store.CartStore
	clearErr error
}

func (s *failingCartStore) ClearUser(ctx context.Context, userID string) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	return s.CartStore.ClearUser(ctx, userID)
}

func TestCreateOrderInsertFailureLeavesCart(t *testing.T) {
	m, cart, _ := newCheckoutFixture(t)
	ctx := context.Background()
	p := addProduct(t, m, "Bread", 55.0)
	require.NoError(t, cart.AddLine(ctx, "u1", p.ID, 2))

	broken := &failingOrderStore{OrderStore: m.Orders, insertErr: errors.New("write failed")}
	orders := service.NewOrderService(broken, m.Cart, m.Products)

	_, _, err := orders.CreateOrder(ctx, "u1", "addr")
	require.Error(t, err)

	// no cart clearing without a durably created order
	items, err := cart.ListItems(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCreateOrderClearFailureKeepsOrder(t *testing.T) {
	m, cart, _ := newCheckoutFixture(t)
	ctx := context.Background()
	p := addProduct(t, m, "Bread", 55.0)
	require.NoError(t, cart.AddLine(ctx, "u1", p.ID, 1))

	broken := &failingCartStore{CartStore: m.Cart, clearErr: errors.New("clear failed")}
	orders := service.NewOrderService(m.Orders, broken, m.Products)

	_, _, err := orders.CreateOrder(ctx, "u1", "addr")
	require.Error(t, err)

	// the order was written before the clear was attempted; it stays
	placed, listErr := orders.ListByUser(ctx, "u1")
	require.NoError(t, listErr)
	assert.Len(t, placed, 1)
}

func TestUpdateStatus(t *testing.T) {
	m, cart, orders := newCheckoutFixture(t)
	ctx := context.Background()
	p := addProduct(t, m, "Bread", 55.0)
	require.NoError(t, cart.AddLine(ctx, "u1", p.ID, 1))

	orderID, _, err := orders.CreateOrder(ctx, "u1", "addr")
	require.NoError(t, err)

	require.NoError(t, orders.UpdateStatus(ctx, orderID, "shipped"))

	placed, err := orders.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "shipped", placed[0].Status)

	err = orders.UpdateStatus(ctx, "no-such-order", "shipped")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
