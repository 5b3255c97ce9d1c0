package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
	"github.com/Sridharj9095/amirtham-cooldrinks/pkg/kv"
)

func menuItem(id string, price float64) *entity.MenuItem {
	return &entity.MenuItem{ItemID: id, Name: "Item " + id, Price: price, Image: "img-" + id}
}

func newTestCart(t *testing.T) (*CartService, *kv.Memory) {
	t.Helper()
	store := kv.NewMemory()
	return NewCartService(store, nil), store
}

// failingStore wraps a working store but refuses writes, simulating quota
// exhaustion or disabled storage.
type failingStore struct {
	*kv.Memory
	failWrites bool
}

func (f *failingStore) Set(key, value string) error {
	if f.failWrites {
		return errors.New("quota exceeded")
	}
	return f.Memory.Set(key, value)
}

func (f *failingStore) Remove(key string) error {
	if f.failWrites {
		return errors.New("quota exceeded")
	}
	return f.Memory.Remove(key)
}

type fakeOrderCreator struct {
	fail    bool
	created *entity.Order
}

func (f *fakeOrderCreator) CreateCompleted(_ context.Context, orderNumber string, items []entity.LineItem, totalAmount float64) (*entity.Order, error) {
	if f.fail {
		return nil, errors.New("order store unreachable")
	}
	o := &entity.Order{
		OrderNumber: orderNumber,
		TotalAmount: totalAmount,
		Date:        time.Now(),
		Status:      entity.OrderStatusCompleted,
	}
	for _, it := range items {
		o.Items = append(o.Items, entity.OrderItem{ItemID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	f.created = o
	return o, nil
}

func TestCartNeverHoldsDuplicatesOrZeroQuantities(t *testing.T) {
	svc, _ := newTestCart(t)

	svc.AddItem(menuItem("a", 10))
	svc.AddItem(menuItem("a", 10))
	svc.AddItem(menuItem("b", 5))
	svc.SetQuantity("a", 7)
	svc.SetQuantity("b", 0) // removal
	svc.SetQuantity("ghost", 3)
	svc.AddItem(menuItem("b", 5))
	svc.RemoveItem("missing")

	items := svc.Items()
	seen := map[string]bool{}
	for _, it := range items {
		assert.False(t, seen[it.ID], "duplicate line for %s", it.ID)
		seen[it.ID] = true
		assert.Greater(t, it.Quantity, 0)
	}
	require.Len(t, items, 2)
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCartTotalsMatchDerivedValues(t *testing.T) {
	svc, _ := newTestCart(t)

	svc.AddItem(menuItem("a", 12.5))
	svc.AddItem(menuItem("a", 12.5))
	svc.AddItem(menuItem("b", 3))
	svc.SetQuantity("b", 4)

	var want float64
	var count int
	for _, it := range svc.Items() {
		want += it.Price * float64(it.Quantity)
		count += it.Quantity
	}
	assert.Equal(t, want, svc.TotalAmount())
	assert.Equal(t, count, svc.TotalItemCount())
	assert.Equal(t, 37.0, svc.TotalAmount())
}

func TestAddItemSnapshotsPriceAtAddTime(t *testing.T) {
	svc, _ := newTestCart(t)

	m := menuItem("a", 10)
	svc.AddItem(m)
	m.Price = 99 // menu price change after add must not leak into the cart

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 10.0, items[0].Price)
}

func TestSaveCurrentCartAsValidation(t *testing.T) {
	svc, _ := newTestCart(t)

	_, err := svc.SaveCurrentCartAs("   ", []entity.LineItem{{ID: "a", Price: 10, Quantity: 1}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SaveCurrentCartAs("Table 1", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveListLoadScenario(t *testing.T) {
	svc, _ := newTestCart(t)

	id, err := svc.SaveCurrentCartAs("Table 1", []entity.LineItem{{ID: "a", Name: "Tea", Price: 10, Quantity: 2}})
	require.NoError(t, err)

	orders := svc.ListOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, "Table 1", orders[0].Name)
	assert.Equal(t, 20.0, orders[0].TotalAmount)

	items, err := svc.LoadOrder(id)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 20.0, svc.TotalAmount())

	active, ok := svc.ActiveOrderID()
	require.True(t, ok)
	assert.Equal(t, id, active)
	assert.False(t, svc.HasUnsavedChanges())
}

func TestLoadedCartIsDeepCopy(t *testing.T) {
	svc, _ := newTestCart(t)

	id, _ := svc.SaveCurrentCartAs("Table 1", []entity.LineItem{{ID: "a", Name: "Tea", Price: 10, Quantity: 2}})
	svc.LoadOrder(id)

	// editing the cart must not reach the stored snapshot
	svc.SetQuantity("a", 9)
	po, ok := svc.GetOrder(id)
	require.True(t, ok)
	assert.Equal(t, 2, po.Items[0].Quantity)
}

func TestUnsavedChangesRoundTrip(t *testing.T) {
	svc, _ := newTestCart(t)

	id, _ := svc.SaveCurrentCartAs("Table 1", []entity.LineItem{{ID: "a", Name: "Tea", Price: 10, Quantity: 2}})
	svc.LoadOrder(id)
	assert.False(t, svc.HasUnsavedChanges())

	svc.SetQuantity("a", 3)
	assert.True(t, svc.HasUnsavedChanges())

	require.NoError(t, svc.UpdateOrder(id, svc.Items()))
	po, ok := svc.GetOrder(id)
	require.True(t, ok)
	assert.Equal(t, 3, po.Items[0].Quantity)
	assert.Equal(t, 30.0, po.TotalAmount)
	assert.False(t, svc.HasUnsavedChanges())
}

func TestHasUnsavedChangesIgnoresOrder(t *testing.T) {
	svc, _ := newTestCart(t)

	id, _ := svc.SaveCurrentCartAs("Table 1", []entity.LineItem{
		{ID: "a", Name: "Item a", Price: 10, Quantity: 1, Image: "img-a"},
		{ID: "b", Name: "Item b", Price: 15, Quantity: 2, Image: "img-b"},
	})
	svc.LoadOrder(id)

	// same contents, different insertion order: remove a, re-add it last
	svc.RemoveItem("a")
	svc.AddItem(menuItem("a", 10))

	items := svc.Items()
	require.Equal(t, "b", items[0].ID)
	require.Equal(t, "a", items[1].ID)
	assert.False(t, svc.HasUnsavedChanges())
}

func TestClearAlwaysUnlinks(t *testing.T) {
	svc, _ := newTestCart(t)

	id, _ := svc.SaveCurrentCartAs("Table 1", []entity.LineItem{{ID: "a", Price: 10, Quantity: 2}})
	svc.LoadOrder(id)
	_, ok := svc.ActiveOrderID()
	require.True(t, ok)

	require.NoError(t, svc.Clear())
	assert.Empty(t, svc.Items())
	_, ok = svc.ActiveOrderID()
	assert.False(t, ok)

	// clearing an already-unlinked cart stays consistent
	require.NoError(t, svc.Clear())
	_, ok = svc.ActiveOrderID()
	assert.False(t, ok)
}

func TestDeleteLinkedOrderSelfHeals(t *testing.T) {
	svc, store := newTestCart(t)

	id, _ := svc.SaveCurrentCartAs("Table 1", []entity.LineItem{{ID: "a", Price: 10, Quantity: 2}})
	svc.LoadOrder(id)

	require.NoError(t, svc.RemoveOrder(id))
	_, ok := svc.ActiveOrderID()
	assert.False(t, ok)
	assert.False(t, svc.HasUnsavedChanges())

	// simulate another tab deleting behind our back: link key present,
	// order gone
	store.Set("active_order_id", "order-gone")
	_, ok = svc.ActiveOrderID()
	assert.False(t, ok)
	_, has := store.Get("active_order_id")
	assert.False(t, has, "stale link should be removed")
}

func TestRemoveUnknownOrderIsNoOp(t *testing.T) {
	svc, _ := newTestCart(t)
	svc.SaveCurrentCartAs("Table 1", []entity.LineItem{{ID: "a", Price: 10, Quantity: 1}})
	require.NoError(t, svc.RemoveOrder("order-missing"))
	assert.Len(t, svc.ListOrders(), 1)
}

func TestUpdateUnknownOrderIsNoOp(t *testing.T) {
	svc, _ := newTestCart(t)
	require.NoError(t, svc.UpdateOrder("order-missing", []entity.LineItem{{ID: "a", Price: 1, Quantity: 1}}))
	assert.Empty(t, svc.ListOrders())
}

func TestReloadDiscardsEdits(t *testing.T) {
	svc, _ := newTestCart(t)

	id, _ := svc.SaveCurrentCartAs("Table 1", []entity.LineItem{{ID: "a", Name: "Tea", Price: 10, Quantity: 2}})
	svc.LoadOrder(id)
	svc.SetQuantity("a", 8)
	require.True(t, svc.HasUnsavedChanges())

	// reload same order: discard-and-restore
	items, err := svc.LoadOrder(id)
	require.NoError(t, err)
	assert.Equal(t, 2, items[0].Quantity)
	assert.False(t, svc.HasUnsavedChanges())
}

func TestSwitchingOrdersLeavesPreviousUntouched(t *testing.T) {
	svc, _ := newTestCart(t)

	id1, _ := svc.SaveCurrentCartAs("Table 1", []entity.LineItem{{ID: "a", Name: "Tea", Price: 10, Quantity: 2}})
	id2, _ := svc.SaveCurrentCartAs("Table 2", []entity.LineItem{{ID: "b", Name: "Coffee", Price: 15, Quantity: 1}})

	svc.LoadOrder(id1)
	svc.SetQuantity("a", 9) // unsaved edit against id1

	items, err := svc.LoadOrder(id2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	active, _ := svc.ActiveOrderID()
	assert.Equal(t, id2, active)

	// id1 still holds what it last had; the edit is simply gone
	po, ok := svc.GetOrder(id1)
	require.True(t, ok)
	assert.Equal(t, 2, po.Items[0].Quantity)
}

func TestLoadMissingOrderFails(t *testing.T) {
	svc, _ := newTestCart(t)
	_, err := svc.LoadOrder("order-nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckoutSettlesCartOnlyOnSuccess(t *testing.T) {
	svc, _ := newTestCart(t)

	id, _ := svc.SaveCurrentCartAs("Table 1", []entity.LineItem{{ID: "a", Name: "Tea", Price: 10, Quantity: 2}})
	svc.LoadOrder(id)

	// failed creation leaves cart, link and pending order untouched
	failed := &fakeOrderCreator{fail: true}
	_, err := svc.Checkout(context.Background(), "ORD-1", failed, time.Second)
	require.Error(t, err)
	assert.Len(t, svc.Items(), 1)
	active, ok := svc.ActiveOrderID()
	require.True(t, ok)
	assert.Equal(t, id, active)
	assert.Len(t, svc.ListOrders(), 1)

	// success clears everything and removes the backing pending order
	creator := &fakeOrderCreator{}
	order, err := svc.Checkout(context.Background(), "ORD-1", creator, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", order.OrderNumber)
	assert.Equal(t, 20.0, order.TotalAmount)
	assert.Empty(t, svc.Items())
	_, ok = svc.ActiveOrderID()
	assert.False(t, ok)
	assert.Empty(t, svc.ListOrders())
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	svc, _ := newTestCart(t)
	_, err := svc.Checkout(context.Background(), "ORD-1", &fakeOrderCreator{}, time.Second)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCorruptedStorageReadsAsEmpty(t *testing.T) {
	store := kv.NewMemory()
	store.Set("cart_items", "{not json")
	store.Set("pending_orders", "also not json")
	svc := NewCartService(store, nil)

	assert.Empty(t, svc.Items())
	assert.Empty(t, svc.ListOrders())
	assert.Zero(t, svc.TotalAmount())

	// still usable after the bad read
	_, err := svc.AddItem(menuItem("a", 10))
	require.NoError(t, err)
	assert.Len(t, svc.Items(), 1)
}

func TestWriteFailureIsNonFatalWarning(t *testing.T) {
	fs := &failingStore{Memory: kv.NewMemory(), failWrites: true}
	svc := NewCartService(fs, nil)

	items, err := svc.AddItem(menuItem("a", 10))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	// the computed result still comes back so the UI can render it
	require.Len(t, items, 1)

	_, err = svc.SaveCurrentCartAs("Table 1", []entity.LineItem{{ID: "a", Price: 10, Quantity: 1}})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestEventsEmittedOnMutations(t *testing.T) {
	svc, _ := newTestCart(t)
	events, cancel := svc.Subscribe()
	defer cancel()

	svc.AddItem(menuItem("a", 10))

	select {
	case ev := <-events:
		assert.Equal(t, EventCartChanged, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}
