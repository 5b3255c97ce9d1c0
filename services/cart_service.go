package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
	"github.com/Sridharj9095/amirtham-cooldrinks/pkg/kv"
)

// Storage keys for the cart core.
const (
	keyCartItems     = "cart_items"
	keyPendingOrders = "pending_orders"
	keyActiveOrderID = "active_order_id"
)

var (
	// ErrValidation wraps bad input: empty order name, empty-cart save,
	// checkout of an empty cart.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks operations on pending orders that no longer exist.
	// Most callers treat it as a silent no-op.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable marks a failed key-value write. The mutation
	// result is still returned; callers surface the warning and move on.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// OrderCreator persists a completed order. Satisfied by OrderService;
// checkout must not touch cart state until it succeeds.
type OrderCreator interface {
	CreateCompleted(ctx context.Context, orderNumber string, items []entity.LineItem, totalAmount float64) (*entity.Order, error)
}

// CartService owns the active cart, the pending-order save slots and the
// active link between them. All state lives in an injected kv.Store; every
// mutation is written through before it returns. A single mutex serializes
// operations the way a browser event loop would.
type CartService struct {
	mu    sync.Mutex
	store kv.Store
	log   *logrus.Logger

	subMu sync.Mutex
	subs  map[chan CartEvent]struct{}
}

func NewCartService(store kv.Store, log *logrus.Logger) *CartService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CartService{
		store: store,
		log:   log,
		subs:  make(map[chan CartEvent]struct{}),
	}
}

// ---------------- cart manager ----------------

// Items returns the current cart. A missing or corrupted store reads as an
// empty cart, never an error.
func (s *CartService) Items() []entity.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readCart()
}

func (s *CartService) TotalAmount() float64 {
	return entity.LineTotal(s.Items())
}

func (s *CartService) TotalItemCount() int {
	var n int
	for _, it := range s.Items() {
		n += it.Quantity
	}
	return n
}

// AddItem puts one unit of the menu item into the cart. Price and image are
// snapshotted at call time; an item already present gains quantity instead
// of a duplicate row.
func (s *CartService) AddItem(m *entity.MenuItem) ([]entity.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.readCart()
	found := false
	for i := range items {
		if items[i].ID == m.ItemID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, entity.LineItem{
			ID:       m.ItemID,
			Name:     m.Name,
			Price:    m.Price,
			Quantity: 1,
			Image:    m.Image,
		})
	}
	err := s.writeCart(items)
	s.emit(CartEvent{Type: EventCartChanged})
	return items, err
}

// SetQuantity sets the quantity for an item already in the cart. A quantity
// of zero or less removes the item; an absent id is a no-op.
func (s *CartService) SetQuantity(id string, quantity int) ([]entity.LineItem, error) {
	if quantity <= 0 {
		return s.RemoveItem(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.readCart()
	changed := false
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return items, nil
	}
	err := s.writeCart(items)
	s.emit(CartEvent{Type: EventCartChanged})
	return items, err
}

func (s *CartService) RemoveItem(id string) ([]entity.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.readCart()
	out := items[:0]
	removed := false
	for _, it := range items {
		if it.ID == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	if !removed {
		return items, nil
	}
	err := s.writeCart(out)
	s.emit(CartEvent{Type: EventCartChanged})
	return out, err
}

// Clear empties the cart and forgets which pending order it was tied to.
// The two always travel together; a cleared cart must never keep a link.
func (s *CartService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.clearLocked()
	s.emit(CartEvent{Type: EventCartChanged})
	s.emit(CartEvent{Type: EventActiveOrderChanged})
	return err
}

func (s *CartService) clearLocked() error {
	var first error
	if err := s.store.Remove(keyCartItems); err != nil && first == nil {
		first = err
	}
	if err := s.store.Remove(keyActiveOrderID); err != nil && first == nil {
		first = err
	}
	if first != nil {
		s.log.WithError(first).Warn("cart clear: storage write failed")
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, first)
	}
	return nil
}

// ---------------- pending order set ----------------

// SaveCurrentCartAs snapshots items under a user-supplied label and returns
// the new pending order id. The cart itself is left alone; callers decide
// whether to start fresh afterwards.
func (s *CartService) SaveCurrentCartAs(name string, items []entity.LineItem) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: order name is required", ErrValidation)
	}
	if len(items) == 0 {
		return "", fmt.Errorf("%w: cannot save an empty cart", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.readPending()
	po := entity.PendingOrder{
		ID:          "order-" + uuid.NewString(),
		Name:        name,
		Items:       entity.CopyLineItems(items),
		TotalAmount: entity.LineTotal(items),
		CreatedAt:   time.Now(),
	}
	orders = append(orders, po)
	if err := s.writePending(orders); err != nil {
		return po.ID, err
	}
	s.emit(CartEvent{Type: EventPendingOrdersChanged})
	return po.ID, nil
}

// ListOrders returns all pending orders; order of appearance carries no
// meaning.
func (s *CartService) ListOrders() []entity.PendingOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readPending()
}

func (s *CartService) GetOrder(id string) (*entity.PendingOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findPending(id)
}

// UpdateOrder replaces a pending order's snapshot with the given items,
// recomputing the total. Unknown ids are a silent no-op.
func (s *CartService) UpdateOrder(id string, items []entity.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.readPending()
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Items = entity.CopyLineItems(items)
			orders[i].TotalAmount = entity.LineTotal(items)
			if err := s.writePending(orders); err != nil {
				return err
			}
			s.emit(CartEvent{Type: EventPendingOrdersChanged})
			return nil
		}
	}
	return nil
}

// RemoveOrder deletes a pending order; absent ids are a no-op. Deleting the
// order the cart is linked to also drops the link, so the cart never points
// at a ghost.
func (s *CartService) RemoveOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeOrderLocked(id)
}

func (s *CartService) removeOrderLocked(id string) error {
	orders := s.readPending()
	out := orders[:0]
	removed := false
	for _, o := range orders {
		if o.ID == id {
			removed = true
			continue
		}
		out = append(out, o)
	}
	if !removed {
		return nil
	}
	if err := s.writePending(out); err != nil {
		return err
	}
	if link, ok := s.store.Get(keyActiveOrderID); ok && link == id {
		if err := s.store.Remove(keyActiveOrderID); err != nil {
			s.log.WithError(err).Warn("pending order remove: could not drop active link")
		}
		s.emit(CartEvent{Type: EventActiveOrderChanged})
	}
	s.emit(CartEvent{Type: EventPendingOrdersChanged})
	return nil
}

// ---------------- active-link tracker ----------------

// LoadOrder replaces the cart with a deep copy of the pending order's
// snapshot and links the cart to it. Loading the already-linked order is a
// discard-and-restore; loading another order switches wholesale and leaves
// the previous pending order exactly as last saved. Cart and link are
// updated together or not at all.
func (s *CartService) LoadOrder(id string) ([]entity.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	po, ok := s.findPending(id)
	if !ok {
		// stale reference: heal the link if it pointed here
		if link, has := s.store.Get(keyActiveOrderID); has && link == id {
			s.store.Remove(keyActiveOrderID)
			s.emit(CartEvent{Type: EventActiveOrderChanged})
		}
		return nil, fmt.Errorf("%w: pending order %s", ErrNotFound, id)
	}

	items := entity.CopyLineItems(po.Items)
	if err := s.writeCart(items); err != nil {
		// cart untouched in storage, so leave the link alone too
		return nil, err
	}
	if err := s.store.Set(keyActiveOrderID, id); err != nil {
		s.log.WithError(err).Warn("load order: could not persist active link")
		return items, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	s.emit(CartEvent{Type: EventCartChanged})
	s.emit(CartEvent{Type: EventActiveOrderChanged})
	return items, nil
}

// ActiveOrderID reports which pending order the cart was loaded from. A
// link whose order has vanished (deleted from another tab, wiped storage)
// self-heals to unlinked instead of failing.
func (s *CartService) ActiveOrderID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeOrderIDLocked()
}

func (s *CartService) activeOrderIDLocked() (string, bool) {
	id, ok := s.store.Get(keyActiveOrderID)
	if !ok || id == "" {
		return "", false
	}
	if _, exists := s.findPending(id); !exists {
		if err := s.store.Remove(keyActiveOrderID); err != nil {
			s.log.WithError(err).Warn("active link self-heal: remove failed")
		}
		s.emit(CartEvent{Type: EventActiveOrderChanged})
		return "", false
	}
	return id, true
}

// HasUnsavedChanges is true when the cart is linked to a pending order and
// its items differ from the stored snapshot. Items compare as a set keyed
// by id; insertion order is irrelevant. Drives UI warnings only.
func (s *CartService) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.activeOrderIDLocked()
	if !ok {
		return false
	}
	po, ok := s.findPending(id)
	if !ok {
		return false
	}
	return !sameItemSet(s.readCart(), po.Items)
}

func sameItemSet(a, b []entity.LineItem) bool {
	if len(a) != len(b) {
		return false
	}
	byID := make(map[string]entity.LineItem, len(a))
	for _, it := range a {
		byID[it.ID] = it
	}
	for _, it := range b {
		got, ok := byID[it.ID]
		if !ok || got != it {
			return false
		}
	}
	return true
}

// ---------------- checkout ----------------

// Checkout turns the current cart into a completed order. The order is
// persisted first; only after the creator confirms does the cart get
// cleared, the link dropped and the backing pending order removed. On
// failure everything stays as it was so the caller can retry.
func (s *CartService) Checkout(ctx context.Context, orderNumber string, creator OrderCreator, timeout time.Duration) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.readCart()
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	order, err := creator.CreateCompleted(ctx, orderNumber, items, entity.LineTotal(items))
	if err != nil {
		return nil, err
	}

	// read the link before clearing; clear wipes it
	if link, ok := s.store.Get(keyActiveOrderID); ok && link != "" {
		if err := s.removeOrderLocked(link); err != nil {
			s.log.WithError(err).Warn("checkout: could not remove backing pending order")
		}
	}
	if err := s.clearLocked(); err != nil {
		s.log.WithError(err).Warn("checkout: cart clear failed after order creation")
	}
	s.emit(CartEvent{Type: EventCartChanged})
	s.emit(CartEvent{Type: EventActiveOrderChanged})
	s.emit(CartEvent{Type: EventCheckoutCompleted, OrderNumber: order.OrderNumber})
	return order, nil
}

// ---------------- storage helpers ----------------

func (s *CartService) readCart() []entity.LineItem {
	raw, ok := s.store.Get(keyCartItems)
	if !ok || raw == "" {
		return []entity.LineItem{}
	}
	var items []entity.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.WithError(err).Warn("cart storage corrupted, starting empty")
		return []entity.LineItem{}
	}
	return items
}

func (s *CartService) writeCart(items []entity.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := s.store.Set(keyCartItems, string(raw)); err != nil {
		s.log.WithError(err).Warn("cart storage write failed")
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *CartService) readPending() []entity.PendingOrder {
	raw, ok := s.store.Get(keyPendingOrders)
	if !ok || raw == "" {
		return []entity.PendingOrder{}
	}
	var orders []entity.PendingOrder
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		s.log.WithError(err).Warn("pending order storage corrupted, starting empty")
		return []entity.PendingOrder{}
	}
	return orders
}

func (s *CartService) writePending(orders []entity.PendingOrder) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := s.store.Set(keyPendingOrders, string(raw)); err != nil {
		s.log.WithError(err).Warn("pending order storage write failed")
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *CartService) findPending(id string) (*entity.PendingOrder, bool) {
	for _, o := range s.readPending() {
		if o.ID == id {
			po := o
			po.Items = entity.CopyLineItems(o.Items)
			return &po, true
		}
	}
	return nil, false
}
