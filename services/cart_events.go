package services

import (
	"time"
)

type CartEventType string

const (
	EventCartChanged          CartEventType = "cart_changed"
	EventPendingOrdersChanged CartEventType = "pending_orders_changed"
	EventActiveOrderChanged   CartEventType = "active_order_changed"
	EventCheckoutCompleted    CartEventType = "checkout_completed"
)

// CartEvent is pushed to subscribers on every mutation, so consumers watch
// a stream instead of polling storage.
type CartEvent struct {
	Type        CartEventType `json:"type"`
	OrderNumber string        `json:"orderNumber,omitempty"`
	At          time.Time     `json:"at"`
}

// Subscribe registers a listener. The returned cancel func must be called
// when the consumer goes away. Slow consumers drop events rather than block
// mutations.
func (s *CartService) Subscribe() (<-chan CartEvent, func()) {
	ch := make(chan CartEvent, 16)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.subMu.Unlock()
	}
	return ch, cancel
}

func (s *CartService) emit(ev CartEvent) {
	ev.At = time.Now()
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
