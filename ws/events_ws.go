package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Sridharj9095/amirtham-cooldrinks/services"
)

// EventHub fans cart/pending-order mutation events out to connected
// clients. Tabs subscribe here instead of polling storage; convergence is
// eventual, not immediate.
type EventHub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	cart       *services.CartService
	log        *logrus.Logger
}

func NewEventHub(cart *services.CartService, log *logrus.Logger) *EventHub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &EventHub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		cart:       cart,
		log:        log,
	}
}

// Run pumps events from the cart service to every client until the
// subscription is torn down. Call in its own goroutine.
func (h *EventHub) Run() {
	events, cancel := h.cart.Subscribe()
	defer cancel()

	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev, ok := <-events:
			if !ok {
				return
			}
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					h.log.WithError(err).Debug("ws write failed, dropping client")
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/events
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("ws upgrade failed")
		return
	}
	h.register <- conn
	go h.drain(conn)
}

// drain discards inbound frames and notices disconnects.
func (h *EventHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
