package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/adeanumainah/coffe-corner/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// EventHub fans store change events out to websocket subscribers. It is
// the explicit observer on the stores: services publish after each
// successful mutation and every connected client receives the event.
type EventHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.Event, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Publish implements services.Publisher. It never blocks a mutation: when
// the hub is saturated the event is dropped.
func (h *EventHub) Publish(ev services.Event) {
	select {
	case h.broadcast <- ev:
	default:
	}
}

func (h *EventHub) Run() {
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

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
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

// WS route: /ws/orders
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	// Drain reads so close frames are processed; subscribers only listen.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
