package ws

import (
	"log"
	"net/http"

	"tableside/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type EventType string

const (
	EventOrderPlaced EventType = "order_placed"
	EventOrderStatus EventType = "order_status"
)

// OrderEvent is what every subscribed dashboard receives.
type OrderEvent struct {
	Type  EventType    `json:"type"`
	Order entity.Order `json:"order"`
}

// OrderHub fans order events out to the staff dashboards. The Run loop owns
// the client set; handlers only talk to it through the channels.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}

		case ev := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

// OrderPlaced and OrderStatusChanged make the hub a store notifier.

func (h *OrderHub) OrderPlaced(o entity.Order) {
	h.broadcast <- OrderEvent{Type: EventOrderPlaced, Order: o}
}

func (h *OrderHub) OrderStatusChanged(o entity.Order) {
	h.broadcast <- OrderEvent{Type: EventOrderStatus, Order: o}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.listen(conn)
}

// listen drains the connection until the client goes away. The feed is
// one-way; inbound frames are discarded.
func (h *OrderHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
