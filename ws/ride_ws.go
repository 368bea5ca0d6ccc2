package ws

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/janebaby34221-collab/Superapp/entity"
	"github.com/janebaby34221-collab/Superapp/services"
	"github.com/janebaby34221-collab/Superapp/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// RideHub fans ride-status changes out to every WebSocket subscriber of
// that ride. It implements services.StatusNotifier.
type RideHub struct {
	clients    map[uint]map[*websocket.Conn]bool // rideID -> set of clients
	broadcast  chan statusEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn   *websocket.Conn
	RideID uint
}

type statusEvent struct {
	RideID    uint              `json:"rideId"`
	Status    entity.RideStatus `json:"status"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func NewRideHub() *RideHub {
	return &RideHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan statusEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run drains register/unregister/broadcast until the process exits.
func (h *RideHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RideID] == nil {
				h.clients[sub.RideID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RideID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RideID][sub.Conn]; ok {
				delete(h.clients[sub.RideID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RideID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RideID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// RideStatusChanged queues the change for broadcast. Dropping under
// pressure is fine; the next change carries the current state.
func (h *RideHub) RideStatusChanged(ride *entity.Ride) {
	ev := statusEvent{RideID: ride.ID, Status: ride.Status, UpdatedAt: ride.UpdatedAt}
	select {
	case h.broadcast <- ev:
	default:
	}
}

// Handler upgrades GET /ws/rides/:id. Only the ride's owner or an admin
// may subscribe; WSAuthMiddleware has already put identity on the context.
func (h *RideHub) Handler(rides *services.RideService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid ride id"})
			return
		}

		if _, err := rides.Get(uint(id), utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "ride not found"})
			case errors.Is(err, services.ErrForbidden):
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
			}
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("ws upgrade failed: %v", err)
			return
		}

		sub := subscription{Conn: conn, RideID: uint(id)}
		h.register <- sub

		// Clients only listen; the read loop just notices disconnects.
		go func() {
			defer func() { h.unregister <- sub }()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
