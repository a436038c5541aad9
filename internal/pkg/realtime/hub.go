// Package realtime fans out short-lived UI events to connected
// websocket clients grouped into rooms: one room per user plus a
// shared admin room. Delivery is best-effort with no queueing, retry
// or persistence; clients that need guaranteed state re-fetch via the
// API.
package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Hub owns the room-membership table. All mutations go through its
// mutex; connections never touch the table directly.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Client]struct{}
	clients map[*Client]map[string]struct{}

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]struct{}),
		clients: make(map[*Client]map[string]struct{}),
		stopCh:  make(chan struct{}),
	}
}

var (
	globalHub     *Hub
	globalHubOnce sync.Once
)

// InitGlobal creates the process-wide hub at startup.
func InitGlobal() *Hub {
	globalHubOnce.Do(func() {
		globalHub = NewHub()
	})
	return globalHub
}

// Global returns the process-wide hub.
func Global() *Hub {
	return globalHub
}

// Register adds a freshly connected client with no room memberships.
func (h *Hub) Register(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		h.clients[c] = make(map[string]struct{})
	}
}

// Unregister removes the client from every room and closes it.
// Membership dies with the connection; there is no replay on
// reconnect.
func (h *Hub) Unregister(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	for room := range h.clients[c] {
		delete(h.rooms[room], c)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.clients, c)
	h.mu.Unlock()

	c.close()
}

// Join adds the client to a room. Unknown clients are registered on
// the fly so join ordering does not matter.
func (h *Hub) Join(c *Client, room string) {
	if c == nil || room == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		h.clients[c] = make(map[string]struct{})
	}
	if _, ok := h.rooms[room]; !ok {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
	h.clients[c][room] = struct{}{}
}

// JoinUserRoom subscribes the connection to a user's events. The user
// id is caller-supplied; identity checks happen upstream.
func (h *Hub) JoinUserRoom(c *Client, userID uint) {
	h.Join(c, UserRoom(userID))
}

// JoinAdminRoom subscribes the connection to admin-wide events.
func (h *Hub) JoinAdminRoom(c *Client) {
	h.Join(c, AdminRoom)
}

// EmitToUser delivers the event to every connection in the user's
// room. An empty room drops the event silently.
func (h *Hub) EmitToUser(userID uint, event string, payload interface{}) {
	h.emitToRoom(UserRoom(userID), event, payload)
}

// EmitToAdmins delivers the event to every connection in the admin
// room, same drop-if-absent semantics.
func (h *Hub) EmitToAdmins(event string, payload interface{}) {
	h.emitToRoom(AdminRoom, event, payload)
}

func (h *Hub) emitToRoom(room, event string, payload interface{}) {
	raw, err := json.Marshal(Envelope{
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("realtime: failed to encode %s event: %v", event, err)
		return
	}

	h.mu.RLock()
	members := make([]*Client, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		c.enqueue(raw)
	}
}

// HandleMessage processes one message read from a connection.
func (h *Hub) HandleMessage(c *Client, raw []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Printf("realtime: invalid client message: %v", err)
		return
	}

	switch msg.Type {
	case MsgJoinUserRoom:
		h.JoinUserRoom(c, msg.UserID)
	case MsgJoinAdminRoom:
		h.JoinAdminRoom(c)
	case MsgUpdateCart:
		h.EmitToUser(msg.UserID, EventCartUpdated, map[string]interface{}{
			"userId": msg.UserID,
		})
	default:
		log.Printf("realtime: unknown client message type %q", msg.Type)
	}
}

// RoomSize reports the number of connections in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Close tears the hub down and disconnects every client.
func (h *Hub) Close() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
	})

	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.rooms = make(map[string]map[*Client]struct{})
	h.clients = make(map[*Client]map[string]struct{})
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}
