package realtime

import (
	"fmt"
	"time"
)

// Events pushed to connected clients.
const (
	EventNewNotification       = "new-notification"
	EventCartUpdated           = "cart-updated"
	EventNewTrainerApplication = "new-trainer-application"
)

// Message types accepted from clients.
const (
	MsgJoinUserRoom  = "join-user-room"
	MsgJoinAdminRoom = "join-admin-room"
	MsgUpdateCart    = "update-cart"
)

// AdminRoom is the fan-out target for administrator connections.
const AdminRoom = "admin-room"

// UserRoom names the per-user room.
func UserRoom(userID uint) string {
	return fmt.Sprintf("user-%d", userID)
}

// Envelope is the wire format for pushed events. Payload is forwarded
// opaquely; the hub never inspects it.
type Envelope struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ClientMessage is the shape of messages read from a connection.
type ClientMessage struct {
	Type   string `json:"type"`
	UserID uint   `json:"userId,omitempty"`
}
