package controllers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/realtime"
)

type dispatchRequest struct {
	Type   string          `json:"type"`
	UserID uint            `json:"userId"`
	Data   json.RawMessage `json:"data"`
}

// HandleSocketDispatch lets server-side callers push events into the
// realtime hub. Notification events are also persisted so polling
// clients see them.
func HandleSocketDispatch(c *fiber.Ctx) error {
	var req dispatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	hub := realtime.Global()

	switch req.Type {
	case "notification":
		n := &models.Notification{
			UserID:  req.UserID,
			Scope:   models.NotificationScopeUser,
			Type:    req.Type,
			Payload: string(req.Data),
		}
		if req.UserID == 0 {
			n.Scope = models.NotificationScopeAdmin
		}
		if err := repos().Notification.Create(n); err != nil {
			log.Printf("notification persist failed: %v", err)
			return storageError(c)
		}
		if n.Scope == models.NotificationScopeAdmin {
			hub.EmitToAdmins(realtime.EventNewNotification, req.Data)
		} else {
			hub.EmitToUser(req.UserID, realtime.EventNewNotification, req.Data)
		}

	case "cart-update":
		hub.EmitToUser(req.UserID, realtime.EventCartUpdated, req.Data)

	case "trainer-application":
		hub.EmitToAdmins(realtime.EventNewTrainerApplication, req.Data)

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown event type",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleWebsocket runs one upgraded connection inside the hub until
// the client disconnects.
func HandleWebsocket(conn *websocket.Conn) {
	client := realtime.NewClient(conn, realtime.Global())
	client.Serve()
}
