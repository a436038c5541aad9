package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/usercontext"
)

// HandleListNotifications returns the user's recent notifications.
// Admins also receive the admin-wide feed. The window defaults to the
// last 24 hours and may be widened to 7 days.
func HandleListNotifications(c *fiber.Ctx) error {
	window := 24 * time.Hour
	if c.Query("window") == "7d" {
		window = 7 * 24 * time.Hour
	}
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	since := time.Now().Add(-window)

	userID := usercontext.GetUserID(c)
	notifications, err := repos().Notification.ListForUser(userID, since, limit)
	if err != nil {
		log.Printf("notification list failed: %v", err)
		return storageError(c)
	}

	out := fiber.Map{"notifications": notifications}
	if usercontext.HasCapability(c, models.CapReceiveAdminFan) {
		adminFeed, err := repos().Notification.ListAdmin(since, limit)
		if err != nil {
			log.Printf("admin notification list failed: %v", err)
			return storageError(c)
		}
		out["adminNotifications"] = adminFeed
	}
	return c.JSON(out)
}

// HandleMarkNotificationRead flags one of the user's notifications as
// read.
func HandleMarkNotificationRead(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid notification id",
		})
	}

	if err := repos().Notification.MarkRead(id, usercontext.GetUserID(c)); err != nil {
		log.Printf("notification mark read failed: %v", err)
		return storageError(c)
	}
	return c.JSON(fiber.Map{"success": true})
}
