package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitkart/FitKart/app/models"
)

// UserContext represents the complete user context for a request
type UserContext struct {
	UserID     uint        `json:"user_id"`
	Username   string      `json:"username"`
	Role       models.Role `json:"role"`
	IsLoggedIn bool        `json:"is_logged_in"`
}

// GetUserContext retrieves the user context from fiber context.
// Returns a default anonymous context if none is set.
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(ContextKey); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// GetUserID returns the current user's ID, or 0 if not logged in
func GetUserID(c *fiber.Ctx) uint {
	return GetUserContext(c).UserID
}

// HasCapability checks the current user's role against a capability.
// All authorization decisions route through here instead of comparing
// role strings per handler.
func HasCapability(c *fiber.Ctx, cap models.Capability) bool {
	ctx := GetUserContext(c)
	return ctx.IsLoggedIn && ctx.Role.Can(cap)
}
