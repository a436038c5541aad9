package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/session"
	"github.com/fitkart/FitKart/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session into a UserContext and
// stores it in Locals for every downstream handler.
func UserContextMiddleware(c *fiber.Ctx) error {
	ctx := usercontext.UserContext{IsLoggedIn: false}

	sess, err := session.GetSession(c)
	if err == nil {
		if userID, ok := sess.Get(usercontext.KeyUserID).(uint); ok && userID > 0 {
			ctx.UserID = userID
			ctx.IsLoggedIn = true
			if name, ok := sess.Get(usercontext.KeyUsername).(string); ok {
				ctx.Username = name
			}
			if role, ok := sess.Get(usercontext.KeyRole).(string); ok {
				ctx.Role = models.Role(role)
			}
		}
	}

	c.Locals(usercontext.ContextKey, ctx)
	return c.Next()
}
