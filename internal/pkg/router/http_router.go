package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/fitkart/FitKart/app/controllers"
	"github.com/fitkart/FitKart/internal/pkg/middleware"
	"github.com/fitkart/FitKart/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerWebsocketRoutes(app)
}

// registerWebsocketRoutes upgrades /ws connections into the realtime
// hub. Non-websocket requests get a 426.
func (h HttpRouter) registerWebsocketRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(controllers.HandleWebsocket))
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
