package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/fitkart/FitKart/app/controllers"
	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{Max: 120}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// auth
	api.Post("/auth/register", controllers.HandleRegister)
	api.Post("/auth/login", controllers.HandleLogin)
	api.Post("/auth/logout", middleware.RequireAuth, controllers.HandleLogout)
	api.Get("/auth/me", middleware.RequireAuth, controllers.HandleMe)

	// catalog and reviews
	api.Get("/products", controllers.HandleListProducts)
	api.Get("/products/:id", controllers.HandleGetProduct)
	api.Get("/products/:id/reviews", controllers.HandleListReviews)
	api.Post("/products/:id/reviews", middleware.RequireAuth, controllers.HandleCreateReview)

	// cart
	cart := api.Group("/cart", middleware.RequireAuth)
	cart.Get("/", controllers.HandleGetCart)
	cart.Post("/items", controllers.HandleAddCartItem)
	cart.Delete("/items/:productId", controllers.HandleRemoveCartItem)
	cart.Delete("/", controllers.HandleClearCart)

	// orders
	orders := api.Group("/orders", middleware.RequireAuth)
	orders.Post("/", controllers.HandleCreateOrder)
	orders.Get("/", controllers.HandleListOrders)
	orders.Get("/:id", controllers.HandleGetOrder)

	// coupons
	api.Post("/coupons/use", middleware.RequireAuth, controllers.HandleUseCoupon)

	// memberships
	api.Get("/memberships", middleware.RequireAuth, controllers.HandleGetMemberships)
	api.Post("/memberships", middleware.RequireAuth, controllers.HandleCreateMembership)
	api.Post("/test-membership", controllers.HandleTestMembership)

	// trainer applications
	api.Post("/trainers/apply", middleware.RequireAuth, controllers.HandleCreateTrainerApplication)

	// notifications
	api.Get("/notifications", middleware.RequireAuth, controllers.HandleListNotifications)
	api.Post("/notifications/:id/read", middleware.RequireAuth, controllers.HandleMarkNotificationRead)

	// server-side event dispatch into the realtime hub
	api.Post("/socket", middleware.RequireAuth, controllers.HandleSocketDispatch)

	h.registerAdminRoutes(api)
}

// registerAdminRoutes wires the admin surface. Every route is gated on
// the capability it needs rather than a blanket admin check.
func (h ApiRouter) registerAdminRoutes(api fiber.Router) {
	admin := api.Group("/admin")

	admin.Get("/stats", middleware.RequireCapability(models.CapViewAdminStats), controllers.HandleAdminStats)
	admin.Get("/users", middleware.RequireCapability(models.CapViewAdminStats), controllers.HandleAdminListUsers)

	catalog := middleware.RequireCapability(models.CapManageCatalog)
	admin.Post("/products", catalog, controllers.HandleAdminCreateProduct)
	admin.Put("/products/:id", catalog, controllers.HandleAdminUpdateProduct)
	admin.Delete("/products/:id", catalog, controllers.HandleAdminDeleteProduct)

	couponsCap := middleware.RequireCapability(models.CapManageCoupons)
	admin.Get("/coupons", couponsCap, controllers.HandleAdminListCoupons)
	admin.Post("/coupons", couponsCap, controllers.HandleAdminCreateCoupon)
	admin.Delete("/coupons/:id", couponsCap, controllers.HandleAdminDeleteCoupon)

	ordersCap := middleware.RequireCapability(models.CapManageOrders)
	admin.Get("/orders", ordersCap, controllers.HandleAdminListOrders)
	admin.Put("/orders/:id/status", ordersCap, controllers.HandleAdminUpdateOrderStatus)

	trainers := middleware.RequireCapability(models.CapReviewTrainers)
	admin.Get("/trainer-applications", trainers, controllers.HandleAdminListTrainerApplications)
	admin.Post("/trainer-applications/:id/review", trainers, controllers.HandleAdminReviewTrainerApplication)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
