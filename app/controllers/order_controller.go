package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/coupons"
	"github.com/fitkart/FitKart/internal/pkg/usercontext"
)

type checkoutRequest struct {
	CouponID uint `json:"couponId"`
}

// HandleCreateOrder turns the user's cart into an order. Stock is
// decremented per line with a guarded update, and an optional coupon
// is redeemed atomically before the order is written.
func HandleCreateOrder(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	userID := usercontext.GetUserID(c)
	cart, err := repos().Cart.Get(userID)
	if err != nil {
		log.Printf("cart load failed: %v", err)
		return storageError(c)
	}
	if cart.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cart is empty",
		})
	}

	subtotal := cart.Subtotal()
	discount := decimal.Zero
	var couponID *uint
	if req.CouponID != 0 {
		svc := coupons.NewService(repos().Coupon)
		if _, err := svc.ApplyUsage(c.Context(), req.CouponID); err != nil {
			switch {
			case errors.Is(err, models.ErrCouponNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Coupon not found",
				})
			case errors.Is(err, models.ErrCouponExpired):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Coupon expired",
				})
			case errors.Is(err, models.ErrCouponLimitReached):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Coupon usage limit reached",
				})
			}
			log.Printf("coupon redemption failed: %v", err)
			return storageError(c)
		}
		coupon, err := repos().Coupon.GetByID(req.CouponID)
		if err != nil {
			log.Printf("coupon lookup failed: %v", err)
			return storageError(c)
		}
		discount = coupon.Discount
		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}
		couponID = &req.CouponID
	}

	for _, item := range cart.Items {
		if err := repos().Product.DecrementStock(item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, models.ErrInsufficientStock) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Not enough stock for " + item.Name,
				})
			}
			log.Printf("stock decrement failed: %v", err)
			return storageError(c)
		}
	}

	order := &models.Order{
		UserID:   userID,
		Status:   models.OrderStatusPending,
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
		Currency: "USD",
		CouponID: couponID,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	if err := repos().Order.Create(order); err != nil {
		log.Printf("order create failed: %v", err)
		return storageError(c)
	}

	if err := repos().Cart.Clear(userID); err != nil {
		log.Printf("cart clear after checkout failed: %v", err)
	}
	emitCartState(userID, &models.Cart{UserID: userID, UpdatedAt: time.Now().UTC()})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   orderJSON(order),
	})
}

// HandleListOrders returns the logged-in user's orders, newest first.
func HandleListOrders(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, err := repos().Order.GetByUserID(usercontext.GetUserID(c), offset, limit)
	if err != nil {
		log.Printf("order list failed: %v", err)
		return storageError(c)
	}

	out := make([]fiber.Map, 0, len(orders))
	for i := range orders {
		out = append(out, orderJSON(&orders[i]))
	}
	return c.JSON(fiber.Map{"orders": out})
}

// HandleGetOrder returns one of the user's orders. Admins may read any
// order.
func HandleGetOrder(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid order id",
		})
	}

	order, err := repos().Order.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return storageError(c)
	}
	if order.UserID != usercontext.GetUserID(c) && !usercontext.HasCapability(c, models.CapManageOrders) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "forbidden",
		})
	}
	return c.JSON(fiber.Map{"order": orderJSON(order)})
}

// HandleAdminListOrders lists all orders (admin only).
func HandleAdminListOrders(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	orders, err := repos().Order.List(offset, limit)
	if err != nil {
		log.Printf("order list failed: %v", err)
		return storageError(c)
	}

	out := make([]fiber.Map, 0, len(orders))
	for i := range orders {
		out = append(out, orderJSON(&orders[i]))
	}
	return c.JSON(fiber.Map{"orders": out})
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// HandleAdminUpdateOrderStatus moves an order through its lifecycle
// (admin only). Illegal transitions are rejected.
func HandleAdminUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid order id",
		})
	}

	var req updateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	order, err := repos().Order.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return storageError(c)
	}
	if !models.ValidStatusTransition(order.Status, req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid status transition",
		})
	}

	if err := repos().Order.UpdateStatus(id, req.Status); err != nil {
		log.Printf("order status update failed: %v", err)
		return storageError(c)
	}
	return c.JSON(fiber.Map{"success": true, "status": req.Status})
}
