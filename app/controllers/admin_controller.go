package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/fitkart/FitKart/internal/pkg/money"
)

// HandleAdminStats aggregates the dashboard counters (admin only).
func HandleAdminStats(c *fiber.Ctx) error {
	users, err := repos().User.Count()
	if err != nil {
		log.Printf("user count failed: %v", err)
		return storageError(c)
	}
	products, err := repos().Product.Count()
	if err != nil {
		log.Printf("product count failed: %v", err)
		return storageError(c)
	}
	orders, err := repos().Order.Count()
	if err != nil {
		log.Printf("order count failed: %v", err)
		return storageError(c)
	}
	revenue, err := repos().Order.RevenueTotal()
	if err != nil {
		log.Printf("revenue total failed: %v", err)
		return storageError(c)
	}
	pendingTrainers, err := repos().Trainer.CountPending()
	if err != nil {
		log.Printf("pending trainer count failed: %v", err)
		return storageError(c)
	}

	return c.JSON(fiber.Map{
		"users":                        users,
		"products":                     products,
		"orders":                       orders,
		"revenue":                      money.Amount(revenue, "USD"),
		"pending_trainer_applications": pendingTrainers,
	})
}

// HandleAdminListUsers pages through accounts (admin only).
func HandleAdminListUsers(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	users, err := repos().User.List(offset, limit)
	if err != nil {
		log.Printf("user list failed: %v", err)
		return storageError(c)
	}

	out := make([]fiber.Map, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	return c.JSON(fiber.Map{"users": out})
}
