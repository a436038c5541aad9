package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/realtime"
	"github.com/fitkart/FitKart/internal/pkg/usercontext"
)

// HandleGetCart returns the logged-in user's cart.
func HandleGetCart(c *fiber.Ctx) error {
	cart, err := repos().Cart.Get(usercontext.GetUserID(c))
	if err != nil {
		log.Printf("cart load failed: %v", err)
		return storageError(c)
	}
	return c.JSON(fiber.Map{"cart": cartJSON(cart)})
}

type addCartItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// HandleAddCartItem puts a product into the cart and pushes the new
// cart state over the realtime hub.
func HandleAddCartItem(c *fiber.Ctx) error {
	var req addCartItemRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "productId is required",
		})
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, err := repos().Product.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return storageError(c)
	}
	if !product.InStock(req.Quantity) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Not enough stock",
		})
	}

	userID := usercontext.GetUserID(c)
	cart, err := repos().Cart.Get(userID)
	if err != nil {
		log.Printf("cart load failed: %v", err)
		return storageError(c)
	}
	cart.Upsert(models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  req.Quantity,
	})
	cart.UpdatedAt = time.Now().UTC()
	if err := repos().Cart.Save(cart); err != nil {
		log.Printf("cart save failed: %v", err)
		return storageError(c)
	}

	emitCartState(userID, cart)
	return c.JSON(fiber.Map{"success": true, "cart": cartJSON(cart)})
}

// HandleRemoveCartItem drops one product line from the cart.
func HandleRemoveCartItem(c *fiber.Ctx) error {
	productID, err := parseUintParam(c, "productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	userID := usercontext.GetUserID(c)
	cart, err := repos().Cart.Get(userID)
	if err != nil {
		log.Printf("cart load failed: %v", err)
		return storageError(c)
	}
	cart.Remove(productID)
	cart.UpdatedAt = time.Now().UTC()
	if err := repos().Cart.Save(cart); err != nil {
		log.Printf("cart save failed: %v", err)
		return storageError(c)
	}

	emitCartState(userID, cart)
	return c.JSON(fiber.Map{"success": true, "cart": cartJSON(cart)})
}

// HandleClearCart empties the cart.
func HandleClearCart(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)
	if err := repos().Cart.Clear(userID); err != nil {
		log.Printf("cart clear failed: %v", err)
		return storageError(c)
	}

	empty := &models.Cart{UserID: userID, UpdatedAt: time.Now().UTC()}
	emitCartState(userID, empty)
	return c.JSON(fiber.Map{"success": true, "cart": cartJSON(empty)})
}

func emitCartState(userID uint, cart *models.Cart) {
	if hub := realtime.Global(); hub != nil {
		hub.EmitToUser(userID, realtime.EventCartUpdated, cartJSON(cart))
	}
}
