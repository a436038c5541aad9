package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/money"
)

// HandleListProducts returns the shop-visible catalog page.
func HandleListProducts(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 24)
	if limit < 1 || limit > 100 {
		limit = 24
	}

	products, err := repos().Product.ListActive(offset, limit)
	if err != nil {
		log.Printf("product list failed: %v", err)
		return storageError(c)
	}

	out := make([]fiber.Map, 0, len(products))
	for i := range products {
		out = append(out, productJSON(&products[i]))
	}
	return c.JSON(fiber.Map{"products": out})
}

// HandleGetProduct returns one product.
func HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	product, err := repos().Product.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("product lookup failed: %v", err)
		return storageError(c)
	}
	return c.JSON(fiber.Map{"product": productJSON(product)})
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

// HandleAdminCreateProduct adds a catalog entry (admin only).
func HandleAdminCreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" || req.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and a non-negative price are required",
		})
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       money.FromFloat(req.Price, currency),
		Currency:    currency,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := repos().Product.Create(product); err != nil {
		log.Printf("product create failed: %v", err)
		return storageError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"product": productJSON(product),
	})
}

// HandleAdminUpdateProduct edits a catalog entry (admin only).
func HandleAdminUpdateProduct(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	product, err := repos().Product.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return storageError(c)
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Price > 0 {
		product.Price = money.FromFloat(req.Price, product.Currency)
	}
	if req.Stock >= 0 {
		product.Stock = req.Stock
	}
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := repos().Product.Update(product); err != nil {
		log.Printf("product update failed: %v", err)
		return storageError(c)
	}
	return c.JSON(fiber.Map{"success": true, "product": productJSON(product)})
}

// HandleAdminDeleteProduct removes a catalog entry (admin only).
func HandleAdminDeleteProduct(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}
	if err := repos().Product.Delete(id); err != nil {
		log.Printf("product delete failed: %v", err)
		return storageError(c)
	}
	return c.JSON(fiber.Map{"success": true})
}
