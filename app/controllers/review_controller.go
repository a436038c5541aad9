package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/usercontext"
)

// HandleListReviews returns the latest reviews for a product from the
// document store.
func HandleListReviews(c *fiber.Ctx) error {
	productID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	reviews, err := repos().Review.ListByProduct(c.Context(), productID, limit)
	if err != nil {
		log.Printf("review list failed: %v", err)
		return storageError(c)
	}
	count, err := repos().Review.CountByProduct(c.Context(), productID)
	if err != nil {
		log.Printf("review count failed: %v", err)
		return storageError(c)
	}

	return c.JSON(fiber.Map{"reviews": reviews, "total": count})
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// HandleCreateReview stores a product review for the logged-in user.
func HandleCreateReview(c *fiber.Ctx) error {
	productID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	if _, err := repos().Product.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return storageError(c)
	}

	var req createReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	userCtx := usercontext.GetUserContext(c)
	review := &models.Review{
		ProductID: productID,
		UserID:    userCtx.UserID,
		UserName:  userCtx.Username,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := validator.New().Struct(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "rating must be between 1 and 5",
		})
	}

	if err := repos().Review.Create(c.Context(), review); err != nil {
		log.Printf("review create failed: %v", err)
		return storageError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"review":  review,
	})
}
