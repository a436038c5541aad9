package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/coupons"
	"github.com/fitkart/FitKart/internal/pkg/money"
)

type useCouponRequest struct {
	CouponID uint `json:"couponId"`
}

// HandleUseCoupon redeems one use of a coupon.
func HandleUseCoupon(c *fiber.Ctx) error {
	var req useCouponRequest
	if err := c.BodyParser(&req); err != nil || req.CouponID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "couponId is required",
		})
	}

	svc := coupons.NewService(repos().Coupon)
	currentUses, err := svc.ApplyUsage(c.Context(), req.CouponID)
	if err != nil {
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

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Coupon applied",
		"currentUses": currentUses,
	})
}

type createCouponRequest struct {
	Code     string    `json:"code"`
	Discount float64   `json:"discount"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
	MaxUses  *int      `json:"maxUses"`
}

// HandleAdminCreateCoupon creates a coupon (admin only).
func HandleAdminCreateCoupon(c *fiber.Ctx) error {
	var req createCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Code == "" || req.EndsAt.Before(req.StartsAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "code and a valid validity window are required",
		})
	}
	if req.MaxUses != nil && *req.MaxUses <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "maxUses must be positive",
		})
	}

	coupon := &models.Coupon{
		Code:     req.Code,
		Discount: money.FromFloat(req.Discount, "USD"),
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		MaxUses:  req.MaxUses,
	}
	if err := repos().Coupon.Create(coupon); err != nil {
		log.Printf("coupon create failed: %v", err)
		return storageError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"coupon":  couponJSON(coupon),
	})
}

// HandleAdminListCoupons lists coupons (admin only).
func HandleAdminListCoupons(c *fiber.Ctx) error {
	list, err := repos().Coupon.List(0, 100)
	if err != nil {
		log.Printf("coupon list failed: %v", err)
		return storageError(c)
	}

	out := make([]fiber.Map, 0, len(list))
	for i := range list {
		out = append(out, couponJSON(&list[i]))
	}
	return c.JSON(fiber.Map{"coupons": out})
}

// HandleAdminDeleteCoupon removes a coupon (admin only).
func HandleAdminDeleteCoupon(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid coupon id",
		})
	}

	if _, err := repos().Coupon.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Coupon not found",
			})
		}
		return storageError(c)
	}

	if err := repos().Coupon.Delete(id); err != nil {
		log.Printf("coupon delete failed: %v", err)
		return storageError(c)
	}
	return c.JSON(fiber.Map{"success": true})
}
