package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/app/repository"
	"github.com/fitkart/FitKart/internal/pkg/money"
)

func repos() *repository.Repositories {
	return repository.GetGlobalFactory().GetRepositories()
}

// parseUintParam parses a numeric path parameter.
func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// parseUintQuery parses a numeric query parameter, 0 when absent.
func parseUintQuery(c *fiber.Ctx, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// storageError hides store failures behind a generic 500 body.
func storageError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

// Serialization helpers. Decimal amounts become plain JSON numbers
// rounded to the currency's minor unit at this boundary only.

func productJSON(p *models.Product) fiber.Map {
	return fiber.Map{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"price":       money.Amount(p.Price, p.Currency),
		"currency":    p.Currency,
		"stock":       p.Stock,
		"image_url":   p.ImageURL,
		"is_active":   p.IsActive,
		"created_at":  p.CreatedAt,
	}
}

func couponJSON(coupon *models.Coupon) fiber.Map {
	return fiber.Map{
		"id":         coupon.ID,
		"code":       coupon.Code,
		"discount":   money.Amount(coupon.Discount, "USD"),
		"starts_at":  coupon.StartsAt,
		"ends_at":    coupon.EndsAt,
		"max_uses":   coupon.MaxUses,
		"used_count": coupon.UsedCount,
	}
}

func membershipJSON(m *models.Membership) fiber.Map {
	return fiber.Map{
		"id":              m.ID,
		"user_id":         m.UserID,
		"membership_type": m.Tier,
		"status":          m.Status,
		"starts_at":       m.StartsAt,
		"ends_at":         m.EndsAt,
		"created_at":      m.CreatedAt,
	}
}

func paymentJSON(p *models.Payment) fiber.Map {
	return fiber.Map{
		"id":                p.ID,
		"membership_id":     p.MembershipID,
		"user_id":           p.UserID,
		"amount":            money.Amount(p.Amount, p.Currency),
		"currency":          p.Currency,
		"payment_method":    p.PaymentMethod,
		"payment_intent_id": p.PaymentIntentID,
		"invoice_number":    p.InvoiceNumber,
		"billing_name":      p.BillingName,
		"billing_email":     p.BillingEmail,
		"created_at":        p.CreatedAt,
	}
}

func orderJSON(o *models.Order) fiber.Map {
	items := make([]fiber.Map, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, fiber.Map{
			"product_id": item.ProductID,
			"name":       item.Name,
			"unit_price": money.Amount(item.UnitPrice, o.Currency),
			"quantity":   item.Quantity,
		})
	}
	return fiber.Map{
		"id":         o.ID,
		"user_id":    o.UserID,
		"status":     o.Status,
		"subtotal":   money.Amount(o.Subtotal, o.Currency),
		"discount":   money.Amount(o.Discount, o.Currency),
		"total":      money.Amount(o.Total, o.Currency),
		"currency":   o.Currency,
		"coupon_id":  o.CouponID,
		"items":      items,
		"created_at": o.CreatedAt,
	}
}

func cartJSON(cart *models.Cart) fiber.Map {
	items := make([]fiber.Map, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, fiber.Map{
			"product_id": item.ProductID,
			"name":       item.Name,
			"unit_price": money.Amount(item.UnitPrice, "USD"),
			"quantity":   item.Quantity,
		})
	}
	return fiber.Map{
		"user_id":    cart.UserID,
		"items":      items,
		"subtotal":   money.Amount(cart.Subtotal(), "USD"),
		"updated_at": cart.UpdatedAt,
	}
}
