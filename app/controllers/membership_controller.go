package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/database"
	"github.com/fitkart/FitKart/internal/pkg/membership"
	"github.com/fitkart/FitKart/internal/pkg/money"
	"github.com/fitkart/FitKart/internal/pkg/usercontext"
)

func membershipService() *membership.Service {
	return membership.NewServiceFromDB(database.GetDB())
}

// HandleGetMemberships answers active/history/payments queries for a
// user. Regular users only see their own records; admins may pass any
// userId.
func HandleGetMemberships(c *fiber.Ctx) error {
	userID := parseUintQuery(c, "userId")
	if userID == 0 || !usercontext.HasCapability(c, models.CapViewAdminStats) {
		userID = usercontext.GetUserID(c)
	}

	svc := membershipService()
	switch c.Query("type", "active") {
	case "active":
		m, err := svc.Active(c.Context(), userID)
		if err != nil {
			log.Printf("active membership lookup failed: %v", err)
			return storageError(c)
		}
		if m == nil {
			return c.JSON(fiber.Map{"membership": nil})
		}
		return c.JSON(fiber.Map{"membership": membershipJSON(m)})

	case "history":
		history, err := svc.History(c.Context(), userID)
		if err != nil {
			log.Printf("membership history lookup failed: %v", err)
			return storageError(c)
		}
		out := make([]fiber.Map, 0, len(history))
		for i := range history {
			out = append(out, membershipJSON(&history[i]))
		}
		return c.JSON(fiber.Map{"memberships": out})

	case "payments":
		payments, err := svc.Payments(c.Context(), userID)
		if err != nil {
			log.Printf("payment history lookup failed: %v", err)
			return storageError(c)
		}
		out := make([]fiber.Map, 0, len(payments))
		for i := range payments {
			out = append(out, paymentJSON(&payments[i]))
		}
		return c.JSON(fiber.Map{"payments": out})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid type, expected active, history or payments",
	})
}

type createMembershipRequest struct {
	UserID          uint    `json:"userId"`
	MembershipType  string  `json:"membershipType"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentIntentID string  `json:"paymentIntentId"`
	InvoiceNumber   string  `json:"invoiceNumber"`
	BillingName     string  `json:"billingName"`
	BillingEmail    string  `json:"billingEmail"`
}

func (r *createMembershipRequest) toInput(userID uint) membership.CreateInput {
	currency := r.Currency
	if currency == "" {
		currency = "USD"
	}
	return membership.CreateInput{
		UserID:          userID,
		Tier:            r.MembershipType,
		Price:           money.FromFloat(r.Price, currency),
		Currency:        currency,
		PaymentMethod:   r.PaymentMethod,
		PaymentIntentID: r.PaymentIntentID,
		InvoiceNumber:   r.InvoiceNumber,
		BillingName:     r.BillingName,
		BillingEmail:    r.BillingEmail,
	}
}

// HandleCreateMembership opens a membership period for the logged-in
// user, paired with its payment record.
func HandleCreateMembership(c *fiber.Ctx) error {
	var req createMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	m, p, err := membershipService().Create(c.Context(), req.toInput(usercontext.GetUserID(c)))
	if err != nil {
		if errors.Is(err, models.ErrInvalidTier) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid membership type",
			})
		}
		log.Printf("membership create failed: %v", err)
		return storageError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":        true,
		"membership":     membershipJSON(m),
		"paidMembership": paymentJSON(p),
	})
}

// HandleTestMembership creates a membership for an arbitrary user.
// Exercised by integration smoke checks; any failure is a plain 500.
func HandleTestMembership(c *fiber.Ctx) error {
	var req createMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return storageError(c)
	}

	m, p, err := membershipService().Create(c.Context(), req.toInput(req.UserID))
	if err != nil {
		log.Printf("test membership create failed: %v", err)
		return storageError(c)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"membership":     membershipJSON(m),
		"paidMembership": paymentJSON(p),
	})
}
