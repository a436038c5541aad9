// Package membership manages the paired membership/payment lifecycle:
// creation as one transactional unit, supersession on tier change, and
// the read paths for active state and history.
package membership

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/money"
	"github.com/fitkart/FitKart/internal/pkg/plans"
)

// Service provides the membership lifecycle operations.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a membership service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// NewServiceFromDB creates a membership service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// Create validates the tier, then writes the membership and its payment
// record as one transaction. Returns both created records with their
// server-assigned identifiers.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Membership, *models.Payment, error) {
	tier := plans.Tier(strings.ToLower(strings.TrimSpace(in.Tier)))
	if !plans.Valid(tier) {
		return nil, nil, models.ErrInvalidTier
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "USD"
	}

	price := in.Price
	if price.IsZero() {
		price = plans.Price(tier)
	}

	invoice := strings.TrimSpace(in.InvoiceNumber)
	if invoice == "" {
		invoice = fmt.Sprintf("INV-%s", strings.ToUpper(uuid.NewString()[:8]))
	}

	now := s.now().UTC()
	m := &models.Membership{
		UserID:   in.UserID,
		Tier:     string(tier),
		Status:   models.MembershipStatusActive,
		StartsAt: now,
		EndsAt:   now.AddDate(0, 0, plans.DurationDays(tier)),
	}
	p := &models.Payment{
		UserID:          in.UserID,
		Amount:          money.Round(price, currency),
		Currency:        currency,
		PaymentMethod:   in.PaymentMethod,
		PaymentIntentID: in.PaymentIntentID,
		InvoiceNumber:   invoice,
		BillingName:     strings.TrimSpace(in.BillingName),
		BillingEmail:    strings.TrimSpace(in.BillingEmail),
	}

	if err := s.repo.CreateWithPayment(m, p); err != nil {
		return nil, nil, err
	}

	return m, p, nil
}

// Active returns the membership currently valid for the user, or nil.
func (s *Service) Active(ctx context.Context, userID uint) (*models.Membership, error) {
	return s.repo.ActiveByUser(userID, s.now().UTC())
}

// History returns all memberships for the user, newest first.
func (s *Service) History(ctx context.Context, userID uint) ([]models.Membership, error) {
	return s.repo.HistoryByUser(userID)
}

// Payments returns all payments for the user, newest first.
func (s *Service) Payments(ctx context.Context, userID uint) ([]models.Payment, error) {
	return s.repo.PaymentsByUser(userID)
}
