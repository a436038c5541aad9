package membership

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitkart/FitKart/app/models"
)

type fakeMembershipRepo struct {
	mu          sync.Mutex
	nextID      uint
	memberships []*models.Membership
	payments    []*models.Payment
	failPayment bool
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{nextID: 1}
}

func (r *fakeMembershipRepo) CreateWithPayment(m *models.Membership, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failPayment {
		// Transactional contract: neither row is persisted.
		return errors.New("payment insert failed")
	}

	for _, existing := range r.memberships {
		if existing.UserID == m.UserID && existing.Status == models.MembershipStatusActive {
			existing.Status = models.MembershipStatusSuperseded
		}
	}

	m.ID = r.nextID
	m.CreatedAt = time.Now().UTC()
	r.nextID++
	r.memberships = append(r.memberships, m)

	p.ID = r.nextID
	p.MembershipID = m.ID
	p.UserID = m.UserID
	p.CreatedAt = time.Now().UTC()
	r.nextID++
	r.payments = append(r.payments, p)
	return nil
}

func (r *fakeMembershipRepo) ActiveByUser(userID uint, at time.Time) (*models.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.memberships) - 1; i >= 0; i-- {
		m := r.memberships[i]
		if m.UserID == userID && m.IsActiveAt(at) {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMembershipRepo) HistoryByUser(userID uint) ([]models.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Membership
	for _, m := range r.memberships {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMembershipRepo) PaymentsByUser(userID uint) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func TestCreateMembershipWithPayment(t *testing.T) {
	repo := newFakeMembershipRepo()
	svc := NewService(repo)

	m, p, err := svc.Create(context.Background(), CreateInput{
		UserID:          1,
		Tier:            "premium",
		Price:           decimal.RequireFromString("49.99"),
		Currency:        "USD",
		PaymentMethod:   models.PaymentMethodCard,
		PaymentIntentID: "pi_123",
		BillingName:     "Jane Doe",
		BillingEmail:    "jane@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, m)
	require.NotNil(t, p)

	assert.NotZero(t, m.ID)
	assert.Equal(t, "premium", m.Tier)
	assert.Equal(t, models.MembershipStatusActive, m.Status)
	assert.Equal(t, m.ID, p.MembershipID)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("49.99")))
	assert.NotEmpty(t, p.InvoiceNumber)

	active, err := svc.Active(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "premium", active.Tier)
}

func TestCreateMembershipInvalidTier(t *testing.T) {
	repo := newFakeMembershipRepo()
	svc := NewService(repo)

	_, _, err := svc.Create(context.Background(), CreateInput{UserID: 1, Tier: "platinum"})
	assert.ErrorIs(t, err, models.ErrInvalidTier)
	assert.Empty(t, repo.memberships)
	assert.Empty(t, repo.payments)
}

func TestCreateMembershipDefaultsPriceFromCatalog(t *testing.T) {
	repo := newFakeMembershipRepo()
	svc := NewService(repo)

	_, p, err := svc.Create(context.Background(), CreateInput{UserID: 1, Tier: "basic"})
	require.NoError(t, err)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, "USD", p.Currency)
}

func TestCreateMembershipAllOrNothing(t *testing.T) {
	repo := newFakeMembershipRepo()
	repo.failPayment = true
	svc := NewService(repo)

	_, _, err := svc.Create(context.Background(), CreateInput{UserID: 1, Tier: "elite"})
	require.Error(t, err)

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTierChangeSupersedesActiveMembership(t *testing.T) {
	repo := newFakeMembershipRepo()
	svc := NewService(repo)

	_, _, err := svc.Create(context.Background(), CreateInput{UserID: 1, Tier: "basic"})
	require.NoError(t, err)
	_, _, err = svc.Create(context.Background(), CreateInput{UserID: 1, Tier: "elite"})
	require.NoError(t, err)

	active, err := svc.Active(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "elite", active.Tier)

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	statuses := map[string]int{}
	for _, m := range history {
		statuses[m.Status]++
	}
	assert.Equal(t, 1, statuses[models.MembershipStatusActive])
	assert.Equal(t, 1, statuses[models.MembershipStatusSuperseded])
}

func TestActiveMembershipNoneForUnknownUser(t *testing.T) {
	svc := NewService(newFakeMembershipRepo())

	active, err := svc.Active(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestPaymentsNewestFirst(t *testing.T) {
	repo := newFakeMembershipRepo()
	svc := NewService(repo)

	_, _, err := svc.Create(context.Background(), CreateInput{UserID: 1, Tier: "basic"})
	require.NoError(t, err)
	_, _, err = svc.Create(context.Background(), CreateInput{UserID: 1, Tier: "premium"})
	require.NoError(t, err)

	payments, err := svc.Payments(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.False(t, payments[0].CreatedAt.Before(payments[1].CreatedAt))
}
