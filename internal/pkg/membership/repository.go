package membership

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
)

// Repository provides DB operations used by the membership service.
type Repository interface {
	// CreateWithPayment persists the membership and its payment in one
	// transaction, superseding any previously active membership of the
	// same user. Either both rows land or neither does.
	CreateWithPayment(m *models.Membership, p *models.Payment) error
	ActiveByUser(userID uint, at time.Time) (*models.Membership, error)
	HistoryByUser(userID uint) ([]models.Membership, error)
	PaymentsByUser(userID uint) ([]models.Payment, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a membership repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateWithPayment(m *models.Membership, p *models.Payment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Membership{}).
			Where("user_id = ? AND status = ?", m.UserID, models.MembershipStatusActive).
			Update("status", models.MembershipStatusSuperseded).Error; err != nil {
			return err
		}

		if err := tx.Create(m).Error; err != nil {
			return err
		}

		p.MembershipID = m.ID
		p.UserID = m.UserID
		return tx.Create(p).Error
	})
}

// ActiveByUser returns the membership active at the given instant, or
// nil when the user has none.
func (r *gormRepository) ActiveByUser(userID uint, at time.Time) (*models.Membership, error) {
	var m models.Membership
	err := r.db.
		Where("user_id = ? AND status = ? AND starts_at <= ? AND ends_at >= ?",
			userID, models.MembershipStatusActive, at, at).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) HistoryByUser(userID uint) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&memberships).Error
	return memberships, err
}

func (r *gormRepository) PaymentsByUser(userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&payments).Error
	return payments, err
}
