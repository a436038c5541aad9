package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
}

// ProductRepository defines the interface for catalog operations
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	ListActive(offset, limit int) ([]models.Product, error)
	List(offset, limit int) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	Count() (int64, error)
	// DecrementStock subtracts quantity guarded by a stock check in the
	// same statement; returns models.ErrInsufficientStock when the
	// product has fewer units than requested.
	DecrementStock(id uint, quantity int) error
}

// OrderRepository defines the interface for order operations
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByUserID(userID uint, offset, limit int) ([]models.Order, error)
	List(offset, limit int) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
	Count() (int64, error)
	RevenueTotal() (decimal.Decimal, error)
}

// CouponRepository defines the interface for coupon operations. The
// usage increment is a single conditional update so concurrent
// redemptions cannot push UsedCount past MaxUses.
type CouponRepository interface {
	Create(coupon *models.Coupon) error
	GetByID(id uint) (*models.Coupon, error)
	GetByCode(code string) (*models.Coupon, error)
	List(offset, limit int) ([]models.Coupon, error)
	Delete(id uint) error
	// IncrementUsage bumps used_count by one unless the cap is already
	// reached; reports whether a row was updated.
	IncrementUsage(id uint) (bool, error)
}

// NotificationRepository defines the interface for the append-only
// notification feed. Reads window by creation time and limit.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListForUser(userID uint, since time.Time, limit int) ([]models.Notification, error)
	ListAdmin(since time.Time, limit int) ([]models.Notification, error)
	MarkRead(id, userID uint) error
}

// TrainerRepository defines the interface for trainer applications
type TrainerRepository interface {
	Create(app *models.TrainerApplication) error
	GetByID(id uint) (*models.TrainerApplication, error)
	ListByStatus(status string, offset, limit int) ([]models.TrainerApplication, error)
	Update(app *models.TrainerApplication) error
	CountPending() (int64, error)
}

// CartRepository defines the interface for the Redis-backed cart
type CartRepository interface {
	Get(userID uint) (*models.Cart, error)
	Save(cart *models.Cart) error
	Clear(userID uint) error
}

// ReviewRepository defines the interface for the Mongo-backed reviews
// collection
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByProduct(ctx context.Context, productID uint, limit int) ([]models.Review, error)
	CountByProduct(ctx context.Context, productID uint) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Product      ProductRepository
	Order        OrderRepository
	Coupon       CouponRepository
	Notification NotificationRepository
	Trainer      TrainerRepository
	Cart         CartRepository
	Review       ReviewRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Product:      NewProductRepository(db),
		Order:        NewOrderRepository(db),
		Coupon:       NewCouponRepository(db),
		Notification: NewNotificationRepository(db),
		Trainer:      NewTrainerRepository(db),
		Cart:         NewCartRepository(),
		Review:       NewReviewRepository(),
	}
}
