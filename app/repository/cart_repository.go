package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/cache"
)

// Carts expire after two weeks of inactivity.
const cartTTL = 14 * 24 * time.Hour

// cartRepository stores carts as JSON blobs in Redis
type cartRepository struct{}

// NewCartRepository creates a new Redis-backed cart repository
func NewCartRepository() CartRepository {
	return &cartRepository{}
}

func cartKey(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

// Get loads the user's cart; a missing key yields an empty cart, not
// an error.
func (r *cartRepository) Get(userID uint) (*models.Cart, error) {
	raw, err := cache.Get(cartKey(userID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		}
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Save(cart *models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return cache.Set(cartKey(cart.UserID), raw, cartTTL)
}

func (r *cartRepository) Clear(userID uint) error {
	return cache.Delete(cartKey(userID))
}
