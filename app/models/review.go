package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is stored in the MongoDB "reviews" collection, keyed by
// product and user.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID uint               `bson:"product_id" json:"product_id"`
	UserID    uint               `bson:"user_id" json:"user_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	Rating    int                `bson:"rating" json:"rating" validate:"gte=1,lte=5"`
	Comment   string             `bson:"comment" json:"comment" validate:"max=2000"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
