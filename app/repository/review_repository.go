package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/docstore"
)

const reviewsCollection = "reviews"

// reviewRepository stores reviews in the MongoDB reviews collection
type reviewRepository struct{}

// NewReviewRepository creates a new Mongo-backed review repository
func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) collection() (*mongo.Collection, error) {
	db := docstore.Database()
	if db == nil {
		return nil, errors.New("document store unavailable")
	}
	return db.Collection(reviewsCollection), nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	res, err := coll.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID uint, limit int) ([]models.Review, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := coll.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]models.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	coll, err := r.collection()
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{"product_id": productID})
}
