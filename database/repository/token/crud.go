// File: database/repository/token/crud.go
package tokenRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotify/models"
)

func (r *mongoTokenRepo) GetByOwnerID(ctx context.Context, ownerID string) (*models.GoogleToken, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t models.GoogleToken
	if err := r.coll.FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoTokenRepo) Upsert(ctx context.Context, t *models.GoogleToken) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"ownerId": t.OwnerID}, t, opts)
	return err
}

func (r *mongoTokenRepo) DeleteByOwnerID(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTokenRepo) ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]models.GoogleToken, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"expiryDate": bson.M{"$lt": cutoff}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tokens []models.GoogleToken
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// EnsureIndexes creates the necessary indexes on the google_tokens collection.
func (r *mongoTokenRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_owner_id"),
		},
		{
			Keys:    bson.D{{Key: "expiryDate", Value: 1}},
			Options: options.Index().SetName("expiry_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create token indexes: %w", err)
	}
	return nil
}
