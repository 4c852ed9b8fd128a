// File: database/repository/token/interface.go
package tokenRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

type TokenRepository interface {
	GetByOwnerID(ctx context.Context, ownerID string) (*models.GoogleToken, error)
	Upsert(ctx context.Context, t *models.GoogleToken) error
	DeleteByOwnerID(ctx context.Context, ownerID string) error
	// ListExpiringBefore returns tokens whose expiry falls before the cutoff,
	// for the background refresh sweep.
	ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]models.GoogleToken, error)
	EnsureIndexes() error
}

type mongoTokenRepo struct {
	coll *mongo.Collection
}

// NewMongoTokenRepo constructs a TokenRepository backed by the given database.
func NewMongoTokenRepo(db *mongo.Database) TokenRepository {
	return &mongoTokenRepo{
		coll: db.Collection("google_tokens"),
	}
}
