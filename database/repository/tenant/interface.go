// File: database/repository/tenant/interface.go
package tenantRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

type TenantRepository interface {
	Create(ctx context.Context, t *models.Tenant) error
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Tenant, error)
	DeleteByID(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoTenantRepo struct {
	coll *mongo.Collection
}

// NewMongoTenantRepo constructs a TenantRepository backed by the given database.
func NewMongoTenantRepo(db *mongo.Database) TenantRepository {
	return &mongoTenantRepo{
		coll: db.Collection("tenants"),
	}
}
