// File: database/repository/grant/interface.go
package grantRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

// GrantRepository persists tenant-calendar grants. Soft deletion is done by
// flipping isActive; GetActive never returns inactive grants.
type GrantRepository interface {
	Create(ctx context.Context, g *models.TenantCalendar) error
	// Get fetches a grant regardless of isActive.
	Get(ctx context.Context, calendarID, tenantID string) (*models.TenantCalendar, error)
	GetActive(ctx context.Context, calendarID, tenantID string) (*models.TenantCalendar, error)
	ListByCalendar(ctx context.Context, calendarID string) ([]models.TenantCalendar, error)
	Update(ctx context.Context, g *models.TenantCalendar) error
	DeleteByCalendar(ctx context.Context, calendarID string) error
	EnsureIndexes() error
}

type mongoGrantRepo struct {
	coll *mongo.Collection
}

// NewMongoGrantRepo constructs a GrantRepository backed by the given database.
func NewMongoGrantRepo(db *mongo.Database) GrantRepository {
	return &mongoGrantRepo{
		coll: db.Collection("tenant_calendars"),
	}
}
