// File: database/repository/calendar/interface.go
package calendarRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

type CalendarRepository interface {
	Create(ctx context.Context, cal *models.Calendar) error
	GetByID(ctx context.Context, id string) (*models.Calendar, error)
	GetByGoogleCalendarID(ctx context.Context, googleCalendarID string) (*models.Calendar, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Calendar, error)
	Update(ctx context.Context, cal *models.Calendar) error
	DeleteByID(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo constructs a CalendarRepository backed by the given database.
func NewMongoCalendarRepo(db *mongo.Database) CalendarRepository {
	return &mongoCalendarRepo{
		coll: db.Collection("calendars"),
	}
}
