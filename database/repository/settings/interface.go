// File: database/repository/settings/interface.go
package settingsRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

type SettingsRepository interface {
	GetByCalendarID(ctx context.Context, calendarID string) (*models.CalendarSettings, error)
	Upsert(ctx context.Context, s *models.CalendarSettings) error
	DeleteByCalendarID(ctx context.Context, calendarID string) error
	EnsureIndexes() error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a SettingsRepository backed by the given database.
func NewMongoSettingsRepo(db *mongo.Database) SettingsRepository {
	return &mongoSettingsRepo{
		coll: db.Collection("calendar_settings"),
	}
}
