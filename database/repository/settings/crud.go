// File: database/repository/settings/crud.go
package settingsRepo

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

func (r *mongoSettingsRepo) GetByCalendarID(ctx context.Context, calendarID string) (*models.CalendarSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.CalendarSettings
	if err := r.coll.FindOne(ctx, bson.M{"calendarId": calendarID}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoSettingsRepo) Upsert(ctx context.Context, s *models.CalendarSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"calendarId": s.CalendarID}, s, opts)
	return err
}

func (r *mongoSettingsRepo) DeleteByCalendarID(ctx context.Context, calendarID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"calendarId": calendarID})
	return err
}

// EnsureIndexes creates the necessary indexes on the calendar_settings collection.
func (r *mongoSettingsRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "calendarId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_calendar_id"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create settings indexes: %w", err)
	}
	return nil
}
