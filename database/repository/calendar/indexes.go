// File: database/repository/calendar/indexes.go
package calendarRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the calendars collection.
func (r *mongoCalendarRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// googleCalendarId is unique across the whole system.
		{
			Keys:    bson.D{{Key: "googleCalendarId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_google_calendar_id"),
		},
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}},
			Options: options.Index().SetName("owner_idx"),
		},
		{
			Keys:    bson.D{{Key: "isPublic", Value: 1}},
			Options: options.Index().SetName("public_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create calendar indexes: %w", err)
	}
	return nil
}
