// File: database/repository/calendar/crud.go
package calendarRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

func (r *mongoCalendarRepo) Create(ctx context.Context, cal *models.Calendar) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cal.ID == "" {
		cal.ID = uuid.New().String()
	}
	if cal.TimeZone == "" {
		cal.TimeZone = "UTC"
	}
	now := time.Now()
	cal.CreatedAt = now
	cal.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, cal)
	return err
}

func (r *mongoCalendarRepo) GetByID(ctx context.Context, id string) (*models.Calendar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cal models.Calendar
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cal); err != nil {
		return nil, err
	}
	return &cal, nil
}

func (r *mongoCalendarRepo) GetByGoogleCalendarID(ctx context.Context, googleCalendarID string) (*models.Calendar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cal models.Calendar
	if err := r.coll.FindOne(ctx, bson.M{"googleCalendarId": googleCalendarID}).Decode(&cal); err != nil {
		return nil, err
	}
	return &cal, nil
}

func (r *mongoCalendarRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Calendar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cals []models.Calendar
	if err := cursor.All(ctx, &cals); err != nil {
		return nil, err
	}
	return cals, nil
}

func (r *mongoCalendarRepo) Update(ctx context.Context, cal *models.Calendar) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cal.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": cal.ID}, cal)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCalendarRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
