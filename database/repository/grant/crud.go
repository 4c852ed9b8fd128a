// File: database/repository/grant/crud.go
package grantRepo

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

func (r *mongoGrantRepo) Create(ctx context.Context, g *models.TenantCalendar) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Role == "" {
		g.Role = models.RoleViewer
	}
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, g)
	return err
}

func (r *mongoGrantRepo) Get(ctx context.Context, calendarID, tenantID string) (*models.TenantCalendar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"calendarId": calendarID, "tenantId": tenantID}
	var g models.TenantCalendar
	if err := r.coll.FindOne(ctx, filter).Decode(&g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *mongoGrantRepo) GetActive(ctx context.Context, calendarID, tenantID string) (*models.TenantCalendar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"calendarId": calendarID,
		"tenantId":   tenantID,
		"isActive":   true,
	}
	var g models.TenantCalendar
	if err := r.coll.FindOne(ctx, filter).Decode(&g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *mongoGrantRepo) ListByCalendar(ctx context.Context, calendarID string) ([]models.TenantCalendar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"calendarId": calendarID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var grants []models.TenantCalendar
	if err := cursor.All(ctx, &grants); err != nil {
		return nil, err
	}
	return grants, nil
}

func (r *mongoGrantRepo) Update(ctx context.Context, g *models.TenantCalendar) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	g.UpdatedAt = time.Now()
	filter := bson.M{"calendarId": g.CalendarID, "tenantId": g.TenantID}
	res, err := r.coll.ReplaceOne(ctx, filter, g)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGrantRepo) DeleteByCalendar(ctx context.Context, calendarID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"calendarId": calendarID})
	return err
}

// EnsureIndexes creates the necessary indexes on the tenant_calendars collection.
func (r *mongoGrantRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// A tenant holds at most one grant per calendar.
		{
			Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "calendarId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_tenant_calendar"),
		},
		{
			Keys:    bson.D{{Key: "calendarId", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index().SetName("calendar_active_idx"),
		},
		{
			Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index().SetName("tenant_active_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create grant indexes: %w", err)
	}
	return nil
}
