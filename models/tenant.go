package models

import "time"

// Tenant is a buyer-side scope that may hold grants on calendars.
type Tenant struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	OwnerID          string    `bson:"ownerId" json:"ownerId"`
	GoogleCalendarID string    `bson:"googleCalendarId,omitempty" json:"googleCalendarId,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
