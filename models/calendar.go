package models

import "time"

// Calendar represents one bookable calendar connected by an owner.
type Calendar struct {
	ID               string    `bson:"id" json:"id"`
	GoogleCalendarID string    `bson:"googleCalendarId" json:"googleCalendarId"` // unique across the system
	Name             string    `bson:"name" json:"name"`
	Description      string    `bson:"description,omitempty" json:"description,omitempty"`
	OwnerID          string    `bson:"ownerId" json:"ownerId"`
	IsPublic         bool      `bson:"isPublic" json:"isPublic"`
	ShowDetails      bool      `bson:"showDetails" json:"showDetails"`
	TimeZone         string    `bson:"timeZone" json:"timeZone"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CalendarView is the buyer-facing projection of a calendar. For private
// calendars it carries the requesting tenant's grant data merged in.
type CalendarView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	IsPublic       bool            `json:"isPublic"`
	ShowDetails    bool            `json:"showDetails"`
	TimeZone       string          `json:"timeZone"`
	TenantSettings *PolicyOverride `json:"tenantSettings,omitempty"`
	CanBook        bool            `json:"canBook,omitempty"`
}
