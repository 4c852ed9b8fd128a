package models

import "time"

// Grant roles ordered from most to least privileged.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// TenantCalendar links a tenant to a calendar with a role and booking
// permission. One grant per (tenant, calendar) pair; a grant with
// IsActive=false is treated as absent by every access check.
type TenantCalendar struct {
	ID           string          `bson:"id" json:"id"`
	TenantID     string          `bson:"tenantId" json:"tenantId"`
	CalendarID   string          `bson:"calendarId" json:"calendarId"`
	Role         string          `bson:"role" json:"role"`
	CanBook      bool            `bson:"canBook" json:"canBook"`
	CustomPolicy *PolicyOverride `bson:"customPolicy,omitempty" json:"customPolicy,omitempty"`
	IsActive     bool            `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}
