package calendar

import (
	"context"
	"time"

	"slotify/models"
)

// Service is the buyer-facing calendar surface.
type Service interface {
	GetCalendarForBuyer(ctx context.Context, calendarID, tenantID string) (*models.CalendarView, error)
	GetCalendarEvents(ctx context.Context, calendarID, tenantID string, opts models.EventQueryOptions) ([]models.CalendarEvent, error)
	CreateCalendarEvent(ctx context.Context, calendarID, tenantID string, event *models.EventInput) (*models.CalendarEvent, error)
	GetCalendarAvailability(ctx context.Context, calendarID, tenantID, date string, durationMinutes int) ([]models.AvailabilitySlot, error)
}

// Provider is the external calendar collaborator. Implementations own
// transport, timeout and retry policy; the service propagates their
// failures as provider errors and never swallows them.
type Provider interface {
	ListBusyIntervals(ctx context.Context, accessToken, googleCalendarID string, windowStart, windowEnd time.Time) ([]models.BusyInterval, error)
	ListEvents(ctx context.Context, accessToken, googleCalendarID string, opts models.EventQueryOptions) ([]models.CalendarEvent, error)
	CreateEvent(ctx context.Context, accessToken, googleCalendarID string, event *models.EventInput) (*models.CalendarEvent, error)
}

// TokenSource yields a valid access credential for a calendar owner. Any
// failure is treated as "owner not connected".
type TokenSource interface {
	AccessTokenForOwner(ctx context.Context, ownerID string) (string, error)
}
