package calendar

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	calendarRepo "slotify/database/repository/calendar"
	grantRepo "slotify/database/repository/grant"
	settingsRepo "slotify/database/repository/settings"
	"slotify/models"
	"slotify/utils"
)

// DefaultCalendarService wires the access resolver, policy store and slot
// engine over the injected repositories and the external provider. It keeps
// no state between requests.
type DefaultCalendarService struct {
	CalendarRepo calendarRepo.CalendarRepository
	GrantRepo    grantRepo.GrantRepository
	SettingsRepo settingsRepo.SettingsRepository
	Tokens       TokenSource
	Provider     Provider
}

func (s *DefaultCalendarService) GetCalendarForBuyer(ctx context.Context, calendarID, tenantID string) (*models.CalendarView, error) {
	cal, err := s.loadCalendar(ctx, calendarID)
	if err != nil {
		return nil, err
	}

	// Public calendars need no grant lookup at all.
	if cal.IsPublic {
		return &models.CalendarView{
			ID:          cal.ID,
			Name:        cal.Name,
			Description: cal.Description,
			IsPublic:    cal.IsPublic,
			ShowDetails: cal.ShowDetails,
			TimeZone:    cal.TimeZone,
		}, nil
	}

	if tenantID == "" {
		return nil, newForbidden("Calendar not accessible")
	}
	grant, err := s.loadGrant(ctx, calendarID, tenantID)
	if err != nil {
		return nil, err
	}
	if grant == nil {
		return nil, newForbidden("Tenant not authorized")
	}

	name := cal.Name
	if grant.CustomPolicy != nil && grant.CustomPolicy.DisplayName != "" {
		name = grant.CustomPolicy.DisplayName
	}
	return &models.CalendarView{
		ID:             cal.ID,
		Name:           name,
		Description:    cal.Description,
		IsPublic:       cal.IsPublic,
		ShowDetails:    cal.ShowDetails,
		TimeZone:       cal.TimeZone,
		TenantSettings: grant.CustomPolicy,
		CanBook:        grant.CanBook,
	}, nil
}

func (s *DefaultCalendarService) GetCalendarEvents(ctx context.Context, calendarID, tenantID string, opts models.EventQueryOptions) ([]models.CalendarEvent, error) {
	cal, err := s.loadCalendar(ctx, calendarID)
	if err != nil {
		return nil, err
	}

	grant, err := s.grantForAccess(ctx, cal, tenantID)
	if err != nil {
		return nil, err
	}
	if err := ResolveAccess(cal, grant, tenantID, OpRead); err != nil {
		return nil, err
	}

	accessToken, err := s.Tokens.AccessTokenForOwner(ctx, cal.OwnerID)
	if err != nil {
		return nil, newOwnerNotConnected("Calendar owner not connected")
	}

	if opts.TimeMin == "" {
		opts.TimeMin = time.Now().UTC().Format(time.RFC3339)
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = 50
	}

	events, err := s.Provider.ListEvents(ctx, accessToken, cal.GoogleCalendarID, opts)
	if err != nil {
		return nil, newProviderError("failed to fetch calendar events", err)
	}

	// Hidden-detail calendars expose only busy/free ranges: every event is
	// reduced to {id, start, end, status}.
	if !cal.ShowDetails {
		redacted := make([]models.CalendarEvent, len(events))
		for i, ev := range events {
			redacted[i] = ev.Redacted()
		}
		return redacted, nil
	}
	return events, nil
}

func (s *DefaultCalendarService) CreateCalendarEvent(ctx context.Context, calendarID, tenantID string, event *models.EventInput) (*models.CalendarEvent, error) {
	if event == nil {
		return nil, newInvalidInput("event payload is required")
	}

	cal, err := s.loadCalendar(ctx, calendarID)
	if err != nil {
		return nil, err
	}

	grant, err := s.grantForAccess(ctx, cal, tenantID)
	if err != nil {
		return nil, err
	}
	if err := ResolveAccess(cal, grant, tenantID, OpBook); err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx, calendarID)
	if err != nil {
		return nil, err
	}
	policy := EffectivePolicy(settings, grant)
	if !policy.BookingEnabled {
		return nil, newBookingNotAllowed("Booking not allowed")
	}

	accessToken, err := s.Tokens.AccessTokenForOwner(ctx, cal.OwnerID)
	if err != nil {
		return nil, newOwnerNotConnected("Calendar owner not connected")
	}

	// Exactly one external write per accepted call. There is no idempotency
	// key: a caller retry after a transport failure can double-book, and two
	// concurrent bookings for overlapping slots can both succeed against a
	// stale busy snapshot. The provider is the only point of serialization.
	created, err := s.Provider.CreateEvent(ctx, accessToken, cal.GoogleCalendarID, event)
	if err != nil {
		return nil, newProviderError("failed to create calendar event", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("calendarID", cal.ID),
		zap.String("tenantID", tenantID),
		zap.String("eventID", created.ID))
	return created, nil
}

func (s *DefaultCalendarService) GetCalendarAvailability(ctx context.Context, calendarID, tenantID, date string, durationMinutes int) ([]models.AvailabilitySlot, error) {
	if date == "" {
		return nil, newInvalidInput("date parameter is required")
	}

	cal, err := s.loadCalendar(ctx, calendarID)
	if err != nil {
		return nil, err
	}

	grant, err := s.grantForAccess(ctx, cal, tenantID)
	if err != nil {
		return nil, err
	}
	if err := ResolveAccess(cal, grant, tenantID, OpRead); err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx, calendarID)
	if err != nil {
		return nil, err
	}
	policy := EffectivePolicy(settings, grant)
	if durationMinutes <= 0 {
		durationMinutes = policy.BookingSlotDuration
	}

	// The date-to-instant conversion applies the calendar's declared time
	// zone exactly once, here at the boundary. Everything after runs on
	// absolute instants.
	loc, err := calendarLocation(cal)
	if err != nil {
		return nil, newInvalidInput(fmt.Sprintf("calendar has invalid time zone %q", cal.TimeZone))
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, newInvalidInput("date must be formatted as YYYY-MM-DD")
	}

	hours := WorkingHoursFor(policy, day)
	if !hours.Enabled {
		return []models.AvailabilitySlot{}, nil
	}

	windowStart, okStart := atClock(day, hours.Start, loc)
	windowEnd, okEnd := atClock(day, hours.End, loc)
	if !okStart || !okEnd || !windowStart.Before(windowEnd) {
		// Malformed stored hours resolve to a closed day rather than failing
		// the request.
		return []models.AvailabilitySlot{}, nil
	}

	accessToken, err := s.Tokens.AccessTokenForOwner(ctx, cal.OwnerID)
	if err != nil {
		return nil, newOwnerNotConnected("Calendar owner not connected")
	}

	busy, err := s.Provider.ListBusyIntervals(ctx, accessToken, cal.GoogleCalendarID, windowStart, windowEnd)
	if err != nil {
		// An empty slot list is observably different from a provider
		// failure, so the whole computation aborts.
		return nil, newProviderError("failed to fetch busy intervals", err)
	}

	return ComputeAvailableSlots(windowStart, windowEnd, busy, durationMinutes), nil
}

func (s *DefaultCalendarService) loadCalendar(ctx context.Context, calendarID string) (*models.Calendar, error) {
	if calendarID == "" {
		return nil, newInvalidInput("calendarId is required")
	}
	cal, err := s.CalendarRepo.GetByID(ctx, calendarID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, newNotFound("Calendar not found")
		}
		return nil, fmt.Errorf("failed to load calendar %s: %w", calendarID, err)
	}
	return cal, nil
}

// grantForAccess fetches the tenant's active grant once per request. Absence
// is not an error here; ResolveAccess decides what absence means.
func (s *DefaultCalendarService) grantForAccess(ctx context.Context, cal *models.Calendar, tenantID string) (*models.TenantCalendar, error) {
	if tenantID == "" {
		return nil, nil
	}
	return s.loadGrant(ctx, cal.ID, tenantID)
}

func (s *DefaultCalendarService) loadGrant(ctx context.Context, calendarID, tenantID string) (*models.TenantCalendar, error) {
	grant, err := s.GrantRepo.GetActive(ctx, calendarID, tenantID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load grant for tenant %s: %w", tenantID, err)
	}
	return grant, nil
}

func (s *DefaultCalendarService) loadSettings(ctx context.Context, calendarID string) (*models.CalendarSettings, error) {
	settings, err := s.SettingsRepo.GetByCalendarID(ctx, calendarID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load settings for calendar %s: %w", calendarID, err)
	}
	return settings, nil
}

func calendarLocation(cal *models.Calendar) (*time.Location, error) {
	if cal.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(cal.TimeZone)
}

// atClock combines a localized day with an "HH:MM" wall-clock time.
func atClock(day time.Time, clock string, loc *time.Location) (time.Time, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), true
}
