package calendar

import (
	"strings"
	"time"

	"slotify/models"
)

// Hardcoded policy defaults, used when neither the calendar settings nor the
// grant override supply a value.
const (
	defaultBufferTime        = 15 // minutes
	defaultMinAdvanceBooking = 1  // hours
	defaultMaxAdvanceBooking = 30 // days
	defaultSlotDuration      = 60 // minutes
)

// DefaultWorkingHours is 09:00-18:00 on weekdays, closed on weekends.
func DefaultWorkingHours() models.WorkingHours {
	wh := models.WorkingHours{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		wh[day] = models.DayHours{Enabled: true, Start: "09:00", End: "18:00"}
	}
	for _, day := range []string{"saturday", "sunday"} {
		wh[day] = models.DayHours{Enabled: false, Start: "09:00", End: "18:00"}
	}
	return wh
}

// EffectivePolicy merges the policy layers for one (calendar, tenant) pair.
// Grant override fields win over calendar settings, which win over the
// hardcoded defaults. Both settings and grant may be nil.
func EffectivePolicy(settings *models.CalendarSettings, grant *models.TenantCalendar) models.CalendarPolicy {
	policy := models.CalendarPolicy{
		WorkingHours:        DefaultWorkingHours(),
		BufferTime:          defaultBufferTime,
		MinAdvanceBooking:   defaultMinAdvanceBooking,
		MaxAdvanceBooking:   defaultMaxAdvanceBooking,
		BookingSlotDuration: defaultSlotDuration,
		BookingEnabled:      true,
	}

	if settings != nil {
		policy.BookingEnabled = settings.BookingEnabled
		if settings.WorkingHours != nil {
			policy.WorkingHours = settings.WorkingHours
		}
		if settings.BufferTime > 0 {
			policy.BufferTime = settings.BufferTime
		}
		if settings.MinAdvanceBooking > 0 {
			policy.MinAdvanceBooking = settings.MinAdvanceBooking
		}
		if settings.MaxAdvanceBooking > 0 {
			policy.MaxAdvanceBooking = settings.MaxAdvanceBooking
		}
		if settings.BookingSlotDuration > 0 {
			policy.BookingSlotDuration = settings.BookingSlotDuration
		}
	}

	if grant != nil && grant.CustomPolicy != nil {
		override := grant.CustomPolicy
		policy.DisplayName = override.DisplayName
		if override.WorkingHours != nil {
			policy.WorkingHours = override.WorkingHours
		}
		if override.BufferTime != nil {
			policy.BufferTime = *override.BufferTime
		}
		if override.MinAdvanceBooking != nil {
			policy.MinAdvanceBooking = *override.MinAdvanceBooking
		}
		if override.MaxAdvanceBooking != nil {
			policy.MaxAdvanceBooking = *override.MaxAdvanceBooking
		}
		if override.BookingSlotDuration != nil {
			policy.BookingSlotDuration = *override.BookingSlotDuration
		}
	}

	return policy
}

// WorkingHoursFor resolves the hours entry for the weekday of day. The
// caller must pass day already localized to the calendar's time zone, never
// server-local time. A weekday missing from the map means the day is closed.
func WorkingHoursFor(policy models.CalendarPolicy, day time.Time) models.DayHours {
	name := strings.ToLower(day.Weekday().String())
	hours, ok := policy.WorkingHours[name]
	if !ok {
		return models.DayHours{Enabled: false}
	}
	return hours
}
