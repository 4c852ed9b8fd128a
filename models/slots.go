package models

import "time"

// BusyInterval is a half-open range [Start, End) during which the calendar
// is unavailable. Sourced from the external provider, never persisted.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailabilitySlot is a bookable range [Start, End) of exactly the policy's
// slot duration, guaranteed not to overlap any busy interval.
type AvailabilitySlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
