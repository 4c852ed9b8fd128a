package models

import "time"

// DayHours is one weekday's bookable window. Start and End are "HH:MM"
// wall-clock times in the calendar's declared time zone.
type DayHours struct {
	Enabled bool   `bson:"enabled" json:"enabled"`
	Start   string `bson:"start" json:"start"`
	End     string `bson:"end" json:"end"`
}

// WorkingHours maps lowercase weekday names ("monday".."sunday") to hours.
type WorkingHours map[string]DayHours

// PolicyOverride is the optional per-grant policy override. Nil fields fall
// through to the calendar-level settings (and from there to defaults).
type PolicyOverride struct {
	DisplayName         string       `bson:"displayName,omitempty" json:"displayName,omitempty"`
	WorkingHours        WorkingHours `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	BufferTime          *int         `bson:"bufferTime,omitempty" json:"bufferTime,omitempty"`                   // minutes
	MinAdvanceBooking   *int         `bson:"minAdvanceBooking,omitempty" json:"minAdvanceBooking,omitempty"`     // hours
	MaxAdvanceBooking   *int         `bson:"maxAdvanceBooking,omitempty" json:"maxAdvanceBooking,omitempty"`     // days
	BookingSlotDuration *int         `bson:"bookingSlotDuration,omitempty" json:"bookingSlotDuration,omitempty"` // minutes
}

// CalendarSettings is the calendar-level booking policy, one document per
// calendar.
type CalendarSettings struct {
	ID                  string       `bson:"id" json:"id"`
	CalendarID          string       `bson:"calendarId" json:"calendarId"`
	BookingEnabled      bool         `bson:"bookingEnabled" json:"bookingEnabled"`
	WorkingHours        WorkingHours `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	BufferTime          int          `bson:"bufferTime" json:"bufferTime"`
	MinAdvanceBooking   int          `bson:"minAdvanceBooking" json:"minAdvanceBooking"`
	MaxAdvanceBooking   int          `bson:"maxAdvanceBooking" json:"maxAdvanceBooking"`
	BookingSlotDuration int          `bson:"bookingSlotDuration" json:"bookingSlotDuration"`
	CreatedAt           time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// CalendarPolicy is the fully resolved policy governing slot generation for
// one (calendar, tenant) pair: grant override over settings over defaults.
type CalendarPolicy struct {
	DisplayName         string       `json:"displayName,omitempty"`
	WorkingHours        WorkingHours `json:"workingHours"`
	BufferTime          int          `json:"bufferTime"`
	MinAdvanceBooking   int          `json:"minAdvanceBooking"`
	MaxAdvanceBooking   int          `json:"maxAdvanceBooking"`
	BookingSlotDuration int          `json:"bookingSlotDuration"`
	BookingEnabled      bool         `json:"bookingEnabled"`
}
