package calendar

import (
	"time"

	"slotify/models"
)

// Candidate slot starts advance by a fixed 15 minutes regardless of slot
// duration.
const slotStride = 15 * time.Minute

// ComputeAvailableSlots runs the sliding-window slot scan over
// [windowStart, windowEnd). A candidate [s, s+duration) is emitted iff it
// overlaps no busy interval, where both sides are half-open ranges. Output
// is ascending by start time. Pure function; all arithmetic is done on
// absolute instants, never on wall-clock components.
//
// The policy's bufferTime is deliberately not applied here: busy intervals
// are taken exactly as the provider reports them.
func ComputeAvailableSlots(windowStart, windowEnd time.Time, busy []models.BusyInterval, durationMinutes int) []models.AvailabilitySlot {
	if durationMinutes <= 0 {
		return nil
	}
	duration := time.Duration(durationMinutes) * time.Minute

	var slots []models.AvailabilitySlot
	for start := windowStart; !start.Add(duration).After(windowEnd); start = start.Add(slotStride) {
		end := start.Add(duration)
		if !overlapsAny(start, end, busy) {
			slots = append(slots, models.AvailabilitySlot{Start: start, End: end})
		}
	}
	return slots
}

// overlapsAny reports whether [start, end) intersects any busy interval:
// start < busy.End && end > busy.Start.
func overlapsAny(start, end time.Time, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}
