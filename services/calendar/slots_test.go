package calendar

import (
	"testing"
	"time"

	"slotify/models"
)

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2026-03-02T"+clock+":00Z")
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}
	return ts
}

func busy(t *testing.T, start, end string) models.BusyInterval {
	t.Helper()
	return models.BusyInterval{Start: at(t, start), End: at(t, end)}
}

func TestComputeAvailableSlots(t *testing.T) {
	tests := []struct {
		name        string
		windowStart string
		windowEnd   string
		busy        []models.BusyInterval
		duration    int
		wantStarts  []string
	}{
		{
			name:        "single slot fills the window exactly",
			windowStart: "09:00",
			windowEnd:   "10:00",
			duration:    60,
			wantStarts:  []string{"09:00"},
		},
		{
			name:        "stride is fifteen minutes regardless of duration",
			windowStart: "09:00",
			windowEnd:   "10:00",
			duration:    30,
			wantStarts:  []string{"09:00", "09:15", "09:30"},
		},
		{
			name:        "busy interval blocks overlapping candidates",
			windowStart: "09:00",
			windowEnd:   "12:00",
			busy:        []models.BusyInterval{busy(t, "10:00", "11:00")},
			duration:    60,
			wantStarts:  []string{"09:00", "11:00"},
		},
		{
			name:        "adjacent busy interval does not block a touching slot",
			windowStart: "09:00",
			windowEnd:   "11:00",
			busy:        []models.BusyInterval{busy(t, "10:00", "11:00")},
			duration:    60,
			wantStarts:  []string{"09:00"},
		},
		{
			name:        "fully busy window yields nothing",
			windowStart: "09:00",
			windowEnd:   "12:00",
			busy:        []models.BusyInterval{busy(t, "09:00", "12:00")},
			duration:    30,
			wantStarts:  nil,
		},
		{
			name:        "duration longer than window yields nothing",
			windowStart: "09:00",
			windowEnd:   "10:00",
			duration:    90,
			wantStarts:  nil,
		},
		{
			name:        "zero duration yields nothing",
			windowStart: "09:00",
			windowEnd:   "18:00",
			duration:    0,
			wantStarts:  nil,
		},
		{
			name:        "busy interval outside the window is ignored",
			windowStart: "09:00",
			windowEnd:   "10:00",
			busy:        []models.BusyInterval{busy(t, "14:00", "15:00")},
			duration:    60,
			wantStarts:  []string{"09:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAvailableSlots(at(t, tt.windowStart), at(t, tt.windowEnd), tt.busy, tt.duration)
			if len(got) != len(tt.wantStarts) {
				t.Fatalf("got %d slots, want %d: %v", len(got), len(tt.wantStarts), got)
			}
			for i, want := range tt.wantStarts {
				if !got[i].Start.Equal(at(t, want)) {
					t.Errorf("slot %d starts at %v, want %s", i, got[i].Start, want)
				}
				wantEnd := at(t, want).Add(time.Duration(tt.duration) * time.Minute)
				if !got[i].End.Equal(wantEnd) {
					t.Errorf("slot %d ends at %v, want %v", i, got[i].End, wantEnd)
				}
			}
		})
	}
}

func TestComputeAvailableSlotsNeverOverlapsBusy(t *testing.T) {
	busyIntervals := []models.BusyInterval{
		busy(t, "09:30", "10:15"),
		busy(t, "11:00", "11:05"),
		busy(t, "13:45", "14:00"),
	}
	slots := ComputeAvailableSlots(at(t, "09:00"), at(t, "18:00"), busyIntervals, 45)

	for _, s := range slots {
		for _, b := range busyIntervals {
			if s.Start.Before(b.End) && s.End.After(b.Start) {
				t.Errorf("slot [%v, %v) overlaps busy [%v, %v)", s.Start, s.End, b.Start, b.End)
			}
		}
	}
}

func TestComputeAvailableSlotsOrdered(t *testing.T) {
	slots := ComputeAvailableSlots(at(t, "09:00"), at(t, "12:00"), nil, 30)
	for i := 1; i < len(slots); i++ {
		if !slots[i-1].Start.Before(slots[i].Start) {
			t.Fatalf("slots out of order at %d: %v then %v", i, slots[i-1].Start, slots[i].Start)
		}
	}
}
