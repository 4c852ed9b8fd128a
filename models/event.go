package models

// CalendarEvent is an event as exposed to buyers. Start and End are RFC3339
// timestamps. When the calendar hides details, events are reduced to the
// redacted form: only ID, Start, End and Status ("busy") survive.
type CalendarEvent struct {
	ID          string   `json:"id"`
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Status      string   `json:"status"`
	Attendees   []string `json:"attendees,omitempty"`
	HTMLLink    string   `json:"htmlLink,omitempty"`
}

// Redacted returns the busy/free projection of the event.
func (e CalendarEvent) Redacted() CalendarEvent {
	return CalendarEvent{
		ID:     e.ID,
		Start:  e.Start,
		End:    e.End,
		Status: "busy",
	}
}

// EventInput is a proposed booking payload. The core passes it to the
// provider verbatim and does not validate its shape beyond presence.
type EventInput struct {
	Summary     string   `json:"summary"`
	Description string   `json:"description,omitempty"`
	Start       string   `json:"start" binding:"required"`
	End         string   `json:"end" binding:"required"`
	Attendees   []string `json:"attendees,omitempty"`
}

// EventQueryOptions narrows an events listing.
type EventQueryOptions struct {
	TimeMin    string
	TimeMax    string
	MaxResults int64
}
