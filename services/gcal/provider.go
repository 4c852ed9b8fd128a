// Package gcal implements the external calendar provider against the
// Google Calendar API.
package gcal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"slotify/models"
)

// Provider satisfies the calendar service's Provider contract. It is
// stateless: every call builds a client bound to the owner credential the
// caller supplies.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) service(ctx context.Context, accessToken string) (*calendarapi.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := calendarapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar client: %w", err)
	}
	return svc, nil
}

func (p *Provider) ListBusyIntervals(ctx context.Context, accessToken, googleCalendarID string, windowStart, windowEnd time.Time) ([]models.BusyInterval, error) {
	svc, err := p.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	req := &calendarapi.FreeBusyRequest{
		TimeMin: windowStart.Format(time.RFC3339),
		TimeMax: windowEnd.Format(time.RFC3339),
		Items:   []*calendarapi.FreeBusyRequestItem{{Id: googleCalendarID}},
	}
	resp, err := svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[googleCalendarID]
	if !ok {
		return nil, nil
	}
	var busy []models.BusyInterval
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			continue
		}
		busy = append(busy, models.BusyInterval{Start: start, End: end})
	}
	return busy, nil
}

func (p *Provider) ListEvents(ctx context.Context, accessToken, googleCalendarID string, opts models.EventQueryOptions) ([]models.CalendarEvent, error) {
	svc, err := p.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	call := svc.Events.List(googleCalendarID).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if opts.TimeMin != "" {
		call = call.TimeMin(opts.TimeMin)
	}
	if opts.TimeMax != "" {
		call = call.TimeMax(opts.TimeMax)
	}
	if opts.MaxResults > 0 {
		call = call.MaxResults(opts.MaxResults)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("events list failed: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, fromGoogleEvent(item))
	}
	return events, nil
}

func (p *Provider) CreateEvent(ctx context.Context, accessToken, googleCalendarID string, event *models.EventInput) (*models.CalendarEvent, error) {
	svc, err := p.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	payload := &calendarapi.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start:       &calendarapi.EventDateTime{DateTime: event.Start},
		End:         &calendarapi.EventDateTime{DateTime: event.End},
	}
	for _, email := range event.Attendees {
		payload.Attendees = append(payload.Attendees, &calendarapi.EventAttendee{Email: email})
	}

	created, err := svc.Events.Insert(googleCalendarID, payload).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("event insert failed: %w", err)
	}
	ev := fromGoogleEvent(created)
	return &ev, nil
}

func fromGoogleEvent(item *calendarapi.Event) models.CalendarEvent {
	ev := models.CalendarEvent{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Status:      item.Status,
		HTMLLink:    item.HtmlLink,
	}
	if item.Start != nil {
		ev.Start = item.Start.DateTime
		if ev.Start == "" {
			ev.Start = item.Start.Date // all-day event
		}
	}
	if item.End != nil {
		ev.End = item.End.DateTime
		if ev.End == "" {
			ev.End = item.End.Date
		}
	}
	for _, att := range item.Attendees {
		ev.Attendees = append(ev.Attendees, att.Email)
	}
	return ev
}
