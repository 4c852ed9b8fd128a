package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotify/models"
	"slotify/services/calendar"
)

type stubCalendarService struct {
	err   error
	slots []models.AvailabilitySlot
}

func (s *stubCalendarService) GetCalendarForBuyer(ctx context.Context, calendarID, tenantID string) (*models.CalendarView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.CalendarView{ID: calendarID, Name: "Stub"}, nil
}

func (s *stubCalendarService) GetCalendarEvents(ctx context.Context, calendarID, tenantID string, opts models.EventQueryOptions) ([]models.CalendarEvent, error) {
	return nil, s.err
}

func (s *stubCalendarService) CreateCalendarEvent(ctx context.Context, calendarID, tenantID string, event *models.EventInput) (*models.CalendarEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.CalendarEvent{ID: "ev-1"}, nil
}

func (s *stubCalendarService) GetCalendarAvailability(ctx context.Context, calendarID, tenantID, date string, durationMinutes int) ([]models.AvailabilitySlot, error) {
	return s.slots, s.err
}

func newTestRouter(svc calendar.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCalendarHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/api/calendars/:calendarId", h.GetCalendar)
	r.GET("/api/calendars/:calendarId/events", h.GetEvents)
	r.POST("/api/calendars/:calendarId/events", h.CreateEvent)
	r.GET("/api/calendars/:calendarId/availability", h.GetAvailability)
	return r
}

func TestServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", &calendar.Error{Kind: calendar.KindNotFound, Message: "Calendar not found"}, http.StatusNotFound},
		{"owner not connected", &calendar.Error{Kind: calendar.KindOwnerNotConnected, Message: "Calendar owner not connected"}, http.StatusNotFound},
		{"forbidden", &calendar.Error{Kind: calendar.KindForbidden, Message: "Tenant not authorized"}, http.StatusForbidden},
		{"booking not allowed", &calendar.Error{Kind: calendar.KindBookingNotAllowed, Message: "Booking not allowed"}, http.StatusForbidden},
		{"invalid input", &calendar.Error{Kind: calendar.KindInvalidInput, Message: "date must be formatted as YYYY-MM-DD"}, http.StatusBadRequest},
		{"provider failure", &calendar.Error{Kind: calendar.KindProvider, Message: "freebusy failed"}, http.StatusBadGateway},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubCalendarService{err: tt.err})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/calendars/c1?tenantId=t1", nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestGetAvailabilityValidation(t *testing.T) {
	r := newTestRouter(&stubCalendarService{slots: []models.AvailabilitySlot{}})

	tests := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{"missing date", "/api/calendars/c1/availability", http.StatusBadRequest},
		{"bad duration", "/api/calendars/c1/availability?date=2026-03-02&duration=zero", http.StatusBadRequest},
		{"negative duration", "/api/calendars/c1/availability?date=2026-03-02&duration=-30", http.StatusBadRequest},
		{"valid", "/api/calendars/c1/availability?date=2026-03-02&duration=30", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			r.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestCreateEventValidation(t *testing.T) {
	r := newTestRouter(&stubCalendarService{})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"missing tenantId", `{"event":{"start":"2026-03-02T10:00:00Z","end":"2026-03-02T11:00:00Z"}}`, http.StatusBadRequest},
		{"missing event", `{"tenantId":"t1"}`, http.StatusBadRequest},
		{"missing event times", `{"tenantId":"t1","event":{"summary":"call"}}`, http.StatusBadRequest},
		{"valid", `{"tenantId":"t1","event":{"start":"2026-03-02T10:00:00Z","end":"2026-03-02T11:00:00Z"}}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/calendars/c1/events", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
