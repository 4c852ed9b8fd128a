package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotify/models"
	"slotify/services/calendar"
)

// CalendarHandler exposes the buyer-facing calendar surface.
type CalendarHandler struct {
	Svc    calendar.Service
	Logger *zap.Logger
}

func NewCalendarHandler(svc calendar.Service, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Svc: svc, Logger: logger}
}

// GetCalendar handles GET /api/calendars/:calendarId.
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	calendarID := c.Param("calendarId")
	tenantID := c.Query("tenantId")

	view, err := h.Svc.GetCalendarForBuyer(c.Request.Context(), calendarID, tenantID)
	if err != nil {
		h.writeServiceError(c, err, "failed to fetch calendar")
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendar": view})
}

// GetEvents handles GET /api/calendars/:calendarId/events.
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	calendarID := c.Param("calendarId")
	tenantID := c.Query("tenantId")

	opts := models.EventQueryOptions{
		TimeMin: c.Query("timeMin"),
		TimeMax: c.Query("timeMax"),
	}
	if raw := c.Query("maxResults"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxResults must be a positive integer"})
			return
		}
		opts.MaxResults = n
	}

	events, err := h.Svc.GetCalendarEvents(c.Request.Context(), calendarID, tenantID, opts)
	if err != nil {
		h.writeServiceError(c, err, "failed to fetch calendar events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEvent handles POST /api/calendars/:calendarId/events.
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	calendarID := c.Param("calendarId")

	var body struct {
		TenantID string             `json:"tenantId" binding:"required"`
		Event    *models.EventInput `json:"event" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	created, err := h.Svc.CreateCalendarEvent(c.Request.Context(), calendarID, body.TenantID, body.Event)
	if err != nil {
		h.writeServiceError(c, err, "failed to create calendar event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": created})
}

// GetAvailability handles GET /api/calendars/:calendarId/availability.
func (h *CalendarHandler) GetAvailability(c *gin.Context) {
	calendarID := c.Param("calendarId")
	tenantID := c.Query("tenantId")

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	duration := 0
	if raw := c.Query("duration"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive integer"})
			return
		}
		duration = n
	}

	slots, err := h.Svc.GetCalendarAvailability(c.Request.Context(), calendarID, tenantID, date, duration)
	if err != nil {
		h.writeServiceError(c, err, "failed to fetch calendar availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": slots})
}

// writeServiceError maps typed service errors to transport statuses.
func (h *CalendarHandler) writeServiceError(c *gin.Context, err error, fallback string) {
	var svcErr *calendar.Error
	message := fallback
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}

	switch calendar.KindOf(err) {
	case calendar.KindNotFound, calendar.KindOwnerNotConnected:
		c.JSON(http.StatusNotFound, gin.H{"error": message})
	case calendar.KindForbidden, calendar.KindBookingNotAllowed:
		c.JSON(http.StatusForbidden, gin.H{"error": message})
	case calendar.KindInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
	case calendar.KindProvider:
		h.Logger.Error("calendar provider failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "calendar provider request failed"})
	default:
		h.Logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
