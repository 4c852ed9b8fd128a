package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	calendarRepo "slotify/database/repository/calendar"
	grantRepo "slotify/database/repository/grant"
	settingsRepo "slotify/database/repository/settings"
	"slotify/models"
)

// CalendarAdminHandler exposes the owner-side management surface: connecting
// and disconnecting calendars and maintaining their booking settings.
type CalendarAdminHandler struct {
	CalendarRepo calendarRepo.CalendarRepository
	SettingsRepo settingsRepo.SettingsRepository
	GrantRepo    grantRepo.GrantRepository
	Logger       *zap.Logger
}

func NewCalendarAdminHandler(
	calRepo calendarRepo.CalendarRepository,
	setRepo settingsRepo.SettingsRepository,
	grRepo grantRepo.GrantRepository,
	logger *zap.Logger,
) *CalendarAdminHandler {
	return &CalendarAdminHandler{
		CalendarRepo: calRepo,
		SettingsRepo: setRepo,
		GrantRepo:    grRepo,
		Logger:       logger,
	}
}

// ConnectCalendar handles POST /api/calendars.
func (h *CalendarAdminHandler) ConnectCalendar(c *gin.Context) {
	ownerID := c.GetString("ownerID")

	var body struct {
		GoogleCalendarID string `json:"googleCalendarId" binding:"required"`
		Name             string `json:"name" binding:"required"`
		Description      string `json:"description"`
		IsPublic         bool   `json:"isPublic"`
		ShowDetails      bool   `json:"showDetails"`
		TimeZone         string `json:"timeZone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	cal := &models.Calendar{
		GoogleCalendarID: body.GoogleCalendarID,
		Name:             body.Name,
		Description:      body.Description,
		OwnerID:          ownerID,
		IsPublic:         body.IsPublic,
		ShowDetails:      body.ShowDetails,
		TimeZone:         body.TimeZone,
	}
	if err := h.CalendarRepo.Create(c.Request.Context(), cal); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "calendar is already connected"})
			return
		}
		h.Logger.Error("ConnectCalendar: insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to connect calendar"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"calendar": cal})
}

// ListCalendars handles GET /api/calendars.
func (h *CalendarAdminHandler) ListCalendars(c *gin.Context) {
	ownerID := c.GetString("ownerID")

	cals, err := h.CalendarRepo.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.Logger.Error("ListCalendars: query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list calendars"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendars": cals})
}

// DisconnectCalendar handles DELETE /api/calendars/:calendarId. Grants and
// settings are removed together with the calendar record.
func (h *CalendarAdminHandler) DisconnectCalendar(c *gin.Context) {
	ownerID := c.GetString("ownerID")
	calendarID := c.Param("calendarId")

	cal, err := h.CalendarRepo.GetByID(c.Request.Context(), calendarID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Calendar not found"})
			return
		}
		h.Logger.Error("DisconnectCalendar: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to disconnect calendar"})
		return
	}
	if cal.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the calendar owner may disconnect it"})
		return
	}

	if err := h.GrantRepo.DeleteByCalendar(c.Request.Context(), calendarID); err != nil {
		h.Logger.Error("DisconnectCalendar: grant cleanup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to disconnect calendar"})
		return
	}
	if err := h.SettingsRepo.DeleteByCalendarID(c.Request.Context(), calendarID); err != nil {
		h.Logger.Error("DisconnectCalendar: settings cleanup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to disconnect calendar"})
		return
	}
	if err := h.CalendarRepo.DeleteByID(c.Request.Context(), calendarID); err != nil {
		h.Logger.Error("DisconnectCalendar: delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to disconnect calendar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": calendarID})
}

// UpsertSettings handles PUT /api/calendars/:calendarId/settings.
func (h *CalendarAdminHandler) UpsertSettings(c *gin.Context) {
	ownerID := c.GetString("ownerID")
	calendarID := c.Param("calendarId")

	cal, err := h.CalendarRepo.GetByID(c.Request.Context(), calendarID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Calendar not found"})
			return
		}
		h.Logger.Error("UpsertSettings: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
		return
	}
	if cal.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the calendar owner may change settings"})
		return
	}

	var body struct {
		BookingEnabled      *bool               `json:"bookingEnabled"`
		WorkingHours        models.WorkingHours `json:"workingHours"`
		BufferTime          int                 `json:"bufferTime"`
		MinAdvanceBooking   int                 `json:"minAdvanceBooking"`
		MaxAdvanceBooking   int                 `json:"maxAdvanceBooking"`
		BookingSlotDuration int                 `json:"bookingSlotDuration"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	settings := &models.CalendarSettings{
		CalendarID:          calendarID,
		BookingEnabled:      true,
		WorkingHours:        body.WorkingHours,
		BufferTime:          body.BufferTime,
		MinAdvanceBooking:   body.MinAdvanceBooking,
		MaxAdvanceBooking:   body.MaxAdvanceBooking,
		BookingSlotDuration: body.BookingSlotDuration,
	}
	if body.BookingEnabled != nil {
		settings.BookingEnabled = *body.BookingEnabled
	}

	if err := h.SettingsRepo.Upsert(c.Request.Context(), settings); err != nil {
		h.Logger.Error("UpsertSettings: upsert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
