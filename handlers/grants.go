package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	calendarRepo "slotify/database/repository/calendar"
	grantRepo "slotify/database/repository/grant"
	tenantRepo "slotify/database/repository/tenant"
	"slotify/models"
)

// GrantHandler manages tenant onboarding to calendars.
type GrantHandler struct {
	CalendarRepo calendarRepo.CalendarRepository
	GrantRepo    grantRepo.GrantRepository
	TenantRepo   tenantRepo.TenantRepository
	Logger       *zap.Logger
}

func NewGrantHandler(
	calRepo calendarRepo.CalendarRepository,
	grRepo grantRepo.GrantRepository,
	tenRepo tenantRepo.TenantRepository,
	logger *zap.Logger,
) *GrantHandler {
	return &GrantHandler{
		CalendarRepo: calRepo,
		GrantRepo:    grRepo,
		TenantRepo:   tenRepo,
		Logger:       logger,
	}
}

// ownedCalendar loads the calendar and verifies the caller owns it.
func (h *GrantHandler) ownedCalendar(c *gin.Context) (*models.Calendar, bool) {
	ownerID := c.GetString("ownerID")
	calendarID := c.Param("calendarId")

	cal, err := h.CalendarRepo.GetByID(c.Request.Context(), calendarID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Calendar not found"})
			return nil, false
		}
		h.Logger.Error("grant handler: calendar lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load calendar"})
		return nil, false
	}
	if cal.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the calendar owner may manage grants"})
		return nil, false
	}
	return cal, true
}

// CreateGrant handles POST /api/calendars/:calendarId/grants.
func (h *GrantHandler) CreateGrant(c *gin.Context) {
	cal, ok := h.ownedCalendar(c)
	if !ok {
		return
	}

	var body struct {
		TenantID     string                 `json:"tenantId" binding:"required"`
		Role         string                 `json:"role"`
		CanBook      bool                   `json:"canBook"`
		CustomPolicy *models.PolicyOverride `json:"customPolicy"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if _, err := h.TenantRepo.GetByID(c.Request.Context(), body.TenantID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}
		h.Logger.Error("CreateGrant: tenant lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create grant"})
		return
	}

	grant := &models.TenantCalendar{
		TenantID:     body.TenantID,
		CalendarID:   cal.ID,
		Role:         body.Role,
		CanBook:      body.CanBook,
		CustomPolicy: body.CustomPolicy,
		IsActive:     true,
	}
	if err := h.GrantRepo.Create(c.Request.Context(), grant); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "tenant already holds a grant on this calendar"})
			return
		}
		h.Logger.Error("CreateGrant: insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create grant"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"grant": grant})
}

// ListGrants handles GET /api/calendars/:calendarId/grants.
func (h *GrantHandler) ListGrants(c *gin.Context) {
	cal, ok := h.ownedCalendar(c)
	if !ok {
		return
	}

	grants, err := h.GrantRepo.ListByCalendar(c.Request.Context(), cal.ID)
	if err != nil {
		h.Logger.Error("ListGrants: query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list grants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grants": grants})
}

// UpdateGrant handles PATCH /api/calendars/:calendarId/grants/:tenantId.
// Setting isActive=false is the soft delete: the grant disappears from
// every access check while the record is retained.
func (h *GrantHandler) UpdateGrant(c *gin.Context) {
	cal, ok := h.ownedCalendar(c)
	if !ok {
		return
	}
	tenantID := c.Param("tenantId")

	var body struct {
		Role         *string                `json:"role"`
		CanBook      *bool                  `json:"canBook"`
		IsActive     *bool                  `json:"isActive"`
		CustomPolicy *models.PolicyOverride `json:"customPolicy"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	// Fetched regardless of isActive so a soft deleted grant can be
	// reactivated.
	grant, err := h.GrantRepo.Get(c.Request.Context(), cal.ID, tenantID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Grant not found"})
			return
		}
		h.Logger.Error("UpdateGrant: grant lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load grant"})
		return
	}

	if body.Role != nil {
		grant.Role = *body.Role
	}
	if body.CanBook != nil {
		grant.CanBook = *body.CanBook
	}
	if body.IsActive != nil {
		grant.IsActive = *body.IsActive
	}
	if body.CustomPolicy != nil {
		grant.CustomPolicy = body.CustomPolicy
	}

	if err := h.GrantRepo.Update(c.Request.Context(), grant); err != nil {
		h.Logger.Error("UpdateGrant: update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update grant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grant": grant})
}

// CreateTenant handles POST /api/tenants.
func (h *GrantHandler) CreateTenant(c *gin.Context) {
	ownerID := c.GetString("ownerID")

	var body struct {
		Name             string `json:"name" binding:"required"`
		GoogleCalendarID string `json:"googleCalendarId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	tenant := &models.Tenant{
		Name:             body.Name,
		OwnerID:          ownerID,
		GoogleCalendarID: body.GoogleCalendarID,
	}
	if err := h.TenantRepo.Create(c.Request.Context(), tenant); err != nil {
		h.Logger.Error("CreateTenant: insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tenant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tenant": tenant})
}

// GetTenant handles GET /api/tenants/:tenantId.
func (h *GrantHandler) GetTenant(c *gin.Context) {
	tenantID := c.Param("tenantId")

	tenant, err := h.TenantRepo.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}
		h.Logger.Error("GetTenant: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tenant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenant": tenant})
}
