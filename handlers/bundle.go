package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Buyer-facing calendar endpoints.
	GetCalendarHandler     gin.HandlerFunc
	GetEventsHandler       gin.HandlerFunc
	CreateEventHandler     gin.HandlerFunc
	GetAvailabilityHandler gin.HandlerFunc

	// Owner management endpoints.
	ConnectCalendarHandler    gin.HandlerFunc
	ListCalendarsHandler      gin.HandlerFunc
	DisconnectCalendarHandler gin.HandlerFunc
	UpsertSettingsHandler     gin.HandlerFunc

	// Grant/tenant endpoints.
	CreateGrantHandler  gin.HandlerFunc
	ListGrantsHandler   gin.HandlerFunc
	UpdateGrantHandler  gin.HandlerFunc
	CreateTenantHandler gin.HandlerFunc
	GetTenantHandler    gin.HandlerFunc
}
