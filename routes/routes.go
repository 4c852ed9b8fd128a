package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slotify/handlers"
	"slotify/middleware"
	"slotify/utils"
)

// RegisterCalendarRoutes registers the buyer-facing calendar endpoints.
// These carry no auth middleware: public calendars must stay reachable
// anonymously, and the access resolver gates everything else per request.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendars")
	{
		api.GET("/:calendarId", hb.GetCalendarHandler)
		api.GET("/:calendarId/events", hb.GetEventsHandler)
		api.POST("/:calendarId/events", hb.CreateEventHandler)
		api.GET("/:calendarId/availability", hb.GetAvailabilityHandler)
	}
}

// RegisterManagementRoutes registers the owner-side management endpoints.
func RegisterManagementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendars")
	api.Use(middleware.JWTAuthOwnerMiddleware())
	{
		api.POST("", hb.ConnectCalendarHandler)
		api.GET("", hb.ListCalendarsHandler)
		api.DELETE("/:calendarId", hb.DisconnectCalendarHandler)
		api.PUT("/:calendarId/settings", hb.UpsertSettingsHandler)

		api.POST("/:calendarId/grants", hb.CreateGrantHandler)
		api.GET("/:calendarId/grants", hb.ListGrantsHandler)
		api.PATCH("/:calendarId/grants/:tenantId", hb.UpdateGrantHandler)
	}

	tenants := r.Group("/api/tenants")
	tenants.Use(middleware.JWTAuthOwnerMiddleware())
	{
		tenants.POST("", hb.CreateTenantHandler)
		tenants.GET("/:tenantId", hb.GetTenantHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCalendarRoutes(r, hb)
	RegisterManagementRoutes(r, hb)
	RegisterHealthRoute(r)
}
