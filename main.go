package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	calendarRepo "slotify/database/repository/calendar"
	grantRepo "slotify/database/repository/grant"
	settingsRepo "slotify/database/repository/settings"
	tenantRepo "slotify/database/repository/tenant"
	tokenRepo "slotify/database/repository/token"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	calendarSvc "slotify/services/calendar"
	"slotify/services/gcal"
	tokenSvc "slotify/services/token"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	calRepo := calendarRepo.NewMongoCalendarRepo(db)
	tenRepo := tenantRepo.NewMongoTenantRepo(db)
	grRepo := grantRepo.NewMongoGrantRepo(db)
	setRepo := settingsRepo.NewMongoSettingsRepo(db)
	tokRepo := tokenRepo.NewMongoTokenRepo(db)

	for name, repo := range map[string]interface{ EnsureIndexes() error }{
		"calendars":         calRepo,
		"tenants":           tenRepo,
		"tenant_calendars":  grRepo,
		"calendar_settings": setRepo,
		"google_tokens":     tokRepo,
	} {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	tokenService := &tokenSvc.DefaultTokenService{
		Repo:  tokRepo,
		Cache: utils.GetAuthCacheClient(),
		OAuth: &oauth2.Config{
			ClientID:     config.AppConfig.GoogleClientID,
			ClientSecret: config.AppConfig.GoogleClientSecret,
			RedirectURL:  config.AppConfig.GoogleRedirectURL,
			Endpoint:     google.Endpoint,
		},
	}

	calendarService := &calendarSvc.DefaultCalendarService{
		CalendarRepo: calRepo,
		GrantRepo:    grRepo,
		SettingsRepo: setRepo,
		Tokens:       tokenService,
		Provider:     gcal.NewProvider(),
	}

	calendarHandler := handlers.NewCalendarHandler(calendarService, logger)
	adminHandler := handlers.NewCalendarAdminHandler(calRepo, setRepo, grRepo, logger)
	grantHandler := handlers.NewGrantHandler(calRepo, grRepo, tenRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Buyer endpoints.
		GetCalendarHandler:     calendarHandler.GetCalendar,
		GetEventsHandler:       calendarHandler.GetEvents,
		CreateEventHandler:     calendarHandler.CreateEvent,
		GetAvailabilityHandler: calendarHandler.GetAvailability,

		// Owner management endpoints.
		ConnectCalendarHandler:    adminHandler.ConnectCalendar,
		ListCalendarsHandler:      adminHandler.ListCalendars,
		DisconnectCalendarHandler: adminHandler.DisconnectCalendar,
		UpsertSettingsHandler:     adminHandler.UpsertSettings,

		// Grant and tenant endpoints.
		CreateGrantHandler:  grantHandler.CreateGrant,
		ListGrantsHandler:   grantHandler.ListGrants,
		UpdateGrantHandler:  grantHandler.UpdateGrant,
		CreateTenantHandler: grantHandler.CreateTenant,
		GetTenantHandler:    grantHandler.GetTenant,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background token refresh worker.
	cron.InitTokenRefreshWorker(tokenService)

	// Runtime health monitoring over Redis and Mongo.
	utils.StartHealthMonitor([]*redis.Client{utils.GetAuthCacheClient()}, mongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
