package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"steamstatus/status-bot/config"
	"steamstatus/status-bot/db"
	"steamstatus/status-bot/handlers"
	"steamstatus/status-bot/middleware"
	"steamstatus/status-bot/report"
	"steamstatus/status-bot/services"
	"steamstatus/status-bot/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	// Connect to the roster database
	database, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database opened successfully")

	// Presence cache is optional
	var cache services.SummaryCache
	if cfg.RedisURL != "" {
		redisClient, err := services.NewRedisClient(context.Background(), cfg.RedisURL, cfg.RedisDB)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisClient.Close()
		cache = services.NewPresenceCache(redisClient, cfg.PresenceCacheTTL, logger)
		logger.Info("Presence cache enabled", "ttl", cfg.PresenceCacheTTL)
	}

	// Initialize services
	steam := services.NewSteamClient(cfg.SteamAPIKey, cfg.SteamAPIURL, cfg.HTTPTimeout)
	groupme := services.NewGroupMeClient(cfg.GroupMeBotID, cfg.GroupMeAccessToken, cfg.GroupMeAPIURL, cfg.HTTPTimeout)
	roster := services.NewRosterService(database, logger)
	presence := services.NewPresenceService(steam, cache, logger)
	bot := services.NewStatusBot(roster, presence, groupme, report.New(), cfg.CommandPrefix, logger)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	handlers.RegisterRoutes(router,
		handlers.NewWebhookHandler(bot, logger),
		handlers.NewRosterHandler(roster, logger),
		handlers.NewPreviewHandler(bot, logger),
		cfg.JWTSecret,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set, admin API disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting status bot", "port", cfg.Port, "command", cfg.CommandPrefix)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("Server exited")
}
