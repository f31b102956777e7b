// File: roombot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roombot/config"
	dialogRepo "roombot/database/repository/dialog"
	"roombot/handlers"
	"roombot/middleware"
	"roombot/routes"
	"roombot/services/dialog"
	"roombot/services/schedule"
	"roombot/services/telegram"
	"roombot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.BotToken == "" {
		logger.Sugar().Fatal("main: BOT_TOKEN is not configured")
	}

	utils.InitDialogCache()
	utils.StartHealthMonitor(utils.GetDialogCacheClient())

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	ttl := time.Duration(config.AppConfig.DialogTTLMinutes) * time.Minute
	dlgRepo := dialogRepo.NewRedisDialogRepo(utils.GetDialogCacheClient(), ttl)

	// services.
	scheduleClient := schedule.NewDefaultScheduleClient(config.AppConfig.ScheduleAPIURL)
	telegramClient := telegram.NewDefaultTelegramClient(config.AppConfig.TelegramAPIURL, config.AppConfig.BotToken)
	dialogService := &dialog.DefaultDialogService{
		Repo:        dlgRepo,
		ScheduleSvc: scheduleClient,
	}

	webhookHandler := handlers.NewWebhookHandler(dialogService, telegramClient)

	routes.RegisterWebhookRoutes(router, webhookHandler)
	routes.RegisterStatusRoutes(router)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
