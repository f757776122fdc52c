package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"driverapp/api"
	"driverapp/config"
	"driverapp/pkg/logger"
	"driverapp/pkg/push"
	"driverapp/service"
	"driverapp/storage/postgres"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	defer log.Sync()

	// 3. Initialize Storage (Postgres), tables are ensured on connect
	pgStore, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pgStore.Close()

	// 4. Push provider, built once and handed to the notification service
	sender := push.Disabled()
	if cfg.FirebaseCredentials != "" {
		fcm, err := push.NewFCM(context.Background(), push.Config{
			Credentials: cfg.FirebaseCredentials,
			ProjectID:   cfg.FirebaseProjectID,
		})
		if err != nil {
			log.Error("Failed to initialize firebase messaging", logger.Error(err))
			os.Exit(1)
		}
		sender = fcm
	} else {
		log.Warning("FIREBASE_CREDENTIALS is empty, push notifications are disabled")
	}

	// 5. Services and HTTP router
	services := service.New(pgStore, sender, log)
	router := api.New(cfg, services, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("🚀 Server running", logger.Int("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", logger.Error(err))
			os.Exit(1)
		}
	}()

	// 6. Graceful Shutdown listener
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", logger.Error(err))
	}
	log.Info("Server exited")
}
