package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BilalArshad6074/Smart-Parking/internal/api"
	"github.com/BilalArshad6074/Smart-Parking/internal/config"
	"github.com/BilalArshad6074/Smart-Parking/internal/logging"
	"github.com/BilalArshad6074/Smart-Parking/internal/repository/postgresql"
	"github.com/BilalArshad6074/Smart-Parking/internal/service"
)

func main() {
	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	logger.Info("configuration loaded")

	// Database credentials come from Secrets Manager in deployment, from a
	// local JSON file in development. A failure here is fatal: there is no
	// degraded mode without storage.
	ctx := context.Background()
	if err := config.ResolveDBCredentials(ctx, cfg); err != nil {
		logger.Fatal("could not resolve database credentials", zap.Error(err))
	}

	db, err := postgresql.NewDB(cfg.DB)
	if err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database connection established")

	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("could not ensure database schema", zap.Error(err))
	}

	slotRepo := postgresql.NewPgSlotRepository(db)
	auditRepo := postgresql.NewPgAuditLogRepository(db)

	rates := service.NewRateEngine(cfg.BaseRate, cfg.SurgeRate, cfg.SurgeThreshold)
	parkingService := service.NewParkingService(slotRepo, auditRepo, rates, cfg.AuditTrailSize, logger)

	router := api.SetupRouter(parkingService, logger, "web/templates/*")

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
