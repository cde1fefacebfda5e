package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"infinite-experiment/motorpool/internal/config"
	"infinite-experiment/motorpool/internal/db"
	"infinite-experiment/motorpool/internal/logging"
	"infinite-experiment/motorpool/internal/metrics"
	"infinite-experiment/motorpool/internal/routes"
)

// @title Motorpool API
// @version 1.0
// @description Vehicle records service with system-generated VINs.
// @host localhost:8000
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Motorpool starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	if err := db.InitPostgres(cfg); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM and bring the schema up
	gormDB, err := db.InitPostgresORM(cfg.DSN())
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")
	if err := db.Migrate(gormDB); err != nil {
		logging.Error("Failed to migrate schema", "error", err.Error())
		log.Fatalf("❌ Failed to migrate schema: %v", err)
	}
	logging.Info("Schema migrated")

	metricsReg := metrics.NewMetricsRegistry()

	// Initialize router with Chi
	router := routes.RegisterRoutes(cfg, metricsReg)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("Server starting",
			"port", cfg.HTTPPort,
			"environment", cfg.AppEnv,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Sample connection pool usage while the server runs
	g.Go(func() error {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				stats := db.DB.Stats()
				metricsReg.DBConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
				metricsReg.DBConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
				metricsReg.DBConnections.WithLabelValues("idle").Set(float64(stats.Idle))
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logging.Info("Shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("❌ Server exited with error: %v", err)
	}
	logging.Info("Server stopped")
}
