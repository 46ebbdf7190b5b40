package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mkumar84/Insurance-Dashboard/config"
	"github.com/mkumar84/Insurance-Dashboard/handler"
	"github.com/mkumar84/Insurance-Dashboard/middleware"
	"github.com/mkumar84/Insurance-Dashboard/pkg/logger"
	"github.com/mkumar84/Insurance-Dashboard/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	slog.Info("configuration loaded", "seed", cfg.Dataset.Seed, "delays", cfg.DelaysEnabled())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := newDashboardService(cfg)
	if err != nil {
		return err
	}

	var exports handler.ExportPublisher
	if cfg.Export.Minio.Enabled {
		store, err := service.NewExportStore(&cfg.Export.Minio)
		if err != nil {
			return fmt.Errorf("init export store: %w", err)
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return fmt.Errorf("ensure export bucket: %w", err)
		}
		exports = store
		slog.Info("export uploads enabled", "endpoint", cfg.Export.Minio.Endpoint, "bucket", cfg.Export.Minio.Bucket)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      newRouter(cfg, svc, exports),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server exited gracefully")
	return nil
}

// newDashboardService wires the random source, generator, dataset store and
// decision engine for one server process.
func newDashboardService(cfg *config.Config) (*service.DashboardService, error) {
	source := service.NewSource(cfg.Dataset.Seed)
	gen := service.NewGenerator(source, cfg.Dataset, time.Now)

	ds, err := gen.Dataset()
	if err != nil {
		return nil, fmt.Errorf("generate initial dataset: %w", err)
	}

	var sleep service.Sleeper = service.NoopSleep
	if cfg.DelaysEnabled() {
		sleep = service.ScaledSleep(cfg.Demo.LatencyScale)
	}
	engine := service.NewDecisionEngine(source, sleep, service.DefaultDecisionDelays)

	return service.NewDashboardService(service.NewDatasetStore(ds), gen, engine), nil
}

func newRouter(cfg *config.Config, svc *service.DashboardService, exports handler.ExportPublisher) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	api.Use(middleware.NoStore())
	handler.RegisterRoutes(api, svc, exports)

	return router
}
