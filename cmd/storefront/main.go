package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eggypro/storefront-gateway/internal/application/services"
	"github.com/eggypro/storefront-gateway/internal/config"
	"github.com/eggypro/storefront-gateway/internal/infrastructure/persistence/postgres"
	"github.com/eggypro/storefront-gateway/internal/infrastructure/registry"
	"github.com/eggypro/storefront-gateway/internal/interfaces/rest/handlers"
	"github.com/eggypro/storefront-gateway/internal/interfaces/rest/middleware"
	"github.com/eggypro/storefront-gateway/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting storefront gateway",
		"port", cfg.Server.Port,
		"environment", cfg.Primary.Env,
		"allow_bypass", cfg.Payment.AllowBypass,
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	productRepo := postgres.NewProductRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	intentRegistry := registry.NewMemory()

	intentService := services.NewIntentService(intentRegistry, logger)
	confirmService := services.NewConfirmService(intentRegistry, orderRepo, cfg.Payment.AllowBypass, logger)
	catalogService := services.NewCatalogService(productRepo, logger)

	h := handlers.NewHandlers(
		intentService,
		confirmService,
		catalogService,
		db,
		cfg.Primary.Env,
		!cfg.Primary.IsProduction(),
		logger,
	)

	mux := http.NewServeMux()
	h.Register(mux, middleware.AdminAuth(cfg.Admin.Token, logger))

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	sweeper := worker.NewIntentSweeper(
		intentRegistry,
		cfg.Worker.Interval,
		cfg.Payment.IntentTTL,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go sweeper.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
