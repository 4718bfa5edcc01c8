package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"wordgrid/internal/api"
	"wordgrid/internal/api/handlers"
	"wordgrid/internal/config"
	"wordgrid/internal/platform/logger"
	"wordgrid/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	log.Info("starting server", "env", cfg.Env, "addr", cfg.Server.Addr)

	grid, dict, err := buildCodebook(ctx, cfg, log)
	if err != nil {
		return err
	}

	conversionService, err := services.NewConversionService(grid, dict)
	if err != nil {
		return err
	}
	log.Info("codebook ready",
		"rows", grid.RowCount(),
		"cells", grid.CellCount(),
		"dictionary_size", dict.Size(),
		"capacity", conversionService.Capacity(),
	)

	repo, err := openHistory(ctx, cfg.History, log)
	if err != nil {
		return err
	}
	if repo != nil {
		defer repo.Close()
	}
	historyService := services.NewHistoryService(repo, cfg.History.Backend, log)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(
		handlers.NewConversionHandler(conversionService, historyService),
		handlers.NewCellHandler(conversionService),
		handlers.NewHistoryHandler(historyService),
		handlers.NewHealthHandler(conversionService, historyService),
		cfg,
		log,
	)
	engine := gin.New()
	router.Setup(engine)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-srvErr:
		return err
	}
}
