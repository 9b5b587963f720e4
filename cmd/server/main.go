package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"boardgames/backend/internal/config"
	"boardgames/backend/internal/database"
	"boardgames/backend/internal/logging"
	"boardgames/backend/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title           Board Game Shelf API
// @version         1.0
// @description     Read-only JSON view of the board game catalogue.
// @host            localhost:3001
// @BasePath        /api/v1
func main() {
	cfg, err := config.Load(".")
	if err != nil && !errors.Is(err, config.ErrNoEnvFile) {
		logging.New("info").WithError(err).Fatal("Failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel)
	if err != nil {
		logger.Warn(err)
	}
	gin.SetMode(cfg.GinMode)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("Server exited with an error")
		os.Exit(1)
	}
}

// run serves until SIGINT/SIGTERM or a listener failure. The store is closed
// on every path out.
func run(cfg *config.Config, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("connect to the game store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.WithError(err).Error("Failed to close the game store")
		}
	}()

	router, err := server.NewRouter(server.Options{
		Games:       store.Games,
		Logger:      logger,
		EnablePprof: cfg.EnablePprof,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.Handler(router),
	}

	logger.Infof("Swagger UI is available at http://localhost%s/swagger/index.html", cfg.Addr())
	return server.Serve(ctx, srv, cfg.ShutdownTimeout, logger)
}
