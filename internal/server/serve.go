package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Serve runs srv until ctx is cancelled or the listener fails, then shuts it
// down within shutdownTimeout. It returns the listener error, if any, so the
// caller can release its resources before exiting.
func Serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *logrus.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("Server is running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down server")
	case err := <-serveErr:
		runErr = fmt.Errorf("serve: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shut down")
	}

	logger.Info("Server stopped")
	return runErr
}
