// Package httpserver starts HTTP servers with signal-driven graceful
// shutdown.
package httpserver

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const shutdownTimeout = 5 * time.Second

// Config represents common HTTP server configuration.
type Config interface {
	GetListenAddress() string
	GetListenPort() int
}

// StartFromConfig starts an HTTP server using a Config interface.
func StartFromConfig(cfg Config, handler http.Handler) error {
	addr := fmt.Sprintf("%s:%d", cfg.GetListenAddress(), cfg.GetListenPort())
	return StartWithGracefulShutdown(addr, handler)
}

// StartWithGracefulShutdown runs an HTTP server until SIGINT or SIGTERM,
// then drains in-flight requests before returning.
func StartWithGracefulShutdown(addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return fmt.Errorf("server failed: %w", err)
	case <-stop:
	}

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("server gracefully stopped")
	return nil
}
