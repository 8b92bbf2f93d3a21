package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hawaiielite-properties/pkg/logger"
)

// shutdownGrace bounds how long in-flight searches and exports may run after
// a stop signal. Upstream calls time out at 30s by default, so this stays above it.
const shutdownGrace = 35 * time.Second

func (a *App) InitializeServer() {
	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

// StartServer listens on the configured port and blocks until SIGINT or
// SIGTERM, then drains open requests.
func (a *App) StartServer() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", a.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.Server.Addr, err)
	}
	a.logStartup()
	return a.Serve(ctx, ln, shutdownGrace)
}

// Serve accepts connections on ln until ctx is cancelled. The rate limiter
// sweep is stopped before the server drains.
func (a *App) Serve(ctx context.Context, ln net.Listener, grace time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- a.Server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", ln.Addr(), err)
	case <-ctx.Done():
	}

	logger.GlobalLogger.Printf("stop signal received, draining requests grace=%s", grace)
	if a.stopCleanup != nil {
		a.stopCleanup()
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := a.Server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("drain requests: %w", err)
	}
	logger.GlobalLogger.Println("server stopped")
	return nil
}

func (a *App) logStartup() {
	cfg := a.Config
	logger.GlobalLogger.Printf("property API listening addr=%s env=%s", a.Server.Addr, cfg.Env)
	logger.GlobalLogger.Printf("sources zillow_live=%t redfin_live=%t sample_data=%t search_cache=%t listings=%t",
		cfg.Zillow.APIKey != "", cfg.Redfin.APIKey != "", cfg.Aggregation.UseSampleData,
		cfg.Redis.Enabled, a.ListingHandler != nil)
	logger.GlobalLogger.Printf("API docs at http://localhost%s/swagger/index.html", a.Server.Addr)
}
