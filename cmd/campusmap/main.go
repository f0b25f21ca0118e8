// Command campusmap serves campus walking routes over HTTP or MCP.
//
// Usage:
//
//	campusmap [serve]   HTTP API (default)
//	campusmap mcp       MCP tools over stdio
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/campusmap/campus"
	"github.com/katalvlaran/campusmap/config"
	"github.com/katalvlaran/campusmap/httpapi"
	"github.com/katalvlaran/campusmap/mcptools"
)

const version = "v0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the MCP protocol, so logs always go to stderr.
	logger := config.NewLogger(cfg.Logging, os.Stderr)

	var g *campus.Graph
	if cfg.Walking.Seeded {
		g = campus.NewSeeded()
	} else {
		g = campus.New()
	}
	logger.Info("campus map ready", "locations", len(g.Locations()), "edges", g.EdgeCount())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mode := "serve"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "serve":
		err = serveHTTP(ctx, logger, cfg, g)
	case "mcp":
		err = mcptools.New(g, logger, version, cfg.Walking.Speed).Run(ctx)
	default:
		err = fmt.Errorf("unknown mode %q (want serve or mcp)", mode)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("campusmap stopped", "error", err)
		os.Exit(1)
	}
}

func serveHTTP(ctx context.Context, logger *slog.Logger, cfg config.Config, g *campus.Graph) error {
	gin.SetMode(cfg.HTTP.GinMode)
	router := httpapi.NewRouter(httpapi.NewHandlers(g, logger, cfg.Walking.Speed), cfg.HTTP)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
