package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/awardtools/seats-aero-mcp/bootstrap"
	"github.com/awardtools/seats-aero-mcp/config"
	"github.com/awardtools/seats-aero-mcp/log"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Init("info")
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}
	log.Init(cfg.Log.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A missing SEATS_AERO_PARTNER_TOKEN fails here, before anything serves.
	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(ctx, "Setup failed: %v", err)
	}

	switch cfg.Server.Transport {
	case "http":
		serveHTTP(ctx, cancel, app, cfg.Server.HTTPAddr)
	default:
		// ServeStdio installs its own SIGINT/SIGTERM handling and returns
		// when the host closes the stream.
		log.Infof(ctx, "Serving MCP over stdio")
		if err := mcpserver.ServeStdio(app.Server); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf(ctx, "Server failed: %v", err)
		}
	}

	log.Infof(ctx, "Shutdown complete")
}

func serveHTTP(ctx context.Context, cancel context.CancelFunc, app *bootstrap.App, addr string) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(context.Background(), "Termination signal received. Exiting...")
		cancel()
	}()

	httpServer := mcpserver.NewStreamableHTTPServer(app.Server)

	go func() {
		<-ctx.Done()
		log.Info(context.Background(), "Shutting down server...")
		httpServer.Shutdown(context.Background())
	}()

	log.Infof(ctx, "Serving MCP over HTTP on %s", addr)
	if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf(ctx, "Server failed: %v", err)
	}
}
