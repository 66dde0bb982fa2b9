// Package bootstrap wires configuration, the Partner API client, and the
// tool registry into a ready-to-serve MCP server.
package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/awardtools/seats-aero-mcp/config"
	"github.com/awardtools/seats-aero-mcp/log"
	"github.com/awardtools/seats-aero-mcp/providers/seatsaero"
	"github.com/awardtools/seats-aero-mcp/tools"
)

const (
	// ServerName identifies this server to MCP hosts
	ServerName = "seats_aero_mcp"

	// Version is reported during the MCP initialize handshake
	Version = "1.0.0"
)

// App holds the initialized components of the application
type App struct {
	Client   *seatsaero.Client
	Registry *tools.Registry
	Server   *server.MCPServer
}

// Setup initializes the application components based on the configuration.
// Configuration problems (missing token above all) fail here, before any
// tool is registered.
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := seatsaero.NewClient(
		cfg.SeatsAero.Token,
		cfg.SeatsAero.BaseURL,
		time.Duration(cfg.SeatsAero.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize seats.aero client: %w", err)
	}

	registry := tools.NewRegistry()
	registry.Register(&tools.CachedSearchTool{Client: client})
	registry.Register(&tools.BulkAvailabilityTool{Client: client})
	registry.Register(&tools.ListRoutesTool{Client: client})
	registry.Register(&tools.TripDetailsTool{Client: client})

	mcpServer := server.NewMCPServer(ServerName, Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	registry.AttachTo(mcpServer)

	log.Infof(ctx, "Registered tools: %s", strings.Join(registry.Names(), ", "))

	return &App{
		Client:   client,
		Registry: registry,
		Server:   mcpServer,
	}, nil
}
