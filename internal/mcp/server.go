// ABOUTME: MCP server setup for the fitlog activity store.
// ABOUTME: Wraps the MCP server with the service stack over a Store.
package mcp

import (
	"context"

	"github.com/harperreed/fitlog/internal/service"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with the fitlog services.
type Server struct {
	mcpServer  *mcp.Server
	store      storage.Store
	activities *service.ActivityManager
	goals      *service.GoalTracker
	analytics  *service.AnalyticsEngine
}

// NewServer creates a new MCP server over the given store.
func NewServer(store storage.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitlog",
			Version: "1.0.0",
		},
		nil,
	)

	activities := service.NewActivityManager(store)
	s := &Server{
		mcpServer:  mcpServer,
		store:      store,
		activities: activities,
		goals:      service.NewGoalTracker(store, activities),
		analytics:  service.NewAnalyticsEngine(activities),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
