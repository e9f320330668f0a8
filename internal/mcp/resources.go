// ABOUTME: MCP resource implementations for fitlog.
// ABOUTME: Provides fitlog://recent, fitlog://goals, and fitlog://stats/weekly resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fitlog://recent - Last 10 logged activities
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitlog://recent",
		Name:        "Recent Activities",
		Description: "Last 10 logged activities, most recent first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// fitlog://goals - Every goal with progress and status
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitlog://goals",
		Name:        "Goal Progress",
		Description: "All goals with current value, percentage, and status",
		MIMEType:    "application/json",
	}, s.handleGoalsResource)

	// fitlog://stats/weekly - Aggregates for the trailing week
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitlog://stats/weekly",
		Name:        "Weekly Statistics",
		Description: "Totals and per-type breakdown for the last 7 days",
		MIMEType:    "application/json",
	}, s.handleWeeklyStatsResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	activities, err := s.activities.GetAllActivities()
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	if len(activities) > 10 {
		activities = activities[:10]
	}

	result := map[string]interface{}{
		"activities": activities,
		"count":      len(activities),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitlog://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleGoalsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	goals, err := s.goals.GetAllGoals()
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	reports := make([]interface{}, 0, len(goals))
	for _, g := range goals {
		report, err := s.goals.GetProgressReport(g.ID)
		if err != nil {
			continue
		}
		reports = append(reports, report)
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"goals":        reports,
		"count":        len(reports),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitlog://goals",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleWeeklyStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	stats := s.analytics.WeeklyStats()

	result := map[string]interface{}{
		"generated_at":             time.Now().Format(time.RFC3339),
		"period":                   "last 7 days",
		"stats":                    stats,
		"average_duration_minutes": s.analytics.AverageDuration(),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitlog://stats/weekly",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
