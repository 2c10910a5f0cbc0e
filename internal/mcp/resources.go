// ABOUTME: MCP resource implementations for the workout log.
// ABOUTME: Provides fitlog://workouts/recent and fitlog://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	recentURI  = "fitlog://workouts/recent"
	summaryURI = "fitlog://summary"

	recentLimit = 10
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Workouts",
		Description: "The 10 most recently logged workouts",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Workout Summary",
		Description: "Totals, most frequent type, and pending/completed counts",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	if len(workouts) > recentLimit {
		workouts = workouts[:recentLimit]
	}

	return jsonResource(recentURI, map[string]interface{}{
		"workouts": workouts,
		"count":    len(workouts),
	})
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.repo.Summary()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize workouts: %w", err)
	}

	pending, err := s.repo.IDs(storage.ByStatus(false))
	if err != nil {
		return nil, fmt.Errorf("failed to count pending workouts: %w", err)
	}
	completed, err := s.repo.IDs(storage.ByStatus(true))
	if err != nil {
		return nil, fmt.Errorf("failed to count completed workouts: %w", err)
	}

	mostFrequent := "None"
	if summary.HasWorkouts {
		mostFrequent = summary.MostFrequentType
	}

	return jsonResource(summaryURI, map[string]interface{}{
		"generated_at":           time.Now().Format(time.RFC3339),
		"total_workouts":         summary.Count,
		"total_duration_minutes": summary.TotalDuration,
		"most_frequent_type":     mostFrequent,
		"completed":              len(completed),
		"pending":                len(pending),
	})
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
