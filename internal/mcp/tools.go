// ABOUTME: MCP tool implementations for the workout log.
// ABOUTME: Provides record, query, and summary operations over the store.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Log a workout session (name, duration in minutes, type)",
	}, s.handleAddWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workouts newest first, optionally filtered by type or by completion status",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get one workout by ID",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_workout",
		Description: "Change a workout's name, duration, or type; completion status is kept",
	}, s.handleUpdateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_workout",
		Description: "Mark a workout as completed",
	}, s.handleCompleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete one workout by ID",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_all_workouts",
		Description: "Delete every workout. Requires confirm set to true; there is no undo",
	}, s.handleDeleteAllWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "workout_summary",
		Description: "Total workouts, total minutes, and most frequent workout type",
	}, s.handleSummary)
}

// Tool input/output types

type addWorkoutInput struct {
	Name     string `json:"name" jsonschema:"Name of the workout session"`
	Duration int    `json:"duration_minutes" jsonschema:"Duration in whole minutes"`
	Type     string `json:"type,omitempty" jsonschema:"Workout type such as Running, Cycling, Swimming, Walking (default Running)"`
}

type workoutOutput struct {
	Workout *models.Workout `json:"workout"`
	Message string          `json:"message"`
}

type listWorkoutsInput struct {
	Type   string `json:"type,omitempty" jsonschema:"Only workouts of this type (known types match case-insensitively)"`
	Status string `json:"status,omitempty" jsonschema:"Only completed or pending workouts"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max results (default all)"`
}

type listWorkoutsOutput struct {
	Filter   string            `json:"filter"`
	Count    int               `json:"count"`
	Workouts []*models.Workout `json:"workouts"`
}

type idInput struct {
	ID int64 `json:"id" jsonschema:"Workout ID"`
}

type updateWorkoutInput struct {
	ID       int64  `json:"id" jsonschema:"Workout ID"`
	Name     string `json:"name,omitempty" jsonschema:"New name (unchanged if empty)"`
	Duration *int   `json:"duration_minutes,omitempty" jsonschema:"New duration in minutes (unchanged if omitted)"`
	Type     string `json:"type,omitempty" jsonschema:"New type (unchanged if empty)"`
}

type deleteAllInput struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true to delete every workout"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	workoutType := models.NormalizeType(input.Type)
	if workoutType == "" {
		workoutType = models.TypeRunning
	}
	duration := fmt.Sprintf("%d", input.Duration)

	if err := models.Validate(input.Name, duration, workoutType); err != nil {
		return nil, workoutOutput{}, err
	}

	id, err := s.repo.Create(input.Name, duration, workoutType)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to create workout: %w", err)
	}

	w, err := s.repo.Get(id)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to read back workout: %w", err)
	}

	logrus.WithField("id", id).Debug("mcp: workout added")
	return nil, workoutOutput{
		Workout: w,
		Message: fmt.Sprintf("Added %s workout %q (ID: %d)", w.Type, w.Name, w.ID),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, listWorkoutsOutput, error) {
	if input.Type != "" && input.Status != "" {
		return nil, listWorkoutsOutput{}, errors.New("filter by type or by status, not both")
	}

	f := storage.AllWorkouts()
	if input.Type != "" {
		f = storage.ByType(models.NormalizeType(input.Type))
	}
	if input.Status != "" {
		completed, err := models.ParseStatus(input.Status)
		if err != nil {
			return nil, listWorkoutsOutput{}, err
		}
		f = storage.ByStatus(completed)
	}

	workouts, err := s.repo.List(f)
	if err != nil {
		return nil, listWorkoutsOutput{}, fmt.Errorf("failed to list workouts: %w", err)
	}
	if input.Limit > 0 && len(workouts) > input.Limit {
		workouts = workouts[:input.Limit]
	}

	return nil, listWorkoutsOutput{
		Filter:   f.String(),
		Count:    len(workouts),
		Workouts: workouts,
	}, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, workoutOutput, error) {
	w, err := s.repo.Get(input.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, workoutOutput{}, fmt.Errorf("workout not found: %d", input.ID)
		}
		return nil, workoutOutput{}, err
	}

	return nil, workoutOutput{
		Workout: w,
		Message: fmt.Sprintf("%s: %s min %s (%s)", w.Name, w.Duration, w.Type, w.Status()),
	}, nil
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, input updateWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	current, err := s.repo.Get(input.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, workoutOutput{}, fmt.Errorf("workout not found: %d", input.ID)
		}
		return nil, workoutOutput{}, err
	}

	name, duration, workoutType := current.Name, current.Duration, current.Type
	if input.Name != "" {
		name = input.Name
		if err := models.ValidateName(name); err != nil {
			return nil, workoutOutput{}, err
		}
	}
	if input.Duration != nil {
		duration = fmt.Sprintf("%d", *input.Duration)
		if err := models.ValidateDuration(duration); err != nil {
			return nil, workoutOutput{}, err
		}
	}
	if input.Type != "" {
		workoutType = models.NormalizeType(input.Type)
		if err := models.ValidateType(workoutType); err != nil {
			return nil, workoutOutput{}, err
		}
	}

	ok, err := s.repo.Update(input.ID, name, duration, workoutType)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to update workout: %w", err)
	}
	if !ok {
		return nil, workoutOutput{}, fmt.Errorf("workout not found: %d", input.ID)
	}

	w, err := s.repo.Get(input.ID)
	if err != nil {
		return nil, workoutOutput{}, err
	}
	return nil, workoutOutput{
		Workout: w,
		Message: fmt.Sprintf("Updated workout %d", w.ID),
	}, nil
}

func (s *Server) handleCompleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	ok, err := s.repo.MarkComplete(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to complete workout: %w", err)
	}
	if !ok {
		return nil, simpleOutput{}, fmt.Errorf("workout not found: %d", input.ID)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Marked workout %d as completed", input.ID),
	}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	ok, err := s.repo.DeleteOne(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	if !ok {
		return nil, simpleOutput{}, fmt.Errorf("workout not found: %d", input.ID)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %d", input.ID),
	}, nil
}

func (s *Server) handleDeleteAllWorkouts(ctx context.Context, req *mcp.CallToolRequest, input deleteAllInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !input.Confirm {
		return nil, simpleOutput{}, errors.New("refusing to delete all workouts without confirm=true")
	}

	count, err := s.repo.Count()
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.repo.DeleteAll(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workouts: %w", err)
	}

	logrus.WithField("count", count).Info("mcp: deleted all workouts")
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %d workouts", count),
	}, nil
}

func (s *Server) handleSummary(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, storage.Summary, error) {
	summary, err := s.repo.Summary()
	if err != nil {
		return nil, storage.Summary{}, fmt.Errorf("failed to summarize workouts: %w", err)
	}
	return nil, *summary, nil
}
