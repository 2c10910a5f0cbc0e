// ABOUTME: Workout model for exercise session logging.
// ABOUTME: Holds the record shape plus caller-side input validation.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Workout types offered by the CLI and MCP tools. The store accepts any
// non-empty type string.
const (
	TypeRunning  = "Running"
	TypeCycling  = "Cycling"
	TypeSwimming = "Swimming"
	TypeWalking  = "Walking"
)

// KnownTypes lists the suggested workout types in display order.
var KnownTypes = []string{TypeRunning, TypeCycling, TypeSwimming, TypeWalking}

// Workout represents one logged exercise session.
type Workout struct {
	ID        int64  `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Duration  string `json:"duration" yaml:"duration"` // minutes, numeric string
	Type      string `json:"type" yaml:"type"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// DurationMinutes parses Duration. Values that are not integers count as 0.
func (w *Workout) DurationMinutes() int {
	return ParseMinutes(w.Duration)
}

// Status returns "completed" or "pending".
func (w *Workout) Status() string {
	if w.Completed {
		return StatusCompleted
	}
	return StatusPending
}

// Completion status names used by filters.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// ParseStatus maps a status name to the completion flag.
func ParseStatus(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case StatusCompleted, "complete", "done":
		return true, nil
	case StatusPending, "incomplete", "open":
		return false, nil
	default:
		return false, fmt.Errorf("unknown status: %q (use completed or pending)", s)
	}
}

// ParseMinutes converts a stored duration to minutes, treating anything
// unparseable as 0. Historical rows predate input validation.
func ParseMinutes(duration string) int {
	n, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return 0
	}
	return n
}

// IsKnownType reports whether t is one of KnownTypes (case-insensitive).
func IsKnownType(t string) bool {
	for _, k := range KnownTypes {
		if strings.EqualFold(k, t) {
			return true
		}
	}
	return false
}

// NormalizeType maps a known type to its canonical spelling and leaves other
// values trimmed but otherwise untouched.
func NormalizeType(t string) string {
	t = strings.TrimSpace(t)
	for _, k := range KnownTypes {
		if strings.EqualFold(k, t) {
			return k
		}
	}
	return t
}

// Validate checks the input contract for a new workout: non-empty name and
// type, and a duration that is a non-negative whole number of minutes.
func Validate(name, duration, workoutType string) error {
	if err := ValidateStored(name, workoutType); err != nil {
		return err
	}
	return ValidateDuration(duration)
}

// ValidateStored checks only what the store itself requires. Durations are
// kept as logged, so older records with free-text durations still pass.
func ValidateStored(name, workoutType string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	return ValidateType(workoutType)
}

// ValidateName rejects blank names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	return nil
}

// ValidateType rejects blank types.
func ValidateType(workoutType string) error {
	if strings.TrimSpace(workoutType) == "" {
		return errors.New("type is required")
	}
	return nil
}

// ValidateDuration requires a non-negative whole number of minutes.
func ValidateDuration(duration string) error {
	d := strings.TrimSpace(duration)
	if d == "" {
		return errors.New("duration is required")
	}
	n, err := strconv.Atoi(d)
	if err != nil {
		return fmt.Errorf("invalid duration: %q (minutes as a whole number)", duration)
	}
	if n < 0 {
		return fmt.Errorf("invalid duration: %q (must not be negative)", duration)
	}
	return nil
}
