// ABOUTME: Tests for the Workout model.
// ABOUTME: Validates parsing helpers and the input contract.
package models

import (
	"testing"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"30", 30},
		{" 45 ", 45},
		{"0", 0},
		{"", 0},
		{"thirty", 0},
		{"12.5", 0},
		{"30abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseMinutes(tt.in); got != tt.want {
				t.Errorf("ParseMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestWorkoutStatus(t *testing.T) {
	w := &Workout{Name: "Morning run", Duration: "30", Type: TypeRunning}
	if w.Status() != StatusPending {
		t.Errorf("Status() = %s, want pending", w.Status())
	}
	w.Completed = true
	if w.Status() != StatusCompleted {
		t.Errorf("Status() = %s, want completed", w.Status())
	}
	if w.DurationMinutes() != 30 {
		t.Errorf("DurationMinutes() = %d, want 30", w.DurationMinutes())
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"completed", true, false},
		{"Completed", true, false},
		{"done", true, false},
		{"pending", false, false},
		{"incomplete", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseStatus(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeType(t *testing.T) {
	if got := NormalizeType("running"); got != TypeRunning {
		t.Errorf("NormalizeType(running) = %s, want %s", got, TypeRunning)
	}
	if got := NormalizeType(" Yoga "); got != "Yoga" {
		t.Errorf("NormalizeType(Yoga) = %s, want Yoga", got)
	}
	if !IsKnownType("SWIMMING") {
		t.Error("expected SWIMMING to be a known type")
	}
	if IsKnownType("Yoga") {
		t.Error("expected Yoga to be unknown")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		wName    string
		duration string
		wType    string
		wantErr  bool
	}{
		{"valid", "Morning run", "30", TypeRunning, false},
		{"zero duration", "Stretch", "0", "Yoga", false},
		{"empty name", "  ", "30", TypeRunning, true},
		{"empty type", "Morning run", "30", "", true},
		{"empty duration", "Morning run", "", TypeRunning, true},
		{"non-numeric duration", "Morning run", "half an hour", TypeRunning, true},
		{"negative duration", "Morning run", "-5", TypeRunning, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.wName, tt.duration, tt.wType)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStoredKeepsLoggedDurations(t *testing.T) {
	tests := []struct {
		name    string
		wName   string
		wType   string
		wantErr bool
	}{
		{"valid", "Old row", TypeRunning, false},
		{"empty name", "", TypeRunning, true},
		{"blank type", "Old row", "  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStored(tt.wName, tt.wType)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDuration(t *testing.T) {
	for _, d := range []string{"30", " 0 "} {
		if err := ValidateDuration(d); err != nil {
			t.Errorf("ValidateDuration(%q) unexpected error: %v", d, err)
		}
	}
	for _, d := range []string{"", "30 min", "-1"} {
		if err := ValidateDuration(d); err == nil {
			t.Errorf("ValidateDuration(%q) expected error", d)
		}
	}
}
