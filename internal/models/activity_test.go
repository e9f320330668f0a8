// ABOUTME: Tests for the Activity model, type enum, validation, and factory.
// ABOUTME: Covers collect-all validation semantics and factory preconditions.
package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func validActivityInput() ActivityInput {
	return ActivityInput{
		Type:     "running",
		Date:     tptr(time.Date(2024, 1, 10, 7, 30, 0, 0, time.UTC)),
		Duration: fptr(30),
		Distance: fptr(5),
		Calories: fptr(300),
	}
}

func TestIsValidActivityType(t *testing.T) {
	for _, at := range AllActivityTypes {
		if !IsValidActivityType(string(at)) {
			t.Errorf("Expected %s to be valid", at)
		}
	}

	invalid := []string{"", "yoga", "Running", "RUNNING", "run"}
	for _, s := range invalid {
		if IsValidActivityType(s) {
			t.Errorf("Expected %q to be invalid", s)
		}
	}
}

func TestValidateActivityValid(t *testing.T) {
	if verr := ValidateActivity(validActivityInput()); verr != nil {
		t.Errorf("Expected valid input, got: %v", verr)
	}
}

func TestValidateActivityZeroDistanceAndCalories(t *testing.T) {
	in := validActivityInput()
	in.Distance = fptr(0)
	in.Calories = fptr(0)

	if verr := ValidateActivity(in); verr != nil {
		t.Errorf("Expected zero distance/calories to be valid, got: %v", verr)
	}
}

func TestValidateActivitySingleViolations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ActivityInput)
		wantField string
		wantMsg   string
	}{
		{
			name:      "unknown type",
			mutate:    func(in *ActivityInput) { in.Type = "yoga" },
			wantField: "type",
			wantMsg:   "Activity type must be one of: running, cycling, swimming, walking, strength_training",
		},
		{
			name:      "missing type",
			mutate:    func(in *ActivityInput) { in.Type = "" },
			wantField: "type",
			wantMsg:   "Activity type must be one of: running, cycling, swimming, walking, strength_training",
		},
		{
			name:      "missing date",
			mutate:    func(in *ActivityInput) { in.Date = nil },
			wantField: "date",
			wantMsg:   "Date is required and must be a valid date",
		},
		{
			name:      "zero date",
			mutate:    func(in *ActivityInput) { in.Date = tptr(time.Time{}) },
			wantField: "date",
			wantMsg:   "Date is required and must be a valid date",
		},
		{
			name:      "missing duration",
			mutate:    func(in *ActivityInput) { in.Duration = nil },
			wantField: "duration",
			wantMsg:   "Duration must be a positive number",
		},
		{
			name:      "zero duration",
			mutate:    func(in *ActivityInput) { in.Duration = fptr(0) },
			wantField: "duration",
			wantMsg:   "Duration must be a positive number",
		},
		{
			name:      "negative duration",
			mutate:    func(in *ActivityInput) { in.Duration = fptr(-10) },
			wantField: "duration",
			wantMsg:   "Duration must be a positive number",
		},
		{
			name:      "missing distance",
			mutate:    func(in *ActivityInput) { in.Distance = nil },
			wantField: "distance",
			wantMsg:   "Distance must be a non-negative number",
		},
		{
			name:      "negative distance",
			mutate:    func(in *ActivityInput) { in.Distance = fptr(-1) },
			wantField: "distance",
			wantMsg:   "Distance must be a non-negative number",
		},
		{
			name:      "missing calories",
			mutate:    func(in *ActivityInput) { in.Calories = nil },
			wantField: "calories",
			wantMsg:   "Calories must be a non-negative number",
		},
		{
			name:      "negative calories",
			mutate:    func(in *ActivityInput) { in.Calories = fptr(-50) },
			wantField: "calories",
			wantMsg:   "Calories must be a non-negative number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validActivityInput()
			tt.mutate(&in)

			verr := ValidateActivity(in)
			if verr == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if len(verr.Fields) != 1 {
				t.Fatalf("Expected exactly 1 error, got %d: %v", len(verr.Fields), verr)
			}
			if verr.Fields[0].Field != tt.wantField {
				t.Errorf("Field = %s, want %s", verr.Fields[0].Field, tt.wantField)
			}
			if verr.Fields[0].Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", verr.Fields[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateActivityCollectsAllViolations(t *testing.T) {
	in := ActivityInput{
		Type:     "yoga",
		Date:     nil,
		Duration: fptr(-5),
		Distance: fptr(-1),
		Calories: fptr(-1),
	}

	verr := ValidateActivity(in)
	if verr == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if len(verr.Fields) != 5 {
		t.Errorf("Expected 5 errors, got %d: %v", len(verr.Fields), verr)
	}
}

func TestValidateActivityTwoViolations(t *testing.T) {
	in := validActivityInput()
	in.Duration = fptr(0)
	in.Distance = fptr(-2)

	verr := ValidateActivity(in)
	if verr == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("Expected 2 errors, got %d: %v", len(verr.Fields), verr)
	}
	if verr.Fields[0].Field != "duration" || verr.Fields[1].Field != "distance" {
		t.Errorf("Expected duration then distance, got %s then %s",
			verr.Fields[0].Field, verr.Fields[1].Field)
	}
}

func TestNewActivity(t *testing.T) {
	in := validActivityInput()
	a := NewActivity(in)

	if a.ID == "" {
		t.Error("Expected non-empty ID")
	}
	if a.Type != ActivityRunning {
		t.Errorf("Type = %s, want running", a.Type)
	}
	if !a.Date.Equal(*in.Date) {
		t.Errorf("Date = %v, want %v", a.Date, *in.Date)
	}
	if a.Duration != 30 {
		t.Errorf("Duration = %f, want 30", a.Duration)
	}
	if a.Distance != 5 {
		t.Errorf("Distance = %f, want 5", a.Distance)
	}
	if a.Calories != 300 {
		t.Errorf("Calories = %f, want 300", a.Calories)
	}
}

func TestNewActivityGeneratesUniqueIDs(t *testing.T) {
	a1 := NewActivity(validActivityInput())
	a2 := NewActivity(validActivityInput())

	if a1.ID == a2.ID {
		t.Errorf("Expected unique IDs, both were %s", a1.ID)
	}
}

func TestNewActivityPanicsOnInvalidInput(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid input")
		}
	}()

	NewActivity(ActivityInput{Type: "yoga"})
}

func TestActivityJSONFieldNames(t *testing.T) {
	a := NewActivity(validActivityInput())
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	for _, field := range []string{`"id"`, `"type"`, `"date"`, `"duration"`, `"distance"`, `"calories"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("Expected %s in JSON, got: %s", field, data)
		}
	}
}
