// ABOUTME: Tests for ValidationError aggregation and message formatting.
// ABOUTME: Shared pointer helpers for building inputs live here too.
package models

import (
	"testing"
	"time"
)

// fptr and tptr build pointer fields for input structs.
func fptr(v float64) *float64 {
	return &v
}

func tptr(t time.Time) *time.Time {
	return &t
}

func TestValidationErrorJoinsMessages(t *testing.T) {
	verr := &ValidationError{Fields: []FieldError{
		{Field: "duration", Message: "Duration must be a positive number"},
		{Field: "distance", Message: "Distance must be a non-negative number"},
	}}

	want := "Duration must be a positive number, Distance must be a non-negative number"
	if got := verr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrorSingleMessage(t *testing.T) {
	verr := &ValidationError{Fields: []FieldError{
		{Field: "name", Message: "Goal name is required"},
	}}

	if got := verr.Error(); got != "Goal name is required" {
		t.Errorf("Error() = %q, want %q", got, "Goal name is required")
	}
}

func TestValidationErrorFieldOrder(t *testing.T) {
	in := ActivityInput{}
	verr := ValidateActivity(in)
	if verr == nil {
		t.Fatal("Expected validation error for empty input")
	}

	wantFields := []string{"type", "date", "duration", "distance", "calories"}
	if len(verr.Fields) != len(wantFields) {
		t.Fatalf("Expected %d errors, got %d", len(wantFields), len(verr.Fields))
	}
	for i, want := range wantFields {
		if verr.Fields[i].Field != want {
			t.Errorf("Fields[%d] = %s, want %s", i, verr.Fields[i].Field, want)
		}
	}
}
