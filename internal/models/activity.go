// ABOUTME: Activity model and ActivityType enum for logged workouts.
// ABOUTME: Defines the closed type set, field validation rules, and the entity factory.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActivityType represents the kind of workout being logged.
type ActivityType string

const (
	ActivityRunning          ActivityType = "running"
	ActivityCycling          ActivityType = "cycling"
	ActivitySwimming         ActivityType = "swimming"
	ActivityWalking          ActivityType = "walking"
	ActivityStrengthTraining ActivityType = "strength_training"
)

// AllActivityTypes returns all valid activity types.
var AllActivityTypes = []ActivityType{
	ActivityRunning, ActivityCycling, ActivitySwimming,
	ActivityWalking, ActivityStrengthTraining,
}

// IsValidActivityType checks if a string is a valid activity type.
func IsValidActivityType(s string) bool {
	for _, at := range AllActivityTypes {
		if string(at) == s {
			return true
		}
	}
	return false
}

// ActivityTypeNames returns the valid type names joined for messages.
func ActivityTypeNames() string {
	names := make([]string, len(AllActivityTypes))
	for i, at := range AllActivityTypes {
		names[i] = string(at)
	}
	return strings.Join(names, ", ")
}

// Activity represents a single logged workout.
type Activity struct {
	ID       string       `json:"id"`
	Type     ActivityType `json:"type"`
	Date     time.Time    `json:"date"`
	Duration float64      `json:"duration"`
	Distance float64      `json:"distance"`
	Calories float64      `json:"calories"`
}

// ActivityInput carries raw activity fields before validation. Pointer
// fields distinguish an absent value from a legitimate zero.
type ActivityInput struct {
	Type     string
	Date     *time.Time
	Duration *float64
	Distance *float64
	Calories *float64
}

// ValidateActivity checks every field rule in order and collects one
// error per violated rule. Returns nil when the input is valid.
func ValidateActivity(in ActivityInput) *ValidationError {
	var verr ValidationError
	if !IsValidActivityType(in.Type) {
		verr.add("type", "Activity type must be one of: "+ActivityTypeNames())
	}
	if in.Date == nil || in.Date.IsZero() {
		verr.add("date", "Date is required and must be a valid date")
	}
	if in.Duration == nil || *in.Duration <= 0 {
		verr.add("duration", "Duration must be a positive number")
	}
	if in.Distance == nil || *in.Distance < 0 {
		verr.add("distance", "Distance must be a non-negative number")
	}
	if in.Calories == nil || *in.Calories < 0 {
		verr.add("calories", "Calories must be a non-negative number")
	}
	return verr.orNil()
}

// NewActivity builds an Activity from validated input with a generated
// id. Callers must validate first; construction from invalid input is a
// programming error and panics.
func NewActivity(in ActivityInput) *Activity {
	if verr := ValidateActivity(in); verr != nil {
		panic(fmt.Sprintf("NewActivity called with invalid input: %v", verr))
	}
	return &Activity{
		ID:       uuid.NewString(),
		Type:     ActivityType(in.Type),
		Date:     *in.Date,
		Duration: *in.Duration,
		Distance: *in.Distance,
		Calories: *in.Calories,
	}
}
