// ABOUTME: Structured validation errors shared by activity and goal rules.
// ABOUTME: Collects one entry per violated field rule instead of stopping at the first.
package models

import "strings"

// FieldError names a single violated field rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated rule from one validation pass,
// in rule order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil lets validators return nil when no rule was violated, so callers
// can test the result against nil directly.
func (e *ValidationError) orNil() *ValidationError {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Error joins every field message with ", ".
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, ", ")
}
