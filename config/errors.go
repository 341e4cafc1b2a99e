package config

import "fmt"

// ValidationError is returned by (*Run).Validate when a field fails its
// constraint.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: field %q: %s", e.Field, e.Msg)
}
