package gomap

import (
	"errors"
	"fmt"
)

// ErrMapKeys is returned, unwrapped, when a map with a non-string key
// type is converted. The message text is part of the error contract;
// callers match on it.
var ErrMapKeys = errors.New("Map keys must be Strings")

// MarshalError represents an error during conversion to ir.
type MarshalError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}
