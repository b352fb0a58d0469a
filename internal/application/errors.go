package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrAlreadyExists is returned when a resource with the same identity is already registered.
	ErrAlreadyExists = errors.New("application: already exists")
)

// ValidationError captures field level validation issues that callers can surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	if len(v.FieldErrors) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v.FieldErrors))
	for field := range v.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + v.FieldErrors[field]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

// merge copies entries from another validation error into the receiver.
func (v *ValidationError) merge(other *ValidationError) {
	if other == nil || len(other.FieldErrors) == 0 {
		return
	}
	for field, msg := range other.FieldErrors {
		v.add(field, msg)
	}
}

// UnknownLocationError reports a location id missing from the catalog.
type UnknownLocationError struct {
	LocationID string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown location %q", e.LocationID)
}

// Is matches ErrNotFound.
func (e *UnknownLocationError) Is(target error) bool { return target == ErrNotFound }

// UnknownRoomError reports a room id missing from an existing location.
type UnknownRoomError struct {
	LocationID string
	RoomID     string
}

func (e *UnknownRoomError) Error() string {
	return fmt.Sprintf("unknown room %q in location %q", e.RoomID, e.LocationID)
}

// Is matches ErrNotFound.
func (e *UnknownRoomError) Is(target error) bool { return target == ErrNotFound }

// UnknownPersonsError lists every email of a request that is not registered,
// in request order.
type UnknownPersonsError struct {
	Emails []string
}

func (e *UnknownPersonsError) Error() string {
	return "unknown persons: " + strings.Join(e.Emails, ", ")
}

// Is matches ErrNotFound.
func (e *UnknownPersonsError) Is(target error) bool { return target == ErrNotFound }
