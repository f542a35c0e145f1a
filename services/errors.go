package services

import (
	"errors"
	"fmt"
)

var (
	// ErrLocationNotFound covers both unknown places and an unreachable
	// geocoding service.
	ErrLocationNotFound = errors.New("LOCATION_NOT_FOUND")
	ErrInvalidRequest   = errors.New("INVALID_REQUEST")
	ErrInvalidDocument  = errors.New("INVALID_ITINERARY_DOCUMENT")
)

// LocationError is returned when a destination cannot be resolved.
type LocationError struct {
	Location string
	Err      error
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("could not find coordinates for %s", e.Location)
}

func (e *LocationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrLocationNotFound}
	}
	return []error{ErrLocationNotFound, e.Err}
}

// ValidationError rejects a single request field at the input surface.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
