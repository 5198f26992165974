package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks a failed round trip to the upstream data API,
	// including non-200 responses.
	ErrTransport = errors.New("upstream transport error")

	// ErrMalformedResponse marks an upstream body that could not be decoded.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrMissingField marks a record that lacks a field its category requires.
	ErrMissingField = errors.New("missing field")

	// ErrNotFound is returned when an identifier lookup matches no record.
	ErrNotFound = errors.New("facility not found")

	// ErrUnknownDataSource is returned for a facility type token that names
	// no known category.
	ErrUnknownDataSource = errors.New("unknown data source")

	// ErrInvalidRequest marks a lookup request that carries neither a
	// location nor a facility identifier.
	ErrInvalidRequest = errors.New("invalid lookup request")
)

// MissingFieldError reports which field was absent and for which category.
// It matches ErrMissingField under errors.Is.
type MissingFieldError struct {
	Category Category
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s record: %s %q", e.Category, ErrMissingField, e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
