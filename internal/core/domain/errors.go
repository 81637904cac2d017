package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's error taxonomy. Typed errors below wrap
// these so callers can branch with errors.Is and still recover detail with
// errors.As.
var (
	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrValidationFailed   = errors.New("validation failed")
	ErrAlreadyConverted   = errors.New("quote already converted")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrReferenceIntegrity = errors.New("referenced entity does not exist")
	ErrStatusConflict     = errors.New("shipment status changed concurrently")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
)

// InvalidTransitionError names both states of a rejected transition.
type InvalidTransitionError struct {
	From ShipmentStatus
	To   ShipmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// NewInvalidTransition builds an InvalidTransitionError for the given pair.
func NewInvalidTransition(from, to ShipmentStatus) error {
	return &InvalidTransitionError{From: from, To: to}
}

// ValidationError names the field that violated a payload constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// PreconditionError describes a business precondition that was not met,
// e.g. deleting a shipment that already left the deletable statuses.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

func (e *PreconditionError) Unwrap() error { return ErrPreconditionFailed }

// NewPreconditionError builds a PreconditionError with the given reason.
func NewPreconditionError(reason string) error {
	return &PreconditionError{Reason: reason}
}

// ReferenceError names a linked entity that could not be resolved.
type ReferenceError struct {
	Entity string
	ID     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %q does not exist", e.Entity, e.ID)
}

func (e *ReferenceError) Unwrap() error { return ErrReferenceIntegrity }

// NewReferenceError builds a ReferenceError for the given entity and id.
func NewReferenceError(entity, id string) error {
	return &ReferenceError{Entity: entity, ID: id}
}
