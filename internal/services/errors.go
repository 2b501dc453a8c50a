// Package services defines the business logic for clients, appointments,
// and the month calendar. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

// Client-related errors.
var (
	// ErrClientNotFound indicates that the referenced client does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrNameRequired is returned when a create or update request carries an
	// empty first or last name.
	ErrNameRequired = errors.New("first and last name are required")

	// ErrClientHasPending is returned when deleting a client that still has
	// appointments in status pending. The delete performs no mutation.
	ErrClientHasPending = errors.New("client has pending appointments")
)

// Appointment-related errors.
var (
	// ErrAppointmentNotFound indicates that the referenced appointment does
	// not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidDateTime is returned when a schedule request carries a
	// missing or unparseable date-time (expected YYYY-MM-DDTHH:MM).
	ErrInvalidDateTime = errors.New("invalid appointment date-time")
)

// Calendar-related errors.
var (
	// ErrCalendarOutOfRange is returned when a year/month combination falls
	// outside the representable calendar range.
	ErrCalendarOutOfRange = errors.New("calendar year out of range")
)
