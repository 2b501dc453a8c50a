// Package handlers – wiring
//
// This file declares the service contracts consumed by the HTTP layer and
// the Handlers aggregate that binds them to routes. Handlers are
// transport-thin: they validate input, call application services, and
// translate results (including the sentinel errors from internal/services)
// into HTTP responses.
package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salonsuite/go-salon-backend/internal/domain"
)

// ClientService defines roster operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ClientService interface {
	// List returns all clients in a stable order.
	List(ctx context.Context) ([]domain.Client, error)
	// Search returns clients matching a whitespace-separated query.
	Search(ctx context.Context, query string) ([]domain.Client, error)
	// Create validates and persists a new client.
	Create(ctx context.Context, firstName, lastName, phone string) (*domain.Client, error)
	// Get fetches a client by ID.
	Get(ctx context.Context, id uint) (*domain.Client, error)
	// Update overwrites name/phone of an existing client.
	Update(ctx context.Context, id uint, firstName, lastName, phone string) error
	// Delete removes a client and cascades over its appointments, unless
	// the client still has pending appointments.
	Delete(ctx context.Context, id uint) error
}

// AppointmentService defines booking-ledger operations consumed by HTTP
// handlers.
type AppointmentService interface {
	// Schedule creates a pending appointment for an existing client.
	Schedule(ctx context.Context, clientID uint, startsAt, description string) (*domain.Appointment, error)
	// Today returns the agenda for the given date.
	Today(ctx context.Context, today time.Time) ([]domain.Appointment, error)
	// InRange returns appointments within [from, to], dates inclusive.
	InRange(ctx context.Context, from, to time.Time) ([]domain.Appointment, error)
	// ForClient returns a client's appointments ascending by start time.
	ForClient(ctx context.Context, clientID uint) ([]domain.Appointment, error)
	// Complete marks an appointment completed.
	Complete(ctx context.Context, id uint) error
	// Cancel marks an appointment cancelled.
	Cancel(ctx context.Context, id uint) error
}

// Handlers groups the HTTP endpoints for clients, appointments, and the
// month calendar. The wall clock is injected so "today" defaults stay
// deterministic under test.
type Handlers struct {
	clientSvc ClientService
	apptSvc   AppointmentService
	now       func() time.Time
}

// New constructs a Handlers instance bound to the given services. A nil
// now falls back to time.Now.
func New(clientSvc ClientService, apptSvc AppointmentService, now func() time.Time) *Handlers {
	if now == nil {
		now = time.Now
	}
	return &Handlers{clientSvc: clientSvc, apptSvc: apptSvc, now: now}
}

// parseID extracts the :id route parameter as an unsigned integer. The
// second return value is false when the parameter is not a positive
// integer; the caller responds 400 in that case.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
