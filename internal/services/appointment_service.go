// Package services – AppointmentService
//
// This file implements the AppointmentService, which manages the booking
// ledger: scheduling new appointments, retrieving the agenda by day, date
// range, or client, and moving appointments through their status
// transitions. The wall-clock date is never read here; "today" is always an
// explicit parameter injected by the caller, which keeps the ledger
// deterministic under test.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/salonsuite/go-salon-backend/internal/domain"
	"github.com/salonsuite/go-salon-backend/internal/repo"
)

// ScheduleTimeLayout is the accepted input format for appointment times:
// minute precision, no seconds, no zone offset (naive local semantics).
const ScheduleTimeLayout = "2006-01-02T15:04"

// AppointmentService implements the use-cases around the booking ledger.
// It validates input, enforces referential integrity at creation, and
// persists through the repo package. The service is context-aware and
// opens its own transaction where atomicity matters.
type AppointmentService struct {
	// DB is the database handle used for all ledger operations.
	DB *gorm.DB
}

// ParseScheduleTime parses a YYYY-MM-DDTHH:MM value in local time.
// It returns ErrInvalidDateTime for blank or malformed input.
func ParseScheduleTime(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(ScheduleTimeLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return t, nil
}

// Schedule creates a new pending appointment for clientID at the given
// date-time.
//
// Semantics and validation:
//   - startsAt must parse as YYYY-MM-DDTHH:MM; otherwise ErrInvalidDateTime.
//   - clientID must reference an existing client; otherwise ErrClientNotFound
//     and no record is created.
//   - The new appointment always starts in status pending.
//
// Concurrency & atomicity:
//   - The client existence check and the insert run inside a transaction so
//     the referenced client cannot vanish between the two.
func (s *AppointmentService) Schedule(ctx context.Context, clientID uint, startsAt, description string) (*domain.Appointment, error) {
	when, err := ParseScheduleTime(startsAt)
	if err != nil {
		return nil, err
	}

	var created *domain.Appointment
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetClient(ctx, tx, clientID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrClientNotFound
			}
			return err
		}
		a, err := repo.CreateAppointment(ctx, tx, clientID, when, strings.TrimSpace(description))
		if err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Today returns all appointments whose date component equals today's date.
// The time-of-day portion of today is ignored.
func (s *AppointmentService) Today(ctx context.Context, today time.Time) ([]domain.Appointment, error) {
	return repo.ListAppointmentsOnDay(ctx, s.DB, today)
}

// InRange returns all appointments whose date component lies within
// [from, to], both inclusive.
func (s *AppointmentService) InRange(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	return repo.ListAppointmentsInRange(ctx, s.DB, from, to)
}

// ForClient returns the client's appointments ascending by start time.
// A client with no appointments yields an empty slice.
func (s *AppointmentService) ForClient(ctx context.Context, clientID uint) ([]domain.Appointment, error) {
	return repo.ListAppointmentsForClient(ctx, s.DB, clientID)
}

// Complete marks the appointment as completed. The write is unconditional;
// there is no terminal-state guard, so a cancelled appointment can be
// flipped to completed. Returns ErrAppointmentNotFound when absent.
func (s *AppointmentService) Complete(ctx context.Context, id uint) error {
	return s.setStatus(ctx, id, domain.StatusCompleted)
}

// Cancel marks the appointment as cancelled. Symmetric to Complete.
func (s *AppointmentService) Cancel(ctx context.Context, id uint) error {
	return s.setStatus(ctx, id, domain.StatusCancelled)
}

func (s *AppointmentService) setStatus(ctx context.Context, id uint, status domain.AppointmentStatus) error {
	err := repo.UpdateAppointmentStatus(ctx, s.DB, id, status)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrAppointmentNotFound
	}
	return err
}
