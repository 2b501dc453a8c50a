// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Appointment model.
//
// Date-component predicates ("appointments on day X", "appointments whose
// date lies in [X, Y]") are implemented as half-open time windows
// [00:00, next-day 00:00) computed in the timestamp's own location. This
// avoids coupling to the driver's on-disk datetime text format while
// keeping the "date portion equals" semantics of the original queries.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/salonsuite/go-salon-backend/internal/domain"
)

// dayStart truncates t to midnight in t's location.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CreateAppointment inserts a new appointment row in status pending.
// Referential integrity of clientID is enforced by the caller (the service
// checks existence inside the same transaction) and by the FK constraint.
func CreateAppointment(ctx context.Context, db *gorm.DB, clientID uint, startsAt time.Time, description string) (*domain.Appointment, error) {
	a := &domain.Appointment{
		ClientID:    clientID,
		StartsAt:    startsAt,
		Description: description,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// GetAppointment fetches an appointment by ID, or ErrNotFound if missing.
func GetAppointment(ctx context.Context, db *gorm.DB, id uint) (*domain.Appointment, error) {
	var a domain.Appointment
	if err := db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAppointmentsOnDay returns all appointments whose date component
// equals day's date, ordered by start time. The time-of-day portion of day
// is ignored.
func ListAppointmentsOnDay(ctx context.Context, db *gorm.DB, day time.Time) ([]domain.Appointment, error) {
	start := dayStart(day)
	return listWindow(ctx, db, start, start.AddDate(0, 0, 1))
}

// ListAppointmentsInRange returns all appointments whose date component
// lies within [from, to], both inclusive, ordered by start time.
func ListAppointmentsInRange(ctx context.Context, db *gorm.DB, from, to time.Time) ([]domain.Appointment, error) {
	return listWindow(ctx, db, dayStart(from), dayStart(to).AddDate(0, 0, 1))
}

// listWindow returns appointments with starts_at in [start, end), ordered
// deterministically (StartsAt ASC, ID ASC).
func listWindow(ctx context.Context, db *gorm.DB, start, end time.Time) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := db.WithContext(ctx).
		Where("starts_at >= ? AND starts_at < ?", start, end).
		Order("starts_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// ListAppointmentsForClient returns all appointments belonging to clientID,
// ordered ascending by start time then ID. A client with no appointments
// yields an empty slice, not an error.
func ListAppointmentsForClient(ctx context.Context, db *gorm.DB, clientID uint) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("starts_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// CountAppointmentsByStatus returns how many of clientID's appointments are
// in the given status. Used by the deletion guard.
func CountAppointmentsByStatus(ctx context.Context, db *gorm.DB, clientID uint, status domain.AppointmentStatus) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("client_id = ? AND status = ?", clientID, status).
		Count(&total).Error
	return total, err
}

// DeleteAppointmentsForClient removes every appointment belonging to
// clientID. Deleting zero rows is not an error; clients without
// appointments are legal.
func DeleteAppointmentsForClient(ctx context.Context, db *gorm.DB, clientID uint) error {
	return db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&domain.Appointment{}).Error
}

// UpdateAppointmentStatus sets the status of the appointment identified by
// id. The write is unconditional: there is no terminal-state guard, so
// completing an already-cancelled appointment simply overwrites the status.
// Returns ErrNotFound when the row does not exist.
func UpdateAppointmentStatus(ctx context.Context, db *gorm.DB, id uint, status domain.AppointmentStatus) error {
	res := db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
