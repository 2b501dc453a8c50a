package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/salonsuite/go-salon-backend/internal/domain"
)

func localTime(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestCreateAppointment_DefaultsToPending(t *testing.T) {
	db := newTestDB(t, &domain.Client{}, &domain.Appointment{})
	c, err := CreateClient(context.Background(), db, "Ana", "García", "")
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	a, err := CreateAppointment(context.Background(), db, c.ID, localTime(2024, time.March, 10, 9, 0), "corte")
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if a.ID == 0 || a.ClientID != c.ID || a.Status != domain.StatusPending {
		t.Fatalf("unexpected Appointment fields: %+v", a)
	}

	got, err := GetAppointment(context.Background(), db, a.ID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if !got.StartsAt.Equal(localTime(2024, time.March, 10, 9, 0)) || got.Description != "corte" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListAppointmentsOnDay_IgnoresTimeOfDay(t *testing.T) {
	db := newTestDB(t, &domain.Client{}, &domain.Appointment{})
	c, _ := CreateClient(context.Background(), db, "Ana", "García", "")

	ctx := context.Background()
	mustCreate := func(ts time.Time) {
		t.Helper()
		if _, err := CreateAppointment(ctx, db, c.ID, ts, ""); err != nil {
			t.Fatalf("seed appointment: %v", err)
		}
	}
	mustCreate(localTime(2024, time.March, 10, 0, 0))  // midnight inclusive
	mustCreate(localTime(2024, time.March, 10, 23, 59))
	mustCreate(localTime(2024, time.March, 11, 0, 0))  // next day excluded
	mustCreate(localTime(2024, time.March, 9, 23, 59)) // prior day excluded

	got, err := ListAppointmentsOnDay(ctx, db, localTime(2024, time.March, 10, 15, 4))
	if err != nil {
		t.Fatalf("ListAppointmentsOnDay: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments on 2024-03-10, got %d: %+v", len(got), got)
	}
	for _, a := range got {
		if a.StartsAt.Day() != 10 {
			t.Fatalf("appointment outside day window: %+v", a)
		}
	}
}

func TestListAppointmentsInRange_InclusiveBounds(t *testing.T) {
	db := newTestDB(t, &domain.Client{}, &domain.Appointment{})
	c, _ := CreateClient(context.Background(), db, "Ana", "García", "")

	ctx := context.Background()
	for _, ts := range []time.Time{
		localTime(2024, time.January, 31, 23, 59), // before
		localTime(2024, time.February, 1, 0, 0),   // first day
		localTime(2024, time.February, 15, 12, 0),
		localTime(2024, time.February, 29, 23, 30), // leap last day
		localTime(2024, time.March, 1, 0, 0),       // after
	} {
		if _, err := CreateAppointment(ctx, db, c.ID, ts, ""); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := ListAppointmentsInRange(ctx, db,
		localTime(2024, time.February, 1, 0, 0),
		localTime(2024, time.February, 29, 0, 0))
	if err != nil {
		t.Fatalf("ListAppointmentsInRange: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 appointments in February, got %d", len(got))
	}
	// Ordered by start time.
	for i := 1; i < len(got); i++ {
		if got[i].StartsAt.Before(got[i-1].StartsAt) {
			t.Fatalf("range result not ascending: %+v", got)
		}
	}
}

func TestListAppointmentsForClient_AscendingAndScoped(t *testing.T) {
	db := newTestDB(t, &domain.Client{}, &domain.Appointment{})
	ctx := context.Background()
	ana, _ := CreateClient(ctx, db, "Ana", "García", "")
	luis, _ := CreateClient(ctx, db, "Luis", "Martinez", "")

	// Insert out of chronological order.
	later, _ := CreateAppointment(ctx, db, ana.ID, localTime(2024, time.March, 20, 9, 0), "")
	earlier, _ := CreateAppointment(ctx, db, ana.ID, localTime(2024, time.March, 10, 9, 0), "")
	if _, err := CreateAppointment(ctx, db, luis.ID, localTime(2024, time.March, 15, 9, 0), ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := ListAppointmentsForClient(ctx, db, ana.ID)
	if err != nil {
		t.Fatalf("ListAppointmentsForClient: %v", err)
	}
	if len(got) != 2 || got[0].ID != earlier.ID || got[1].ID != later.ID {
		t.Fatalf("expected [%d %d], got %+v", earlier.ID, later.ID, got)
	}

	// Unknown client: empty slice, no error.
	none, err := ListAppointmentsForClient(ctx, db, 999)
	if err != nil || len(none) != 0 {
		t.Fatalf("expected empty result for unknown client, got %v / %v", none, err)
	}
}

func TestCountAppointmentsByStatus(t *testing.T) {
	db := newTestDB(t, &domain.Client{}, &domain.Appointment{})
	ctx := context.Background()
	c, _ := CreateClient(ctx, db, "Ana", "García", "")

	a1, _ := CreateAppointment(ctx, db, c.ID, localTime(2024, time.March, 10, 9, 0), "")
	a2, _ := CreateAppointment(ctx, db, c.ID, localTime(2024, time.March, 11, 9, 0), "")
	if _, err := CreateAppointment(ctx, db, c.ID, localTime(2024, time.March, 12, 9, 0), ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := UpdateAppointmentStatus(ctx, db, a1.ID, domain.StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := UpdateAppointmentStatus(ctx, db, a2.ID, domain.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	pending, err := CountAppointmentsByStatus(ctx, db, c.ID, domain.StatusPending)
	if err != nil {
		t.Fatalf("count pending: %v", err)
	}
	if pending != 1 {
		t.Fatalf("pending = %d; want 1", pending)
	}
}

func TestUpdateAppointmentStatus_OverwritesWithoutGuard(t *testing.T) {
	db := newTestDB(t, &domain.Client{}, &domain.Appointment{})
	ctx := context.Background()
	c, _ := CreateClient(ctx, db, "Ana", "García", "")
	a, _ := CreateAppointment(ctx, db, c.ID, localTime(2024, time.March, 10, 9, 0), "")

	// completed then cancelled: both writes succeed, last one wins.
	if err := UpdateAppointmentStatus(ctx, db, a.ID, domain.StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := UpdateAppointmentStatus(ctx, db, a.ID, domain.StatusCancelled); err != nil {
		t.Fatalf("cancel after complete: %v", err)
	}
	got, _ := GetAppointment(ctx, db, a.ID)
	if got.Status != domain.StatusCancelled {
		t.Fatalf("status = %q; want cancelled", got.Status)
	}
}

func TestUpdateAppointmentStatus_NotFound(t *testing.T) {
	db := newTestDB(t, &domain.Client{}, &domain.Appointment{})
	err := UpdateAppointmentStatus(context.Background(), db, 404, domain.StatusCompleted)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAppointmentsForClient(t *testing.T) {
	db := newTestDB(t, &domain.Client{}, &domain.Appointment{})
	ctx := context.Background()
	c, _ := CreateClient(ctx, db, "Ana", "García", "")
	for d := 1; d <= 3; d++ {
		if _, err := CreateAppointment(ctx, db, c.ID, localTime(2024, time.March, d, 9, 0), ""); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	if err := DeleteAppointmentsForClient(ctx, db, c.ID); err != nil {
		t.Fatalf("DeleteAppointmentsForClient: %v", err)
	}
	left, _ := ListAppointmentsForClient(ctx, db, c.ID)
	if len(left) != 0 {
		t.Fatalf("expected no appointments left, got %d", len(left))
	}
	// No appointments is not an error.
	if err := DeleteAppointmentsForClient(ctx, db, c.ID); err != nil {
		t.Fatalf("delete with nothing to delete: %v", err)
	}
}
