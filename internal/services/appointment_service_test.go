package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/salonsuite/go-salon-backend/internal/domain"
	"github.com/salonsuite/go-salon-backend/internal/repo"
)

func TestParseScheduleTime(t *testing.T) {
	got, err := ParseScheduleTime("2024-03-10T09:30")
	if err != nil {
		t.Fatalf("ParseScheduleTime: %v", err)
	}
	want := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("parsed %v; want %v", got, want)
	}

	for _, bad := range []string{
		"",
		"  ",
		"2024-03-10",            // date only
		"2024-03-10T09:30:00",   // seconds not accepted
		"2024-03-10 09:30",      // wrong separator
		"10/03/2024T09:30",      // wrong date format
		"2024-13-10T09:30",      // month out of range
	} {
		if _, err := ParseScheduleTime(bad); !errors.Is(err, ErrInvalidDateTime) {
			t.Errorf("ParseScheduleTime(%q) err = %v; want ErrInvalidDateTime", bad, err)
		}
	}
}

func TestAppointmentService_Schedule(t *testing.T) {
	db := newServiceDB(t)
	svc := &AppointmentService{DB: db}
	ctx := context.Background()

	c, err := repo.CreateClient(ctx, db, "Ana", "García", "")
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	a, err := svc.Schedule(ctx, c.ID, "2024-03-10T09:00", "  corte y peinado  ")
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if a.Status != domain.StatusPending {
		t.Fatalf("new appointment status = %q; want pending", a.Status)
	}
	if a.Description != "corte y peinado" {
		t.Fatalf("description not trimmed: %q", a.Description)
	}
	if !a.StartsAt.Equal(time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)) {
		t.Fatalf("starts at %v", a.StartsAt)
	}
}

func TestAppointmentService_Schedule_BadInput(t *testing.T) {
	db := newServiceDB(t)
	svc := &AppointmentService{DB: db}
	ctx := context.Background()

	c, err := repo.CreateClient(ctx, db, "Ana", "García", "")
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	if _, err := svc.Schedule(ctx, c.ID, "not-a-date", ""); !errors.Is(err, ErrInvalidDateTime) {
		t.Fatalf("bad date err = %v; want ErrInvalidDateTime", err)
	}
	if _, err := svc.Schedule(ctx, 999, "2024-03-10T09:00", ""); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("unknown client err = %v; want ErrClientNotFound", err)
	}
	// A failed schedule must leave no orphan row behind.
	all, err := repo.ListAppointmentsForClient(ctx, db, 999)
	if err != nil || len(all) != 0 {
		t.Fatalf("orphan appointments after failed schedule: %v / %v", all, err)
	}
}

func TestAppointmentService_Today(t *testing.T) {
	db := newServiceDB(t)
	svc := &AppointmentService{DB: db}
	ctx := context.Background()

	c, _ := repo.CreateClient(ctx, db, "Ana", "García", "")
	if _, err := svc.Schedule(ctx, c.ID, "2024-03-10T09:00", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Schedule(ctx, c.ID, "2024-03-11T09:00", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Any time-of-day on the 10th selects that day's appointments.
	got, err := svc.Today(ctx, time.Date(2024, time.March, 10, 18, 45, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if len(got) != 1 || got[0].StartsAt.Day() != 10 {
		t.Fatalf("Today = %+v; want the single 2024-03-10 appointment", got)
	}
}

func TestAppointmentService_CompleteAndCancel(t *testing.T) {
	db := newServiceDB(t)
	svc := &AppointmentService{DB: db}
	ctx := context.Background()

	c, _ := repo.CreateClient(ctx, db, "Ana", "García", "")
	a, err := svc.Schedule(ctx, c.ID, "2024-03-10T09:00", "")
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if err := svc.Complete(ctx, a.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	got, _ := repo.GetAppointment(ctx, db, a.ID)
	if got.Status != domain.StatusCompleted {
		t.Fatalf("status after Complete = %q", got.Status)
	}

	// No terminal-state guard: cancelling a completed appointment succeeds.
	if err := svc.Cancel(ctx, a.ID); err != nil {
		t.Fatalf("Cancel after Complete: %v", err)
	}
	got, _ = repo.GetAppointment(ctx, db, a.ID)
	if got.Status != domain.StatusCancelled {
		t.Fatalf("status after Cancel = %q", got.Status)
	}

	if err := svc.Complete(ctx, 999); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("Complete(999) err = %v; want ErrAppointmentNotFound", err)
	}
	if err := svc.Cancel(ctx, 999); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("Cancel(999) err = %v; want ErrAppointmentNotFound", err)
	}
}

func TestAppointmentService_ForClient_Empty(t *testing.T) {
	db := newServiceDB(t)
	svc := &AppointmentService{DB: db}

	got, err := svc.ForClient(context.Background(), 42)
	if err != nil {
		t.Fatalf("ForClient: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice for unknown client, got %+v", got)
	}
}
