// Appointment HTTP handlers.
//
// This file exposes REST endpoints for the booking ledger:
//   - POST /appointments               (schedule, status starts pending)
//   - POST /appointments/{id}/complete (pending → completed)
//   - POST /appointments/{id}/cancel   (pending → cancelled)
//   - GET  /appointments/today         (today's agenda)
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonsuite/go-salon-backend/internal/domain"
	"github.com/salonsuite/go-salon-backend/internal/services"
)

// ScheduleRequest is the JSON payload for booking an appointment.
type ScheduleRequest struct {
	// ClientID must reference an existing client.
	ClientID uint `json:"client_id"`
	// StartsAt is the local date-time in YYYY-MM-DDTHH:MM format.
	StartsAt string `json:"starts_at"`
	// Description is optional free text.
	Description string `json:"description"`
}

// TodayResponse carries the agenda for one date.
type TodayResponse struct {
	Date         string               `json:"date"`
	Appointments []domain.Appointment `json:"appointments"`
}

// ScheduleAppointment books a new pending appointment.
func (h *Handlers) ScheduleAppointment(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	appt, err := h.apptSvc.Schedule(c.Request.Context(), req.ClientID, req.StartsAt, req.Description)
	switch {
	case err == nil:
		ok(c, http.StatusCreated, appt)
	case errors.Is(err, services.ErrInvalidDateTime):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrClientNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "client not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not schedule appointment")
	}
}

// CompleteAppointment marks an appointment completed. The transition is
// unguarded: re-completing or completing a cancelled appointment simply
// overwrites the status.
func (h *Handlers) CompleteAppointment(c *gin.Context) {
	h.setStatus(c, h.apptSvc.Complete)
}

// CancelAppointment marks an appointment cancelled. Symmetric to
// CompleteAppointment.
func (h *Handlers) CancelAppointment(c *gin.Context) {
	h.setStatus(c, h.apptSvc.Cancel)
}

// TodayAppointments returns the agenda for the server's current date (the
// injected clock).
func (h *Handlers) TodayAppointments(c *gin.Context) {
	today := h.now()
	appts, err := h.apptSvc.Today(c.Request.Context(), today)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load today's appointments")
		return
	}
	ok(c, http.StatusOK, TodayResponse{
		Date:         today.Format("2006-01-02"),
		Appointments: appts,
	})
}

// setStatus factors the shared id-parse / error-mapping flow of the two
// status transitions.
func (h *Handlers) setStatus(c *gin.Context, transition func(ctx context.Context, id uint) error) {
	id, valid := parseID(c)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid appointment id")
		return
	}
	err := transition(c.Request.Context(), id)
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, services.ErrAppointmentNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "appointment not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update appointment")
	}
}
