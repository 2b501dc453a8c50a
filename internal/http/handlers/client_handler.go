// Client HTTP handlers.
//
// This file exposes REST endpoints for the client roster:
//   - POST   /clients                    (create)
//   - GET    /clients?search=…           (list or multi-word search)
//   - GET    /clients/{id}               (detail, including appointments)
//   - PUT    /clients/{id}               (update name/phone)
//   - DELETE /clients/{id}               (guarded cascade delete)
//   - GET    /clients/{id}/appointments  (booking history)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonsuite/go-salon-backend/internal/domain"
	"github.com/salonsuite/go-salon-backend/internal/services"
)

//
// DTOs
//

// ClientRequest is the JSON payload for creating or updating a client.
type ClientRequest struct {
	// FirstName is required and must be non-empty after trimming.
	FirstName string `json:"first_name"`
	// LastName is required and must be non-empty after trimming.
	LastName string `json:"last_name"`
	// Phone is optional.
	Phone string `json:"phone"`
}

// ListClientsResponse wraps the roster (or a search result) and echoes the
// query that produced it.
type ListClientsResponse struct {
	Clients []domain.Client `json:"clients"`
	Search  string          `json:"search,omitempty"`
}

// ClientDetailResponse carries a client together with its appointment
// history, ascending by start time.
type ClientDetailResponse struct {
	Client       domain.Client        `json:"client"`
	Appointments []domain.Appointment `json:"appointments"`
}

// AppointmentsResponse wraps a plain appointment list.
type AppointmentsResponse struct {
	Appointments []domain.Appointment `json:"appointments"`
}

//
// Handlers
//

// ListClients returns the full roster, or, when the search query parameter
// is present, the clients matching every whitespace-separated token
// (case-insensitive substring of first or last name). A blank query equals
// no query.
func (h *Handlers) ListClients(c *gin.Context) {
	query := c.Query("search")
	clients, err := h.clientSvc.Search(c.Request.Context(), query)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list clients")
		return
	}
	ok(c, http.StatusOK, ListClientsResponse{Clients: clients, Search: query})
}

// CreateClient persists a new client from the JSON payload.
func (h *Handlers) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	client, err := h.clientSvc.Create(c.Request.Context(), req.FirstName, req.LastName, req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not create client")
		return
	}
	ok(c, http.StatusCreated, client)
}

// GetClient returns one client plus its appointment history.
func (h *Handlers) GetClient(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid client id")
		return
	}
	client, err := h.clientSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "client not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load client")
		return
	}
	appts, err := h.apptSvc.ForClient(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load appointments")
		return
	}
	ok(c, http.StatusOK, ClientDetailResponse{Client: *client, Appointments: appts})
}

// UpdateClient overwrites the name and phone of an existing client.
func (h *Handlers) UpdateClient(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid client id")
		return
	}
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	err := h.clientSvc.Update(c.Request.Context(), id, req.FirstName, req.LastName, req.Phone)
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, services.ErrNameRequired):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrClientNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "client not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update client")
	}
}

// DeleteClient removes a client together with all of its appointments.
// Clients with pending appointments cannot be deleted (409).
func (h *Handlers) DeleteClient(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid client id")
		return
	}
	err := h.clientSvc.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, services.ErrClientNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "client not found")
	case errors.Is(err, services.ErrClientHasPending):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not delete client")
	}
}

// ClientAppointments returns the booking history for one client, ascending
// by start time. An unknown id yields an empty list rather than 404, so the
// endpoint stays consistent after a cascade delete.
func (h *Handlers) ClientAppointments(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid client id")
		return
	}
	appts, err := h.apptSvc.ForClient(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load appointments")
		return
	}
	ok(c, http.StatusOK, AppointmentsResponse{Appointments: appts})
}
