// Package services – ClientService
//
// This file implements the ClientService, which manages the salon's client
// roster. It validates names, implements multi-word search (delegated to
// SQL or to the in-memory accent-folding matcher), and owns the guarded
// cascade delete: a client with pending appointments cannot be removed, and
// a permitted removal deletes the client together with all of its
// appointments inside one transaction.
//
// Service-level errors (e.g., ErrClientNotFound, ErrClientHasPending) are
// returned for predictable cases so handlers can map them to HTTP results
// consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/salonsuite/go-salon-backend/internal/domain"
)

// ClientRepo defines the repository contract required by ClientService.
// Implementations are responsible for persistence of clients and for the
// appointment rows touched by the cascade delete. Every method accepts the
// DB handle so the service can pass a transaction-bound handle where
// atomicity matters.
type ClientRepo interface {
	// CreateClient inserts a new client row.
	CreateClient(ctx context.Context, db *gorm.DB, firstName, lastName, phone string) (*domain.Client, error)

	// GetClient fetches a client by ID.
	GetClient(ctx context.Context, db *gorm.DB, id uint) (*domain.Client, error)

	// ListClients returns the whole roster in a stable order.
	ListClients(ctx context.Context, db *gorm.DB) ([]domain.Client, error)

	// SearchClients returns clients matching all tokens (SQL LIKE path).
	SearchClients(ctx context.Context, db *gorm.DB, tokens []string) ([]domain.Client, error)

	// UpdateClient overwrites name/phone of an existing client.
	UpdateClient(ctx context.Context, db *gorm.DB, id uint, firstName, lastName, phone string) error

	// DeleteClient removes a client row.
	DeleteClient(ctx context.Context, db *gorm.DB, id uint) error

	// CountAppointmentsByStatus counts a client's appointments in a status.
	CountAppointmentsByStatus(ctx context.Context, db *gorm.DB, clientID uint, status domain.AppointmentStatus) (int64, error)

	// DeleteAppointmentsForClient removes every appointment of a client.
	DeleteAppointmentsForClient(ctx context.Context, db *gorm.DB, clientID uint) error
}

// ClientService provides roster-level operations: listing, searching,
// creating, updating, and (guarded) deleting clients.
type ClientService struct {
	// DB is the GORM handle used for persistence and transactions.
	DB *gorm.DB
	// Repo is the client repository used by this service.
	Repo ClientRepo

	// FoldAccents switches search to accent-insensitive matching. The
	// default (false) reproduces the store-collation behavior of the
	// original system; see SEARCH_FOLD_ACCENTS.
	FoldAccents bool
}

// NewClientService constructs a ClientService with accent folding disabled.
func NewClientService(db *gorm.DB, r ClientRepo) *ClientService {
	return &ClientService{DB: db, Repo: r}
}

// List returns all clients in a stable order.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.Repo.ListClients(ctx, s.DB)
}

// Search returns the clients matching query. The query is split on
// whitespace; a client matches iff every token is a case-insensitive
// substring of the first or last name. A blank query behaves as List.
func (s *ClientService) Search(ctx context.Context, query string) ([]domain.Client, error) {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return s.List(ctx)
	}
	if s.FoldAccents {
		all, err := s.Repo.ListClients(ctx, s.DB)
		if err != nil {
			return nil, err
		}
		return filterClients(all, tokens, true), nil
	}
	return s.Repo.SearchClients(ctx, s.DB, tokens)
}

// Create validates and persists a new client. Names are required; the
// phone is optional. Leading/trailing whitespace is trimmed before
// storage.
func (s *ClientService) Create(ctx context.Context, firstName, lastName, phone string) (*domain.Client, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrNameRequired
	}
	return s.Repo.CreateClient(ctx, s.DB, firstName, lastName, strings.TrimSpace(phone))
}

// Get fetches a client by ID, returning ErrClientNotFound when absent.
func (s *ClientService) Get(ctx context.Context, id uint) (*domain.Client, error) {
	c, err := s.Repo.GetClient(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return c, nil
}

// Update overwrites the name and phone of an existing client. The ID and
// the client's appointments are untouched.
func (s *ClientService) Update(ctx context.Context, id uint, firstName, lastName, phone string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return ErrNameRequired
	}
	err := s.Repo.UpdateClient(ctx, s.DB, id, firstName, lastName, strings.TrimSpace(phone))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrClientNotFound
	}
	return err
}

// Delete removes a client and all of its appointments as one atomic unit.
//
// Semantics:
//   - ErrClientNotFound when the client does not exist.
//   - ErrClientHasPending when the client has one or more pending
//     appointments; nothing is mutated in that case.
//   - Otherwise the client's appointments (completed/cancelled included)
//     are deleted, then the client row itself.
//
// Concurrency & atomicity:
//   - The guard check and both deletes run inside a single transaction, so
//     a reader never observes the client gone while its appointments
//     remain, and a concurrent schedule for the same client cannot slip
//     between the check and the cascade.
func (s *ClientService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.GetClient(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		pending, err := s.Repo.CountAppointmentsByStatus(ctx, tx, id, domain.StatusPending)
		if err != nil {
			return err
		}
		if pending > 0 {
			return ErrClientHasPending
		}

		if err := s.Repo.DeleteAppointmentsForClient(ctx, tx, id); err != nil {
			return err
		}
		if err := s.Repo.DeleteClient(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return err
		}
		return nil
	})
}
