// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Client
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a client is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// This repository is designed to be wrapped by a higher-level service
// (see services.ClientService) which enforces business rules such as the
// pending-appointment deletion guard.
package repo

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/salonsuite/go-salon-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateClient inserts a new client row. CreatedAt is set to UTC.
//
// On success, it returns the persisted Client. On failure, it returns a DB error.
func CreateClient(ctx context.Context, db *gorm.DB, firstName, lastName, phone string) (*domain.Client, error) {
	c := &domain.Client{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetClient fetches a single client by its ID. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is
// returned.
func GetClient(ctx context.Context, db *gorm.DB, id uint) (*domain.Client, error) {
	var c domain.Client
	if err := db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListClients returns all clients ordered deterministically
// (LastName, FirstName, ID). It returns an empty slice when the roster is
// empty. On DB error, it returns the error.
func ListClients(ctx context.Context, db *gorm.DB) ([]domain.Client, error) {
	var out []domain.Client
	err := db.WithContext(ctx).
		Order("last_name ASC, first_name ASC, id ASC").
		Find(&out).Error
	return out, err
}

// SearchClients returns the clients matching every token: each token must
// be a case-insensitive substring of the first name or the last name
// (AND across tokens, OR across the two fields per token).
//
// Matching relies on SQL LIKE with lowercased operands, i.e. the store's
// collation semantics (ASCII case folding, no accent folding) exactly as
// the original ILIKE-per-word query behaved. Accent-insensitive matching
// is handled in the service layer when enabled.
func SearchClients(ctx context.Context, db *gorm.DB, tokens []string) ([]domain.Client, error) {
	q := db.WithContext(ctx).Model(&domain.Client{})
	for _, tok := range tokens {
		pat := "%" + strings.ToLower(tok) + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pat, pat)
	}
	var out []domain.Client
	err := q.Order("last_name ASC, first_name ASC, id ASC").Find(&out).Error
	return out, err
}

// UpdateClient overwrites the name and phone fields of the client
// identified by id, leaving the ID and appointment relationships
// untouched. If no rows are affected (client missing), it returns
// ErrNotFound. On DB error, the raw error is returned.
func UpdateClient(ctx context.Context, db *gorm.DB, id uint, firstName, lastName, phone string) error {
	res := db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"first_name": firstName,
			"last_name":  lastName,
			"phone":      phone,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteClient removes the client row identified by id. If no rows are
// affected, it returns ErrNotFound. Cascading over the client's
// appointments is the caller's responsibility (one transaction, see
// services.ClientService.Delete).
func DeleteClient(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Client{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
