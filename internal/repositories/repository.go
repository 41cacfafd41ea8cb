// Package repositories provides the storage and cache contracts of the
// ledger plus their concrete implementations.
package repositories

import (
	"context"
	"errors"

	"ledger/internal/models"
)

// Absent-value sentinels. The single signalling convention across both
// contracts: lookups report a missing entity or key with one of these,
// checked via errors.Is; hard storage failures are anything else.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrCacheMiss    = errors.New("cache miss")
)

// Repository is the durable store of users, transactions and reports. It is
// the sole assigner of numeric identifiers: entities go in unindexed and
// come back with fresh IDs.
type Repository interface {
	// GetUser looks a user up by username. Absence is ErrUserNotFound,
	// not a hard failure.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// CreateUser assigns a fresh id, persists and returns the indexed copy.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// UpdateUser replaces the stored record for user.Username, preserving
	// the existing id. If no such user exists yet it is created.
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)

	// CreateTransaction assigns a fresh id, persists and returns the
	// indexed copy. Fails with ErrUserNotFound when the referenced
	// username is unknown.
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// CreateTransactionReport computes and persists a report over the
	// currently stored transactions matching the request window. Unknown
	// users yield an empty report.
	CreateTransactionReport(ctx context.Context, req models.TransactionReportRequest) (*models.TransactionReport, error)
}

// Cache is the lookaside store for computed reports, keyed by username and
// day-granularity window. It is never a source of truth; the repository
// wins on any miss.
type Cache interface {
	// GetReport returns the cached report for an equivalent request, or
	// ErrCacheMiss. Any other error is a real cache failure and must not
	// be treated as a miss.
	GetReport(ctx context.Context, req models.TransactionReportRequest) (*models.TransactionReport, error)

	// CreateReport stores the report and its transactions so that a
	// subsequent GetReport with a matching request reconstructs it. The
	// report id need not round-trip.
	CreateReport(ctx context.Context, report *models.TransactionReport) error

	// Flush clears all entries. Maintenance and test flows only.
	Flush(ctx context.Context) error
}
