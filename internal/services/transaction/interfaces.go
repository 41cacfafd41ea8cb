package transaction

import (
	"context"

	"ledger/internal/models"
)

// Service is the transaction processing and reporting engine. It
// coordinates validation, the domain balance mutation, repository writes
// and the cache-or-compute report protocol. It never talks to a wire
// protocol or ORM directly.
type Service interface {
	// CreateTransaction records one deposit or withdrawal against the
	// named user's balance and returns the indexed transaction.
	CreateTransaction(ctx context.Context, req models.TransactionRequest) (*models.Transaction, error)

	// CreateTransactionReport returns the user's transactions over an
	// inclusive date window, serving from the cache when one is
	// configured.
	CreateTransactionReport(ctx context.Context, req models.TransactionReportRequest) (*models.TransactionReport, error)
}
