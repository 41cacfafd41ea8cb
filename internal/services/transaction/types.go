package transaction

import "ledger/internal/models"

// indexedTransaction carries the outcome of the concurrent transaction
// write back to the join point.
type indexedTransaction struct {
	tx  *models.Transaction
	err error
}
