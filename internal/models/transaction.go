package models

import (
	"time"

	"github.com/shopspring/decimal"

	"ledger/internal/errors"
)

// TransactionType distinguishes the two ledger operations.
type TransactionType int

const (
	Deposit  TransactionType = 0
	Withdraw TransactionType = 1
)

// ParseTransactionType converts a wire-level integer into a TransactionType.
func ParseTransactionType(v int) (TransactionType, error) {
	switch TransactionType(v) {
	case Deposit, Withdraw:
		return TransactionType(v), nil
	}
	return 0, errors.InvalidArgument("unknown transaction type %d", v)
}

// Int returns the wire-level representation of the type.
func (t TransactionType) Int() int {
	return int(t)
}

func (t TransactionType) String() string {
	switch t {
	case Deposit:
		return "deposit"
	case Withdraw:
		return "withdraw"
	}
	return "unknown"
}

// Transaction is one completed balance mutation. It is immutable once the
// repository has assigned its ID; Amount is always the positive magnitude,
// the direction is carried by Type.
type Transaction struct {
	ID        uint            `gorm:"primarykey" json:"transaction_id"`
	Reference string          `gorm:"uniqueIndex;not null" json:"reference"`
	Username  string          `gorm:"index;not null" json:"username"`
	Amount    decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Type      TransactionType `gorm:"not null" json:"transaction_type"`
	Timestamp time.Time       `gorm:"index;not null" json:"timestamp"`
}

// TransactionRequest is the transient input for creating a transaction.
// It is validated before use and never persisted.
type TransactionRequest struct {
	Username string          `json:"username"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TransactionType `json:"transaction_type"`
}
