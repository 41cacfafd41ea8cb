package models

import (
	"github.com/shopspring/decimal"

	"ledger/internal/errors"
)

// User is a ledger account holder. Username is the natural key used in all
// request and response payloads; ID is assigned by the repository and stays
// zero until the user is persisted.
//
// Balance is mutated only through ProcessTransaction. No other code path
// may write it.
type User struct {
	ID         uint            `gorm:"primarykey" json:"user_id"`
	Username   string          `gorm:"uniqueIndex;not null" json:"username"`
	Balance    decimal.Decimal `gorm:"type:numeric;not null" json:"balance"`
	IsVerified bool            `gorm:"not null;default:false" json:"is_verified"`
}

// ValidateTransaction decides whether the requested transaction may proceed
// against this user. Deposits always pass. Withdrawals pass when the
// resulting balance stays non-negative; a verified user may overdraw, the
// override is consulted only after the non-negative check fails.
func (u *User) ValidateTransaction(req TransactionRequest) error {
	if req.Type == Deposit {
		return nil
	}
	if u.Balance.Sub(req.Amount).Sign() >= 0 {
		return nil
	}
	if u.IsVerified {
		return nil
	}
	return errors.Validation("balance of user %s cannot go negative", req.Username)
}

// ProcessTransaction applies the transaction's effect to the balance.
// Callers must have run ValidateTransaction first and must apply each
// transaction exactly once.
func (u *User) ProcessTransaction(tx *Transaction) {
	switch tx.Type {
	case Deposit:
		u.Balance = u.Balance.Add(tx.Amount)
	case Withdraw:
		u.Balance = u.Balance.Sub(tx.Amount)
	}
}
