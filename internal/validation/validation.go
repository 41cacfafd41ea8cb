// Package validation holds the stateless input checks that run before any
// domain logic touches a request.
package validation

import (
	"time"

	"github.com/shopspring/decimal"

	"ledger/internal/errors"
	"ledger/internal/models"
)

// ValidateUserID rejects negative identifiers.
func ValidateUserID(id int) error {
	if id < 0 {
		return errors.InvalidArgument("not a valid user id %d", id)
	}
	return nil
}

// ValidateAmount rejects zero and negative transaction amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return errors.InvalidArgument("not a valid transaction amount %s", amount)
	}
	return nil
}

// ValidateTransactionType rejects values outside the two known variants.
func ValidateTransactionType(t models.TransactionType) error {
	if t != models.Deposit && t != models.Withdraw {
		return errors.InvalidArgument("not a valid transaction type %d", t)
	}
	return nil
}

// ValidateDate rejects the zero time, the closest a decoded payload gets to
// "not a structured date".
func ValidateDate(d time.Time) error {
	if d.IsZero() {
		return errors.InvalidArgument("%v is not a valid date", d)
	}
	return nil
}

// ValidateTimePeriod rejects windows whose start lies after their end.
// Equal bounds describe a valid zero-length window.
func ValidateTimePeriod(start, end time.Time) error {
	if start.After(end) {
		return errors.Validation("start date %s cannot be greater than end date %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}
