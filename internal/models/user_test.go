package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/errors"
)

func newTransaction(txType TransactionType, amount int64) *Transaction {
	return &Transaction{
		Username:  "george",
		Amount:    decimal.NewFromInt(amount),
		Type:      txType,
		Timestamp: time.Now(),
	}
}

func TestUser_ValidateTransaction(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		verified bool
		txType   TransactionType
		amount   int64
		wantErr  bool
	}{
		{name: "deposit always allowed", balance: 0, txType: Deposit, amount: 10},
		{name: "withdraw within balance", balance: 10, txType: Withdraw, amount: 10},
		{name: "withdraw over balance rejected", balance: 10, txType: Withdraw, amount: 11, wantErr: true},
		{name: "withdraw over balance allowed when verified", balance: 10, verified: true, txType: Withdraw, amount: 11},
		{name: "withdraw from zero balance rejected", balance: 0, txType: Withdraw, amount: 1, wantErr: true},
		{name: "withdraw from zero balance allowed when verified", balance: 0, verified: true, txType: Withdraw, amount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{
				Username:   "george",
				Balance:    decimal.NewFromInt(tt.balance),
				IsVerified: tt.verified,
			}
			err := user.ValidateTransaction(TransactionRequest{
				Username: "george",
				Amount:   decimal.NewFromInt(tt.amount),
				Type:     tt.txType,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidation(err))
				assert.Contains(t, err.Error(), "george")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_ProcessTransaction(t *testing.T) {
	tests := []struct {
		name        string
		tx          *Transaction
		wantBalance int64
	}{
		{name: "deposit adds amount", tx: newTransaction(Deposit, 10), wantBalance: 20},
		{name: "withdraw subtracts amount", tx: newTransaction(Withdraw, 10), wantBalance: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{Username: "george", Balance: decimal.NewFromInt(10), IsVerified: true}
			user.ProcessTransaction(tt.tx)
			assert.True(t, user.Balance.Equal(decimal.NewFromInt(tt.wantBalance)),
				"balance = %s, want %d", user.Balance, tt.wantBalance)
		})
	}
}

// Balance after a sequence of valid transactions equals balance before
// plus deposits minus withdrawals.
func TestUser_BalanceInvariant(t *testing.T) {
	user := &User{Username: "george", Balance: decimal.NewFromInt(100)}

	amounts := []struct {
		txType TransactionType
		amount int64
	}{
		{Deposit, 50}, {Withdraw, 30}, {Deposit, 7}, {Withdraw, 100}, {Deposit, 3},
	}

	expected := decimal.NewFromInt(100)
	for _, a := range amounts {
		tx := newTransaction(a.txType, a.amount)
		require.NoError(t, user.ValidateTransaction(TransactionRequest{
			Username: "george", Amount: tx.Amount, Type: tx.Type,
		}))
		user.ProcessTransaction(tx)
		if a.txType == Deposit {
			expected = expected.Add(tx.Amount)
		} else {
			expected = expected.Sub(tx.Amount)
		}
	}
	assert.True(t, user.Balance.Equal(expected), "balance = %s, want %s", user.Balance, expected)
}

// A verified user may withdraw into a negative balance.
func TestUser_VerifiedOverride(t *testing.T) {
	unverified := &User{Username: "george", Balance: decimal.Zero}
	req := TransactionRequest{Username: "george", Amount: decimal.NewFromInt(5), Type: Withdraw}

	err := unverified.ValidateTransaction(req)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	verified := &User{Username: "george", Balance: decimal.Zero, IsVerified: true}
	require.NoError(t, verified.ValidateTransaction(req))
	verified.ProcessTransaction(newTransaction(Withdraw, 5))
	assert.True(t, verified.Balance.Equal(decimal.NewFromInt(-5)))
}

func TestParseTransactionType(t *testing.T) {
	deposit, err := ParseTransactionType(0)
	require.NoError(t, err)
	assert.Equal(t, Deposit, deposit)
	assert.Equal(t, "deposit", deposit.String())

	withdraw, err := ParseTransactionType(1)
	require.NoError(t, err)
	assert.Equal(t, Withdraw, withdraw)
	assert.Equal(t, 1, withdraw.Int())

	_, err = ParseTransactionType(2)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
