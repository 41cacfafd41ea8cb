package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/models"
)

func seedReport(now time.Time) *models.TransactionReport {
	return &models.TransactionReport{
		ID:        7,
		Username:  "george",
		StartDate: now.Add(-24 * time.Hour),
		EndDate:   now.Add(24 * time.Hour),
		Transactions: []models.Transaction{
			{
				ID:        1,
				Username:  "george",
				Amount:    decimal.NewFromInt(10),
				Type:      models.Deposit,
				Timestamp: now,
			},
		},
	}
}

func TestInMemoryReportCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryReportCache()
	now := time.Now()
	report := seedReport(now)

	require.NoError(t, c.CreateReport(ctx, report))

	// A request differing only in time of day hits the same entry.
	got, err := c.GetReport(ctx, models.TransactionReportRequest{
		Username:  "george",
		StartDate: report.StartDate.Add(3 * time.Hour),
		EndDate:   report.EndDate.Add(-5 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, report.Username, got.Username)
	assert.Equal(t, report.StartDate, got.StartDate)
	assert.Equal(t, report.EndDate, got.EndDate)
	require.Len(t, got.Transactions, 1)
	assert.True(t, got.Transactions[0].Amount.Equal(decimal.NewFromInt(10)))
}

func TestInMemoryReportCache_Miss(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryReportCache()

	_, err := c.GetReport(ctx, models.TransactionReportRequest{
		Username:  "george",
		StartDate: time.Now(),
		EndDate:   time.Now(),
	})
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestInMemoryReportCache_Flush(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryReportCache()
	now := time.Now()
	report := seedReport(now)

	require.NoError(t, c.CreateReport(ctx, report))
	require.NoError(t, c.Flush(ctx))

	_, err := c.GetReport(ctx, models.TransactionReportRequest{
		Username:  "george",
		StartDate: report.StartDate,
		EndDate:   report.EndDate,
	})
	assert.ErrorIs(t, err, ErrCacheMiss)
}
