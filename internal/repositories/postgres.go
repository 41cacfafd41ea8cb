package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ledger/internal/models"
	"ledger/internal/utils/logger"
)

// PostgresRepository implements Repository on top of GORM. Cross-request
// serialization of the balance read-modify-write relies on row updates
// keyed by username; concurrent writers to the same user are a known
// hazard documented on the service layer.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return &user, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	indexed := *user
	indexed.ID = 0
	if err := r.db.WithContext(ctx).Create(&indexed).Error; err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", user.Username, err)
	}
	logger.Infof("created user %s with id %d", indexed.Username, indexed.ID)
	return &indexed, nil
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := r.GetUser(ctx, user.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return r.CreateUser(ctx, user)
		}
		return nil, err
	}

	updated := *user
	updated.ID = existing.ID
	if err := r.db.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", user.Username, err)
	}
	return &updated, nil
}

func (r *PostgresRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if _, err := r.GetUser(ctx, tx.Username); err != nil {
		return nil, err
	}

	indexed := *tx
	indexed.ID = 0
	if err := r.db.WithContext(ctx).Create(&indexed).Error; err != nil {
		return nil, fmt.Errorf("failed to create transaction for %s: %w", tx.Username, err)
	}
	return &indexed, nil
}

func (r *PostgresRepository) CreateTransactionReport(ctx context.Context, req models.TransactionReportRequest) (*models.TransactionReport, error) {
	// The window is inclusive at day granularity: everything from the
	// start of StartDate's day up to but excluding the day after EndDate.
	from := startOfDay(req.StartDate)
	to := startOfDay(req.EndDate).AddDate(0, 0, 1)

	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Where("username = ? AND timestamp >= ? AND timestamp < ?", req.Username, from, to).
		Order("timestamp").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for %s: %w", req.Username, err)
	}

	report := models.TransactionReport{
		Username:     req.Username,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Transactions: transactions,
	}
	if err := r.db.WithContext(ctx).Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report for %s: %w", req.Username, err)
	}
	return &report, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
