package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	apperrors "ledger/internal/errors"
	"ledger/internal/models"
	"ledger/internal/repositories"
	"ledger/internal/utils/cache"
	"ledger/internal/utils/logger"
	"ledger/internal/validation"
)

type service struct {
	repo    repositories.Repository
	cache   repositories.Cache
	metrics MetricsCollector
}

// New creates the transaction service. cache may be nil, in which case
// reports are always computed from the repository. metrics may be nil.
func New(repo repositories.Repository, reportCache repositories.Cache, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{
		repo:    repo,
		cache:   reportCache,
		metrics: metrics,
	}
}

func (s *service) CreateTransaction(ctx context.Context, req models.TransactionRequest) (*models.Transaction, error) {
	user, err := s.repo.GetUser(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.Warnf("user %s not found", req.Username)
			return nil, apperrors.NotFound("user %s not found", req.Username)
		}
		s.metrics.RecordError("create_transaction", "get_user")
		return nil, apperrors.Repository(err, "failed to look up user %s", req.Username)
	}

	if err := user.ValidateTransaction(req); err != nil {
		logger.Infof("transaction for %s rejected: %v", req.Username, err)
		return nil, err
	}

	tx := &models.Transaction{
		Reference: uuid.NewString(),
		Username:  req.Username,
		Amount:    req.Amount,
		Type:      req.Type,
		Timestamp: time.Now(),
	}
	user.ProcessTransaction(tx)

	// The user update and the transaction write touch different entities
	// and are dispatched concurrently. Both goroutines are always joined;
	// the update's outcome is observed first and its failure wins. A
	// transaction write that fails after the update succeeded leaves the
	// balance change in place: this inconsistency window is accepted and
	// surfaced, never rolled back.
	updateDone := make(chan error, 1)
	createDone := make(chan indexedTransaction, 1)

	go func() {
		_, updateErr := s.repo.UpdateUser(ctx, user)
		updateDone <- updateErr
	}()
	go func() {
		indexed, createErr := s.repo.CreateTransaction(ctx, tx)
		createDone <- indexedTransaction{tx: indexed, err: createErr}
	}()

	updateErr := <-updateDone
	created := <-createDone

	if updateErr != nil {
		s.metrics.RecordError("create_transaction", "update_user")
		return nil, apperrors.Repository(updateErr, "failed to update user %s", req.Username)
	}
	if created.err != nil {
		s.metrics.RecordError("create_transaction", "create_transaction")
		return nil, apperrors.Repository(created.err, "failed to create transaction for %s", req.Username)
	}

	s.metrics.RecordTransaction(tx.Type.String(), tx.Amount)
	return created.tx, nil
}

func (s *service) CreateTransactionReport(ctx context.Context, req models.TransactionReportRequest) (*models.TransactionReport, error) {
	if err := validation.ValidateTimePeriod(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	if s.cache == nil {
		return s.reportFromRepository(ctx, req)
	}

	key := cache.ReportKey(req.Username, req.StartDate, req.EndDate)
	report, err := s.cache.GetReport(ctx, req)
	if err == nil {
		s.metrics.RecordCacheHit(key)
		return report, nil
	}
	if !errors.Is(err, repositories.ErrCacheMiss) {
		// Fail closed: a broken cache is surfaced, not bypassed, so a
		// sustained cache outage cannot silently shift its load onto
		// the repository.
		s.metrics.RecordError("create_report", "cache_get")
		return nil, apperrors.Cache(err, "failed to read report cache for %s", req.Username)
	}
	s.metrics.RecordCacheMiss(key)

	report, err = s.reportFromRepository(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.cache.CreateReport(ctx, report); err != nil {
		s.metrics.RecordError("create_report", "cache_set")
		return nil, apperrors.Cache(err, "failed to cache report for %s", req.Username)
	}
	return report, nil
}

func (s *service) reportFromRepository(ctx context.Context, req models.TransactionReportRequest) (*models.TransactionReport, error) {
	report, err := s.repo.CreateTransactionReport(ctx, req)
	if err != nil {
		s.metrics.RecordError("create_report", "repository")
		return nil, apperrors.Repository(err, "failed to create report for %s", req.Username)
	}
	return report, nil
}
