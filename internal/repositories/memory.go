package repositories

import (
	"context"
	"sync"

	"ledger/internal/models"
	"ledger/internal/utils/logger"
)

// InMemoryRepository is the reference Repository implementation: three
// append-only slices with monotonically increasing counters as the
// identifier source. A single RWMutex makes each counter increment atomic
// with its append, so no two concurrent creates can share an id, and
// serializes the read-modify-write of UpdateUser. Data lives only for the
// lifetime of the process; meant for tests and local runs.
type InMemoryRepository struct {
	mu sync.RWMutex

	users        []models.User
	transactions []models.Transaction
	reports      []models.TransactionReport

	// Counters start at 1 so a zero id always means "not yet indexed".
	userSeq        uint
	transactionSeq uint
	reportSeq      uint
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{userSeq: 1, transactionSeq: 1, reportSeq: 1}
}

func (r *InMemoryRepository) GetUser(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findUser(username)
}

func (r *InMemoryRepository) findUser(username string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *InMemoryRepository) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createUserLocked(user), nil
}

func (r *InMemoryRepository) createUserLocked(user *models.User) *models.User {
	indexed := models.User{
		ID:         r.userSeq,
		Username:   user.Username,
		Balance:    user.Balance,
		IsVerified: user.IsVerified,
	}
	r.users = append(r.users, indexed)
	r.userSeq++
	logger.Infof("created user %s with id %d", indexed.Username, indexed.ID)
	return &indexed
}

func (r *InMemoryRepository) UpdateUser(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == user.Username {
			updated := *user
			updated.ID = r.users[i].ID
			r.users[i] = updated
			logger.Infof("updated user %s", updated.Username)
			return &updated, nil
		}
	}
	// First write creates the record.
	return r.createUserLocked(user), nil
}

func (r *InMemoryRepository) CreateTransaction(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.findUser(tx.Username); err != nil {
		return nil, err
	}

	indexed := *tx
	indexed.ID = r.transactionSeq
	r.transactions = append(r.transactions, indexed)
	r.transactionSeq++
	logger.Infof("created transaction %d for user %s", indexed.ID, indexed.Username)
	return &indexed, nil
}

func (r *InMemoryRepository) CreateTransactionReport(_ context.Context, req models.TransactionReportRequest) (*models.TransactionReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]models.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.Username == req.Username && req.InWindow(tx.Timestamp) {
			filtered = append(filtered, tx)
		}
	}

	report := models.TransactionReport{
		ID:           r.reportSeq,
		Username:     req.Username,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Transactions: filtered,
	}
	r.reports = append(r.reports, report)
	r.reportSeq++
	logger.Infof("created report %d for user %s with %d transactions",
		report.ID, report.Username, len(report.Transactions))
	return &report, nil
}

// TransactionCount reports how many transactions are stored. Test support.
func (r *InMemoryRepository) TransactionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions)
}
