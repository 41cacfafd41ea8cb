package repositories

import (
	"context"
	"sync"

	"ledger/internal/models"
	"ledger/internal/utils/cache"
)

// InMemoryReportCache is the reference Cache implementation, a map keyed
// exactly like the Redis cache. Used by tests and cacheless deployments
// that still want report memoization inside one process.
type InMemoryReportCache struct {
	mu      sync.RWMutex
	storage map[string]models.TransactionReport
}

func NewInMemoryReportCache() *InMemoryReportCache {
	return &InMemoryReportCache{storage: make(map[string]models.TransactionReport)}
}

func (c *InMemoryReportCache) GetReport(_ context.Context, req models.TransactionReportRequest) (*models.TransactionReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := cache.ReportKey(req.Username, req.StartDate, req.EndDate)
	report, ok := c.storage[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return &report, nil
}

func (c *InMemoryReportCache) CreateReport(_ context.Context, report *models.TransactionReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cache.ReportKey(report.Username, report.StartDate, report.EndDate)
	c.storage[key] = *report
	return nil
}

func (c *InMemoryReportCache) Flush(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.storage = make(map[string]models.TransactionReport)
	return nil
}
