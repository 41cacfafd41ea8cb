package transaction

import "github.com/shopspring/decimal"

// MetricsCollector receives counters from the service. Implementations
// must be safe for concurrent use.
type MetricsCollector interface {
	RecordTransaction(txType string, amount decimal.Decimal)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordTransaction(string, decimal.Decimal) {}
func (n *NoopMetricsCollector) RecordCacheHit(string)                     {}
func (n *NoopMetricsCollector) RecordCacheMiss(string)                    {}
func (n *NoopMetricsCollector) RecordError(string, string)                {}
