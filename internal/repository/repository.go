package repository

import (
	"context"
	"time"

	"github.com/cleishm/MACSearch/internal/domain"
)

// HostSummary describes the cached state of one polled device.
type HostSummary struct {
	Host        string
	RecordCount int
	PolledAt    time.Time
}

// Repository defines the interface for forwarding cache data access
type Repository interface {
	// Write operations. Load happens fully before any query executes;
	// ReplaceHost swaps out everything previously cached for one device.
	ReplaceHost(ctx context.Context, host string, records []domain.ForwardingRecord) error
	Clear(ctx context.Context) error

	// Search executes one compiled predicate, binding one positional
	// value per Placeholder condition from bound, and streams matching
	// records through fn in (host, port, mac, vlan) column order.
	Search(ctx context.Context, pred *domain.PredicateSet, bound []string, fn func(domain.ForwardingRecord) error) error

	// Bulk and summary reads
	AllRecords(ctx context.Context) ([]domain.ForwardingRecord, error)
	Count(ctx context.Context) (int64, error)
	HostSummaries(ctx context.Context) ([]HostSummary, error)

	// Close releases resources
	Close() error
}
