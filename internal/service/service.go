package service

import (
	"context"
	"fmt"
	"log"

	"github.com/cleishm/MACSearch/internal/config"
	"github.com/cleishm/MACSearch/internal/domain"
	"github.com/cleishm/MACSearch/internal/repository"
)

// Collector fetches the forwarding table of a single device.
type Collector interface {
	Collect(ctx context.Context, dev config.DeviceConfig, cred config.CredentialConfig) ([]domain.ForwardingRecord, error)
}

// Service coordinates polling, import and export against the cache.
type Service struct {
	repo      repository.Repository
	collector Collector
	cfg       *config.Config
}

// New creates a service over the given cache, collector and configuration.
func New(repo repository.Repository, collector Collector, cfg *config.Config) *Service {
	return &Service{repo: repo, collector: collector, cfg: cfg}
}

// LoadSummary reports the outcome of one poll cycle.
type LoadSummary struct {
	Polled   int
	Records  int
	Warnings []string
}

// Load polls the configured devices and replaces their cache entries.
// only restricts the poll to the named devices; empty means all.
// Per-device failures are collected as warnings. Load fails only when
// the device selection is empty or every selected device failed.
func (s *Service) Load(ctx context.Context, only []string) (*LoadSummary, error) {
	devices, err := s.selectDevices(only)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no devices configured")
	}

	summary := &LoadSummary{}
	for _, dev := range devices {
		cred, err := s.cfg.CredentialFor(dev)
		if err != nil {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("%s: %v", dev.Host(), err))
			continue
		}

		records, err := s.collector.Collect(ctx, dev, cred)
		if err != nil {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("%s: %v", dev.Host(), err))
			continue
		}

		if err := s.repo.ReplaceHost(ctx, dev.Host(), records); err != nil {
			return nil, fmt.Errorf("failed to store records for %s: %w", dev.Host(), err)
		}

		log.Printf("load: %s returned %d records", dev.Host(), len(records))
		summary.Polled++
		summary.Records += len(records)
	}

	if summary.Polled == 0 {
		return summary, fmt.Errorf("all %d devices failed", len(devices))
	}
	return summary, nil
}

// selectDevices resolves the poll set, preserving configuration order.
func (s *Service) selectDevices(only []string) ([]config.DeviceConfig, error) {
	if len(only) == 0 {
		return s.cfg.Devices, nil
	}

	var devices []config.DeviceConfig
	for _, name := range only {
		dev, ok := s.cfg.Device(name)
		if !ok {
			return nil, fmt.Errorf("unknown device %q", name)
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

// Import sanitizes externally produced records and stores them grouped by
// host, replacing each host's cache entry. Rows that fail sanitation are
// reported as warnings and dropped.
func (s *Service) Import(ctx context.Context, records []domain.ForwardingRecord) (*LoadSummary, error) {
	byHost := make(map[string][]domain.ForwardingRecord)
	var hosts []string
	summary := &LoadSummary{}

	for i, raw := range records {
		rec, err := raw.Sanitize()
		if err != nil {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("record %d: %v", i+1, err))
			continue
		}
		if rec.Host == "" {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("record %d: missing host", i+1))
			continue
		}
		if _, seen := byHost[rec.Host]; !seen {
			hosts = append(hosts, rec.Host)
		}
		byHost[rec.Host] = append(byHost[rec.Host], rec)
	}

	for _, host := range hosts {
		if err := s.repo.ReplaceHost(ctx, host, byHost[host]); err != nil {
			return nil, fmt.Errorf("failed to store records for %s: %w", host, err)
		}
		summary.Polled++
		summary.Records += len(byHost[host])
	}

	return summary, nil
}

// Export returns the full cache contents.
func (s *Service) Export(ctx context.Context) ([]domain.ForwardingRecord, error) {
	records, err := s.repo.AllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}
	return records, nil
}
