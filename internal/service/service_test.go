package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cleishm/MACSearch/internal/config"
	"github.com/cleishm/MACSearch/internal/domain"
	"github.com/cleishm/MACSearch/internal/repository/sqlite"
)

type fakeCollector struct {
	tables map[string][]domain.ForwardingRecord
	fail   map[string]error
}

func (f *fakeCollector) Collect(_ context.Context, dev config.DeviceConfig, _ config.CredentialConfig) ([]domain.ForwardingRecord, error) {
	if err, ok := f.fail[dev.Host()]; ok {
		return nil, err
	}
	return f.tables[dev.Host()], nil
}

func newTestService(t *testing.T, collector Collector, cfg *config.Config) *Service {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	return New(repo, collector, cfg)
}

func testConfig(hosts ...string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Credentials = map[string]config.CredentialConfig{
		"lab": {Username: "admin", Password: "secret"},
	}
	for _, h := range hosts {
		cfg.Devices = append(cfg.Devices, config.DeviceConfig{
			Name:       h,
			Address:    h + ".example.net",
			Port:       22,
			Platform:   "cisco_ios",
			Credential: "lab",
		})
	}
	return cfg
}

func TestLoadPollsAllDevices(t *testing.T) {
	collector := &fakeCollector{
		tables: map[string][]domain.ForwardingRecord{
			"sw1": {
				{Host: "sw1", Port: "1", MAC: "aabbccddeeff", VLAN: "10"},
				{Host: "sw1", Port: "2", MAC: "112233445566", VLAN: "10"},
			},
			"sw2": {
				{Host: "sw2", Port: "7", MAC: "deadbeefcafe", VLAN: "20"},
			},
		},
	}
	svc := newTestService(t, collector, testConfig("sw1", "sw2"))

	summary, err := svc.Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Polled != 2 || summary.Records != 3 {
		t.Fatalf("expected 2 hosts and 3 records, got %d and %d", summary.Polled, summary.Records)
	}
	if len(summary.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", summary.Warnings)
	}

	records, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 cached records, got %d", len(records))
	}
}

func TestLoadDeviceFailureBecomesWarning(t *testing.T) {
	collector := &fakeCollector{
		tables: map[string][]domain.ForwardingRecord{
			"sw1": {{Host: "sw1", Port: "1", MAC: "aabbccddeeff", VLAN: "10"}},
		},
		fail: map[string]error{
			"sw2": fmt.Errorf("connection refused"),
		},
	}
	svc := newTestService(t, collector, testConfig("sw1", "sw2"))

	summary, err := svc.Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Polled != 1 {
		t.Fatalf("expected 1 polled host, got %d", summary.Polled)
	}
	if len(summary.Warnings) != 1 || !strings.Contains(summary.Warnings[0], "sw2") {
		t.Fatalf("expected a warning naming sw2, got %v", summary.Warnings)
	}
}

func TestLoadAllDevicesFailed(t *testing.T) {
	collector := &fakeCollector{
		fail: map[string]error{
			"sw1": fmt.Errorf("connection refused"),
			"sw2": fmt.Errorf("auth failed"),
		},
	}
	svc := newTestService(t, collector, testConfig("sw1", "sw2"))

	summary, err := svc.Load(context.Background(), nil)
	if err == nil {
		t.Fatalf("expected error when every device fails")
	}
	if summary == nil || len(summary.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", summary)
	}
}

func TestLoadOnlySubset(t *testing.T) {
	collector := &fakeCollector{
		tables: map[string][]domain.ForwardingRecord{
			"sw1": {{Host: "sw1", Port: "1", MAC: "aabbccddeeff", VLAN: "10"}},
			"sw2": {{Host: "sw2", Port: "2", MAC: "112233445566", VLAN: "20"}},
		},
	}
	svc := newTestService(t, collector, testConfig("sw1", "sw2"))

	summary, err := svc.Load(context.Background(), []string{"sw2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Polled != 1 {
		t.Fatalf("expected 1 polled host, got %d", summary.Polled)
	}

	records, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Host != "sw2" {
		t.Fatalf("expected only sw2 records, got %v", records)
	}
}

func TestLoadUnknownDeviceName(t *testing.T) {
	svc := newTestService(t, &fakeCollector{}, testConfig("sw1"))

	if _, err := svc.Load(context.Background(), []string{"nosuch"}); err == nil {
		t.Fatalf("expected error for unknown device name")
	}
}

func TestLoadReplacesStaleHostRecords(t *testing.T) {
	collector := &fakeCollector{
		tables: map[string][]domain.ForwardingRecord{
			"sw1": {
				{Host: "sw1", Port: "1", MAC: "aabbccddeeff", VLAN: "10"},
				{Host: "sw1", Port: "2", MAC: "112233445566", VLAN: "10"},
			},
		},
	}
	svc := newTestService(t, collector, testConfig("sw1"))

	if _, err := svc.Load(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The host moved its only station; a fresh poll must not leave the
	// old rows behind.
	collector.tables["sw1"] = []domain.ForwardingRecord{
		{Host: "sw1", Port: "3", MAC: "aabbccddeeff", VLAN: "10"},
	}
	if _, err := svc.Load(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Port != "3" {
		t.Fatalf("expected the single fresh record, got %v", records)
	}
}

func TestImportSanitizesAndGroups(t *testing.T) {
	svc := newTestService(t, &fakeCollector{}, testConfig())

	summary, err := svc.Import(context.Background(), []domain.ForwardingRecord{
		{Host: "sw1", Port: "1", MAC: "AA-BB-CC-DD-EE-FF", VLAN: "10"},
		{Host: "sw2", Port: "2", MAC: "a:2:34:56:78:9a", VLAN: "20"},
		{Host: "sw1", Port: "9", MAC: "not-a-mac", VLAN: "10"},
		{Host: "", Port: "4", MAC: "112233445566", VLAN: "30"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Records != 2 {
		t.Fatalf("expected 2 imported records, got %d", summary.Records)
	}
	if len(summary.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", summary.Warnings)
	}

	records, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 cached records, got %v", records)
	}
	for _, rec := range records {
		if rec.MAC != "aabbccddeeff" && rec.MAC != "0a023456789a" {
			t.Fatalf("record not sanitized: %v", rec)
		}
	}
}
