package query

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/cleishm/MACSearch/internal/domain"
)

// fakeStore records each Search invocation and replays canned results.
type fakeStore struct {
	results []domain.ForwardingRecord
	calls   [][]string
	failOn  string // bound value that triggers a store error
}

func (s *fakeStore) Search(ctx context.Context, pred *domain.PredicateSet, bound []string, fn func(domain.ForwardingRecord) error) error {
	s.calls = append(s.calls, append([]string(nil), bound...))

	if s.failOn != "" {
		for _, v := range bound {
			if v == s.failOn {
				return errors.New("store exploded")
			}
		}
	}

	for _, rec := range s.results {
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// fakeSink collects result sets per execution.
type fakeSink struct {
	labels    []string
	sets      [][]domain.ForwardingRecord
	recordErr error
}

func (s *fakeSink) BeginSet(label string) error {
	s.labels = append(s.labels, label)
	s.sets = append(s.sets, nil)
	return nil
}

func (s *fakeSink) Record(rec domain.ForwardingRecord) error {
	if s.recordErr != nil {
		return s.recordErr
	}
	s.sets[len(s.sets)-1] = append(s.sets[len(s.sets)-1], rec)
	return nil
}

func (s *fakeSink) EndSet() error { return nil }

func TestExecutorBatchMode(t *testing.T) {
	store := &fakeStore{results: []domain.ForwardingRecord{
		{Host: "sw1", Port: "1", MAC: "aabbccddeeff", VLAN: "10"},
		{Host: "sw2", Port: "2", MAC: "aabbccddeeff", VLAN: "20"},
	}}
	sink := &fakeSink{}

	pred, err := Build(Criteria{MAC: Literal("aa:bb:cc:dd:ee:ff")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := NewExecutor(store, sink, nil)
	if err := exec.Run(context.Background(), pred, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.calls) != 1 {
		t.Fatalf("expected exactly one query, got %d", len(store.calls))
	}
	if len(store.calls[0]) != 0 {
		t.Fatalf("expected no bound values in batch mode, got %v", store.calls[0])
	}
	if len(sink.sets) != 1 || len(sink.sets[0]) != 2 {
		t.Fatalf("expected one set of two records, got %v", sink.sets)
	}
}

func TestExecutorStreamingBindsInBinderOrder(t *testing.T) {
	store := &fakeStore{}
	sink := &fakeSink{}

	pred, err := Build(Criteria{MAC: Streamed(), VLAN: Streamed()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := NewExecutor(store, sink, nil)
	in := strings.NewReader("aa:bb:cc:dd:ee:ff,10\n")
	if err := exec.Run(context.Background(), pred, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.calls) != 1 {
		t.Fatalf("expected one query, got %d", len(store.calls))
	}
	want := []string{"aabbccddeeff", "10"}
	if store.calls[0][0] != want[0] || store.calls[0][1] != want[1] {
		t.Fatalf("expected bound values %v, got %v", want, store.calls[0])
	}
}

func TestExecutorStreamingSkipsBadLines(t *testing.T) {
	store := &fakeStore{}
	sink := &fakeSink{}
	var diag bytes.Buffer

	pred, err := Build(Criteria{MAC: Streamed(), VLAN: Streamed()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := NewExecutor(store, sink, log.New(&diag, "", 0))
	in := strings.NewReader(
		"onlyonefield\n" + // too few fields
			"not-a-mac,10\n" + // sanitization failure
			"aa:bb:cc:dd:ee:ff,10\n") // valid
	if err := exec.Run(context.Background(), pred, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.calls) != 1 {
		t.Fatalf("expected only the valid line to execute, got %d calls", len(store.calls))
	}
	if !strings.Contains(diag.String(), "line 1 skipped") || !strings.Contains(diag.String(), "line 2 skipped") {
		t.Fatalf("expected per-line warnings, got %q", diag.String())
	}
}

func TestExecutorStreamingIgnoresExtraFields(t *testing.T) {
	store := &fakeStore{}
	sink := &fakeSink{}

	pred, err := Build(Criteria{MAC: Streamed()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := NewExecutor(store, sink, nil)
	in := strings.NewReader("aa:bb:cc:dd:ee:ff,this,is,ignored\n")
	if err := exec.Run(context.Background(), pred, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.calls) != 1 || store.calls[0][0] != "aabbccddeeff" {
		t.Fatalf("expected one call bound to aabbccddeeff, got %v", store.calls)
	}
}

func TestExecutorStreamingContinuesAfterStoreError(t *testing.T) {
	store := &fakeStore{failOn: "aaaaaaaaaaaa"}
	sink := &fakeSink{}
	var diag bytes.Buffer

	pred, err := Build(Criteria{MAC: Streamed()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := NewExecutor(store, sink, log.New(&diag, "", 0))
	in := strings.NewReader("aa:aa:aa:aa:aa:aa\nbb:bb:bb:bb:bb:bb\n")
	if err := exec.Run(context.Background(), pred, in); err != nil {
		t.Fatalf("expected stream to survive a store error, got %v", err)
	}

	if len(store.calls) != 2 {
		t.Fatalf("expected both lines to execute, got %d calls", len(store.calls))
	}
	if !strings.Contains(diag.String(), "query failed") {
		t.Fatalf("expected query failure warning, got %q", diag.String())
	}
}

func TestExecutorBatchStoreErrorIsFatal(t *testing.T) {
	pred, err := Build(Criteria{MAC: Literal("aa:bb:cc:dd:ee:ff")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := NewExecutor(&failingStore{err: errors.New("store exploded")}, &fakeSink{}, nil)
	if err := exec.Run(context.Background(), pred, nil); err == nil {
		t.Fatalf("expected batch store error to be fatal")
	}
}

func TestExecutorSinkErrorAbortsStream(t *testing.T) {
	store := &fakeStore{results: []domain.ForwardingRecord{
		{Host: "sw1", Port: "1", MAC: "aaaaaaaaaaaa", VLAN: "1"},
	}}
	sinkErr := errors.New("broken pipe")
	sink := &fakeSink{recordErr: sinkErr}

	pred, err := Build(Criteria{MAC: Streamed()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := NewExecutor(store, sink, nil)
	in := strings.NewReader("aa:aa:aa:aa:aa:aa\nbb:bb:bb:bb:bb:bb\n")
	err = exec.Run(context.Background(), pred, in)
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error to abort the stream, got %v", err)
	}
	if len(store.calls) != 1 {
		t.Fatalf("expected no further lines after output failure, got %d calls", len(store.calls))
	}
}

// failingStore always fails its query.
type failingStore struct {
	err error
}

func (s *failingStore) Search(ctx context.Context, pred *domain.PredicateSet, bound []string, fn func(domain.ForwardingRecord) error) error {
	return s.err
}
