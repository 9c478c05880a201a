package query

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/cleishm/MACSearch/internal/domain"
)

// Searcher executes one compiled predicate against the cache store,
// streaming matching records through fn in (host, port, mac, vlan) order.
// bound supplies one value per Placeholder condition, in binder order.
type Searcher interface {
	Search(ctx context.Context, pred *domain.PredicateSet, bound []string, fn func(domain.ForwardingRecord) error) error
}

// ResultSink receives result sets from the executor. BeginSet opens a set
// (label identifies the originating input line in streaming mode, and is
// empty in batch mode); EndSet closes it so the sink can surface a
// no-results notice.
type ResultSink interface {
	BeginSet(label string) error
	Record(rec domain.ForwardingRecord) error
	EndSet() error
}

// Executor runs compiled predicate sets in batch or streaming mode.
type Executor struct {
	store Searcher
	sink  ResultSink
	diag  *log.Logger
}

// NewExecutor creates an executor. diag receives line-scoped warnings in
// streaming mode; nil discards them.
func NewExecutor(store Searcher, sink ResultSink, diag *log.Logger) *Executor {
	if diag == nil {
		diag = log.New(io.Discard, "", 0)
	}
	return &Executor{store: store, sink: sink, diag: diag}
}

// Run executes the predicate set. With no binders it runs exactly once;
// otherwise it reads comma-separated lines from in, binds each line's
// fields through the binder sanitizers, and runs one query per line.
// Line-scoped failures (short lines, invalid tokens, store errors) are
// reported and skipped. Failures writing results are fatal in both modes.
func (e *Executor) Run(ctx context.Context, pred *domain.PredicateSet, in io.Reader) error {
	if !pred.Streaming() {
		return e.execute(ctx, pred, nil, "")
	}
	return e.runStream(ctx, pred, in)
}

func (e *Executor) runStream(ctx context.Context, pred *domain.PredicateSet, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		bound, err := bindLine(pred.Binders, line)
		if err != nil {
			e.diag.Printf("line %d skipped: %v", lineNo, err)
			continue
		}

		if err := e.execute(ctx, pred, bound, line); err != nil {
			// Output failures abort the stream; store failures are
			// scoped to this line, mirroring the validation policy.
			var se *sinkError
			if errors.As(err, &se) {
				return se.err
			}
			e.diag.Printf("line %d: %v", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read filter input: %w", err)
	}
	return nil
}

// execute runs one parameterized query and streams its result set to the
// sink.
func (e *Executor) execute(ctx context.Context, pred *domain.PredicateSet, bound []string, label string) error {
	if err := e.sink.BeginSet(label); err != nil {
		return &sinkError{err: err}
	}

	err := e.store.Search(ctx, pred, bound, func(rec domain.ForwardingRecord) error {
		if err := e.sink.Record(rec); err != nil {
			return &sinkError{err: err}
		}
		return nil
	})
	if err != nil {
		var se *sinkError
		if errors.As(err, &se) {
			return se
		}
		return fmt.Errorf("query failed: %w", err)
	}

	if err := e.sink.EndSet(); err != nil {
		return &sinkError{err: err}
	}
	return nil
}

// bindLine splits one streamed input line on commas and sanitizes each
// field with its binder, positionally. Extra fields are ignored; missing
// fields fail the line.
func bindLine(binders []domain.Binder, line string) ([]string, error) {
	fields := strings.Split(line, ",")
	if len(fields) < len(binders) {
		return nil, fmt.Errorf("expected %d filter fields, got %d", len(binders), len(fields))
	}

	bound := make([]string, len(binders))
	for i, binder := range binders {
		v, err := binder.Sanitize(fields[i])
		if err != nil {
			return nil, err
		}
		bound[i] = v
	}
	return bound, nil
}

// sinkError marks a failure writing results, which is fatal even in
// streaming mode.
type sinkError struct {
	err error
}

func (e *sinkError) Error() string { return e.err.Error() }
func (e *sinkError) Unwrap() error { return e.err }
