// Package format renders query result sets as delimited text.
//
// Results and diagnostics are two independent channels: data rows go to the
// output writer, while no-results notices go to the diagnostic writer, so a
// caller can redirect them separately. Rendering behavior is controlled by
// an explicit Options value per writer, never by package state.
package format

import (
	"fmt"
	"io"

	"github.com/cleishm/MACSearch/internal/domain"
)

// Header is the column header row, in the fixed query column order.
const Header = "Host,Port,MAC,VLAN"

// Options control result rendering.
type Options struct {
	// NoHeader suppresses the header row.
	NoHeader bool
	// Quiet suppresses no-results notices.
	Quiet bool
}

// Writer renders result sets as comma-joined lines. It implements the
// query executor's result sink.
type Writer struct {
	out   io.Writer
	diag  io.Writer
	opts  Options
	label string
	rows  int
}

// NewWriter creates a result writer. out receives data rows, diag receives
// notices.
func NewWriter(out, diag io.Writer, opts Options) *Writer {
	if diag == nil {
		diag = io.Discard
	}
	return &Writer{out: out, diag: diag, opts: opts}
}

// BeginSet opens one result set. label identifies the originating input
// line in streaming mode and may be empty.
func (w *Writer) BeginSet(label string) error {
	w.label = label
	w.rows = 0

	if w.opts.NoHeader {
		return nil
	}
	_, err := fmt.Fprintln(w.out, Header)
	return err
}

// Record writes one result row.
func (w *Writer) Record(rec domain.ForwardingRecord) error {
	w.rows++
	_, err := fmt.Fprintf(w.out, "%s,%s,%s,%s\n", rec.Host, rec.Port, rec.MAC, rec.VLAN)
	return err
}

// EndSet closes the set. An empty set surfaces a non-fatal notice on the
// diagnostic writer unless quiet is configured.
func (w *Writer) EndSet() error {
	if w.rows > 0 || w.opts.Quiet {
		return nil
	}

	// Notices are best effort; a failing diagnostic writer must not fail
	// the query.
	if w.label != "" {
		fmt.Fprintf(w.diag, "no results for %q\n", w.label)
	} else {
		fmt.Fprintln(w.diag, "no results")
	}
	return nil
}
