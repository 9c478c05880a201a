// Package query turns filter criteria into compiled predicate sets and
// executes them against the cache store.
//
// # Criteria
//
// Criteria holds one Filter per category (mac, port, vlan) plus raw
// host:port exclusion pairs. A Filter is in one of three states: absent
// (not requested, matches everything), literal (requested with known
// values), or streamed (requested with zero values; the values arrive one
// per input line during execution).
//
// # Building
//
// Build sanitizes every literal value and compiles the criteria into a
// domain.PredicateSet. It is a pure function; a single malformed literal or
// exclusion pair fails the whole build, since partial intent is ambiguous.
//
// # Execution
//
// Executor picks the execution mode from the compiled predicate alone.
// With no binders the predicate runs exactly once (batch mode). With
// binders it reads comma-separated lines from the input stream, binds each
// line's fields positionally through the binder sanitizers, and runs one
// parameterized query per line (streaming mode). Line-scoped failures are
// reported on the diagnostic logger and skipped; the stream continues.
// Memory use is bounded to one line and one result set regardless of input
// size.
package query
