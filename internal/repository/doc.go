// Package repository defines the data access interfaces for the MACSearch
// forwarding cache.
//
// This package provides the repository abstraction layer for persisting and
// querying cached forwarding records. The actual implementation is in the
// sqlite subpackage.
//
// # Repository Interface
//
// The Repository interface covers cache population (per-host replace),
// predicate search with positional parameter binding, and the bulk and
// summary reads behind the export and stats commands.
//
// # SQLite Implementation
//
// The sqlite implementation provides a complete repository using SQLite
// with WAL mode. It handles:
//
// - Schema migration on startup
// - Transactional per-host replacement with prepared inserts
// - Translation of domain filter conditions into parameterized WHERE
//   clauses (membership, positional equality, negated conjunctions)
// - Row streaming through caller callbacks
//
// # Testing
//
// The sqlite repository is tested with in-memory databases.
package repository
