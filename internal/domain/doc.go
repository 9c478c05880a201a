// Package domain defines the core domain types for the MACSearch forwarding
// table cache.
//
// This package contains the value objects shared by the collector, the cache
// store, and the query engine.
//
// # Core Types
//
// ForwardingRecord is one observed (host, port, mac, vlan) tuple from a
// switch's MAC forwarding table. Records are canonical: the MAC is twelve
// lowercase hex digits with no separators, and port/vlan are plain decimal
// strings.
//
// # Sanitizers
//
// SanitizeMAC, SanitizePort, SanitizeVLAN and SanitizeHost normalize raw
// filter tokens into canonical comparable form, failing with a
// ValidationError on malformed input. SanitizeMAC tolerates the truncated
// and separator-varied notations devices emit (a:2:34:56:78:9a,
// aa-bb-cc-dd-ee-ff, "aa bb cc dd ee ff") before collapsing to the
// twelve-digit form.
//
// # Filter Predicates
//
// Condition is a sealed set of boolean condition variants (MatchAll,
// Membership, Placeholder, Exclusion). A PredicateSet is the ordered
// conjunction of conditions plus the ordered Binder list for categories
// whose values arrive one per input line at execution time. Binder order is
// always mac, port, vlan; streamed input lines must present fields in that
// order.
//
// # Design Principles
//
// - Immutable value objects where possible
// - No database or external dependencies
// - Pure domain logic without infrastructure concerns
package domain
