// Package service orchestrates cache population.
//
// # Load
//
// Load polls every configured device (or a named subset), parses each
// MAC table and replaces that host's rows in the cache atomically. A
// device that cannot be reached or parsed becomes a warning, not a
// failure; the poll continues with the remaining devices. Only when no
// device at all could be polled does Load return an error.
//
// # Import and Export
//
// Import feeds externally produced records through the same sanitation
// gate as a live poll before they reach the cache. Export reads the
// whole cache back out for the codec layer.
package service
