// Package adapter contains the device-facing collaborators that populate
// the forwarding cache.
//
// # SSH Collector
//
// SSHCollector logs into a switch, runs the platform's MAC-table command
// and parses the output into forwarding records. Authentication supports
// passwords and private keys. The table parser is deliberately tolerant:
// header and separator lines are skipped, and a data line that cannot be
// normalized is dropped rather than failing the whole device.
//
// # Discovery
//
// Discoverer runs nmap over configured CIDR targets and reports hosts with
// the SSH port open as candidates for the device inventory. It is a
// suggestion mechanism only; nothing is polled without an inventory entry.
package adapter
