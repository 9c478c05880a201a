package adapter

import "time"

// DiscoverOption configures a Discoverer
type DiscoverOption func(*Discoverer)

// WithPortRange sets the port range to scan (default "22")
func WithPortRange(portRange string) DiscoverOption {
	return func(d *Discoverer) {
		if portRange != "" {
			d.portRange = portRange
		}
	}
}

// WithTimeout sets the overall scan timeout (default 5 minutes)
func WithTimeout(timeout time.Duration) DiscoverOption {
	return func(d *Discoverer) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithSkipHostDiscovery skips the ping probe and treats every address as
// up. Useful on networks where ICMP is filtered.
func WithSkipHostDiscovery() DiscoverOption {
	return func(d *Discoverer) {
		d.skipHostDiscovery = true
	}
}
