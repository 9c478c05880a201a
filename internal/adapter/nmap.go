package adapter

import (
	"context"
	"fmt"
	"log"
	"time"

	nmap "github.com/Ullaakut/nmap/v3"
)

// Discoverer scans network ranges for SSH-reachable switch candidates
type Discoverer struct {
	targets           []string
	portRange         string
	timeout           time.Duration
	skipHostDiscovery bool
}

// Candidate is one host worth adding to the device inventory
type Candidate struct {
	Address   string
	Hostname  string
	OpenPorts []uint16
}

// NewDiscoverer creates an nmap-based discoverer
// targets: list of CIDR ranges or individual IPs to scan
// opts: optional configuration options
func NewDiscoverer(targets []string, opts ...DiscoverOption) *Discoverer {
	d := &Discoverer{
		targets:   targets,
		portRange: "22",
		timeout:   5 * time.Minute,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Available checks if the nmap binary exists
func (d *Discoverer) Available(ctx context.Context) bool {
	scanner, err := nmap.NewScanner(
		ctx,
		nmap.WithTargets("localhost"),
		nmap.WithListScan(),
	)
	if err != nil {
		return false
	}

	_, _, err = scanner.Run()
	return err == nil
}

// Discover scans all configured targets and returns candidate devices.
// Per-target scan failures are logged and skipped.
func (d *Discoverer) Discover(ctx context.Context) ([]Candidate, error) {
	if len(d.targets) == 0 {
		return nil, fmt.Errorf("no discovery targets configured")
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var candidates []Candidate
	for _, target := range d.targets {
		found, err := d.scanTarget(ctx, target)
		if err != nil {
			log.Printf("discovery: error scanning %s: %v", target, err)
			continue
		}
		candidates = append(candidates, found...)
	}

	log.Printf("discovery: scan complete, %d candidates", len(candidates))
	return candidates, nil
}

// scanTarget performs an nmap scan of a single target
func (d *Discoverer) scanTarget(ctx context.Context, target string) ([]Candidate, error) {
	opts := []nmap.Option{
		nmap.WithTargets(target),
		nmap.WithPorts(d.portRange),
	}
	if d.skipHostDiscovery {
		opts = append(opts, nmap.WithSkipHostDiscovery())
	}

	scanner, err := nmap.NewScanner(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scanner: %w", err)
	}

	log.Printf("discovery: scanning target %s", target)
	result, warnings, err := scanner.Run()
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	if warnings != nil && len(*warnings) > 0 {
		log.Printf("discovery: warnings for %s: %v", target, *warnings)
	}

	return candidatesFromRun(result), nil
}

// candidatesFromRun converts scan results into candidates, keeping only
// hosts with at least one open port
func candidatesFromRun(result *nmap.Run) []Candidate {
	if result == nil {
		return nil
	}

	var candidates []Candidate
	for _, host := range result.Hosts {
		if len(host.Addresses) == 0 {
			continue
		}

		var open []uint16
		for _, port := range host.Ports {
			if port.State.State == "open" {
				open = append(open, port.ID)
			}
		}
		if len(open) == 0 {
			continue
		}

		c := Candidate{
			Address:   host.Addresses[0].Addr,
			OpenPorts: open,
		}
		if len(host.Hostnames) > 0 {
			c.Hostname = host.Hostnames[0].Name
		}
		candidates = append(candidates, c)
	}

	return candidates
}
