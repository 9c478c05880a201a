package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleishm/MACSearch/internal/adapter"
)

var discoverTargets []string

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Scan for switch candidates",
	Long: `Scan the configured (or given) network ranges with nmap and list hosts
with the SSH port open. Discovery only suggests inventory entries; add a
device to the config before "macsearch load" will poll it.`,
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().StringArrayVar(&discoverTargets, "target", nil, "CIDR range or address to scan (repeatable, default: config)")
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	targets := discoverTargets
	if len(targets) == 0 {
		targets = cfg.Discovery.Targets
	}

	d := adapter.NewDiscoverer(targets, adapter.WithPortRange(cfg.Discovery.PortRange))
	if !d.Available(cmd.Context()) {
		return fmt.Errorf("nmap is not available; install it to use discovery")
	}

	candidates, err := d.Discover(cmd.Context())
	if err != nil {
		return err
	}

	for _, c := range candidates {
		ports := make([]string, len(c.OpenPorts))
		for i, p := range c.OpenPorts {
			ports[i] = fmt.Sprintf("%d", p)
		}
		line := c.Address
		if c.Hostname != "" {
			line += " (" + c.Hostname + ")"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s open: %s\n", line, strings.Join(ports, ","))
	}
	if len(candidates) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "no candidates found")
	}
	return nil
}
