package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/cleishm/MACSearch/internal/format"
	"github.com/cleishm/MACSearch/internal/query"
)

var (
	searchMACs     []string
	searchPorts    []string
	searchVLANs    []string
	searchExcludes []string
	searchNoHeader bool
	searchQuiet    bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Query the forwarding cache",
	Long: `Search the cached forwarding tables by MAC address, port and VLAN.

Each filter flag is repeatable and matches any of its values. A category
that is never mentioned matches everything. The single value "-" switches
that category to streamed mode: filter values are then read from stdin,
one comma-separated line per query, fields in mac, port, vlan order
(only streamed categories appear on the line).`,
	Example: `  macsearch search -m aa:bb:cc:dd:ee:ff
  macsearch search -V 10 -x core1:48
  printf 'aa:bb:cc:dd:ee:ff\n112233445566\n' | macsearch search -m -`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringArrayVarP(&searchMACs, "mac", "m", nil, "MAC address filter (repeatable, \"-\" streams from stdin)")
	searchCmd.Flags().StringArrayVarP(&searchPorts, "port", "p", nil, "port filter (repeatable, \"-\" streams from stdin)")
	searchCmd.Flags().StringArrayVarP(&searchVLANs, "vlan", "V", nil, "VLAN filter (repeatable, \"-\" streams from stdin)")
	searchCmd.Flags().StringArrayVarP(&searchExcludes, "exclude", "x", nil, "host:port pair to exclude (repeatable)")
	searchCmd.Flags().BoolVar(&searchNoHeader, "no-header", false, "suppress the header row")
	searchCmd.Flags().BoolVarP(&searchQuiet, "quiet", "q", false, "suppress no-results notices")
}

// filterFrom maps flag occurrences to a filter state. The single value
// "-" requests streamed mode for the category.
func filterFrom(values []string) query.Filter {
	if len(values) == 0 {
		return query.Filter{}
	}
	if len(values) == 1 && values[0] == "-" {
		return query.Streamed()
	}
	return query.Literal(values...)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pred, err := query.Build(query.Criteria{
		MAC:        filterFrom(searchMACs),
		Port:       filterFrom(searchPorts),
		VLAN:       filterFrom(searchVLANs),
		Exclusions: searchExcludes,
	})
	if err != nil {
		return err
	}

	repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	opts := format.Options{
		NoHeader: searchNoHeader || cfg.Output.NoHeader,
		Quiet:    searchQuiet || cfg.Output.Quiet,
	}
	sink := format.NewWriter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	diag := log.New(cmd.ErrOrStderr(), "", 0)

	return query.NewExecutor(repo, sink, diag).Run(cmd.Context(), pred, cmd.InOrStdin())
}
