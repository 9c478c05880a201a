package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache contents per host",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	count, err := repo.Count(cmd.Context())
	if err != nil {
		return err
	}
	summaries, err := repo.HostSummaries(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d records across %d hosts\n", count, len(summaries))
	for _, s := range summaries {
		fmt.Fprintf(out, "  %s: %d records, polled %s\n", s.Host, s.RecordCount, s.PolledAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
