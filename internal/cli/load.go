package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleishm/MACSearch/internal/adapter"
	"github.com/cleishm/MACSearch/internal/service"
)

var loadDevices []string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Poll devices and refresh the cache",
	Long: `Poll every configured device over SSH, parse its MAC forwarding table
and replace that device's rows in the cache. Devices that cannot be
reached are reported as warnings and skipped; load fails only when no
device at all could be polled.`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringArrayVar(&loadDevices, "device", nil, "poll only the named device (repeatable)")
}

func runLoad(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	svc := service.New(repo, adapter.NewSSHCollector(cfg.Poll), cfg)
	summary, err := svc.Load(cmd.Context(), loadDevices)
	if summary != nil {
		for _, w := range summary.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "polled %d devices, cached %d records\n", summary.Polled, summary.Records)
	return nil
}
