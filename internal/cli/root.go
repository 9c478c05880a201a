// Package cli implements the macsearch command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleishm/MACSearch/internal/config"
	"github.com/cleishm/MACSearch/internal/repository"
	"github.com/cleishm/MACSearch/internal/repository/sqlite"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "macsearch",
	Short: "Search cached MAC forwarding tables",
	Long: `macsearch polls the MAC forwarding tables of configured switches into a
local cache and answers filtered queries against it.

Populate the cache with "macsearch load", then query it with
"macsearch search". The cache is disposable; a fresh load rebuilds it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits nonzero on fatal errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: searched)")
}

// loadConfig honors the --config flag, then the search path.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		cfg, _, err := config.LoadFromPath(configPath)
		return cfg, err
	}
	cfg, _, err := config.Load()
	return cfg, err
}

func openRepository(cfg *config.Config) (repository.Repository, error) {
	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache %s: %w", cfg.Database.Path, err)
	}
	return repo, nil
}
