package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleishm/MACSearch/internal/codec"
	"github.com/cleishm/MACSearch/internal/service"
)

var importFormat string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a cache dump",
	Long: `Read a previously exported dump and load it into the cache. Every
record passes through the same sanitizers as a live poll; rows that fail
are reported and dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "dump format: json, yaml or csv (default: from extension)")
}

// inferFormat guesses the dump format from a file extension.
func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".csv":
		return "csv"
	default:
		return "json"
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	name := importFormat
	if name == "" {
		name = inferFormat(args[0])
	}
	c, err := codec.For(name)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := c.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	summary, err := service.New(repo, nil, cfg).Import(cmd.Context(), records)
	if summary != nil {
		for _, w := range summary.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d records for %d hosts\n", summary.Records, summary.Polled)
	return nil
}
