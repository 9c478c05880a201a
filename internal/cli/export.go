package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleishm/MACSearch/internal/codec"
	"github.com/cleishm/MACSearch/internal/service"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the cache to a portable format",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "dump format: json, yaml or csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	c, err := codec.For(exportFormat)
	if err != nil {
		return err
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

	records, err := service.New(repo, nil, cfg).Export(cmd.Context())
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return c.Export(records, w)
}
