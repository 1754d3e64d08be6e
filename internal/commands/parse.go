package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/parsegen-dev/parsegen/internal/config"
	"github.com/parsegen-dev/parsegen/internal/extract"
	"github.com/parsegen-dev/parsegen/internal/runner"
	"github.com/parsegen-dev/parsegen/internal/statement"
)

func newParseCommand(verbose *bool) *cobra.Command {
	var dataDir string
	var replay bool

	cmd := &cobra.Command{
		Use:   "parse <bank>",
		Short: "Parse a bank's statement once and print the transaction table as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bank := args[0]

			cfg, err := config.LoadOrDefault(config.FileName)
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}

			logger := newLogger(*verbose)

			docPath, err := statement.FindDocument(filepath.Join(cfg.DataDir, bank))
			if err != nil {
				return err
			}

			strategy := runner.PrimaryExtraction
			if replay {
				strategy = runner.ReferenceReplay
			}

			pipeline := runner.NewPipeline(cfg.ProfileFor(bank), extract.NewChain(logger), strategy, logger)
			table, err := pipeline.Run(cmd.Context(), "", docPath)
			if err != nil {
				return err
			}

			return statement.WriteTable(os.Stdout, table)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory (default from parsegen.yaml)")
	cmd.Flags().BoolVar(&replay, "replay", false, "replay the reference table instead of extracting the document")

	return cmd
}
