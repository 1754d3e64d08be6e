package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsegen-dev/parsegen/internal/agent"
	"github.com/parsegen-dev/parsegen/internal/config"
	"github.com/parsegen-dev/parsegen/internal/runner"
)

func newGenerateCommand(verbose *bool) *cobra.Command {
	var dataDir string
	var parsersDir string
	var maxAttempts int
	var execArtifact bool

	cmd := &cobra.Command{
		Use:   "generate <bank>",
		Short: "Generate a statement parser for a bank and validate it against the reference table",
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
			if parsersDir != "" {
				cfg.ParsersDir = parsersDir
			}
			if maxAttempts > 0 {
				cfg.MaxAttempts = maxAttempts
			}

			logger := newLogger(*verbose)

			opts := agent.Options{
				DataDir:     cfg.DataDir,
				ParsersDir:  cfg.ParsersDir,
				MaxAttempts: cfg.MaxAttempts,
				Profile:     cfg.ProfileFor(bank),
				Logger:      logger,
			}
			if execArtifact {
				opts.Runner = runner.NewExecRunner(logger)
			}

			ag, err := agent.New(bank, opts)
			if err != nil {
				return err
			}

			if err := ag.Run(cmd.Context()); err != nil {
				fmt.Printf("FAILED: could not generate parser for %s after %d attempts\n", bank, ag.MaxAttempts())
				if errs := ag.Errors(); len(errs) > 0 {
					fmt.Println("Errors encountered:")
					for _, e := range errs {
						fmt.Printf("  - %s\n", e)
					}
				}
				return err
			}

			fmt.Printf("SUCCESS: generated parser for %s\n", bank)
			fmt.Printf("Parser location: %s\n", ag.ArtifactPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory (default from parsegen.yaml)")
	cmd.Flags().StringVar(&parsersDir, "parsers-dir", "", "generated parsers directory (default from parsegen.yaml)")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "attempt ceiling (default from parsegen.yaml)")
	cmd.Flags().BoolVar(&execArtifact, "exec", false, "validate by running the generated artifact as a subprocess")

	return cmd
}
