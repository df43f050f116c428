package main

import (
	"github.com/spf13/cobra"

	"github.com/errctx-dev/errctx/internal/generator"
)

func newGenerateCmd() *cobra.Command {
	var (
		types  []string
		output string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "generate [packages]",
		Short: "Generate context files for annotated error enums",
		Long: `Generate scans the given packages (default: the current directory)
for sealed error interfaces carrying an errctx:context directive and
writes a <type>_context.go file next to each one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if len(patterns) == 0 {
				patterns = []string{"."}
			}

			pkgs, err := generator.Load(cmd.Context(), patterns...)
			if err != nil {
				return err
			}

			results, err := generator.Run(cmd.Context(), pkgs, generator.Options{
				Types:  types,
				Output: output,
				DryRun: dryRun,
				Stdout: cmd.OutOrStdout(),
				Logger: logger,
			})
			if err != nil {
				return err
			}

			logger.Info().Int("files", len(results)).Msg("generation finished")

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "generate only for the named enum types")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (single type only)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print generated code instead of writing files")

	return cmd
}
