package main

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/errctx-dev/errctx/internal/generator"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [packages]",
		Short: "List annotated error enums without generating anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if len(patterns) == 0 {
				patterns = []string{"."}
			}

			pkgs, err := generator.Load(cmd.Context(), patterns...)
			if err != nil {
				return err
			}

			enums, err := generator.Inspect(pkgs)
			if err != nil {
				return err
			}

			if len(enums) == 0 {
				cmd.Println("no annotated error enums found")
				return nil
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Package", "Type", "Variants", "Template")

			for _, enum := range enums {
				table.Append(
					enum.Package,
					enum.Name,
					strings.Join(enum.VariantNames(), ", "),
					enum.Template.Raw(),
				)
			}

			table.Render()

			return nil
		},
	}

	return cmd
}
