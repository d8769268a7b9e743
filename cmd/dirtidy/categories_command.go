package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dirtidy/internal/category"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the active extension-category map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(cfg.Categories)+1)
			for _, c := range cfg.Categories {
				rows = append(rows, []string{c.Name, strings.Join(c.Extensions, " ")})
			}
			rows = append(rows, []string{category.Fallback, "(anything else)"})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Category", "Extensions"}, rows, nil))
			for _, conflict := range cfg.DuplicateExtensions() {
				fmt.Fprintf(out, "Note: %s is listed under %s and %s; files go to %s\n",
					conflict.Extension, conflict.Winner, strings.Join(conflict.Shadowed, ", "), conflict.Winner)
			}
			return nil
		},
	}
}
