package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dirtidy/internal/category"
	"dirtidy/internal/organizer"
	"dirtidy/internal/preflight"
	"dirtidy/internal/scanner"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Verify a directory can be organized without changing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := args[0]

			var needed []string
			if preflight.CheckTarget(target) == nil {
				records, err := scanner.Scan(target)
				if err != nil {
					return err
				}
				needed = organizer.Categories(records, category.New(cfg.Categories))
			}

			results := preflight.RunAll(cfg, target, needed)
			rows := make([][]string, 0, len(results))
			failed := 0
			for _, r := range results {
				status := "OK"
				if !r.Passed {
					status = "FAIL"
					failed++
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTableStyled(
				[]string{"Check", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
				shouldColorize(out),
			))
			if failed > 0 {
				return fmt.Errorf("%d preflight check(s) failed", failed)
			}
			if ctx.configPath != "" {
				fmt.Fprintf(out, "Config: %s\n", ctx.configPath)
			}
			return nil
		},
	}
}
