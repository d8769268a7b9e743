package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dirtidy/internal/logging"
	"dirtidy/internal/organizer"
)

type organizeFlags struct {
	dryRun   bool
	jsonMode bool
}

func newOrganizeFlags() *organizeFlags {
	return &organizeFlags{}
}

func (f *organizeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Show where files would go without moving anything")
	cmd.Flags().BoolVar(&f.jsonMode, "json", false, "Print the run summary as JSON")
}

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	flags := newOrganizeFlags()
	cmd := &cobra.Command{
		Use:   "organize <path>",
		Short: "Move every file in <path> into its category folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, ctx, flags, args[0])
		},
	}
	flags.bind(cmd)
	return cmd
}

func runOrganize(cmd *cobra.Command, ctx *commandContext, flags *organizeFlags, target string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger()
	if err != nil {
		return err
	}

	for _, conflict := range cfg.DuplicateExtensions() {
		logger.Warn("extension listed in several categories; first match wins",
			logging.String("extension", conflict.Extension),
			logging.String("category", conflict.Winner),
			logging.String("shadowed", strings.Join(conflict.Shadowed, ",")),
		)
	}

	org := organizer.New(cfg, logger)
	summary, runErr := org.Run(cmd.Context(), target, organizer.Options{DryRun: flags.dryRun})

	if flags.jsonMode {
		if err := writeJSON(cmd, newSummaryView(summary, runErr)); err != nil {
			return err
		}
		return runErr
	}
	if runErr != nil {
		if summary.Count() > 0 {
			fmt.Fprint(cmd.OutOrStdout(), renderSummary(summary, shouldColorize(cmd.OutOrStdout())))
		}
		return runErr
	}
	fmt.Fprint(cmd.OutOrStdout(), renderSummary(summary, shouldColorize(cmd.OutOrStdout())))
	return nil
}
