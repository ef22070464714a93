package main

import "github.com/spf13/cobra"

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	root := &cobra.Command{
		Use:   "purifier",
		Short: "Find duplicate tracks in a playlist export",
		Long: "purifier compares every pair of tracks in a playlist export and reports\n" +
			"confirmed duplicates (shared ISRC) and suspected duplicates (similar titles).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&ctx.configPathFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&ctx.logLevelFlag, "log-level", "", "Override logging.level (debug, info, warn, error)")

	root.AddCommand(newScanCommand(ctx), newConfigCommand(ctx))
	return root
}
