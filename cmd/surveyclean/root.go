package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var inputFlag string
	var outputFlag string

	ctx := newCommandContext(&configFlag, &inputFlag, &outputFlag)

	rootCmd := &cobra.Command{
		Use:           "surveyclean",
		Short:         "Bereinigt die Beschäftigungsangaben der Stressskala-Umfrage",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (default ./surveyclean.toml if present)")
	rootCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Override the input export path")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Override the cleaned output path")

	rootCmd.AddCommand(newClassifyCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
