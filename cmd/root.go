package cmd

import (
	"context"

	"github.com/qw4990/SynthDataGen/logutil"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree; every call owns its flag values.
func newRootCmd() *cobra.Command {
	var logLevel, logFormat string
	var restoreLogs func()
	rootCmd := &cobra.Command{
		Use:           "synthgen",
		Short:         "Synthetic Data Generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, restore, err := logutil.Setup(logLevel, logFormat)
			if err != nil {
				return err
			}
			restoreLogs = restore
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if restoreLogs != nil {
				restoreLogs()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format: console or json")
	rootCmd.AddCommand(newSynthesizeCmd())
	rootCmd.AddCommand(newResampleCmd())
	rootCmd.AddCommand(newRunCmd())
	return rootCmd
}

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
