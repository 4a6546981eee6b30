package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "ada",
		Short:         "ADA wallet companion: amounts, readiness checks and a local ledger",
		Long:          "ada converts and formats ADA amounts, waits for the wallet node (or any other endpoint) to become ready, and keeps a local ledger of wallets and transactions.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.useLogger(cmd.ErrOrStderr(), verbose)
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(app),
		newAmountCmd(app),
		newWaitCmd(app),
		newWalletCmd(app),
		newTxCmd(app),
	)

	return rootCmd
}
