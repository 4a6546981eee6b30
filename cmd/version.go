package cmd

import (
	"fmt"

	"github.com/bnema/ada-wallet-cli/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (api %s/%s)\n", version.Version, app.env.API, app.env.APIVersion)
			return err
		},
	}
}
