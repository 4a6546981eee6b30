package cmd

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/bnema/ada-wallet-cli/internal/application"
	"github.com/bnema/ada-wallet-cli/internal/currency"
	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

type walletSummaryJSON struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Balance              string `json:"balance"`
	BalanceMinor         string `json:"balance_minor"`
	PendingIncoming      string `json:"pending_incoming"`
	PendingOutgoing      string `json:"pending_outgoing"`
	PendingTotal         string `json:"pending_total"`
	NumberOfTransactions int    `json:"number_of_transactions"`
	CurrencyCode         string `json:"currency"`
}

func newWalletCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage local wallets",
	}

	cmd.AddCommand(
		newWalletCreateCmd(app),
		newWalletListCmd(app),
		newWalletSummaryCmd(app),
	)

	return cmd
}

func newWalletCreateCmd(app *app) *cobra.Command {
	var (
		id   string
		name string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty wallet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := app.service.CreateWallet(cmd.Context(), application.CreateWalletCommand{
				ID:   domain.WalletID(id),
				Name: name,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created wallet %s (%s)\n", wallet.ID, wallet.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Wallet ID (empty or 0 picks the next free number)")
	cmd.Flags().StringVar(&name, "name", "", "Wallet name")

	return cmd
}

func newWalletListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wallets with their balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := app.service.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, s := range summaries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					s.Wallet.ID,
					s.Wallet.Name,
					app.converter.FormatMinorUnits(s.Summary.Balance, true),
				)
			}

			return nil
		},
	}
}

func newWalletSummaryCmd(app *app) *cobra.Command {
	var (
		walletID string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show balance, pending amounts and transaction count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := loadSummaries(cmd, app.service, walletID)
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]walletSummaryJSON, 0, len(summaries))
				for _, s := range summaries {
					out = append(out, toSummaryJSON(s, app.converter))
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			rendered, err := app.summaryRenderer(summaries, app.converter)
			if err != nil {
				return fmt.Errorf("render summary: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet ID (all wallets when empty)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}

func loadSummaries(cmd *cobra.Command, svc *application.Service, walletID string) ([]application.WalletSummary, error) {
	if walletID == "" {
		return svc.List(cmd.Context())
	}

	summary, err := svc.Summary(cmd.Context(), domain.WalletID(walletID))
	if err != nil {
		return nil, err
	}

	return []application.WalletSummary{summary}, nil
}

func toSummaryJSON(s application.WalletSummary, conv *currency.Converter) walletSummaryJSON {
	places := int32(conv.Currency().DecimalPlaces)
	plain := func(v *big.Int) string {
		return conv.FromMinorUnitAmount(v).StringFixed(places)
	}

	return walletSummaryJSON{
		ID:                   string(s.Wallet.ID),
		Name:                 s.Wallet.Name,
		Balance:              plain(s.Summary.Balance),
		BalanceMinor:         s.Summary.Balance.String(),
		PendingIncoming:      plain(s.Summary.PendingIncoming),
		PendingOutgoing:      plain(s.Summary.PendingOutgoing),
		PendingTotal:         plain(s.Summary.PendingTotal),
		NumberOfTransactions: s.Summary.NumberOfTransactions,
		CurrencyCode:         conv.Currency().Code,
	}
}
