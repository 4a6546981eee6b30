package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	summaryadapter "github.com/bnema/ada-wallet-cli/internal/adapters/render/summary"
	"github.com/bnema/ada-wallet-cli/internal/application"
	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

type transactionJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	State       string `json:"state"`
	Amount      string `json:"amount"`
	AmountMinor string `json:"amount_minor"`
	Date        string `json:"date"`
}

func newTxCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and list wallet transactions",
	}

	cmd.AddCommand(
		newTxAddCmd(app),
		newTxListCmd(app),
	)

	return cmd
}

func newTxAddCmd(app *app) *cobra.Command {
	var (
		walletID string
		kind     string
		state    string
		amount   string
		title    string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction on a wallet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var at time.Time
			if date != "" {
				parsed, err := time.Parse(time.RFC3339, date)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				at = parsed
			}

			tx, err := app.service.AddTransaction(cmd.Context(), application.AddTransactionCommand{
				WalletID: domain.WalletID(walletID),
				Title:    title,
				Type:     domain.TransactionType(kind),
				State:    domain.TransactionState(state),
				Amount:   amount,
				Date:     at,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s %s %s\n",
				tx.Type,
				app.converter.FormatMinorUnits(tx.Amount, true),
				tx.ID,
			)
			return err
		},
	}

	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet ID")
	cmd.Flags().StringVar(&kind, "type", "", "Transaction type: income, expend or exchange")
	cmd.Flags().StringVar(&state, "state", string(domain.TransactionOK), "Transaction state: ok, pending or failed")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in major units, e.g. 12.5 or \"1,000 ADA\"")
	cmd.Flags().StringVar(&title, "title", "", "Short description")
	cmd.Flags().StringVar(&date, "date", "", "RFC3339 timestamp (default now)")
	_ = cmd.MarkFlagRequired("wallet")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTxListCmd(app *app) *cobra.Command {
	var (
		walletID string
		limit    int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a wallet's transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := app.service.Summary(cmd.Context(), domain.WalletID(walletID))
			if err != nil {
				return err
			}
			txs, err := app.service.Transactions(cmd.Context(), domain.WalletID(walletID))
			if err != nil {
				return err
			}

			if asJSON {
				places := int32(app.converter.Currency().DecimalPlaces)
				out := make([]transactionJSON, 0, len(txs))
				for _, tx := range txs {
					out = append(out, transactionJSON{
						ID:          tx.ID,
						Title:       tx.Title,
						Type:        string(tx.Type),
						State:       string(tx.State),
						Amount:      app.converter.FromMinorUnitAmount(tx.Amount).StringFixed(places),
						AmountMinor: tx.Amount.String(),
						Date:        tx.Date.UTC().Format(time.RFC3339),
					})
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			rendered, err := app.txRenderer(summary.Wallet, txs, app.converter, summaryadapter.RenderOptions{
				Now:   app.now(),
				Limit: limit,
			})
			if err != nil {
				return fmt.Errorf("render transactions: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet ID")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many transactions (0 shows all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	_ = cmd.MarkFlagRequired("wallet")

	return cmd
}
