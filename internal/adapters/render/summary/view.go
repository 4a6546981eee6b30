package summary

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/bnema/ada-wallet-cli/internal/application"
	"github.com/bnema/ada-wallet-cli/internal/currency"
	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// recentWindow is how long a transaction keeps fading from bright to dim.
const recentWindow = 30 * 24 * time.Hour

type RenderOptions struct {
	Now time.Time
	// Limit caps the number of transactions listed; 0 lists all of them.
	Limit int
}

// Render draws the overview of every wallet.
func Render(summaries []application.WalletSummary, conv *currency.Converter) (string, error) {
	return run(func(s styles) string {
		return renderSummaries(summaries, conv, s)
	})
}

// RenderTransactions draws the transaction list of one wallet.
func RenderTransactions(wallet domain.Wallet, txs []domain.Transaction, conv *currency.Converter, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderTransactions(wallet, txs, conv, opts, s)
	})
}

func renderSummaries(summaries []application.WalletSummary, conv *currency.Converter, s styles) string {
	printer := conv.Printer()
	lines := []string{
		s.title.Render(fmt.Sprintf("%s Wallets", conv.Currency().Code)),
		s.header.Render(printer.Sprintf("wallets: %d", len(summaries))),
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No wallets yet. Create one with `ada wallet create`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, summary := range summaries {
		lines = append(lines, s.section.Render(renderWallet(summary, conv, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWallet(ws application.WalletSummary, conv *currency.Converter, s styles) string {
	sum := ws.Summary
	printer := conv.Printer()

	parts := []string{
		s.wallet.Render(walletTitle(ws.Wallet)),
		keyValue(s, "balance:", s.balance.Render(conv.FormatMinorUnits(sum.Balance, true))),
	}

	if !isZero(sum.PendingTotal) {
		pending := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.incoming.Render("+"+conv.FormatMinorUnits(sum.PendingIncoming, true)),
			" / ",
			s.outgoing.Render("-"+conv.FormatMinorUnits(sum.PendingOutgoing, true)),
			" ",
			s.pending.Render(fmt.Sprintf("(total %s)", conv.FormatMinorUnits(sum.PendingTotal, true))),
		)
		parts = append(parts, keyValue(s, "pending:", pending))
	}

	parts = append(parts, keyValue(s, "transactions:", s.detail.Render(printer.Sprintf("%d", sum.NumberOfTransactions))))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderTransactions(wallet domain.Wallet, txs []domain.Transaction, conv *currency.Converter, opts RenderOptions, s styles) string {
	printer := conv.Printer()
	lines := []string{
		s.wallet.Render(walletTitle(wallet)),
		s.header.Render(printer.Sprintf("transactions: %d", len(txs))),
	}

	if len(txs) == 0 {
		lines = append(lines, s.empty.Render("No transactions recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	shown := txs
	if opts.Limit > 0 && len(shown) > opts.Limit {
		shown = shown[:opts.Limit]
	}

	for _, tx := range shown {
		lines = append(lines, transactionLine(tx, conv, opts, s))
	}

	if hidden := len(txs) - len(shown); hidden > 0 {
		lines = append(lines, s.empty.Render(printer.Sprintf("… %d more", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func transactionLine(tx domain.Transaction, conv *currency.Converter, opts RenderOptions, s styles) string {
	amount := conv.FormatMinorUnits(tx.Amount, true)
	amountStyle := s.detail
	switch tx.Type {
	case domain.TransactionIncome:
		amount = "+" + amount
		amountStyle = s.incoming
	case domain.TransactionExpend:
		amount = "-" + amount
		amountStyle = s.outgoing
	}

	dateStyle := lipgloss.NewStyle().Foreground(ageColor(tx.Date, opts.Now))
	date := dateStyle.Render(tx.Date.Format("2006-01-02 15:04"))
	if !opts.Now.IsZero() {
		date += " " + s.header.Render(fmt.Sprintf("(%s)", formatAge(tx.Date, opts.Now)))
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		date,
		"  ",
		amountStyle.Render(amount),
		"  ",
		s.detail.Render(tx.Title),
	)

	switch tx.State {
	case domain.TransactionPending:
		line += " " + s.pending.Render("[pending]")
	case domain.TransactionFailed:
		line += " " + s.failed.Render("[failed]")
	}

	return line
}

func keyValue(s styles, key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key), " ", value)
}

func walletTitle(wallet domain.Wallet) string {
	return fmt.Sprintf("%s (%s)", strings.TrimSpace(wallet.Name), wallet.ID)
}

func isZero(v *big.Int) bool {
	return v == nil || v.Sign() == 0
}

func formatAge(at, now time.Time) string {
	if at.After(now) {
		return "scheduled"
	}

	elapsed := now.Sub(at)
	if elapsed < time.Hour {
		return "just now"
	}
	if elapsed < 24*time.Hour {
		hours := int(math.Floor(elapsed.Hours()))
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(math.Floor(elapsed.Hours() / 24))
	if days == 1 {
		return "yesterday"
	}
	return fmt.Sprintf("%d days ago", days)
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp, 240 (faded) to 255 (bright).
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}

// ageColor is bright for fresh transactions and fades over recentWindow.
func ageColor(at, now time.Time) lipgloss.Color {
	if now.IsZero() || at.After(now) {
		return lipgloss.Color("255")
	}

	inverted := recentWindow.Seconds() - now.Sub(at).Seconds()
	return interpolateColor(inverted, 0, recentWindow.Seconds())
}
