package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAmountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amount",
		Short: "Convert and format currency amounts",
	}

	cmd.AddCommand(
		newAmountFormatCmd(app),
		newAmountParseCmd(app),
		newAmountMinorCmd(app),
		newAmountTrimCmd(app),
		newAmountToLovelaceCmd(app),
		newAmountFromLovelaceCmd(app),
		newAmountValidateCmd(app),
	)

	return cmd
}

func newAmountFormatCmd(app *app) *cobra.Command {
	var noUnit bool

	cmd := &cobra.Command{
		Use:   "format <decimal>",
		Short: "Format a decimal amount for display",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := app.converter.ParseToDecimal(args[0])
			if err != nil {
				return fmt.Errorf("parse amount: %w", err)
			}

			return printLine(cmd, app.converter.FormatForDisplay(amount, !noUnit))
		},
	}

	cmd.Flags().BoolVar(&noUnit, "no-unit", false, "Omit the currency label")

	return cmd
}

func newAmountParseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <formatted>",
		Short: "Parse a display-formatted amount into a plain decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := app.converter.ParseToDecimal(args[0])
			if err != nil {
				return fmt.Errorf("parse amount: %w", err)
			}

			return printLine(cmd, amount.String())
		},
	}
}

func newAmountMinorCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "minor <formatted>",
		Short: "Strip separators and leading zeros, leaving a digit string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := app.converter.ToMinorUnits(args[0])
			if err != nil {
				return fmt.Errorf("convert to minor units: %w", err)
			}

			return printLine(cmd, digits)
		},
	}
}

func newAmountTrimCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trim <decimal>",
		Short: "Remove trailing fractional zeros",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printLine(cmd, app.converter.TrimTrailingZeros(args[0]))
		},
	}
}

func newAmountToLovelaceCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "to-lovelace <formatted>",
		Short: "Convert a major-unit amount to integer minor units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minor, err := app.converter.ToMinorUnitAmount(args[0])
			if err != nil {
				return fmt.Errorf("convert to minor units: %w", err)
			}

			return printLine(cmd, minor.String())
		},
	}
}

func newAmountFromLovelaceCmd(app *app) *cobra.Command {
	var formatted bool

	cmd := &cobra.Command{
		Use:   "from-lovelace <integer>",
		Short: "Convert integer minor units to a major-unit amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minor, ok := new(big.Int).SetString(strings.TrimSpace(args[0]), 10)
			if !ok {
				return fmt.Errorf("%w: %q is not an integer", domain.ErrMalformedAmount, args[0])
			}

			if formatted {
				return printLine(cmd, app.converter.FormatMinorUnits(minor, true))
			}

			places := int32(app.converter.Currency().DecimalPlaces)
			return printLine(cmd, app.converter.FromMinorUnitAmount(minor).StringFixed(places))
		},
	}

	cmd.Flags().BoolVar(&formatted, "formatted", false, "Print with grouping and the currency label")

	return cmd
}

func newAmountValidateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <formatted>",
		Short: "Check an amount against the send limits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := app.converter.ValidateSendAmount(args[0])
			if err != nil {
				return err
			}

			return printLine(cmd, "valid: "+app.converter.FormatForDisplay(amount, true))
		},
	}
}

func printLine(cmd *cobra.Command, line string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
	return err
}
