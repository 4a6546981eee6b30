// Package currency converts between decimal major-unit amounts and integer
// minor-unit amounts without ever going through floating point.
package currency

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Normalized amounts, as produced by ParseToDecimal, always use these.
const (
	normalizedPoint = "."
	normalizedGroup = ","
)

// Converter is immutable after construction and safe for concurrent use.
type Converter struct {
	currency domain.Currency
	exp      int32
	tag      language.Tag
	seps     separators
}

func NewConverter(currency domain.Currency) (*Converter, error) {
	if err := currency.Validate(); err != nil {
		return nil, err
	}

	exp, _ := currency.MinorUnitExponent()

	tag, seps, err := resolveLocale(currency.Locale)
	if err != nil {
		return nil, err
	}

	return &Converter{currency: currency, exp: exp, tag: tag, seps: seps}, nil
}

func (c *Converter) Currency() domain.Currency {
	return c.currency
}

// FormatForDisplay renders amount with the configured number of decimal
// places and locale grouping, optionally followed by the unit label.
func (c *Converter) FormatForDisplay(amount decimal.Decimal, withUnit bool) string {
	fixed := amount.StringFixed(int32(c.currency.DecimalPlaces))

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	formatted := sign + groupDigits(intPart, c.seps.group)
	if fracPart != "" {
		formatted += c.seps.decimal + fracPart
	}

	if withUnit && c.currency.Label != "" {
		formatted += " " + c.currency.Label
	}

	return formatted
}

// ParseToDecimal reads a user-facing amount. Group separators and an
// optional unit label are ignored. Only blank input is zero; a bare label or
// bare separators are malformed.
func (c *Converter) ParseToDecimal(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return decimal.Zero, nil
	}
	if c.currency.Label != "" {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, c.currency.Label))
	}
	cleaned = strings.ReplaceAll(cleaned, c.seps.group, "")
	if c.seps.decimal != "." {
		if strings.Contains(cleaned, ".") {
			return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrMalformedAmount, raw)
		}
		cleaned = strings.ReplaceAll(cleaned, c.seps.decimal, ".")
	}

	if !isPlainDecimal(cleaned) {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrMalformedAmount, raw)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", domain.ErrMalformedAmount, raw, err)
	}

	return amount, nil
}

// ToMinorUnits drops the decimal point, group commas and leading zeros from
// a normalized digit string ("1,234.567890"). The input is locale independent.
// The caller is responsible for the decimal point sitting on the minor-unit
// boundary.
func (c *Converter) ToMinorUnits(raw string) (string, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), normalizedGroup, "")
	if strings.Count(cleaned, normalizedPoint) > 1 {
		return "", fmt.Errorf("%w: %q has more than one decimal point", domain.ErrMalformedAmount, raw)
	}
	cleaned = strings.Replace(cleaned, normalizedPoint, "", 1)

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", domain.ErrMalformedAmount, raw)
		}
	}

	cleaned = strings.TrimLeft(cleaned, "0")
	if cleaned == "" {
		return "0", nil
	}

	return cleaned, nil
}

// TrimTrailingZeros removes fractional trailing zeros and a dangling "."
// from a normalized amount. Strings without a "." are returned as is.
func (c *Converter) TrimTrailingZeros(amount string) string {
	if !strings.Contains(amount, normalizedPoint) {
		return amount
	}

	trimmed := strings.TrimRight(amount, "0")
	trimmed = strings.TrimSuffix(trimmed, normalizedPoint)
	if trimmed == "" || trimmed == "-" {
		return "0"
	}

	return trimmed
}

// ToMinorUnitAmount returns round(amount × units per major).
func (c *Converter) ToMinorUnitAmount(raw string) (*big.Int, error) {
	amount, err := c.ParseToDecimal(raw)
	if err != nil {
		return nil, err
	}

	return amount.Shift(c.exp).Round(0).BigInt(), nil
}

func (c *Converter) FromMinorUnitAmount(minor *big.Int) decimal.Decimal {
	if minor == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(minor, -c.exp)
}

// FormatMinorUnits is FormatForDisplay for an amount held in minor units.
func (c *Converter) FormatMinorUnits(minor *big.Int, withUnit bool) string {
	return c.FormatForDisplay(c.FromMinorUnitAmount(minor), withUnit)
}

// ValidateSendAmount applies the send form limits: strictly positive, at
// most DecimalPlaces fractional digits and MaxIntegerDigits integer digits.
func (c *Converter) ValidateSendAmount(raw string) (decimal.Decimal, error) {
	amount, err := c.ParseToDecimal(raw)
	if err != nil {
		return decimal.Zero, err
	}

	if amount.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", domain.ErrAmountOutOfRange)
	}

	places := int32(c.currency.DecimalPlaces)
	if !amount.Equal(amount.Truncate(places)) {
		return decimal.Zero, fmt.Errorf("%w: at most %d decimal places allowed", domain.ErrAmountOutOfRange, places)
	}

	if limit := c.currency.MaxIntegerDigits; limit > 0 {
		integerDigits := len(amount.Truncate(0).BigInt().String())
		if integerDigits > limit {
			return decimal.Zero, fmt.Errorf("%w: at most %d integer digits allowed", domain.ErrAmountOutOfRange, limit)
		}
	}

	return amount, nil
}

func groupDigits(digits string, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

func isPlainDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")

	digits := 0
	points := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			points++
		default:
			return false
		}
	}

	return digits > 0 && points <= 1
}
