package domain

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	DefaultCurrencyCode     = "ADA"
	DefaultDecimalPlaces    = 6
	DefaultUnitsPerMajor    = 1_000_000
	DefaultMaxIntegerDigits = 11
	DefaultLocale           = "en"
)

// Currency describes how a major-unit amount maps onto its minor units and
// how it is shown to the user.
type Currency struct {
	Code string
	// Label is appended after a space when an amount is displayed with its unit.
	Label            string
	DecimalPlaces    int
	UnitsPerMajor    int64
	MaxIntegerDigits int
	Locale           string
}

func DefaultCurrency() Currency {
	return Currency{
		Code:             DefaultCurrencyCode,
		Label:            DefaultCurrencyCode,
		DecimalPlaces:    DefaultDecimalPlaces,
		UnitsPerMajor:    DefaultUnitsPerMajor,
		MaxIntegerDigits: DefaultMaxIntegerDigits,
		Locale:           DefaultLocale,
	}
}

func (c Currency) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidCurrency)
	}
	if c.DecimalPlaces < 0 {
		return fmt.Errorf("%w: decimal places must not be negative", ErrInvalidCurrency)
	}
	if c.UnitsPerMajor <= 0 {
		return fmt.Errorf("%w: units per major must be positive", ErrInvalidCurrency)
	}
	if _, ok := c.MinorUnitExponent(); !ok {
		return fmt.Errorf("%w: units per major %d is not a power of ten", ErrInvalidCurrency, c.UnitsPerMajor)
	}
	if c.MaxIntegerDigits < 0 {
		return fmt.Errorf("%w: max integer digits must not be negative", ErrInvalidCurrency)
	}

	return nil
}

// MinorUnitExponent returns k such that UnitsPerMajor == 10^k.
func (c Currency) MinorUnitExponent() (int32, bool) {
	if c.UnitsPerMajor <= 0 {
		return 0, false
	}

	var exp int32
	for v := c.UnitsPerMajor; v > 1; v /= 10 {
		if v%10 != 0 {
			return 0, false
		}
		exp++
	}

	return exp, true
}

func (c Currency) UnitsPerMajorBig() *big.Int {
	return big.NewInt(c.UnitsPerMajor)
}
