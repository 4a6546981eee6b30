package currency

import (
	"math/big"
	"sync"
	"testing"

	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T, mutate ...func(*domain.Currency)) *Converter {
	t.Helper()

	c := domain.DefaultCurrency()
	for _, fn := range mutate {
		fn(&c)
	}

	conv, err := NewConverter(c)
	require.NoError(t, err)
	return conv
}

func TestNewConverterRejectsInvalidCurrency(t *testing.T) {
	t.Parallel()

	c := domain.DefaultCurrency()
	c.UnitsPerMajor = 12

	_, err := NewConverter(c)
	require.ErrorIs(t, err, domain.ErrInvalidCurrency)

	c = domain.DefaultCurrency()
	c.Locale = "not a locale!"
	_, err = NewConverter(c)
	require.ErrorIs(t, err, domain.ErrInvalidCurrency)
}

func TestFormatForDisplay(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	tests := []struct {
		name     string
		amount   string
		withUnit bool
		want     string
	}{
		{name: "large wallet balance", amount: "45119903750165.23", withUnit: true, want: "45,119,903,750,165.230000 ADA"},
		{name: "without unit", amount: "45119903750165.23", want: "45,119,903,750,165.230000"},
		{name: "zero", amount: "0", withUnit: true, want: "0.000000 ADA"},
		{name: "below thousand", amount: "999.5", want: "999.500000"},
		{name: "exact thousand", amount: "1000", want: "1,000.000000"},
		{name: "negative", amount: "-1234567.1", want: "-1,234,567.100000"},
		{name: "rounds half away from zero", amount: "1.0000005", want: "1.000001"},
		{name: "single lovelace", amount: "0.000001", want: "0.000001"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := conv.FormatForDisplay(decimal.RequireFromString(tc.amount), tc.withUnit)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatForDisplayGermanLocale(t *testing.T) {
	conv := newTestConverter(t, func(c *domain.Currency) { c.Locale = "de-DE" })

	got := conv.FormatForDisplay(decimal.RequireFromString("1234567.5"), true)
	assert.Equal(t, "1.234.567,500000 ADA", got)
}

func TestParseToDecimal(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty is zero", input: "", want: "0"},
		{name: "blank is zero", input: "   ", want: "0"},
		{name: "grouped", input: "1,234.56", want: "1234.56"},
		{name: "with unit label", input: "45,119,903,750,165.230000 ADA", want: "45119903750165.23"},
		{name: "beyond float precision", input: "123456789012345678901234567890.123456789", want: "123456789012345678901234567890.123456789"},
		{name: "leading point", input: ".5", want: "0.5"},
		{name: "negative", input: "-2.5", want: "-2.5"},
		{name: "surrounding whitespace", input: "  7  ", want: "7"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := conv.ParseToDecimal(tc.input)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "want %s got %s", tc.want, got)
		})
	}
}

func TestParseToDecimalRejectsMalformed(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	for _, input := range []string{"1.2.3", "abc", "1e5", "--1", "12 34", ".", "0x10", "ADA", " ADA ", ",,,", ", ADA"} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := conv.ParseToDecimal(input)
			assert.ErrorIs(t, err, domain.ErrMalformedAmount)
		})
	}
}

func TestParseToDecimalGermanLocale(t *testing.T) {
	conv := newTestConverter(t, func(c *domain.Currency) { c.Locale = "de" })

	got, err := conv.ParseToDecimal("1.234,56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", got.String())
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	for _, raw := range []string{"0", "0.000001", "1", "999999.999999", "45119903750165.23", "-17.5", "18446744073709551616.000001"} {
		raw := raw
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			want := decimal.RequireFromString(raw)

			got, err := conv.ParseToDecimal(conv.FormatForDisplay(want, false))
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "want %s got %s", want, got)

			got, err = conv.ParseToDecimal(conv.FormatForDisplay(want, true))
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "with unit: want %s got %s", want, got)
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	tests := []struct {
		input string
		want  string
	}{
		{input: "0.000001", want: "1"},
		{input: "", want: "0"},
		{input: "0.000000", want: "0"},
		{input: "1,234.567890", want: "1234567890"},
		{input: "45119903750165.230000", want: "45119903750165230000"},
		{input: "12", want: "12"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := conv.ToMinorUnits(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToMinorUnitsRejectsMalformed(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	_, err := conv.ToMinorUnits("1.2.3")
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)
	assert.ErrorContains(t, err, "more than one decimal point")

	_, err = conv.ToMinorUnits("12a")
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)

	_, err = conv.ToMinorUnits("-1.5")
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)
}

func TestTrimTrailingZeros(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	tests := map[string]string{
		"1.2300":    "1.23",
		"100":       "100",
		"1.000":     "1",
		"0.000":     "0",
		"10.010":    "10.01",
		"1,000.500": "1,000.5",
		"":          "",
	}

	for input, want := range tests {
		assert.Equal(t, want, conv.TrimTrailingZeros(input), "input %q", input)
	}
}

func TestNormalizedOperationsIgnoreLocale(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, func(c *domain.Currency) { c.Locale = "de" })

	assert.Equal(t, "1.23", conv.TrimTrailingZeros("1.2300"))
	assert.Equal(t, "1,000.5", conv.TrimTrailingZeros("1,000.500"))
	assert.Equal(t, "100", conv.TrimTrailingZeros("100"))

	digits, err := conv.ToMinorUnits("1,234.567890")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", digits)

	_, err = conv.ToMinorUnits("1.2.3")
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)
}

func TestToMinorUnitAmount(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	tests := []struct {
		input string
		want  string
	}{
		{input: "1", want: "1000000"},
		{input: "0.000001", want: "1"},
		{input: "1,234.56", want: "1234560000"},
		{input: "45119903750165.23", want: "45119903750165230000"},
		{input: "0.0000005", want: "1"},
		{input: "0.0000004", want: "0"},
		{input: "", want: "0"},
	}

	for _, tc := range tests {
		got, err := conv.ToMinorUnitAmount(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got.String(), tc.input)
	}

	_, err := conv.ToMinorUnitAmount("1..2")
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)
}

func TestFromMinorUnitAmount(t *testing.T) {
	conv := newTestConverter(t)

	minor, ok := new(big.Int).SetString("45119903750165230000", 10)
	require.True(t, ok)

	got := conv.FromMinorUnitAmount(minor)
	assert.True(t, decimal.RequireFromString("45119903750165.23").Equal(got))
	assert.Equal(t, "45,119,903,750,165.230000 ADA", conv.FormatMinorUnits(minor, true))

	assert.True(t, conv.FromMinorUnitAmount(nil).IsZero())
}

func TestValidateSendAmount(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	tests := []struct {
		name    string
		input   string
		wantErr error
		errText string
	}{
		{name: "valid", input: "12.345678"},
		{name: "max integer digits", input: "99,999,999,999"},
		{name: "zero", input: "0", wantErr: domain.ErrAmountOutOfRange, errText: "greater than zero"},
		{name: "negative", input: "-1", wantErr: domain.ErrAmountOutOfRange, errText: "greater than zero"},
		{name: "too many decimals", input: "1.0000001", wantErr: domain.ErrAmountOutOfRange, errText: "decimal places"},
		{name: "too many integer digits", input: "100000000000", wantErr: domain.ErrAmountOutOfRange, errText: "integer digits"},
		{name: "malformed", input: "1.2.3", wantErr: domain.ErrMalformedAmount},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := conv.ValidateSendAmount(tc.input)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.errText != "" {
				assert.ErrorContains(t, err, tc.errText)
			}
		})
	}
}

func TestConverterConcurrentUse(t *testing.T) {
	conv := newTestConverter(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := conv.ToMinorUnitAmount(conv.FormatForDisplay(decimal.New(int64(j), -6), true))
				assert.NoError(t, err)
				assert.Equal(t, int64(j), got.Int64())
			}
		}()
	}
	wg.Wait()
}

func TestPrinterGroupsCounts(t *testing.T) {
	conv := newTestConverter(t)

	assert.Equal(t, "20,303,585", conv.Printer().Sprintf("%d", 20303585))
}
