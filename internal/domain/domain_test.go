package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		currency func(c *Currency)
		wantErr  string
	}{
		{name: "default", currency: func(*Currency) {}},
		{name: "missing code", currency: func(c *Currency) { c.Code = " " }, wantErr: "code is required"},
		{name: "negative places", currency: func(c *Currency) { c.DecimalPlaces = -1 }, wantErr: "decimal places"},
		{name: "zero units", currency: func(c *Currency) { c.UnitsPerMajor = 0 }, wantErr: "must be positive"},
		{name: "not a power of ten", currency: func(c *Currency) { c.UnitsPerMajor = 1_500 }, wantErr: "not a power of ten"},
		{name: "negative integer digits", currency: func(c *Currency) { c.MaxIntegerDigits = -3 }, wantErr: "max integer digits"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := DefaultCurrency()
			tc.currency(&c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidCurrency)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestCurrencyMinorUnitExponent(t *testing.T) {
	exp, ok := Currency{UnitsPerMajor: 1_000_000}.MinorUnitExponent()
	require.True(t, ok)
	assert.Equal(t, int32(6), exp)

	exp, ok = Currency{UnitsPerMajor: 1}.MinorUnitExponent()
	require.True(t, ok)
	assert.Equal(t, int32(0), exp)

	_, ok = Currency{UnitsPerMajor: 250}.MinorUnitExponent()
	assert.False(t, ok)
}

func TestWalletSummarize(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	w := Wallet{
		ID:   "w-1",
		Name: "Savings",
		Transactions: []Transaction{
			{ID: "1", Type: TransactionIncome, State: TransactionOK, Amount: big.NewInt(5_000_000), Date: now},
			{ID: "2", Type: TransactionExpend, State: TransactionOK, Amount: big.NewInt(1_250_000), Date: now},
			{ID: "3", Type: TransactionIncome, State: TransactionPending, Amount: big.NewInt(1_000_000), Date: now},
			{ID: "4", Type: TransactionExpend, State: TransactionPending, Amount: big.NewInt(2_000_000), Date: now},
			{ID: "5", Type: TransactionIncome, State: TransactionFailed, Amount: big.NewInt(9_000_000), Date: now},
			{ID: "6", Type: TransactionExchange, State: TransactionOK, Amount: big.NewInt(7), Date: now},
		},
	}

	s := w.Summarize()

	assert.Equal(t, "3750000", s.Balance.String())
	assert.Equal(t, "1000000", s.PendingIncoming.String())
	assert.Equal(t, "2000000", s.PendingOutgoing.String())
	assert.Equal(t, "3000000", s.PendingTotal.String())
	assert.Equal(t, 6, s.NumberOfTransactions)
}

func TestWalletSummarizeEmpty(t *testing.T) {
	s := Wallet{ID: "w-1", Name: "Empty"}.Summarize()

	assert.Equal(t, 0, s.Balance.Sign())
	assert.Equal(t, 0, s.PendingTotal.Sign())
	assert.Zero(t, s.NumberOfTransactions)
}

func TestWalletValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wallet  Wallet
		wantErr string
	}{
		{name: "valid", wallet: Wallet{ID: "w-1", Name: "Main"}},
		{name: "missing id", wallet: Wallet{Name: "Main"}, wantErr: "id is required"},
		{name: "missing name", wallet: Wallet{ID: "w-1"}, wantErr: "name is required"},
		{
			name: "bad transaction type",
			wallet: Wallet{ID: "w-1", Name: "Main", Transactions: []Transaction{
				{ID: "t-1", Type: "gift", State: TransactionOK, Amount: big.NewInt(1)},
			}},
			wantErr: "unsupported transaction type",
		},
		{
			name: "zero amount",
			wallet: Wallet{ID: "w-1", Name: "Main", Transactions: []Transaction{
				{ID: "t-1", Type: TransactionIncome, State: TransactionOK, Amount: big.NewInt(0)},
			}},
			wantErr: "amount must be positive",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.wallet.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
