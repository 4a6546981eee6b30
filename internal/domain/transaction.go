package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

type TransactionType string
type TransactionState string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpend   TransactionType = "expend"
	TransactionExchange TransactionType = "exchange"

	TransactionOK      TransactionState = "ok"
	TransactionPending TransactionState = "pending"
	TransactionFailed  TransactionState = "failed"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpend, TransactionExchange:
		return true
	default:
		return false
	}
}

func (s TransactionState) Valid() bool {
	switch s {
	case TransactionOK, TransactionPending, TransactionFailed:
		return true
	default:
		return false
	}
}

type Transaction struct {
	ID    string
	Title string
	Type  TransactionType
	State TransactionState
	// Amount is a positive count of minor units; Type carries the direction.
	Amount *big.Int
	Date   time.Time
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if !t.Type.Valid() {
		return fmt.Errorf("unsupported transaction type %q", t.Type)
	}
	if !t.State.Valid() {
		return fmt.Errorf("unsupported transaction state %q", t.State)
	}
	if t.Amount == nil || t.Amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrAmountOutOfRange)
	}

	return nil
}
