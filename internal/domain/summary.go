package domain

import "math/big"

// Summary is the wallet overview: settled balance plus pending movements,
// all in minor units.
type Summary struct {
	Balance              *big.Int
	PendingIncoming      *big.Int
	PendingOutgoing      *big.Int
	PendingTotal         *big.Int
	NumberOfTransactions int
}

// Summarize folds the wallet's transactions. Settled income adds to the
// balance and settled expenditure subtracts from it; exchange and failed
// entries leave it untouched.
func (w Wallet) Summarize() Summary {
	s := Summary{
		Balance:              new(big.Int),
		PendingIncoming:      new(big.Int),
		PendingOutgoing:      new(big.Int),
		PendingTotal:         new(big.Int),
		NumberOfTransactions: len(w.Transactions),
	}

	for _, tx := range w.Transactions {
		if tx.Amount == nil {
			continue
		}

		switch tx.State {
		case TransactionOK:
			switch tx.Type {
			case TransactionIncome:
				s.Balance.Add(s.Balance, tx.Amount)
			case TransactionExpend:
				s.Balance.Sub(s.Balance, tx.Amount)
			}
		case TransactionPending:
			switch tx.Type {
			case TransactionIncome:
				s.PendingIncoming.Add(s.PendingIncoming, tx.Amount)
			case TransactionExpend:
				s.PendingOutgoing.Add(s.PendingOutgoing, tx.Amount)
			}
		}
	}

	s.PendingTotal.Add(s.PendingIncoming, s.PendingOutgoing)

	return s
}
