package domain

import "errors"

var (
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrWalletExists     = errors.New("wallet already exists")
	ErrConditionTimeout = errors.New("condition not met in time")
	ErrMalformedAmount  = errors.New("malformed amount")
	ErrAmountOutOfRange = errors.New("amount out of range")
	ErrInvalidCurrency  = errors.New("invalid currency configuration")
)
