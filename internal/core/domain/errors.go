package domain

import "errors"

// Business-rule rejections. These are expected outcomes, not faults: a
// rejected operation leaves the account and its history untouched and the
// caller resubmits with corrected input.
var (
	ErrInvalidAmount             = errors.New("amount must be greater than zero")
	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrWithdrawalCeilingExceeded = errors.New("withdrawal amount exceeds per-transaction ceiling")
	ErrWithdrawalLimitExceeded   = errors.New("maximum number of withdrawals reached")
	ErrAccountNotOwned           = errors.New("account does not belong to customer")
)
