package service

import (
	"errors"

	"bank-ledger/internal/core/domain"
	"bank-ledger/pkg/apperror"
)

// toAppError translates domain rejections into their API error codes.
// AppErrors pass through; anything else is an internal fault.
func toAppError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return apperror.ErrInvalidAmount()
	case errors.Is(err, domain.ErrInsufficientFunds):
		return apperror.ErrInsufficientFunds()
	case errors.Is(err, domain.ErrWithdrawalCeilingExceeded):
		return apperror.ErrWithdrawalCeilingExceeded()
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return apperror.ErrWithdrawalLimitExceeded()
	case errors.Is(err, domain.ErrAccountNotOwned):
		return apperror.ErrAccountNotOwned()
	default:
		return apperror.InternalError(err)
	}
}
