package service

import (
	"context"
	"fmt"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService. Every mutation runs
// under the registry's per-account lock so one mutation is in flight per
// account number at a time.
type LedgerServiceImpl struct {
	registry  ports.CustomerRegistry
	locker    ports.AccountLocker
	validator ports.IDValidator
	clock     domain.Clock
	log       zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl. A nil clock falls back
// to the system clock.
func NewLedgerService(
	registry ports.CustomerRegistry,
	locker ports.AccountLocker,
	validator ports.IDValidator,
	clock domain.Clock,
	log zerolog.Logger,
) *LedgerServiceImpl {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &LedgerServiceImpl{
		registry:  registry,
		locker:    locker,
		validator: validator,
		clock:     clock,
		log:       log,
	}
}

// Deposit credits an account on behalf of its owner.
func (s *LedgerServiceImpl) Deposit(ctx context.Context, req ports.MovementRequest) (*ports.MovementResult, error) {
	return s.execute(ctx, req, domain.EntryKindDeposit)
}

// Withdraw debits an account on behalf of its owner, subject to the
// account's withdrawal rules.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, req ports.MovementRequest) (*ports.MovementResult, error) {
	return s.execute(ctx, req, domain.EntryKindWithdrawal)
}

func (s *LedgerServiceImpl) execute(ctx context.Context, req ports.MovementRequest, kind domain.EntryKind) (*ports.MovementResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	customer, acc, err := s.resolve(ctx, req.CPF, req.AccountNumber)
	if err != nil {
		return nil, err
	}

	var tx domain.Transaction
	if kind == domain.EntryKindWithdrawal {
		tx = domain.NewWithdrawal(req.Amount)
	} else {
		tx = domain.NewDeposit(req.Amount)
	}

	var result *ports.MovementResult
	err = s.locker.WithAccountLock(ctx, req.AccountNumber, func() error {
		if err := customer.Execute(acc, tx, s.clock); err != nil {
			return err
		}
		entries := acc.History().Entries()
		result = &ports.MovementResult{
			AccountNumber: acc.Number(),
			Kind:          kind,
			Amount:        req.Amount,
			Balance:       acc.Balance(),
			RecordedAt:    entries[len(entries)-1].RecordedAt,
		}
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	s.log.Info().
		Int64("account", acc.Number()).
		Str("kind", string(kind)).
		Int64("amount", req.Amount).
		Int64("balance", result.Balance).
		Msg("movement applied")

	return result, nil
}

// Statement returns the account position and full history for its owner.
func (s *LedgerServiceImpl) Statement(ctx context.Context, req ports.StatementRequest) (*ports.Statement, error) {
	customer, acc, err := s.resolve(ctx, req.CPF, req.AccountNumber)
	if err != nil {
		return nil, err
	}

	var stmt *ports.Statement
	err = s.locker.WithAccountLock(ctx, req.AccountNumber, func() error {
		if !customer.Owns(acc) {
			return domain.ErrAccountNotOwned
		}
		stmt = &ports.Statement{
			AccountNumber: acc.Number(),
			Branch:        acc.Branch(),
			OwnerName:     customer.Name,
			Balance:       acc.Balance(),
			Entries:       acc.History().Entries(),
		}
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	return stmt, nil
}

// ListAccounts returns summaries of every account in creation order.
func (s *LedgerServiceImpl) ListAccounts(ctx context.Context) ([]ports.AccountSummary, error) {
	accounts, err := s.registry.ListAccounts(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list accounts: %w", err))
	}

	summaries := make([]ports.AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		// Snapshot each balance under the account's mutation lock so a
		// listing concurrent with a movement reads a settled value.
		var summary ports.AccountSummary
		err := s.locker.WithAccountLock(ctx, acc.Number(), func() error {
			summary = ports.AccountSummary{
				Branch:    acc.Branch(),
				Number:    acc.Number(),
				OwnerName: acc.Owner().Name,
				Balance:   acc.Balance(),
			}
			if checking, ok := acc.(*domain.CheckingAccount); ok {
				ceiling := checking.WithdrawalCeiling()
				summary.WithdrawalCeiling = &ceiling
			}
			return nil
		})
		if err != nil {
			return nil, toAppError(err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// resolve gates the CPF, then looks up the acting customer and the target
// account.
func (s *LedgerServiceImpl) resolve(ctx context.Context, rawCPF string, number int64) (*domain.Customer, domain.Account, error) {
	cpf := s.validator.Normalize(rawCPF)
	if !s.validator.IsValid(cpf) {
		return nil, nil, apperror.ErrInvalidNationalID()
	}

	customer, err := s.registry.GetCustomerByCPF(ctx, cpf)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lookup customer: %w", err))
	}
	if customer == nil {
		return nil, nil, apperror.ErrNotFound("customer")
	}

	acc, err := s.registry.GetAccount(ctx, number)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lookup account: %w", err))
	}
	if acc == nil {
		return nil, nil, apperror.ErrNotFound("account")
	}

	return customer, acc, nil
}
