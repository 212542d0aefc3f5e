package service

import (
	"context"
	"fmt"
	"time"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// birthDateLayout is the intake format for customer birth dates.
const birthDateLayout = "02-01-2006"

// CustomerServiceImpl implements ports.CustomerService.
type CustomerServiceImpl struct {
	registry  ports.CustomerRegistry
	validator ports.IDValidator
	ceiling   int64
	maxWdraws int
	log       zerolog.Logger
}

// NewCustomerService creates a new CustomerServiceImpl. ceiling and
// maxWithdrawals are the defaults applied to newly opened checking
// accounts.
func NewCustomerService(
	registry ports.CustomerRegistry,
	validator ports.IDValidator,
	ceiling int64,
	maxWithdrawals int,
	log zerolog.Logger,
) *CustomerServiceImpl {
	return &CustomerServiceImpl{
		registry:  registry,
		validator: validator,
		ceiling:   ceiling,
		maxWdraws: maxWithdrawals,
		log:       log,
	}
}

// Register creates a customer after the CPF gate and uniqueness check.
func (s *CustomerServiceImpl) Register(ctx context.Context, req ports.RegisterCustomerRequest) (*domain.Customer, error) {
	cpf := s.validator.Normalize(req.CPF)
	if !s.validator.IsValid(cpf) {
		return nil, apperror.ErrInvalidNationalID()
	}

	existing, err := s.registry.GetCustomerByCPF(ctx, cpf)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup customer: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrCustomerExists()
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, apperror.Validation("birth_date must be in dd-mm-yyyy format")
	}

	customer := domain.NewCustomer(req.Name, birthDate, cpf, req.Address)
	if err := s.registry.CreateCustomer(ctx, customer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create customer: %w", err))
	}

	s.log.Info().
		Str("cpf", cpf).
		Str("name", customer.Name).
		Msg("customer registered")

	return customer, nil
}

// OpenAccount opens a checking account with balance zero for an existing
// customer. The registry assigns the number sequentially.
func (s *CustomerServiceImpl) OpenAccount(ctx context.Context, req ports.OpenAccountRequest) (domain.Account, error) {
	cpf := s.validator.Normalize(req.CPF)
	if !s.validator.IsValid(cpf) {
		return nil, apperror.ErrInvalidNationalID()
	}

	customer, err := s.registry.GetCustomerByCPF(ctx, cpf)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup customer: %w", err))
	}
	if customer == nil {
		return nil, apperror.ErrNotFound("customer")
	}

	number, err := s.registry.NextAccountNumber(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("allocate account number: %w", err))
	}

	acc := domain.NewCheckingAccount(number, customer, s.ceiling, s.maxWdraws)
	if err := s.registry.AddAccount(ctx, acc); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("register account: %w", err))
	}
	customer.AddAccount(acc)

	s.log.Info().
		Int64("account", number).
		Str("cpf", cpf).
		Msg("checking account opened")

	return acc, nil
}
