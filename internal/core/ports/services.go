package ports

import (
	"context"
	"time"

	"bank-ledger/internal/core/domain"
)

// CustomerService covers customer registration and account opening.
type CustomerService interface {
	Register(ctx context.Context, req RegisterCustomerRequest) (*domain.Customer, error)
	OpenAccount(ctx context.Context, req OpenAccountRequest) (domain.Account, error)
}

// RegisterCustomerRequest holds validated input for customer registration.
type RegisterCustomerRequest struct {
	Name      string
	BirthDate string // dd-mm-yyyy
	CPF       string // may carry mask characters
	Address   string
}

// OpenAccountRequest holds validated input for opening an account.
type OpenAccountRequest struct {
	CPF string
}

// LedgerService covers balance movements and account reporting.
type LedgerService interface {
	Deposit(ctx context.Context, req MovementRequest) (*MovementResult, error)
	Withdraw(ctx context.Context, req MovementRequest) (*MovementResult, error)
	Statement(ctx context.Context, req StatementRequest) (*Statement, error)
	ListAccounts(ctx context.Context) ([]AccountSummary, error)
}

// MovementRequest holds validated input for a deposit or withdrawal.
type MovementRequest struct {
	CPF           string
	AccountNumber int64
	Amount        int64 // centavos
}

// MovementResult reports the applied movement and the resulting position.
type MovementResult struct {
	AccountNumber int64
	Kind          domain.EntryKind
	Amount        int64
	Balance       int64
	RecordedAt    time.Time
}

// StatementRequest identifies the account whose history is requested.
type StatementRequest struct {
	CPF           string
	AccountNumber int64
}

// Statement is the account position plus its full movement log.
type Statement struct {
	AccountNumber int64
	Branch        string
	OwnerName     string
	Balance       int64
	Entries       []domain.Entry
}

// AccountSummary is the listing shape: branch, number, owner, balance and,
// for checking accounts, the withdrawal ceiling.
type AccountSummary struct {
	Branch            string
	Number            int64
	OwnerName         string
	Balance           int64
	WithdrawalCeiling *int64
}
