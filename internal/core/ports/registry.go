package ports

import (
	"context"

	"bank-ledger/internal/core/domain"
)

// CustomerRegistry is the bookkeeping collaborator around the core. It
// enforces CPF uniqueness, hands out sequential account numbers and indexes
// accounts for lookup. Lookup methods return nil (no error) when the entity
// is absent; errors are reserved for faults.
type CustomerRegistry interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	GetCustomerByCPF(ctx context.Context, cpf string) (*domain.Customer, error)
	NextAccountNumber(ctx context.Context) (int64, error)
	AddAccount(ctx context.Context, acc domain.Account) error
	GetAccount(ctx context.Context, number int64) (domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountLocker serializes mutating operations on one account: a single
// mutation in flight per account number. Balance and history mutation is
// not internally synchronized, so every embedding service must funnel
// writes through this.
type AccountLocker interface {
	WithAccountLock(ctx context.Context, number int64, fn func() error) error
}

// IDValidator gates customer intake on national-ID (CPF) shape. The core
// trusts it as a precondition and performs no format validation itself.
type IDValidator interface {
	// Normalize strips mask characters, keeping digits only.
	Normalize(id string) string
	// IsValid reports whether a normalized ID passes checksum validation.
	IsValid(id string) bool
}

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "redis").
	Name() string
}
