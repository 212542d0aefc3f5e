package memory

import (
	"context"
	"fmt"
	"sync"

	"bank-ledger/internal/core/domain"
)

// Registry is the in-memory customer and account bookkeeping collaborator.
// State lives for the process lifetime only. A single mutex guards the
// indexes; per-account mutexes serialize balance mutations so one mutation
// is in flight per account number at a time.
type Registry struct {
	mu         sync.Mutex
	customers  map[string]*domain.Customer // keyed by CPF, digits only
	accounts   map[int64]domain.Account
	order      []int64 // account numbers in creation order
	nextNumber int64

	lockMu sync.Mutex
	locks  map[int64]*sync.Mutex
}

// New creates an empty registry. Account numbers start at 1.
func New() *Registry {
	return &Registry{
		customers: make(map[string]*domain.Customer),
		accounts:  make(map[int64]domain.Account),
		locks:     make(map[int64]*sync.Mutex),
	}
}

// CreateCustomer stores a customer. The CPF must not be registered yet;
// services pre-check with GetCustomerByCPF, so a duplicate here is a fault.
func (r *Registry) CreateCustomer(_ context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[c.CPF]; exists {
		return fmt.Errorf("customer with CPF %s already registered", c.CPF)
	}
	r.customers[c.CPF] = c
	return nil
}

// GetCustomerByCPF returns the customer or nil when absent.
func (r *Registry) GetCustomerByCPF(_ context.Context, cpf string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.customers[cpf], nil
}

// NextAccountNumber allocates the next sequential account number.
func (r *Registry) NextAccountNumber(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextNumber++
	return r.nextNumber, nil
}

// AddAccount indexes an account by number.
func (r *Registry) AddAccount(_ context.Context, acc domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	number := acc.Number()
	if _, exists := r.accounts[number]; exists {
		return fmt.Errorf("account %d already registered", number)
	}
	r.accounts[number] = acc
	r.order = append(r.order, number)
	return nil
}

// GetAccount returns the account or nil when absent.
func (r *Registry) GetAccount(_ context.Context, number int64) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accounts[number], nil
}

// ListAccounts returns all accounts in creation order.
func (r *Registry) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Account, 0, len(r.order))
	for _, number := range r.order {
		out = append(out, r.accounts[number])
	}
	return out, nil
}

// WithAccountLock runs fn while holding the mutation lock for the given
// account number.
func (r *Registry) WithAccountLock(_ context.Context, number int64, fn func() error) error {
	lock := r.accountLock(number)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

func (r *Registry) accountLock(number int64) *sync.Mutex {
	r.lockMu.Lock()
	defer r.lockMu.Unlock()
	lock, ok := r.locks[number]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[number] = lock
	}
	return lock
}
