package domain

import (
	"sync"
	"time"
)

// Customer owns accounts and is the entry point for running transactions
// against them. CPF uniqueness is enforced by the registry, not here.
// Account opening and movements arrive on separate goroutines, so the
// owned set carries its own lock; per-account balance mutations are
// serialized by the registry instead.
type Customer struct {
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	CPF       string    `json:"cpf"` // digits only, mask stripped on intake
	Address   string    `json:"address"`

	mu       sync.RWMutex
	accounts []Account
}

// NewCustomer creates a customer with complete identity fields and no
// accounts.
func NewCustomer(name string, birthDate time.Time, cpf, address string) *Customer {
	return &Customer{
		Name:      name,
		BirthDate: birthDate,
		CPF:       cpf,
		Address:   address,
	}
}

// AddAccount appends to the owned set. Number uniqueness is the registry's
// concern.
func (c *Customer) AddAccount(acc Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, acc)
}

// Accounts returns the owned accounts in the order they were added.
func (c *Customer) Accounts() []Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Owns reports whether acc is one of the customer's accounts.
func (c *Customer) Owns(acc Account) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.accounts {
		if a == acc {
			return true
		}
	}
	return false
}

// Execute runs a transaction against one of the customer's accounts,
// rejecting accounts the customer does not own.
func (c *Customer) Execute(acc Account, tx Transaction, clock Clock) error {
	if !c.Owns(acc) {
		return ErrAccountNotOwned
	}
	return tx.Apply(acc, clock)
}
