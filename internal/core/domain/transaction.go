package domain

// Transaction is a movement request that applies itself to an account and,
// only when the mutation succeeded, records itself on the account's
// history. This is the single seam translating "did the mutation succeed"
// into "should this be logged": new transaction kinds define their own
// recording policy without touching account or history code.
type Transaction interface {
	Amount() int64
	Apply(acc Account, clock Clock) error
}

// Withdrawal debits an account by a fixed amount.
type Withdrawal struct {
	amount int64
}

// NewWithdrawal creates a withdrawal request for the given amount.
func NewWithdrawal(amount int64) Withdrawal {
	return Withdrawal{amount: amount}
}

// Amount returns the requested amount in centavos.
func (w Withdrawal) Amount() int64 { return w.amount }

// Apply debits the account and records the entry on success. A rejected
// withdrawal produces no entry.
func (w Withdrawal) Apply(acc Account, clock Clock) error {
	if err := acc.Withdraw(w.amount); err != nil {
		return err
	}
	acc.History().Record(EntryKindWithdrawal, w.amount, clock.Now())
	return nil
}

// Deposit credits an account by a fixed amount.
type Deposit struct {
	amount int64
}

// NewDeposit creates a deposit request for the given amount.
func NewDeposit(amount int64) Deposit {
	return Deposit{amount: amount}
}

// Amount returns the requested amount in centavos.
func (d Deposit) Amount() int64 { return d.amount }

// Apply credits the account and records the entry on success. A rejected
// deposit produces no entry.
func (d Deposit) Apply(acc Account, clock Clock) error {
	if err := acc.Deposit(d.amount); err != nil {
		return err
	}
	acc.History().Record(EntryKindDeposit, d.amount, clock.Now())
	return nil
}
