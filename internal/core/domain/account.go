package domain

// BranchCode is the single branch this ledger operates. Account numbers are
// unique within it and assigned sequentially by the registry.
const BranchCode = "0001"

// Default limits for checking accounts, in centavos.
const (
	DefaultWithdrawalCeiling int64 = 50000 // 500.00 per withdrawal
	DefaultMaxWithdrawals          = 3     // lifetime cap, no period reset
)

// Account is the balance-holding capability. Deposit and Withdraw are pure
// validator+mutator primitives: they never write to the History. Recording
// belongs to the Transaction layer, so account variants can extend
// validation without owning logging policy.
type Account interface {
	Number() int64
	Branch() string
	Owner() *Customer
	Balance() int64
	History() *History
	Deposit(amount int64) error
	Withdraw(amount int64) error
}

// BaseAccount is the plain variant: sign and sufficiency checks only.
// The balance never goes negative and only mutates through the two
// primitives.
type BaseAccount struct {
	number  int64
	owner   *Customer
	balance int64
	history *History
}

// NewBaseAccount creates an account with zero balance and an empty history.
func NewBaseAccount(number int64, owner *Customer) *BaseAccount {
	return &BaseAccount{
		number:  number,
		owner:   owner,
		history: NewHistory(),
	}
}

func (a *BaseAccount) Number() int64     { return a.number }
func (a *BaseAccount) Branch() string    { return BranchCode }
func (a *BaseAccount) Owner() *Customer  { return a.owner }
func (a *BaseAccount) Balance() int64    { return a.balance }
func (a *BaseAccount) History() *History { return a.history }

// Deposit credits the balance. Non-positive amounts are rejected with no
// side effect.
func (a *BaseAccount) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.balance += amount
	return nil
}

// Withdraw debits the balance. Non-positive amounts and amounts above the
// current balance are rejected with no side effect.
func (a *BaseAccount) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	a.balance -= amount
	return nil
}

// CheckingAccount wraps a BaseAccount's withdraw with a per-transaction
// ceiling and a withdrawal-count cap. The cap counts WITHDRAWAL entries
// already recorded in the history, so only successful withdrawals consume
// it. The cap is a lifetime cap: there is no period reset.
//
// Check order is fixed and observable through the rejection returned:
// ceiling first, then count, then the base sign/sufficiency checks.
type CheckingAccount struct {
	base           *BaseAccount
	ceiling        int64
	maxWithdrawals int
}

// NewCheckingAccount creates a checking account with zero balance.
// Non-positive limits fall back to the defaults.
func NewCheckingAccount(number int64, owner *Customer, ceiling int64, maxWithdrawals int) *CheckingAccount {
	if ceiling <= 0 {
		ceiling = DefaultWithdrawalCeiling
	}
	if maxWithdrawals <= 0 {
		maxWithdrawals = DefaultMaxWithdrawals
	}
	return &CheckingAccount{
		base:           NewBaseAccount(number, owner),
		ceiling:        ceiling,
		maxWithdrawals: maxWithdrawals,
	}
}

func (a *CheckingAccount) Number() int64     { return a.base.Number() }
func (a *CheckingAccount) Branch() string    { return a.base.Branch() }
func (a *CheckingAccount) Owner() *Customer  { return a.base.Owner() }
func (a *CheckingAccount) Balance() int64    { return a.base.Balance() }
func (a *CheckingAccount) History() *History { return a.base.History() }

// WithdrawalCeiling returns the per-transaction ceiling in centavos.
func (a *CheckingAccount) WithdrawalCeiling() int64 { return a.ceiling }

// MaxWithdrawals returns the lifetime withdrawal cap.
func (a *CheckingAccount) MaxWithdrawals() int { return a.maxWithdrawals }

// Deposit delegates to the base primitive; deposits carry no extra rules.
func (a *CheckingAccount) Deposit(amount int64) error {
	return a.base.Deposit(amount)
}

// Withdraw applies the checking-account gates, then delegates to the base
// primitive which re-validates sign and sufficiency.
func (a *CheckingAccount) Withdraw(amount int64) error {
	if amount > a.ceiling {
		return ErrWithdrawalCeilingExceeded
	}
	if a.base.History().Count(EntryKindWithdrawal) >= a.maxWithdrawals {
		return ErrWithdrawalLimitExceeded
	}
	return a.base.Withdraw(amount)
}
