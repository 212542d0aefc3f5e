package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit_Apply_RecordsOnSuccess(t *testing.T) {
	clock := newStepClock()
	acc := NewBaseAccount(1, testCustomer())

	dep := NewDeposit(100000)
	assert.Equal(t, int64(100000), dep.Amount())

	require.NoError(t, dep.Apply(acc, clock))

	assert.Equal(t, int64(100000), acc.Balance())
	entries := acc.History().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, EntryKindDeposit, entries[0].Kind)
	assert.Equal(t, int64(100000), entries[0].Amount)
}

func TestDeposit_Apply_NoEntryOnRejection(t *testing.T) {
	clock := newStepClock()
	acc := NewBaseAccount(1, testCustomer())

	err := NewDeposit(-5000).Apply(acc, clock)

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, int64(0), acc.Balance())
	assert.Empty(t, acc.History().Entries())
}

func TestWithdrawal_Apply_RecordsOnSuccess(t *testing.T) {
	clock := newStepClock()
	acc := NewBaseAccount(1, testCustomer())
	require.NoError(t, acc.Deposit(100000))

	require.NoError(t, NewWithdrawal(40000).Apply(acc, clock))

	assert.Equal(t, int64(60000), acc.Balance())
	entries := acc.History().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, EntryKindWithdrawal, entries[0].Kind)
	assert.Equal(t, int64(40000), entries[0].Amount)
}

func TestWithdrawal_Apply_NoEntryOnRejection(t *testing.T) {
	clock := newStepClock()
	acc := NewBaseAccount(1, testCustomer())
	require.NoError(t, acc.Deposit(10000))

	err := NewWithdrawal(15000).Apply(acc, clock)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(10000), acc.Balance())
	assert.Empty(t, acc.History().Entries())
}

func TestApply_ConsultsClockPerRecording(t *testing.T) {
	// Each recording gets its own timestamp, not one captured at startup.
	clock := newStepClock()
	acc := NewBaseAccount(1, testCustomer())

	require.NoError(t, NewDeposit(1000).Apply(acc, clock))
	require.NoError(t, NewDeposit(1000).Apply(acc, clock))
	require.NoError(t, NewWithdrawal(500).Apply(acc, clock))

	entries := acc.History().Entries()
	require.Len(t, entries, 3)
	assert.True(t, entries[0].RecordedAt.Before(entries[1].RecordedAt))
	assert.True(t, entries[1].RecordedAt.Before(entries[2].RecordedAt))
}
