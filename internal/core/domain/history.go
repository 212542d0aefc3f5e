package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind identifies the movement recorded by a history entry.
type EntryKind string

const (
	EntryKindDeposit    EntryKind = "DEPOSIT"
	EntryKindWithdrawal EntryKind = "WITHDRAWAL"
)

// Entry is one recorded movement. Amounts are in centavos.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	Kind       EntryKind `json:"kind"`
	Amount     int64     `json:"amount"`
	RecordedAt time.Time `json:"recorded_at"`
}

// History is the append-only movement log of a single account. Entries stay
// in insertion order, which is chronological because recording happens
// synchronously after each successful mutation. Nothing is ever removed.
type History struct {
	entries []Entry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Record appends one entry. It never fails.
func (h *History) Record(kind EntryKind, amount int64, at time.Time) {
	h.entries = append(h.entries, Entry{
		ID:         uuid.New(),
		Kind:       kind,
		Amount:     amount,
		RecordedAt: at,
	})
}

// Entries returns a copy of the log in insertion order.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Count returns how many entries of the given kind have been recorded.
func (h *History) Count(kind EntryKind) int {
	n := 0
	for _, e := range h.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
