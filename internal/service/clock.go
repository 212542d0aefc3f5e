package service

import (
	"time"

	"bank-ledger/internal/core/domain"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// NewSystemClock returns a clock backed by the wall clock in UTC.
func NewSystemClock() domain.Clock { return systemClock{} }
