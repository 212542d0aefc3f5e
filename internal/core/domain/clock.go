package domain

import "time"

// Clock supplies the recording timestamp for history entries. It is
// consulted at every recording, never captured once and reused.
type Clock interface {
	Now() time.Time
}
