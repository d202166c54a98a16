package models

import (
	"time"
)

// Now returns the current time in UTC. Ledger rows and events are
// stamped in UTC so period aggregation does not depend on server zone.
func Now() time.Time {
	return time.Now().UTC()
}
