package teacher

import (
	"time"
)

// Teacher is a registered person identified by the fingerprint slot the
// sensor assigned to their print. Name and department are set once at
// registration; the fingerprint ID is immutable.
type Teacher struct {
	ID            string
	Name          string
	Department    string
	FingerprintID int
	CreatedAt     time.Time
}
