package teacher

import (
	"context"
	"time"
)

// PendingFingerprint is the slot content exposed to the polling admin UI.
type PendingFingerprint struct {
	FingerprintID int
	ScannedAt     time.Time
}

// RegistrationService enrolls new teachers and manages the pending
// fingerprint hand-off between the sensor and the registration form.
type RegistrationService interface {
	// Register binds name + department + fingerprint ID into a new
	// teacher record. Register mode only; a duplicate fingerprint ID is
	// rejected without mutation.
	Register(ctx context.Context, req RegisterTeacherRequest) (RegisterTeacherResponse, error)

	// StashFingerprint stores a freshly scanned, not-yet-registered
	// fingerprint ID for the form to pick up. Register mode only.
	StashFingerprint(ctx context.Context, fingerprintID int) error

	// LatestFingerprint reports the pending slot content, if any.
	LatestFingerprint(ctx context.Context) (PendingFingerprint, bool)

	// ClearFingerprint empties the pending slot.
	ClearFingerprint(ctx context.Context)
}
