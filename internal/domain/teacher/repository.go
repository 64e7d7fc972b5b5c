package teacher

import (
	"context"
)

// TeacherRepository defines data access methods for teacher records.
type TeacherRepository interface {
	// Create inserts a new teacher record
	Create(ctx context.Context, t Teacher) (Teacher, error)

	// GetByFingerprintID resolves a fingerprint slot to a teacher.
	// Returns ErrTeacherNotFound when the slot is unknown.
	GetByFingerprintID(ctx context.Context, fingerprintID int) (Teacher, error)
}
