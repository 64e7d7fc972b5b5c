package teacher

import (
	"github.com/scanpoint/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// TEACHER DTOs
// ========================================

type RegisterTeacherRequest struct {
	Name          string `json:"name"`
	Department    string `json:"department"`
	FingerprintID *int   `json:"fingerprint_id"`
}

func (r *RegisterTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if r.FingerprintID == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "fingerprint_id",
			Message: "fingerprint_id is required",
		})
	} else if *r.FingerprintID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "fingerprint_id",
			Message: "fingerprint_id must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterTeacherResponse struct {
	TeacherID     string `json:"teacher_id"`
	Name          string `json:"name"`
	Department    string `json:"department"`
	FingerprintID int    `json:"fingerprint_id"`
}

// PendingFingerprintResponse is what the registration form sees when it
// polls for a scanned print.
type PendingFingerprintResponse struct {
	Status        string `json:"status"` // "waiting" or "ready"
	FingerprintID *int   `json:"fingerprint_id,omitempty"`
	ScannedAt     string `json:"scanned_at,omitempty"`
}
