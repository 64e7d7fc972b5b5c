package attendance

import (
	"github.com/scanpoint/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ScanRequest struct {
	FingerprintID *int `json:"fingerprint_id"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

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

// TeacherInfo carries the display fields shown on the device screen.
type TeacherInfo struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// ScanResponse is the structured outcome of one scan. Message is kept
// short enough for a small OLED display.
type ScanResponse struct {
	Action           Action       `json:"action"`
	Message          string       `json:"message"`
	Teacher          *TeacherInfo `json:"teacher,omitempty"`
	CheckIn          *string      `json:"check_in,omitempty"`
	CheckOut         *string      `json:"check_out,omitempty"`
	WorkingHours     *string      `json:"working_hours,omitempty"`
	RemainingMinutes *int         `json:"remaining_minutes,omitempty"`
	ServerTime       string       `json:"server_time"`
}

type ListRecordsResponse struct {
	Records []Record `json:"records"`
}
