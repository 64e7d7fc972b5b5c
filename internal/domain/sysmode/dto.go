package sysmode

import (
	"github.com/scanpoint/attendance-backend-go/internal/pkg/validator"
)

type SetModeRequest struct {
	Mode string `json:"mode"`
}

func (r *SetModeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Mode) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode is required",
		})
	} else if !Mode(r.Mode).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be \"register\" or \"attendance\"",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ModeResponse struct {
	Mode       string `json:"mode"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	ServerTime string `json:"server_time"`
}
