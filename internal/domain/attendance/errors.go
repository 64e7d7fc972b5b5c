package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidState = errors.New("invalid attendance state")
)
