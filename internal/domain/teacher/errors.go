package teacher

import "errors"

// Teacher domain errors
var (
	ErrTeacherNotFound              = errors.New("fingerprint ID is not registered")
	ErrFingerprintAlreadyRegistered = errors.New("fingerprint ID is already registered")
)
