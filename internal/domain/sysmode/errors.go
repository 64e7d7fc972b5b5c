package sysmode

import "errors"

var (
	ErrModeConflict = errors.New("operation not permitted in current mode")
	ErrInvalidMode  = errors.New("mode must be \"register\" or \"attendance\"")
)
