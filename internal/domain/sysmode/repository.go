package sysmode

import (
	"context"
)

// ModeRepository stores the single system-wide mode setting. Get is read
// before every registration and every scan.
type ModeRepository interface {
	// Get returns the current setting, falling back to DefaultMode when
	// the row has never been written.
	Get(ctx context.Context) (Setting, error)

	// Set overwrites the mode and stamps UpdatedAt.
	Set(ctx context.Context, mode Mode) (Setting, error)
}
