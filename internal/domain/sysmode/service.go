package sysmode

import (
	"context"
)

// ModeService reads and switches the system mode.
type ModeService interface {
	Get(ctx context.Context) (ModeResponse, error)
	Set(ctx context.Context, req SetModeRequest) (ModeResponse, error)
}
