package attendance

import (
	"context"
)

// AttendanceService decides and records the outcome of fingerprint scans.
type AttendanceService interface {
	// Scan processes one fingerprint event: mode gate, teacher lookup,
	// engine decision, persistence. Rejections that are part of the
	// state machine (cooldown, completed day) come back as a
	// ScanResponse; lookup, mode, and storage problems come back as
	// errors.
	Scan(ctx context.Context, req ScanRequest) (ScanResponse, error)

	// ListRecords returns the flattened attendance table.
	ListRecords(ctx context.Context) (ListRecordsResponse, error)
}
