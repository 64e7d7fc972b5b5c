package attendance

import (
	"context"
)

// AttendanceRepository defines data access for per-day attendance records
// keyed by (teacher_id, date). The store guarantees at most one row per
// key; GetDayForUpdate plus a transaction serializes concurrent scans for
// the same teacher.
type AttendanceRepository interface {
	// GetDay retrieves the record for a teacher on a date, or nil when
	// no scan has happened yet that day.
	GetDay(ctx context.Context, teacherID, date string) (*DayRecord, error)

	// GetDayForUpdate is GetDay with a row lock; it must run inside a
	// transaction.
	GetDayForUpdate(ctx context.Context, teacherID, date string) (*DayRecord, error)

	// PutCheckIn creates the day record with only the check-in set.
	// Inserting an already-existing (teacher, date) key is a no-op
	// surfaced as ErrInvalidState, not a duplicate row.
	PutCheckIn(ctx context.Context, teacherID, date, checkIn string) error

	// PutCheckOut closes the day record with the check-out time and the
	// derived working duration.
	PutCheckOut(ctx context.Context, teacherID, date, checkOut, workingHours string) error

	// ListRecords returns one flattened row per (teacher, date), plus a
	// placeholder row for teachers with no attendance yet.
	ListRecords(ctx context.Context) ([]Record, error)
}
