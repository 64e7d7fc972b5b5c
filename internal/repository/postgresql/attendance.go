package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const dayColumns = `
	teacher_id, to_char(date, 'YYYY-MM-DD'), check_in, check_out, working_hours,
	created_at, updated_at
`

func scanDay(row pgx.Row) (*attendance.DayRecord, error) {
	var rec attendance.DayRecord
	err := row.Scan(
		&rec.TeacherID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.WorkingHours,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan attendance day: %w", err)
	}

	return &rec, nil
}

// GetDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetDay(ctx context.Context, teacherID, date string) (*attendance.DayRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + dayColumns + `
		FROM attendance_days
		WHERE teacher_id = $1
		  AND date = $2
		LIMIT 1
	`

	return scanDay(q.QueryRow(ctx, query, teacherID, date))
}

// GetDayForUpdate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetDayForUpdate(ctx context.Context, teacherID, date string) (*attendance.DayRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + dayColumns + `
		FROM attendance_days
		WHERE teacher_id = $1
		  AND date = $2
		LIMIT 1
		FOR UPDATE
	`

	return scanDay(q.QueryRow(ctx, query, teacherID, date))
}

// PutCheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) PutCheckIn(ctx context.Context, teacherID, date, checkIn string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_days (teacher_id, date, check_in)
		VALUES ($1, $2, $3)
		ON CONFLICT (teacher_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, teacherID, date, checkIn)
	if err != nil {
		return fmt.Errorf("failed to create check-in: %w", err)
	}

	// A lost insert means another scan won the race for this day.
	if tag.RowsAffected() == 0 {
		return attendance.ErrInvalidState
	}

	return nil
}

// PutCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) PutCheckOut(ctx context.Context, teacherID, date, checkOut, workingHours string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_days
		SET check_out = $3,
		    working_hours = $4,
		    updated_at = NOW()
		WHERE teacher_id = $1
		  AND date = $2
		  AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, teacherID, date, checkOut, workingHours)
	if err != nil {
		return fmt.Errorf("failed to create check-out: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrInvalidState
	}

	return nil
}

// ListRecords implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRecords(ctx context.Context) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT t.id, t.name, t.department,
		       to_char(d.date, 'YYYY-MM-DD'), d.check_in, d.check_out, d.working_hours
		FROM teachers t
		LEFT JOIN attendance_days d ON d.teacher_id = t.id
		ORDER BY t.name, d.date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.TeacherID, &rec.Name, &rec.Department,
			&rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.WorkingHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
