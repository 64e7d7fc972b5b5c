package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/sysmode"
	"github.com/scanpoint/attendance-backend-go/internal/domain/teacher"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/database"
	"github.com/scanpoint/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	teacher.TeacherRepository
	sysmode.ModeRepository
	clock    clockwork.Clock
	location *time.Location
	cooldown time.Duration
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	teacherRepo teacher.TeacherRepository,
	modeRepo sysmode.ModeRepository,
	clock clockwork.Clock,
	location *time.Location,
	cooldown time.Duration,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		TeacherRepository:    teacherRepo,
		ModeRepository:       modeRepo,
		clock:                clock,
		location:             location,
		cooldown:             cooldown,
	}
}

// Scan implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Scan(ctx context.Context, req attendance.ScanRequest) (attendance.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ScanResponse{}, err
	}

	// The server clock is authoritative; the sensor's clock is ignored.
	now := a.clock.Now().In(a.location)
	date := now.Format(attendance.DateLayout)
	serverTime := now.Format(time.RFC3339)

	setting, err := a.ModeRepository.Get(ctx)
	if err != nil {
		return attendance.ScanResponse{}, fmt.Errorf("failed to get system mode: %w", err)
	}
	if setting.Mode != sysmode.ModeAttendance {
		return attendance.ScanResponse{}, fmt.Errorf("system is in %s mode: %w", setting.Mode, sysmode.ErrModeConflict)
	}

	tc, err := a.TeacherRepository.GetByFingerprintID(ctx, *req.FingerprintID)
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	info := &attendance.TeacherInfo{Name: tc.Name, Department: tc.Department}

	// The decision and its mutation run under a row lock so two scans
	// racing on the same (teacher, date) serialize.
	var decision attendance.Decision
	var rec *attendance.DayRecord
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		rec, err = a.AttendanceRepository.GetDayForUpdate(txCtx, tc.ID, date)
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}

		decision = attendance.Decide(rec, now, a.cooldown)

		switch decision.Action {
		case attendance.ActionCheckIn:
			return a.AttendanceRepository.PutCheckIn(txCtx, tc.ID, date, decision.CheckIn)
		case attendance.ActionCheckOut:
			return a.AttendanceRepository.PutCheckOut(txCtx, tc.ID, date, decision.CheckOut, decision.WorkingHours)
		case attendance.ActionInvalid:
			return attendance.ErrInvalidState
		default:
			// Cooldown and completed-day rejections mutate nothing.
			return nil
		}
	})
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	resp := attendance.ScanResponse{
		Action:     decision.Action,
		Teacher:    info,
		ServerTime: serverTime,
	}

	switch decision.Action {
	case attendance.ActionCheckIn:
		resp.Message = "Checked in successfully"
		resp.CheckIn = &decision.CheckIn

	case attendance.ActionCheckOut:
		resp.Message = "Checked out successfully"
		resp.CheckIn = rec.CheckIn
		resp.CheckOut = &decision.CheckOut
		resp.WorkingHours = &decision.WorkingHours

	case attendance.ActionCooldown:
		resp.Message = fmt.Sprintf("Please try again after %d minute(s)", decision.RemainingMinutes)
		resp.CheckIn = rec.CheckIn
		resp.RemainingMinutes = &decision.RemainingMinutes

	case attendance.ActionCompleted:
		resp.Message = "Attendance already completed for today"
		resp.CheckIn = rec.CheckIn
		resp.CheckOut = rec.CheckOut
		resp.WorkingHours = rec.WorkingHours
	}

	return resp, nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context) (attendance.ListRecordsResponse, error) {
	records, err := a.AttendanceRepository.ListRecords(ctx)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list records: %w", err)
	}

	if records == nil {
		records = []attendance.Record{}
	}

	return attendance.ListRecordsResponse{Records: records}, nil
}
