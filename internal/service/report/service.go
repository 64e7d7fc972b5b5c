package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/xuri/excelize/v2"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
)

const sheetName = "Attendance"

// ReportService renders the attendance table as a downloadable workbook.
type ReportService interface {
	// BuildAttendanceWorkbook returns an XLSX file with one row per
	// (teacher, date), including teachers who have never scanned.
	BuildAttendanceWorkbook(ctx context.Context) ([]byte, string, error)
}

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	clock    clockwork.Clock
	location *time.Location
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, clock clockwork.Clock, location *time.Location) ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		clock:                clock,
		location:             location,
	}
}

// BuildAttendanceWorkbook implements ReportService.
func (s *ReportServiceImpl) BuildAttendanceWorkbook(ctx context.Context) ([]byte, string, error) {
	records, err := s.AttendanceRepository.ListRecords(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load attendance records: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := []interface{}{"Teacher ID", "Name", "Department", "Date", "Check In", "Check Out", "Working Hours"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		row := []interface{}{
			rec.TeacherID,
			rec.Name,
			rec.Department,
			orDash(rec.Date),
			orDash(rec.CheckIn),
			orDash(rec.CheckOut),
			orDash(rec.WorkingHours),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write record row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", s.clock.Now().In(s.location).Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
