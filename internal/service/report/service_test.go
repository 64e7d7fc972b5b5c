package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
)

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) GetDay(ctx context.Context, teacherID, date string) (*attendance.DayRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) GetDayForUpdate(ctx context.Context, teacherID, date string) (*attendance.DayRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) PutCheckIn(ctx context.Context, teacherID, date, checkIn string) error {
	return nil
}

func (f *fakeAttendanceRepo) PutCheckOut(ctx context.Context, teacherID, date, checkOut, workingHours string) error {
	return nil
}

func (f *fakeAttendanceRepo) ListRecords(ctx context.Context) ([]attendance.Record, error) {
	return f.records, nil
}

func strPtr(s string) *string {
	return &s
}

func TestBuildAttendanceWorkbook(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	records := []attendance.Record{
		{
			TeacherID:    "t-1",
			Name:         "Ayesha Rahman",
			Department:   "Mathematics",
			Date:         strPtr("2026-03-09"),
			CheckIn:      strPtr("09:00:00"),
			CheckOut:     strPtr("17:30:00"),
			WorkingHours: strPtr("8 hours 30 minutes"),
		},
		{
			TeacherID:  "t-2",
			Name:       "Kamal Hossain",
			Department: "Physics",
		},
	}

	svc := NewReportService(&fakeAttendanceRepo{records: records}, clockwork.NewFakeClockAt(now), time.UTC)

	data, filename, err := svc.BuildAttendanceWorkbook(ctx)
	require.NoError(t, err)
	assert.Equal(t, "attendance-2026-03-09.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Teacher ID", "Name", "Department", "Date", "Check In", "Check Out", "Working Hours"}, rows[0])
	assert.Equal(t, []string{"t-1", "Ayesha Rahman", "Mathematics", "2026-03-09", "09:00:00", "17:30:00", "8 hours 30 minutes"}, rows[1])
	// Teachers who never scanned still get a row, with dashes.
	assert.Equal(t, []string{"t-2", "Kamal Hossain", "Physics", "-", "-", "-", "-"}, rows[2])
}

func TestBuildAttendanceWorkbook_NoRecords(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	svc := NewReportService(&fakeAttendanceRepo{}, clockwork.NewFakeClockAt(now), time.UTC)

	data, _, err := svc.BuildAttendanceWorkbook(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
