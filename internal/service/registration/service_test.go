package registration

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanpoint/attendance-backend-go/internal/domain/sysmode"
	"github.com/scanpoint/attendance-backend-go/internal/domain/teacher"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/pending"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/validator"
)

type fakeModeRepo struct {
	mode sysmode.Mode
}

func (f *fakeModeRepo) Get(ctx context.Context) (sysmode.Setting, error) {
	return sysmode.Setting{Mode: f.mode, UpdatedAt: time.Now()}, nil
}

func (f *fakeModeRepo) Set(ctx context.Context, mode sysmode.Mode) (sysmode.Setting, error) {
	f.mode = mode
	return sysmode.Setting{Mode: mode, UpdatedAt: time.Now()}, nil
}

type fakeTeacherRepo struct {
	byFingerprint map[int]teacher.Teacher
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{byFingerprint: make(map[int]teacher.Teacher)}
}

func (f *fakeTeacherRepo) Create(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	if _, ok := f.byFingerprint[t.FingerprintID]; ok {
		return teacher.Teacher{}, teacher.ErrFingerprintAlreadyRegistered
	}
	f.byFingerprint[t.FingerprintID] = t
	return t, nil
}

func (f *fakeTeacherRepo) GetByFingerprintID(ctx context.Context, fingerprintID int) (teacher.Teacher, error) {
	t, ok := f.byFingerprint[fingerprintID]
	if !ok {
		return teacher.Teacher{}, teacher.ErrTeacherNotFound
	}
	return t, nil
}

func intPtr(v int) *int {
	return &v
}

var testNow = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

func newTestService(mode sysmode.Mode) (teacher.RegistrationService, *fakeTeacherRepo, *pending.Slot) {
	teacherRepo := newFakeTeacherRepo()
	slot := pending.NewSlot()
	svc := NewRegistrationService(teacherRepo, &fakeModeRepo{mode: mode}, slot, clockwork.NewFakeClockAt(testNow))
	return svc, teacherRepo, slot
}

func TestRegistrationService_Register_Success(t *testing.T) {
	ctx := context.Background()
	svc, repo, slot := newTestService(sysmode.ModeRegister)
	slot.Set(42, testNow)

	resp, err := svc.Register(ctx, teacher.RegisterTeacherRequest{
		Name:          "Ayesha Rahman",
		Department:    "Mathematics",
		FingerprintID: intPtr(42),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.TeacherID)
	assert.Equal(t, "Ayesha Rahman", resp.Name)
	assert.Equal(t, "Mathematics", resp.Department)
	assert.Equal(t, 42, resp.FingerprintID)

	stored, err := repo.GetByFingerprintID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, resp.TeacherID, stored.ID)

	_, ok := slot.Get()
	assert.False(t, ok, "pending slot should be cleared after registration")
}

func TestRegistrationService_Register_WrongMode(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(sysmode.ModeAttendance)

	_, err := svc.Register(ctx, teacher.RegisterTeacherRequest{
		Name:          "Ayesha Rahman",
		Department:    "Mathematics",
		FingerprintID: intPtr(42),
	})

	assert.ErrorIs(t, err, sysmode.ErrModeConflict)
}

func TestRegistrationService_Register_DuplicateFingerprint(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(sysmode.ModeRegister)

	req := teacher.RegisterTeacherRequest{
		Name:          "Ayesha Rahman",
		Department:    "Mathematics",
		FingerprintID: intPtr(42),
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	req.Name = "Someone Else"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, teacher.ErrFingerprintAlreadyRegistered)
}

func TestRegistrationService_Register_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(sysmode.ModeRegister)

	_, err := svc.Register(ctx, teacher.RegisterTeacherRequest{FingerprintID: intPtr(-1)})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "name")
	assert.Contains(t, m, "department")
	assert.Contains(t, m, "fingerprint_id")
}

func TestRegistrationService_StashFingerprint(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(sysmode.ModeRegister)

	require.NoError(t, svc.StashFingerprint(ctx, 42))

	fp, ok := svc.LatestFingerprint(ctx)
	require.True(t, ok)
	assert.Equal(t, 42, fp.FingerprintID)
	assert.Equal(t, testNow, fp.ScannedAt)
}

func TestRegistrationService_StashFingerprint_WrongMode(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(sysmode.ModeAttendance)

	err := svc.StashFingerprint(ctx, 42)
	assert.ErrorIs(t, err, sysmode.ErrModeConflict)

	_, ok := svc.LatestFingerprint(ctx)
	assert.False(t, ok)
}

func TestRegistrationService_StashFingerprint_AlreadyRegistered(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(sysmode.ModeRegister)

	_, err := repo.Create(ctx, teacher.Teacher{ID: "t-1", Name: "Existing", FingerprintID: 42})
	require.NoError(t, err)

	err = svc.StashFingerprint(ctx, 42)
	assert.ErrorIs(t, err, teacher.ErrFingerprintAlreadyRegistered)
}

func TestRegistrationService_ClearFingerprint(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(sysmode.ModeRegister)

	require.NoError(t, svc.StashFingerprint(ctx, 42))
	svc.ClearFingerprint(ctx)

	_, ok := svc.LatestFingerprint(ctx)
	assert.False(t, ok)
}
