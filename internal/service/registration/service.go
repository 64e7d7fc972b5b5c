package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/scanpoint/attendance-backend-go/internal/domain/sysmode"
	"github.com/scanpoint/attendance-backend-go/internal/domain/teacher"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/pending"
)

type RegistrationServiceImpl struct {
	teacher.TeacherRepository
	sysmode.ModeRepository
	slot  *pending.Slot
	clock clockwork.Clock
}

func NewRegistrationService(
	teacherRepo teacher.TeacherRepository,
	modeRepo sysmode.ModeRepository,
	slot *pending.Slot,
	clock clockwork.Clock,
) teacher.RegistrationService {
	return &RegistrationServiceImpl{
		TeacherRepository: teacherRepo,
		ModeRepository:    modeRepo,
		slot:              slot,
		clock:             clock,
	}
}

func (r *RegistrationServiceImpl) requireRegisterMode(ctx context.Context) error {
	setting, err := r.ModeRepository.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get system mode: %w", err)
	}
	if setting.Mode != sysmode.ModeRegister {
		return fmt.Errorf("system is in %s mode: %w", setting.Mode, sysmode.ErrModeConflict)
	}
	return nil
}

// Register implements teacher.RegistrationService.
func (r *RegistrationServiceImpl) Register(ctx context.Context, req teacher.RegisterTeacherRequest) (teacher.RegisterTeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.RegisterTeacherResponse{}, err
	}

	if err := r.requireRegisterMode(ctx); err != nil {
		return teacher.RegisterTeacherResponse{}, err
	}

	// Checked up front for a clean error; the unique constraint on
	// fingerprint_id still catches a race on Create.
	_, err := r.TeacherRepository.GetByFingerprintID(ctx, *req.FingerprintID)
	if err == nil {
		return teacher.RegisterTeacherResponse{}, teacher.ErrFingerprintAlreadyRegistered
	}
	if !errors.Is(err, teacher.ErrTeacherNotFound) {
		return teacher.RegisterTeacherResponse{}, fmt.Errorf("failed to check fingerprint: %w", err)
	}

	created, err := r.TeacherRepository.Create(ctx, teacher.Teacher{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Department:    req.Department,
		FingerprintID: *req.FingerprintID,
	})
	if err != nil {
		return teacher.RegisterTeacherResponse{}, err
	}

	// The scanned print has found its owner.
	r.slot.Clear()

	return teacher.RegisterTeacherResponse{
		TeacherID:     created.ID,
		Name:          created.Name,
		Department:    created.Department,
		FingerprintID: created.FingerprintID,
	}, nil
}

// StashFingerprint implements teacher.RegistrationService.
func (r *RegistrationServiceImpl) StashFingerprint(ctx context.Context, fingerprintID int) error {
	if err := r.requireRegisterMode(ctx); err != nil {
		return err
	}

	_, err := r.TeacherRepository.GetByFingerprintID(ctx, fingerprintID)
	if err == nil {
		return teacher.ErrFingerprintAlreadyRegistered
	}
	if !errors.Is(err, teacher.ErrTeacherNotFound) {
		return fmt.Errorf("failed to check fingerprint: %w", err)
	}

	r.slot.Set(fingerprintID, r.clock.Now())
	return nil
}

// LatestFingerprint implements teacher.RegistrationService.
func (r *RegistrationServiceImpl) LatestFingerprint(ctx context.Context) (teacher.PendingFingerprint, bool) {
	fp, ok := r.slot.Get()
	if !ok {
		return teacher.PendingFingerprint{}, false
	}
	return teacher.PendingFingerprint{
		FingerprintID: fp.ID,
		ScannedAt:     fp.ScannedAt,
	}, true
}

// ClearFingerprint implements teacher.RegistrationService.
func (r *RegistrationServiceImpl) ClearFingerprint(ctx context.Context) {
	r.slot.Clear()
}
