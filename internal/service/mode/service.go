package mode

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/scanpoint/attendance-backend-go/internal/domain/sysmode"
)

type ModeServiceImpl struct {
	sysmode.ModeRepository
	clock    clockwork.Clock
	location *time.Location
}

func NewModeService(modeRepo sysmode.ModeRepository, clock clockwork.Clock, location *time.Location) sysmode.ModeService {
	return &ModeServiceImpl{
		ModeRepository: modeRepo,
		clock:          clock,
		location:       location,
	}
}

func (m *ModeServiceImpl) serverTime() string {
	return m.clock.Now().In(m.location).Format(time.RFC3339)
}

// Get implements sysmode.ModeService.
func (m *ModeServiceImpl) Get(ctx context.Context) (sysmode.ModeResponse, error) {
	setting, err := m.ModeRepository.Get(ctx)
	if err != nil {
		return sysmode.ModeResponse{}, fmt.Errorf("failed to get system mode: %w", err)
	}

	resp := sysmode.ModeResponse{
		Mode:       string(setting.Mode),
		ServerTime: m.serverTime(),
	}
	if !setting.UpdatedAt.IsZero() {
		resp.UpdatedAt = setting.UpdatedAt.In(m.location).Format(time.RFC3339)
	}
	return resp, nil
}

// Set implements sysmode.ModeService.
func (m *ModeServiceImpl) Set(ctx context.Context, req sysmode.SetModeRequest) (sysmode.ModeResponse, error) {
	if err := req.Validate(); err != nil {
		return sysmode.ModeResponse{}, err
	}

	setting, err := m.ModeRepository.Set(ctx, sysmode.Mode(req.Mode))
	if err != nil {
		return sysmode.ModeResponse{}, fmt.Errorf("failed to set system mode: %w", err)
	}

	return sysmode.ModeResponse{
		Mode:       string(setting.Mode),
		UpdatedAt:  setting.UpdatedAt.In(m.location).Format(time.RFC3339),
		ServerTime: m.serverTime(),
	}, nil
}
