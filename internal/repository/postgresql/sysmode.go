package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scanpoint/attendance-backend-go/internal/domain/sysmode"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/database"
)

const modeSettingKey = "mode"

type modeRepository struct {
	db *database.DB
}

func NewModeRepository(db *database.DB) sysmode.ModeRepository {
	return &modeRepository{db: db}
}

// Get implements sysmode.ModeRepository.
func (m *modeRepository) Get(ctx context.Context) (sysmode.Setting, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT value, updated_at
		FROM system_settings
		WHERE key = $1
	`

	var setting sysmode.Setting
	err := q.QueryRow(ctx, query, modeSettingKey).Scan(&setting.Mode, &setting.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sysmode.Setting{Mode: sysmode.DefaultMode}, nil
		}
		return sysmode.Setting{}, fmt.Errorf("failed to get system mode: %w", err)
	}

	if !setting.Mode.Valid() {
		// A corrupted row falls back to the default rather than wedging
		// the whole device.
		return sysmode.Setting{Mode: sysmode.DefaultMode}, nil
	}

	return setting, nil
}

// Set implements sysmode.ModeRepository.
func (m *modeRepository) Set(ctx context.Context, mode sysmode.Mode) (sysmode.Setting, error) {
	if !mode.Valid() {
		return sysmode.Setting{}, sysmode.ErrInvalidMode
	}

	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO system_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = NOW()
		RETURNING value, updated_at
	`

	var setting sysmode.Setting
	err := q.QueryRow(ctx, query, modeSettingKey, string(mode)).Scan(&setting.Mode, &setting.UpdatedAt)
	if err != nil {
		return sysmode.Setting{}, fmt.Errorf("failed to set system mode: %w", err)
	}

	return setting, nil
}
