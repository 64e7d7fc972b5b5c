package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/scanpoint/attendance-backend-go/internal/domain/teacher"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/database"
)

type teacherRepository struct {
	db *database.DB
}

func NewTeacherRepository(db *database.DB) teacher.TeacherRepository {
	return &teacherRepository{db: db}
}

// Create implements teacher.TeacherRepository.
func (t *teacherRepository) Create(ctx context.Context, newTeacher teacher.Teacher) (teacher.Teacher, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO teachers (id, name, department, fingerprint_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newTeacher.ID,
		newTeacher.Name,
		newTeacher.Department,
		newTeacher.FingerprintID,
	).Scan(&newTeacher.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return teacher.Teacher{}, teacher.ErrFingerprintAlreadyRegistered
		}
		return teacher.Teacher{}, fmt.Errorf("failed to create teacher: %w", err)
	}

	return newTeacher, nil
}

// GetByFingerprintID implements teacher.TeacherRepository.
func (t *teacherRepository) GetByFingerprintID(ctx context.Context, fingerprintID int) (teacher.Teacher, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, name, department, fingerprint_id, created_at
		FROM teachers
		WHERE fingerprint_id = $1
		LIMIT 1
	`

	var tc teacher.Teacher
	err := q.QueryRow(ctx, query, fingerprintID).Scan(
		&tc.ID, &tc.Name, &tc.Department, &tc.FingerprintID, &tc.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, fmt.Errorf("failed to get teacher by fingerprint: %w", err)
	}

	return tc, nil
}
