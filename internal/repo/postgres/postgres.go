package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/openvote/election-backend/internal/entity"
	"github.com/openvote/election-backend/internal/repo"
)

// uniqueViolation is the pq error code for unique constraint violations.
const uniqueViolation = "23505"

type Storage struct {
	db *sql.DB
}

func New(postgresURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func isUnique(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (s *Storage) SaveAdmin(ctx context.Context, firstName, lastName, email string, passHash []byte) (int64, error) {
	const op = "storage.postgres.SaveAdmin"

	query := `INSERT INTO admins (first_name, last_name, email, pass_hash) VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, firstName, lastName, email, passHash).Scan(&id)
	if err != nil {
		if isUnique(err) {
			return 0, fmt.Errorf("%s: %w", op, repo.ErrAdminExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) Admin(ctx context.Context, id int64) (entity.Admin, error) {
	const op = "storage.postgres.Admin"

	query := `SELECT id, first_name, last_name, email, pass_hash FROM admins WHERE id = $1`

	var admin entity.Admin
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&admin.ID, &admin.FirstName, &admin.LastName, &admin.Email, &admin.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Admin{}, fmt.Errorf("%s: %w", op, repo.ErrAdminNotFound)
		}
		return entity.Admin{}, fmt.Errorf("%s: %w", op, err)
	}
	return admin, nil
}

func (s *Storage) AdminByEmail(ctx context.Context, email string) (entity.Admin, error) {
	const op = "storage.postgres.AdminByEmail"

	query := `SELECT id, first_name, last_name, email, pass_hash FROM admins WHERE email = $1`

	var admin entity.Admin
	err := s.db.QueryRowContext(ctx, query, email).
		Scan(&admin.ID, &admin.FirstName, &admin.LastName, &admin.Email, &admin.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Admin{}, fmt.Errorf("%s: %w", op, repo.ErrAdminNotFound)
		}
		return entity.Admin{}, fmt.Errorf("%s: %w", op, err)
	}
	return admin, nil
}

func (s *Storage) UpdateAdminPassword(ctx context.Context, id int64, passHash []byte) error {
	const op = "storage.postgres.UpdateAdminPassword"

	res, err := s.db.ExecContext(ctx, `UPDATE admins SET pass_hash = $1 WHERE id = $2`, passHash, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrAdminNotFound)
	}
	return nil
}

func (s *Storage) SaveToken(ctx context.Context, subjectID int64, role entity.Role, token string, expiresAt time.Time) (int64, error) {
	const op = "storage.postgres.SaveToken"

	query := `INSERT INTO refresh_tokens (subject_id, role, token, expires_at) VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, subjectID, string(role), token, expiresAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) IsRefreshTokenValid(ctx context.Context, subjectID int64, role entity.Role, token string) (bool, error) {
	const op = "storage.postgres.IsRefreshTokenValid"

	query := `
		SELECT EXISTS(
			SELECT 1
			FROM refresh_tokens
			WHERE token = $1
			AND revoked = FALSE
			AND expires_at > NOW()
			AND subject_id = $2
			AND role = $3
		)`

	var isValid bool
	err := s.db.QueryRowContext(ctx, query, token, subjectID, string(role)).Scan(&isValid)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return isValid, nil
}

func (s *Storage) DeleteRefreshToken(ctx context.Context, subjectID int64, role entity.Role, token string) error {
	const op = "storage.postgres.DeleteRefreshToken"

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE token = $1 AND subject_id = $2 AND role = $3`,
		token, subjectID, string(role))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrTokenNotFound)
	}

	return nil
}
