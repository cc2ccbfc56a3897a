package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/managejob/backend/internal/db"
	"github.com/managejob/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

const userColumns = "bin_to_uuid(id) as id, name, email, password, role, saved_jobs, created_at, updated_at, deleted_at"

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
	INSERT INTO users (id, name, email, password, role, saved_jobs)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		user.SavedJobs,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? AND deleted_at IS NULL;`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from users by email failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByCredentials(ctx context.Context, email string, passwordHash string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? AND password = ? AND deleted_at IS NULL;`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email, passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from users by credentials failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from users by id failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) UpdateSavedJobs(ctx context.Context, id uuid.UUID, savedJobs domain.JobIDList) error {
	const query = `UPDATE users SET saved_jobs = ? WHERE id = uuid_to_bin(?);`

	// rows affected is not checked: MySQL reports 0 when the new list
	// equals the stored one, which is a valid no-op here
	if _, err := r.db.ExecContext(ctx, query, savedJobs, id); err != nil {
		return fmt.Errorf("update saved jobs failed: %w", err)
	}

	return nil
}
