package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/managejob/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type refreshSessionRepository struct {
	db *sqlx.DB
}

func newRefreshSessionRepository(db *sqlx.DB) *refreshSessionRepository {
	return &refreshSessionRepository{
		db: db,
	}
}

func (r *refreshSessionRepository) Create(ctx context.Context, session *domain.RefreshSession) error {
	const query = `
	INSERT INTO refresh_sessions (id, user_id, refresh_token, user_agent, ip, expires_in)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.RefreshToken,
		session.UserAgent,
		session.IP,
		session.ExpiresIn,
	)
	if err != nil {
		return fmt.Errorf("db insert refresh session: %w", err)
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

func (r *refreshSessionRepository) GetByToken(ctx context.Context, token uuid.UUID) (*domain.RefreshSession, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, bin_to_uuid(user_id) as user_id, bin_to_uuid(refresh_token) as refresh_token, user_agent, ip, expires_in
	FROM refresh_sessions
	WHERE refresh_token = uuid_to_bin(?)
	`

	var session domain.RefreshSession
	if err := r.db.GetContext(ctx, &session, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select refresh session failed: %w", err)
	}

	return &session, nil
}

func (r *refreshSessionRepository) DeleteByToken(ctx context.Context, token uuid.UUID) error {
	const query = `DELETE FROM refresh_sessions WHERE refresh_token = uuid_to_bin(?)`

	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("delete refresh session failed: %w", err)
	}

	return nil
}
