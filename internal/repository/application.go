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

type applicationRepository struct {
	db *sqlx.DB
}

func newApplicationRepository(db *sqlx.DB) *applicationRepository {
	return &applicationRepository{
		db: db,
	}
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.JobApplication) error {
	const query = `
	INSERT INTO job_applications (user_id, job_id, status)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?);
	`

	_, err := r.db.ExecContext(ctx, query, application.UserID, application.JobID, application.Status)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert job application: %w", err)
	}

	return nil
}

func (r *applicationRepository) Exists(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) (bool, error) {
	const query = `SELECT COUNT(*) FROM job_applications WHERE user_id = uuid_to_bin(?) AND job_id = uuid_to_bin(?)`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, userID, jobID); err != nil {
		return false, fmt.Errorf("count job applications failed: %w", err)
	}

	return count > 0, nil
}

func (r *applicationRepository) ListJobIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `SELECT bin_to_uuid(job_id) as job_id FROM job_applications WHERE user_id = uuid_to_bin(?)`

	var jobIDs []uuid.UUID
	if err := r.db.SelectContext(ctx, &jobIDs, query, userID); err != nil {
		return nil, fmt.Errorf("select applied job ids failed: %w", err)
	}

	return jobIDs, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.JobApplicationDetails, error) {
	const query = `
	SELECT
		bin_to_uuid(a.user_id) as user_id,
		bin_to_uuid(a.job_id) as job_id,
		a.status,
		a.created_at,
		d.full_name as candidate_name,
		d.email as candidate_email,
		d.skills,
		d.experience,
		d.curr_role,
		d.education,
		d.resume_link,
		j.job_title,
		j.company
	FROM job_applications a
	INNER JOIN jobs j ON j.id = a.job_id
	LEFT JOIN user_details d ON d.user_id = a.user_id
	WHERE a.job_id = uuid_to_bin(?)
	ORDER BY a.created_at DESC
	`

	var applications []domain.JobApplicationDetails
	if err := r.db.SelectContext(ctx, &applications, query, jobID); err != nil {
		return nil, fmt.Errorf("select job applications failed: %w", err)
	}

	return applications, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, jobID uuid.UUID, userID uuid.UUID, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	const query = `UPDATE job_applications SET status = ? WHERE job_id = uuid_to_bin(?) AND user_id = uuid_to_bin(?)`

	result, err := r.db.ExecContext(ctx, query, status, jobID, userID)
	if err != nil {
		return nil, fmt.Errorf("update application status failed: %w", err)
	}

	if _, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("rows affected failed: %w", err)
	}

	return r.getOne(ctx, jobID, userID)
}

func (r *applicationRepository) getOne(ctx context.Context, jobID uuid.UUID, userID uuid.UUID) (*domain.JobApplication, error) {
	const query = `
	SELECT bin_to_uuid(user_id) as user_id, bin_to_uuid(job_id) as job_id, status, created_at, updated_at
	FROM job_applications
	WHERE job_id = uuid_to_bin(?) AND user_id = uuid_to_bin(?)
	`

	var application domain.JobApplication
	if err := r.db.GetContext(ctx, &application, query, jobID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select job application failed: %w", err)
	}

	return &application, nil
}
