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

type jobRepository struct {
	db *sqlx.DB
}

func newJobRepository(db *sqlx.DB) *jobRepository {
	return &jobRepository{
		db: db,
	}
}

const jobColumns = `
			bin_to_uuid(j.id) as id,
			bin_to_uuid(j.recruiter_id) as recruiter_id,
			j.company,
			j.job_title,
			j.location,
			j.min_salary,
			j.max_salary,
			j.job_type,
			j.job_description,
			j.skills,
			j.min_experience,
			j.max_experience,
			j.work_mode,
			j.industry,
			j.qualification,
			j.vacancies,
			j.requirements,
			j.perks,
			j.candidate_profile,
			j.about_company,
			j.employment_category,
			j.expiry_date,
			j.is_active,
			j.created_at,
			j.updated_at,
			j.deleted_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
	INSERT INTO jobs
	(id, recruiter_id, company, job_title, location, min_salary, max_salary, job_type,
	 job_description, skills, min_experience, max_experience, work_mode, industry,
	 qualification, vacancies, requirements, perks, candidate_profile, about_company,
	 employment_category, expiry_date, is_active)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		job.ID,
		job.RecruiterID,
		job.Company,
		job.JobTitle,
		job.Location,
		job.MinSalary,
		job.MaxSalary,
		job.JobType,
		job.JobDescription,
		job.Skills,
		job.MinExperience,
		job.MaxExperience,
		job.WorkMode,
		job.Industry,
		job.Qualification,
		job.Vacancies,
		job.Requirements,
		job.Perks,
		job.CandidateProfile,
		job.AboutCompany,
		job.EmploymentCategory,
		job.ExpiryDate,
		job.IsActive,
	)
	if err != nil {
		return fmt.Errorf("db insert job: %w", err)
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

func (r *jobRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = uuid_to_bin(?) AND j.is_active = TRUE AND j.deleted_at IS NULL`

	var job domain.Job
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select job by id failed: %w", err)
	}

	return &job, nil
}

func (r *jobRepository) GetOwned(ctx context.Context, id uuid.UUID, recruiterID uuid.UUID) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = uuid_to_bin(?) AND j.recruiter_id = uuid_to_bin(?) AND j.deleted_at IS NULL`

	var job domain.Job
	if err := r.db.GetContext(ctx, &job, query, id, recruiterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select owned job failed: %w", err)
	}

	return &job, nil
}

func (r *jobRepository) ListActive(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.is_active = TRUE AND j.deleted_at IS NULL ORDER BY j.created_at DESC`

	var jobs []domain.Job
	if err := r.db.SelectContext(ctx, &jobs, query); err != nil {
		return nil, fmt.Errorf("select active jobs failed: %w", err)
	}

	return jobs, nil
}

// ListActiveByRecruiter returns the recruiter's active postings together
// with a per-job application count, replacing the original's N+1 count
// queries with a single join.
func (r *jobRepository) ListActiveByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]domain.JobWithApplies, error) {
	query := `SELECT ` + jobColumns + `,
			COUNT(a.job_id) as applies
		FROM jobs j
		LEFT JOIN job_applications a ON a.job_id = j.id
		WHERE j.recruiter_id = uuid_to_bin(?) AND j.is_active = TRUE AND j.deleted_at IS NULL
		GROUP BY j.id
		ORDER BY j.created_at DESC`

	var jobs []domain.JobWithApplies
	if err := r.db.SelectContext(ctx, &jobs, query, recruiterID); err != nil {
		return nil, fmt.Errorf("select recruiter jobs failed: %w", err)
	}

	return jobs, nil
}
