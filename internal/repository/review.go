package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/managejob/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type reviewRepository struct {
	db *sqlx.DB
}

func newReviewRepository(db *sqlx.DB) *reviewRepository {
	return &reviewRepository{
		db: db,
	}
}

const reviewColumns = `
			bin_to_uuid(id) as id,
			company,
			department,
			rating,
			review,
			work_life_balance,
			salary,
			promotions,
			job_security,
			skill_development,
			work_satisfaction,
			company_culture,
			gender,
			likes,
			dislikes,
			timestamp`

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	const query = `
	INSERT INTO reviews
	(id, company, department, rating, review, work_life_balance, salary, promotions,
	 job_security, skill_development, work_satisfaction, company_culture, gender,
	 likes, dislikes, timestamp)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.Company,
		review.Department,
		review.Rating,
		review.Review,
		review.WorkLifeBalance,
		review.Salary,
		review.Promotions,
		review.JobSecurity,
		review.SkillDevelopment,
		review.WorkSatisfaction,
		review.CompanyCulture,
		review.Gender,
		review.Likes,
		review.Dislikes,
		review.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("db insert review: %w", err)
	}

	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = uuid_to_bin(?)`

	var review domain.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select review by id failed: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) ListAll(ctx context.Context) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews ORDER BY timestamp DESC`

	var reviews []domain.Review
	if err := r.db.SelectContext(ctx, &reviews, query); err != nil {
		return nil, fmt.Errorf("select reviews failed: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) SearchByCompany(ctx context.Context, company string) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews`
	args := []interface{}{}

	if company != "" {
		query += ` WHERE LOWER(company) LIKE ?`
		args = append(args, "%"+strings.ToLower(company)+"%")
	}

	query += ` ORDER BY timestamp DESC`

	var reviews []domain.Review
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("search reviews failed: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) IncrementVote(ctx context.Context, id uuid.UUID, like bool) (*domain.Review, error) {
	column := "dislikes"
	if like {
		column = "likes"
	}

	query := `UPDATE reviews SET ` + column + ` = ` + column + ` + 1 WHERE id = uuid_to_bin(?)`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("update review vote failed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.GetByID(ctx, id)
}
