package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/managejob/backend/internal/domain"
	"github.com/managejob/backend/internal/repository"

	"github.com/google/uuid"
)

type reviewService struct {
	reviewRepository repository.Reviews
}

func newReviewService(reviewRepository repository.Reviews) *reviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
	}
}

type CreateReviewInput struct {
	Company          string
	Department       string
	Rating           float64
	Review           string
	WorkLifeBalance  *int64
	Salary           *int64
	Promotions       *int64
	JobSecurity      *int64
	SkillDevelopment *int64
	WorkSatisfaction *int64
	CompanyCulture   *int64
	Gender           string
}

func (s *reviewService) Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	reviewID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate review id failed: %w", err)
	}

	review := &domain.Review{
		ID:        reviewID,
		Company:   input.Company,
		Rating:    input.Rating,
		Review:    input.Review,
		Timestamp: time.Now(),
	}
	setNullString(&review.Department, input.Department)
	setNullString(&review.Gender, input.Gender)
	setNullInt64(&review.WorkLifeBalance, input.WorkLifeBalance)
	setNullInt64(&review.Salary, input.Salary)
	setNullInt64(&review.Promotions, input.Promotions)
	setNullInt64(&review.JobSecurity, input.JobSecurity)
	setNullInt64(&review.SkillDevelopment, input.SkillDevelopment)
	setNullInt64(&review.WorkSatisfaction, input.WorkSatisfaction)
	setNullInt64(&review.CompanyCulture, input.CompanyCulture)

	if err := s.reviewRepository.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review failed: %w", err)
	}

	return s.GetByID(ctx, reviewID)
}

func (s *reviewService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	review, err := s.reviewRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review failed: %w", err)
	}
	return review, nil
}

func (s *reviewService) List(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviewRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews failed: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

func (s *reviewService) Search(ctx context.Context, company string) ([]domain.Review, error) {
	reviews, err := s.reviewRepository.SearchByCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("search reviews failed: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

func (s *reviewService) Vote(ctx context.Context, id uuid.UUID, like bool) (*domain.Review, error) {
	review, err := s.reviewRepository.IncrementVote(ctx, id, like)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("vote review failed: %w", err)
	}
	return review, nil
}
