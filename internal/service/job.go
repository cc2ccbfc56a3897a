package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/managejob/backend/internal/domain"
	"github.com/managejob/backend/internal/repository"
	"github.com/managejob/backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const activeJobsCacheKey = "jobs:active"

type jobService struct {
	jobRepository  repository.Jobs
	userRepository repository.Users
	redis          redis.UniversalClient
	listTTL        time.Duration
}

func newJobService(jobRepository repository.Jobs,
	userRepository repository.Users,
	redisClient redis.UniversalClient,
	listTTL time.Duration,
) *jobService {
	return &jobService{
		jobRepository:  jobRepository,
		userRepository: userRepository,
		redis:          redisClient,
		listTTL:        listTTL,
	}
}

type CreateJobInput struct {
	Company            string
	JobTitle           string
	Location           string
	MinSalary          *int64
	MaxSalary          *int64
	JobType            string
	JobDescription     string
	Skills             string
	MinExperience      *int64
	MaxExperience      *int64
	WorkMode           string
	Industry           string
	Qualification      string
	Vacancies          *int64
	Requirements       string
	Perks              string
	CandidateProfile   string
	AboutCompany       string
	EmploymentCategory string
	ExpiryDate         *time.Time
}

func (s *jobService) Create(ctx context.Context, recruiterID uuid.UUID, input CreateJobInput) (*domain.Job, error) {
	jobID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate job id failed: %w", err)
	}

	job := &domain.Job{
		ID:          jobID,
		RecruiterID: recruiterID,
		Company:     input.Company,
		JobTitle:    input.JobTitle,
		ExpiryDate:  input.ExpiryDate,
		IsActive:    true,
	}
	setNullString(&job.Location, input.Location)
	setNullString(&job.JobType, input.JobType)
	setNullString(&job.JobDescription, input.JobDescription)
	setNullString(&job.Skills, input.Skills)
	setNullString(&job.WorkMode, input.WorkMode)
	setNullString(&job.Industry, input.Industry)
	setNullString(&job.Qualification, input.Qualification)
	setNullString(&job.Requirements, input.Requirements)
	setNullString(&job.Perks, input.Perks)
	setNullString(&job.CandidateProfile, input.CandidateProfile)
	setNullString(&job.AboutCompany, input.AboutCompany)
	setNullString(&job.EmploymentCategory, input.EmploymentCategory)
	setNullInt64(&job.MinSalary, input.MinSalary)
	setNullInt64(&job.MaxSalary, input.MaxSalary)
	setNullInt64(&job.MinExperience, input.MinExperience)
	setNullInt64(&job.MaxExperience, input.MaxExperience)
	setNullInt64(&job.Vacancies, input.Vacancies)

	if err := s.jobRepository.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job failed: %w", err)
	}

	s.invalidateListCache(ctx)

	return job, nil
}

func (s *jobService) GetActive(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	job, err := s.jobRepository.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job failed: %w", err)
	}
	return job, nil
}

// ListActive serves the public job board. The list is cached briefly because
// it is by far the hottest read and tolerates slightly stale data.
func (s *jobService) ListActive(ctx context.Context) ([]domain.Job, error) {
	if cached, ok := s.listFromCache(ctx); ok {
		return cached, nil
	}

	jobs, err := s.jobRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs failed: %w", err)
	}

	s.storeListCache(ctx, jobs)

	return jobs, nil
}

func (s *jobService) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]domain.JobWithApplies, error) {
	return s.jobRepository.ListActiveByRecruiter(ctx, recruiterID)
}

func (s *jobService) SavedJobs(ctx context.Context, userID uuid.UUID) (domain.JobIDList, error) {
	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user failed: %w", err)
	}

	if user.SavedJobs == nil {
		return domain.JobIDList{}, nil
	}
	return user.SavedJobs, nil
}

func (s *jobService) SaveJob(ctx context.Context, userID uuid.UUID, jobID string) (domain.JobIDList, error) {
	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user failed: %w", err)
	}

	saved := user.SavedJobs
	if saved.Contains(jobID) {
		return saved, nil
	}
	saved = append(saved, jobID)

	if err := s.userRepository.UpdateSavedJobs(ctx, userID, saved); err != nil {
		return nil, fmt.Errorf("update saved jobs failed: %w", err)
	}

	return saved, nil
}

func (s *jobService) RemoveSavedJob(ctx context.Context, userID uuid.UUID, jobID string) (domain.JobIDList, error) {
	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user failed: %w", err)
	}

	saved := user.SavedJobs.Without(jobID)

	if err := s.userRepository.UpdateSavedJobs(ctx, userID, saved); err != nil {
		return nil, fmt.Errorf("update saved jobs failed: %w", err)
	}

	return saved, nil
}

func (s *jobService) listFromCache(ctx context.Context) ([]domain.Job, bool) {
	if s.redis == nil {
		return nil, false
	}

	data, err := s.redis.Get(ctx, activeJobsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("read jobs cache failed", zap.Error(err))
		}
		return nil, false
	}

	var jobs []domain.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		logger.Warn("decode jobs cache failed", zap.Error(err))
		return nil, false
	}

	return jobs, true
}

func (s *jobService) storeListCache(ctx context.Context, jobs []domain.Job) {
	if s.redis == nil || s.listTTL <= 0 {
		return
	}

	data, err := json.Marshal(jobs)
	if err != nil {
		logger.Warn("encode jobs cache failed", zap.Error(err))
		return
	}

	if err := s.redis.Set(ctx, activeJobsCacheKey, data, s.listTTL).Err(); err != nil {
		logger.Warn("write jobs cache failed", zap.Error(err))
	}
}

func (s *jobService) invalidateListCache(ctx context.Context) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Del(ctx, activeJobsCacheKey).Err(); err != nil {
		logger.Warn("invalidate jobs cache failed", zap.Error(err))
	}
}

func setNullString(dst *sql.NullString, value string) {
	if value == "" {
		return
	}
	dst.String = value
	dst.Valid = true
}

func setNullInt64(dst *sql.NullInt64, value *int64) {
	if value == nil {
		return
	}
	dst.Int64 = *value
	dst.Valid = true
}
