package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/managejob/backend/internal/domain"
	"github.com/managejob/backend/internal/repository"

	"github.com/google/uuid"
)

type applicationService struct {
	applicationRepository repository.Applications
	jobRepository         repository.Jobs
	candidateRepository   repository.Candidates
	emails                *EmailService
}

func newApplicationService(applicationRepository repository.Applications,
	jobRepository repository.Jobs,
	candidateRepository repository.Candidates,
	emails *EmailService,
) *applicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		jobRepository:         jobRepository,
		candidateRepository:   candidateRepository,
		emails:                emails,
	}
}

func (s *applicationService) Apply(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) (*domain.JobApplication, error) {
	if _, err := s.jobRepository.GetActiveByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job failed: %w", err)
	}

	applied, err := s.applicationRepository.Exists(ctx, userID, jobID)
	if err != nil {
		return nil, fmt.Errorf("check application failed: %w", err)
	}
	if applied {
		return nil, ErrAlreadyApplied
	}

	application := &domain.JobApplication{
		UserID: userID,
		JobID:  jobID,
		Status: domain.StatusApplied,
	}

	if err := s.applicationRepository.Create(ctx, application); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("create application failed: %w", err)
	}

	return application, nil
}

func (s *applicationService) AppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.applicationRepository.ListJobIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list applied job ids failed: %w", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// ListForJob returns applications only for a job the recruiter owns.
func (s *applicationService) ListForJob(ctx context.Context, recruiterID uuid.UUID, jobID uuid.UUID) ([]domain.JobApplicationDetails, error) {
	if _, err := s.jobRepository.GetOwned(ctx, jobID, recruiterID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job failed: %w", err)
	}

	applications, err := s.applicationRepository.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications failed: %w", err)
	}
	if applications == nil {
		applications = []domain.JobApplicationDetails{}
	}
	return applications, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, recruiterID uuid.UUID, jobID uuid.UUID, userID uuid.UUID, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	job, err := s.jobRepository.GetOwned(ctx, jobID, recruiterID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job failed: %w", err)
	}

	application, err := s.applicationRepository.UpdateStatus(ctx, jobID, userID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application status failed: %w", err)
	}

	s.notifyCandidate(ctx, userID, job, status)

	return application, nil
}

func (s *applicationService) notifyCandidate(ctx context.Context, userID uuid.UUID, job *domain.Job, status domain.ApplicationStatus) {
	profile, err := s.candidateRepository.GetByUserID(ctx, userID)
	if err != nil {
		return
	}
	if !profile.Email.Valid {
		return
	}

	name := profile.Email.String
	if profile.FullName.Valid {
		name = profile.FullName.String
	}

	s.emails.EnqueueStatusEmail(ctx, profile.Email.String, status, job.JobTitle, job.Company, name)
}
