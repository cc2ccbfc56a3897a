package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/managejob/backend/internal/domain"
	"github.com/managejob/backend/internal/repository"

	"github.com/google/uuid"
)

type candidateService struct {
	candidateRepository repository.Candidates
}

func newCandidateService(candidateRepository repository.Candidates) *candidateService {
	return &candidateService{
		candidateRepository: candidateRepository,
	}
}

func (s *candidateService) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error) {
	profile, err := s.candidateRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get candidate profile failed: %w", err)
	}
	return profile, nil
}

func (s *candidateService) GetByEmail(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	profile, err := s.candidateRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get candidate profile by email failed: %w", err)
	}
	return profile, nil
}

func (s *candidateService) UpdateDetails(ctx context.Context, userID uuid.UUID, input repository.UpdateDetailsInput) (*domain.CandidateProfile, error) {
	profile, err := s.candidateRepository.UpdateDetailsByUserID(ctx, userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update candidate details failed: %w", err)
	}
	return profile, nil
}

func (s *candidateService) UpdateProfile(ctx context.Context, email string, input repository.UpdateProfileInput) (*domain.CandidateProfile, error) {
	profile, err := s.candidateRepository.UpdateProfileByEmail(ctx, email, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update candidate profile failed: %w", err)
	}
	return profile, nil
}

func (s *candidateService) Search(ctx context.Context, filters *repository.CandidateFilters) ([]domain.CandidateProfile, error) {
	return s.candidateRepository.Search(ctx, filters)
}
