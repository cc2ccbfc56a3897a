package repository

import (
	"context"

	"github.com/managejob/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users          Users
	Candidates     Candidates
	Jobs           Jobs
	Applications   Applications
	Reviews        Reviews
	RefreshSession RefreshSession
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:          newUserRepository(db),
		Candidates:     newCandidateRepository(db),
		Jobs:           newJobRepository(db),
		Applications:   newApplicationRepository(db),
		Reviews:        newReviewRepository(db),
		RefreshSession: newRefreshSessionRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByCredentials(ctx context.Context, email string, passwordHash string) (*domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateSavedJobs(ctx context.Context, id uuid.UUID, savedJobs domain.JobIDList) error
}

type Candidates interface {
	Create(ctx context.Context, profile *domain.CandidateProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
	GetByEmail(ctx context.Context, email string) (*domain.CandidateProfile, error)
	UpdateDetailsByUserID(ctx context.Context, userID uuid.UUID, details UpdateDetailsInput) (*domain.CandidateProfile, error)
	UpdateProfileByEmail(ctx context.Context, email string, profile UpdateProfileInput) (*domain.CandidateProfile, error)
	Search(ctx context.Context, filters *CandidateFilters) ([]domain.CandidateProfile, error)
}

type Jobs interface {
	Create(ctx context.Context, job *domain.Job) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	GetOwned(ctx context.Context, id uuid.UUID, recruiterID uuid.UUID) (*domain.Job, error)
	ListActive(ctx context.Context) ([]domain.Job, error)
	ListActiveByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]domain.JobWithApplies, error)
}

type Applications interface {
	Create(ctx context.Context, application *domain.JobApplication) error
	Exists(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) (bool, error)
	ListJobIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.JobApplicationDetails, error)
	UpdateStatus(ctx context.Context, jobID uuid.UUID, userID uuid.UUID, status domain.ApplicationStatus) (*domain.JobApplication, error)
}

type Reviews interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListAll(ctx context.Context) ([]domain.Review, error)
	SearchByCompany(ctx context.Context, company string) ([]domain.Review, error)
	IncrementVote(ctx context.Context, id uuid.UUID, like bool) (*domain.Review, error)
}

type RefreshSession interface {
	Create(ctx context.Context, session *domain.RefreshSession) error
	GetByToken(ctx context.Context, token uuid.UUID) (*domain.RefreshSession, error)
	DeleteByToken(ctx context.Context, token uuid.UUID) error
}
