package service

import (
	"context"

	"github.com/managejob/backend/internal/config"
	"github.com/managejob/backend/internal/domain"
	"github.com/managejob/backend/internal/otp"
	"github.com/managejob/backend/internal/repository"
	"github.com/managejob/backend/pkg/auth"
	"github.com/managejob/backend/pkg/email"
	"github.com/managejob/backend/pkg/hash"
	otpgen "github.com/managejob/backend/pkg/otp"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Services struct {
	Auth         Auth
	Candidates   Candidates
	Jobs         Jobs
	Applications Applications
	Reviews      Reviews
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otpgen.Generator
	OtpStore     *otp.Store
	EmailSender  email.Sender
	Redis        redis.UniversalClient
	Repos        *repository.Repositories
}

func NewServices(deps Deps) *Services {
	emails := newEmailService(deps.EmailSender, deps.Config.Email, deps.Config.SMTP.Timeout)

	return &Services{
		Auth: newAuthService(
			deps.Repos.Users,
			deps.Repos.Candidates,
			deps.Repos.RefreshSession,
			deps.OtpStore,
			deps.OtpGenerator,
			emails,
			deps.Hasher,
			deps.TokenManager,
			deps.Config.Auth,
		),
		Candidates:   newCandidateService(deps.Repos.Candidates),
		Jobs:         newJobService(deps.Repos.Jobs, deps.Repos.Users, deps.Redis, deps.Config.Cache.JobsListTTL),
		Applications: newApplicationService(deps.Repos.Applications, deps.Repos.Jobs, deps.Repos.Candidates, emails),
		Reviews:      newReviewService(deps.Repos.Reviews),
	}
}

type Auth interface {
	SendVerificationCode(ctx context.Context, email string, fullName string) error
	VerifyCode(email string, code string) error
	CreateAccount(ctx context.Context, input CreateAccountInput) error
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string, userAgent string, userIP string) (*Tokens, error)
}

type Candidates interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
	GetByEmail(ctx context.Context, email string) (*domain.CandidateProfile, error)
	UpdateDetails(ctx context.Context, userID uuid.UUID, input repository.UpdateDetailsInput) (*domain.CandidateProfile, error)
	UpdateProfile(ctx context.Context, email string, input repository.UpdateProfileInput) (*domain.CandidateProfile, error)
	Search(ctx context.Context, filters *repository.CandidateFilters) ([]domain.CandidateProfile, error)
}

type Jobs interface {
	Create(ctx context.Context, recruiterID uuid.UUID, input CreateJobInput) (*domain.Job, error)
	GetActive(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	ListActive(ctx context.Context) ([]domain.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]domain.JobWithApplies, error)
	SavedJobs(ctx context.Context, userID uuid.UUID) (domain.JobIDList, error)
	SaveJob(ctx context.Context, userID uuid.UUID, jobID string) (domain.JobIDList, error)
	RemoveSavedJob(ctx context.Context, userID uuid.UUID, jobID string) (domain.JobIDList, error)
}

type Applications interface {
	Apply(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) (*domain.JobApplication, error)
	AppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListForJob(ctx context.Context, recruiterID uuid.UUID, jobID uuid.UUID) ([]domain.JobApplicationDetails, error)
	UpdateStatus(ctx context.Context, recruiterID uuid.UUID, jobID uuid.UUID, userID uuid.UUID, status domain.ApplicationStatus) (*domain.JobApplication, error)
}

type Reviews interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	Search(ctx context.Context, company string) ([]domain.Review, error)
	Vote(ctx context.Context, id uuid.UUID, like bool) (*domain.Review, error)
}
