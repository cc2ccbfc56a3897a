package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/managejob/backend/internal/config"
	"github.com/managejob/backend/internal/domain"
	"github.com/managejob/backend/internal/otp"
	"github.com/managejob/backend/internal/repository"
	"github.com/managejob/backend/pkg/auth"
	"github.com/managejob/backend/pkg/hash"
	otpgen "github.com/managejob/backend/pkg/otp"

	"github.com/google/uuid"
)

type authService struct {
	userRepository           repository.Users
	candidateRepository      repository.Candidates
	refreshSessionRepository repository.RefreshSession
	otpStore                 *otp.Store
	otpGenerator             otpgen.Generator
	emails                   *EmailService
	hasher                   hash.PasswordHasher
	tokenManager             auth.TokenManager
	authConfig               config.AuthConfig
}

func newAuthService(userRepository repository.Users,
	candidateRepository repository.Candidates,
	refreshSessionRepository repository.RefreshSession,
	otpStore *otp.Store,
	otpGenerator otpgen.Generator,
	emails *EmailService,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	authConfig config.AuthConfig,
) *authService {
	return &authService{
		userRepository:           userRepository,
		candidateRepository:      candidateRepository,
		refreshSessionRepository: refreshSessionRepository,
		otpStore:                 otpStore,
		otpGenerator:             otpGenerator,
		emails:                   emails,
		hasher:                   hasher,
		tokenManager:             tokenManager,
		authConfig:               authConfig,
	}
}

type Tokens struct {
	AccessToken  string
	AccessTTL    time.Duration
	RefreshToken uuid.UUID
	RefreshTTL   time.Duration
}

type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	UserIP    string
}

type LoginResult struct {
	User   *domain.User
	Tokens *Tokens
}

// SendVerificationCode issues a fresh code for the email and delivers it.
// Reissuing replaces any previous code for the same address. The issued code
// is rolled back if delivery fails, so a candidate can never be asked for a
// code they were never sent.
func (s *authService) SendVerificationCode(ctx context.Context, userEmail string, fullName string) error {
	existing, err := s.userRepository.GetByEmail(ctx, userEmail)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get user by email failed: %w", err)
	}
	if existing != nil {
		return ErrUserAlreadyExists
	}

	code, err := s.otpGenerator.RandomCode(s.authConfig.VerificationCodeLength)
	if err != nil {
		return fmt.Errorf("generate verification code failed: %w", err)
	}

	s.otpStore.Put(userEmail, code)

	if err := s.emails.SendVerificationEmail(ctx, userEmail, fullName, code); err != nil {
		s.otpStore.Delete(userEmail)
		return fmt.Errorf("%w: %v", ErrEmailDeliveryFailed, err)
	}

	return nil
}

func (s *authService) VerifyCode(userEmail string, code string) error {
	err := s.otpStore.Verify(userEmail, code)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, otp.ErrCodeNotFound):
		return ErrOTPNotFound
	case errors.Is(err, otp.ErrCodeExpired):
		return ErrOTPExpired
	case errors.Is(err, otp.ErrCodeMismatch):
		return ErrOTPMismatch
	default:
		return fmt.Errorf("verify code failed: %w", err)
	}
}

func (s *authService) CreateAccount(ctx context.Context, input CreateAccountInput) error {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate user id failed: %w", err)
	}

	user := &domain.User{
		ID:        userID,
		Name:      input.Name,
		Email:     input.Email,
		Password:  passwordHash,
		Role:      input.Role,
		SavedJobs: domain.JobIDList{},
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("create user failed: %w", err)
	}

	// Job seekers get an empty details row up front so profile reads and
	// recruiter search never have to special-case a missing record.
	if input.Role == domain.RoleJobSeeker {
		profile := &domain.CandidateProfile{UserID: userID}
		profile.FullName.String, profile.FullName.Valid = input.Name, true
		profile.Email.String, profile.Email.Valid = input.Email, true

		if err := s.candidateRepository.Create(ctx, profile); err != nil {
			return fmt.Errorf("create candidate profile failed: %w", err)
		}
	}

	s.emails.EnqueueWelcomeEmail(ctx, input.Email, input.Name)

	return nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user, err := s.userRepository.GetByCredentials(ctx, input.Email, passwordHash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by credentials failed: %w", err)
	}

	tokens, err := s.createSession(ctx, user.ID, input.UserAgent, input.UserIP)
	if err != nil {
		return nil, fmt.Errorf("create session failed: %w", err)
	}

	return &LoginResult{User: user, Tokens: tokens}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string, userAgent string, userIP string) (*Tokens, error) {
	token, err := s.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := s.refreshSessionRepository.GetByToken(ctx, *token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get refresh session failed: %w", err)
	}

	if err := s.refreshSessionRepository.DeleteByToken(ctx, *token); err != nil {
		return nil, fmt.Errorf("delete refresh session failed: %w", err)
	}

	if time.Now().After(session.ExpiresIn) {
		return nil, ErrSessionExpired
	}

	tokens, err := s.createSession(ctx, session.UserID, userAgent, userIP)
	if err != nil {
		return nil, fmt.Errorf("create session failed: %w", err)
	}

	return tokens, nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID, userAgent string, userIP string) (*Tokens, error) {
	var (
		res Tokens
		err error
	)

	res.AccessToken, res.AccessTTL, err = s.tokenManager.NewJWT(&userID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	res.RefreshToken, res.RefreshTTL, err = s.tokenManager.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token failed: %w", err)
	}

	refreshSessionID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate refresh session id failed: %w", err)
	}

	refreshSession := &domain.RefreshSession{
		ID:           refreshSessionID,
		UserID:       userID,
		RefreshToken: res.RefreshToken,
		UserAgent:    userAgent,
		IP:           userIP,
		ExpiresIn:    time.Now().Add(res.RefreshTTL),
	}

	if err := s.refreshSessionRepository.Create(ctx, refreshSession); err != nil {
		return nil, fmt.Errorf("create refresh session failed: %w", err)
	}

	return &res, nil
}
