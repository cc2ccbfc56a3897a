package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/managejob/backend/internal/config"
	"github.com/managejob/backend/internal/domain"
	"github.com/managejob/backend/internal/otp"
	"github.com/managejob/backend/internal/repository"
	"github.com/managejob/backend/pkg/auth"
	"github.com/managejob/backend/pkg/email"
	mock_email "github.com/managejob/backend/pkg/email/mock"
	"github.com/managejob/backend/pkg/hash"
	otpgen "github.com/managejob/backend/pkg/otp"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	getByEmail       func(email string) (*domain.User, error)
	getByCredentials func(email, passwordHash string) (*domain.User, error)
	create           func(user *domain.User) error

	created *domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.created = user
	if r.create != nil {
		return r.create(user)
	}
	return nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.getByEmail != nil {
		return r.getByEmail(email)
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) GetByCredentials(_ context.Context, email, passwordHash string) (*domain.User, error) {
	if r.getByCredentials != nil {
		return r.getByCredentials(email, passwordHash)
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) GetOneByID(_ context.Context, _ uuid.UUID) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) UpdateSavedJobs(_ context.Context, _ uuid.UUID, _ domain.JobIDList) error {
	return nil
}

type stubCandidateRepo struct {
	created *domain.CandidateProfile
}

func (r *stubCandidateRepo) Create(_ context.Context, profile *domain.CandidateProfile) error {
	r.created = profile
	return nil
}

func (r *stubCandidateRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*domain.CandidateProfile, error) {
	return nil, domain.ErrNotFound
}

func (r *stubCandidateRepo) GetByEmail(_ context.Context, _ string) (*domain.CandidateProfile, error) {
	return nil, domain.ErrNotFound
}

func (r *stubCandidateRepo) UpdateDetailsByUserID(_ context.Context, _ uuid.UUID, _ repository.UpdateDetailsInput) (*domain.CandidateProfile, error) {
	return nil, domain.ErrNotFound
}

func (r *stubCandidateRepo) UpdateProfileByEmail(_ context.Context, _ string, _ repository.UpdateProfileInput) (*domain.CandidateProfile, error) {
	return nil, domain.ErrNotFound
}

func (r *stubCandidateRepo) Search(_ context.Context, _ *repository.CandidateFilters) ([]domain.CandidateProfile, error) {
	return []domain.CandidateProfile{}, nil
}

type stubRefreshSessionRepo struct {
	sessions map[uuid.UUID]*domain.RefreshSession
}

func newStubRefreshSessionRepo() *stubRefreshSessionRepo {
	return &stubRefreshSessionRepo{sessions: make(map[uuid.UUID]*domain.RefreshSession)}
}

func (r *stubRefreshSessionRepo) Create(_ context.Context, session *domain.RefreshSession) error {
	r.sessions[session.RefreshToken] = session
	return nil
}

func (r *stubRefreshSessionRepo) GetByToken(_ context.Context, token uuid.UUID) (*domain.RefreshSession, error) {
	session, ok := r.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (r *stubRefreshSessionRepo) DeleteByToken(_ context.Context, token uuid.UUID) error {
	delete(r.sessions, token)
	return nil
}

type authFixture struct {
	service  *authService
	users    *stubUserRepo
	profiles *stubCandidateRepo
	sessions *stubRefreshSessionRepo
	store    *otp.Store
	sender   *mock_email.EmailSender
}

// writeVerificationTemplate puts a minimal template where the email service
// expects to find it, relative to the test working directory.
func writeVerificationTemplate(t *testing.T) {
	t.Helper()

	require.NoError(t, os.MkdirAll("templates", 0o755))
	t.Cleanup(func() { _ = os.RemoveAll("templates") })

	content := "<p>Hello {{.Name}}, your code is {{.Code}}</p>"
	require.NoError(t, os.WriteFile(filepath.Join("templates", "verification_email.html"), []byte(content), 0o644))
}

func newAuthFixture(t *testing.T, emailEnabled bool) *authFixture {
	t.Helper()

	if emailEnabled {
		writeVerificationTemplate(t)
	}

	users := &stubUserRepo{}
	profiles := &stubCandidateRepo{}
	sessions := newStubRefreshSessionRepo()
	store := otp.NewStore(10 * time.Minute)
	sender := new(mock_email.EmailSender)

	tokenManager, err := auth.NewManager(config.JWTConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 240 * time.Hour,
		SigningKey:      "test-signing-key",
	})
	require.NoError(t, err)

	emailConfig := config.EmailConfig{Enabled: emailEnabled}
	emailConfig.Templates.Verification = "verification_email.html"
	emails := newEmailService(sender, emailConfig, 2*time.Second)

	service := newAuthService(
		users,
		profiles,
		sessions,
		store,
		otpgen.NewCryptoGenerator(),
		emails,
		hash.NewSHA256Hasher("test-salt"),
		tokenManager,
		config.AuthConfig{
			VerificationCodeLength: 6,
			VerificationCodeTTL:    10 * time.Minute,
		},
	)

	return &authFixture{
		service:  service,
		users:    users,
		profiles: profiles,
		sessions: sessions,
		store:    store,
		sender:   sender,
	}
}

func TestAuthService_SendVerificationCode(t *testing.T) {
	f := newAuthFixture(t, true)

	var sentCode string
	f.sender.On("Send", mock.MatchedBy(func(input email.SendEmailInput) bool {
		return input.To == "priya@example.com" && strings.Contains(input.Body, "Hello Priya")
	})).Run(func(args mock.Arguments) {
		input := args.Get(0).(email.SendEmailInput)
		// the rendered body ends with the code, pull it out for verification
		idx := strings.LastIndex(input.Body, "is ")
		sentCode = strings.TrimSuffix(input.Body[idx+3:], "</p>")
	}).Return(nil)

	err := f.service.SendVerificationCode(context.Background(), "priya@example.com", "Priya")
	require.NoError(t, err)

	require.Len(t, sentCode, 6)
	assert.NoError(t, f.service.VerifyCode("priya@example.com", sentCode))
	f.sender.AssertExpectations(t)
}

func TestAuthService_SendVerificationCode_ExistingUser(t *testing.T) {
	f := newAuthFixture(t, true)

	f.users.getByEmail = func(string) (*domain.User, error) {
		return &domain.User{Email: "taken@example.com"}, nil
	}

	err := f.service.SendVerificationCode(context.Background(), "taken@example.com", "Taken")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, 0, f.store.Len())
	f.sender.AssertNotCalled(t, "Send", mock.Anything)
}

func TestAuthService_SendVerificationCode_DeliveryFailureRollsBack(t *testing.T) {
	f := newAuthFixture(t, true)

	f.sender.On("Send", mock.Anything).Return(errors.New("smtp refused"))

	err := f.service.SendVerificationCode(context.Background(), "priya@example.com", "Priya")
	assert.ErrorIs(t, err, ErrEmailDeliveryFailed)

	// a code the candidate never received must not stay verifiable
	assert.Equal(t, 0, f.store.Len())
	assert.ErrorIs(t, f.service.VerifyCode("priya@example.com", "000000"), ErrOTPNotFound)
}

func TestAuthService_VerifyCode(t *testing.T) {
	f := newAuthFixture(t, false)

	f.store.Put("priya@example.com", "123456")

	assert.ErrorIs(t, f.service.VerifyCode("priya@example.com", "654321"), ErrOTPMismatch)
	assert.NoError(t, f.service.VerifyCode("priya@example.com", "123456"))
	assert.ErrorIs(t, f.service.VerifyCode("priya@example.com", "123456"), ErrOTPNotFound)
	assert.ErrorIs(t, f.service.VerifyCode("unknown@example.com", "123456"), ErrOTPNotFound)
}

func TestAuthService_CreateAccount_JobSeeker(t *testing.T) {
	f := newAuthFixture(t, false)

	err := f.service.CreateAccount(context.Background(), CreateAccountInput{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "secret123",
		Role:     domain.RoleJobSeeker,
	})
	require.NoError(t, err)

	require.NotNil(t, f.users.created)
	assert.Equal(t, "priya@example.com", f.users.created.Email)
	assert.NotEqual(t, "secret123", f.users.created.Password)

	require.NotNil(t, f.profiles.created)
	assert.Equal(t, f.users.created.ID, f.profiles.created.UserID)
	assert.Equal(t, "Priya Sharma", f.profiles.created.FullName.String)
}

func TestAuthService_CreateAccount_Recruiter(t *testing.T) {
	f := newAuthFixture(t, false)

	err := f.service.CreateAccount(context.Background(), CreateAccountInput{
		Name:     "Rahul",
		Email:    "rahul@corp.example.com",
		Password: "secret123",
		Role:     domain.RoleRecruiter,
	})
	require.NoError(t, err)

	assert.Nil(t, f.profiles.created, "recruiters do not get a candidate profile")
}

func TestAuthService_CreateAccount_Duplicate(t *testing.T) {
	f := newAuthFixture(t, false)

	f.users.create = func(*domain.User) error { return domain.ErrDuplicateEntry }

	err := f.service.CreateAccount(context.Background(), CreateAccountInput{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "secret123",
		Role:     domain.RoleJobSeeker,
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	f := newAuthFixture(t, false)

	userID, err := uuid.NewV7()
	require.NoError(t, err)

	hasher := hash.NewSHA256Hasher("test-salt")
	passwordHash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	f.users.getByCredentials = func(email, hash string) (*domain.User, error) {
		if email == "priya@example.com" && hash == passwordHash {
			return &domain.User{ID: userID, Email: email, Role: domain.RoleJobSeeker}, nil
		}
		return nil, domain.ErrNotFound
	}

	result, err := f.service.Login(context.Background(), LoginInput{
		Email:     "priya@example.com",
		Password:  "secret123",
		UserAgent: "test-agent",
		UserIP:    "127.0.0.1",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, result.User.ID)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.Len(t, f.sessions.sessions, 1)

	_, err = f.service.Login(context.Background(), LoginInput{
		Email:    "priya@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	f := newAuthFixture(t, false)

	userID, err := uuid.NewV7()
	require.NoError(t, err)

	f.users.getByCredentials = func(string, string) (*domain.User, error) {
		return &domain.User{ID: userID}, nil
	}

	result, err := f.service.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	tokens, err := f.service.Refresh(context.Background(), result.Tokens.RefreshToken.String(), "agent", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	// refresh tokens rotate, replaying the old one must fail
	_, err = f.service.Refresh(context.Background(), result.Tokens.RefreshToken.String(), "agent", "127.0.0.1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_Refresh_Expired(t *testing.T) {
	f := newAuthFixture(t, false)

	userID, err := uuid.NewV7()
	require.NoError(t, err)
	token, err := uuid.NewV7()
	require.NoError(t, err)

	f.sessions.sessions[token] = &domain.RefreshSession{
		UserID:       userID,
		RefreshToken: token,
		ExpiresIn:    time.Now().Add(-time.Minute),
	}

	_, err = f.service.Refresh(context.Background(), token.String(), "agent", "127.0.0.1")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, f.sessions.sessions, "expired session is removed")
}
