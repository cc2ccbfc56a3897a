package apiHttp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/managejob/backend/internal/config"
	"github.com/managejob/backend/internal/domain"
	"github.com/managejob/backend/internal/repository"
	"github.com/managejob/backend/internal/service"
	"github.com/managejob/backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	sendVerificationCode func(email, name string) error
	verifyCode           func(email, code string) error
	createAccount        func(input service.CreateAccountInput) error
	login                func(input service.LoginInput) (*service.LoginResult, error)
}

func (s *stubAuthService) SendVerificationCode(_ context.Context, email, name string) error {
	if s.sendVerificationCode != nil {
		return s.sendVerificationCode(email, name)
	}
	return nil
}

func (s *stubAuthService) VerifyCode(email, code string) error {
	if s.verifyCode != nil {
		return s.verifyCode(email, code)
	}
	return nil
}

func (s *stubAuthService) CreateAccount(_ context.Context, input service.CreateAccountInput) error {
	if s.createAccount != nil {
		return s.createAccount(input)
	}
	return nil
}

func (s *stubAuthService) Login(_ context.Context, input service.LoginInput) (*service.LoginResult, error) {
	if s.login != nil {
		return s.login(input)
	}
	return nil, service.ErrInvalidCredentials
}

func (s *stubAuthService) Refresh(_ context.Context, _, _, _ string) (*service.Tokens, error) {
	return nil, service.ErrSessionNotFound
}

type stubCandidateService struct {
	search func(filters *repository.CandidateFilters) ([]domain.CandidateProfile, error)
}

func (s *stubCandidateService) GetByUserID(_ context.Context, _ uuid.UUID) (*domain.CandidateProfile, error) {
	return nil, service.ErrUserNotFound
}

func (s *stubCandidateService) GetByEmail(_ context.Context, _ string) (*domain.CandidateProfile, error) {
	return nil, service.ErrUserNotFound
}

func (s *stubCandidateService) UpdateDetails(_ context.Context, _ uuid.UUID, _ repository.UpdateDetailsInput) (*domain.CandidateProfile, error) {
	return nil, service.ErrUserNotFound
}

func (s *stubCandidateService) UpdateProfile(_ context.Context, _ string, _ repository.UpdateProfileInput) (*domain.CandidateProfile, error) {
	return nil, service.ErrUserNotFound
}

func (s *stubCandidateService) Search(_ context.Context, filters *repository.CandidateFilters) ([]domain.CandidateProfile, error) {
	if s.search != nil {
		return s.search(filters)
	}
	return []domain.CandidateProfile{}, nil
}

type stubJobService struct {
	listActive func() ([]domain.Job, error)
}

func (s *stubJobService) Create(_ context.Context, _ uuid.UUID, _ service.CreateJobInput) (*domain.Job, error) {
	return &domain.Job{}, nil
}

func (s *stubJobService) GetActive(_ context.Context, _ uuid.UUID) (*domain.Job, error) {
	return nil, service.ErrJobNotFound
}

func (s *stubJobService) ListActive(_ context.Context) ([]domain.Job, error) {
	if s.listActive != nil {
		return s.listActive()
	}
	return []domain.Job{}, nil
}

func (s *stubJobService) ListByRecruiter(_ context.Context, _ uuid.UUID) ([]domain.JobWithApplies, error) {
	return []domain.JobWithApplies{}, nil
}

func (s *stubJobService) SavedJobs(_ context.Context, _ uuid.UUID) (domain.JobIDList, error) {
	return domain.JobIDList{}, nil
}

func (s *stubJobService) SaveJob(_ context.Context, _ uuid.UUID, jobID string) (domain.JobIDList, error) {
	return domain.JobIDList{jobID}, nil
}

func (s *stubJobService) RemoveSavedJob(_ context.Context, _ uuid.UUID, _ string) (domain.JobIDList, error) {
	return domain.JobIDList{}, nil
}

type stubApplicationService struct {
	apply func(userID, jobID uuid.UUID) (*domain.JobApplication, error)
}

func (s *stubApplicationService) Apply(_ context.Context, userID, jobID uuid.UUID) (*domain.JobApplication, error) {
	if s.apply != nil {
		return s.apply(userID, jobID)
	}
	return &domain.JobApplication{UserID: userID, JobID: jobID, Status: domain.StatusApplied}, nil
}

func (s *stubApplicationService) AppliedJobIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return []uuid.UUID{}, nil
}

func (s *stubApplicationService) ListForJob(_ context.Context, _, _ uuid.UUID) ([]domain.JobApplicationDetails, error) {
	return []domain.JobApplicationDetails{}, nil
}

func (s *stubApplicationService) UpdateStatus(_ context.Context, _, _, _ uuid.UUID, _ domain.ApplicationStatus) (*domain.JobApplication, error) {
	return nil, service.ErrApplicationNotFound
}

type stubReviewService struct {
	vote func(id uuid.UUID, like bool) (*domain.Review, error)
}

func (s *stubReviewService) Create(_ context.Context, input service.CreateReviewInput) (*domain.Review, error) {
	return &domain.Review{Company: input.Company, Rating: input.Rating, Review: input.Review}, nil
}

func (s *stubReviewService) GetByID(_ context.Context, _ uuid.UUID) (*domain.Review, error) {
	return nil, service.ErrReviewNotFound
}

func (s *stubReviewService) List(_ context.Context) ([]domain.Review, error) {
	return []domain.Review{}, nil
}

func (s *stubReviewService) Search(_ context.Context, _ string) ([]domain.Review, error) {
	return []domain.Review{}, nil
}

func (s *stubReviewService) Vote(_ context.Context, id uuid.UUID, like bool) (*domain.Review, error) {
	if s.vote != nil {
		return s.vote(id, like)
	}
	return nil, service.ErrReviewNotFound
}

type handlerFixture struct {
	router       *gin.Engine
	tokenManager auth.TokenManager

	auths        *stubAuthService
	candidates   *stubCandidateService
	jobs         *stubJobService
	applications *stubApplicationService
	reviews      *stubReviewService
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	gin.SetMode(gin.TestMode)

	tokenManager, err := auth.NewManager(config.JWTConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 240 * time.Hour,
		SigningKey:      "test-signing-key",
	})
	require.NoError(t, err)

	auths := &stubAuthService{}
	candidates := &stubCandidateService{}
	jobs := &stubJobService{}
	applications := &stubApplicationService{}
	reviews := &stubReviewService{}

	services := &service.Services{
		Auth:         auths,
		Candidates:   candidates,
		Jobs:         jobs,
		Applications: applications,
		Reviews:      reviews,
	}

	cfg := &config.Config{}
	cfg.Limiter.RPS = 100
	cfg.Limiter.Burst = 100
	cfg.Limiter.TTL = time.Minute

	handler := NewHandlers(services, tokenManager, cfg)

	return &handlerFixture{
		router:       handler.Init(cfg),
		tokenManager: tokenManager,
		auths:        auths,
		candidates:   candidates,
		jobs:         jobs,
		applications: applications,
		reviews:      reviews,
	}
}

func (f *handlerFixture) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *handlerFixture) tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token, _, err := f.tokenManager.NewJWT(&userID)
	require.NoError(t, err)
	return token
}

func TestSendOTPValidation(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.request(t, http.MethodPost, "/api/send-otp", gin.H{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email format")
}

func TestSendOTPDuplicateEmail(t *testing.T) {
	f := newHandlerFixture(t)

	f.auths.sendVerificationCode = func(string, string) error { return service.ErrUserAlreadyExists }

	w := f.request(t, http.MethodPost, "/api/send-otp", gin.H{"email": "taken@example.com", "name": "Taken"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestVerifyOTPStatuses(t *testing.T) {
	f := newHandlerFixture(t)

	cases := []struct {
		name    string
		err     error
		message string
	}{
		{"not found", service.ErrOTPNotFound, "No OTP request found"},
		{"expired", service.ErrOTPExpired, "OTP has expired"},
		{"mismatch", service.ErrOTPMismatch, "Invalid OTP"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f.auths.verifyCode = func(string, string) error { return tc.err }

			w := f.request(t, http.MethodPost, "/api/verify-otp", gin.H{"email": "a@b.com", "otp": "123456"}, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
		})
	}

	f.auths.verifyCode = nil
	w := f.request(t, http.MethodPost, "/api/verify-otp", gin.H{"email": "a@b.com", "otp": "123456"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "OTP verified successfully")
}

func TestCreateAccountDefaultsRole(t *testing.T) {
	f := newHandlerFixture(t)

	var got service.CreateAccountInput
	f.auths.createAccount = func(input service.CreateAccountInput) error {
		got = input
		return nil
	}

	w := f.request(t, http.MethodPost, "/api/create-account", gin.H{
		"name":     "Priya",
		"email":    "priya@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.RoleJobSeeker, got.Role)
}

func TestCreateAccountRejectsUnknownRole(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.request(t, http.MethodPost, "/api/create-account", gin.H{
		"name":     "Priya",
		"email":    "priya@example.com",
		"password": "secret123",
		"role":     "Admin",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid role")
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.request(t, http.MethodPost, "/api/login", gin.H{"email": "a@b.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestLoginSuccess(t *testing.T) {
	f := newHandlerFixture(t)

	userID, err := uuid.NewV7()
	require.NoError(t, err)
	refresh, err := uuid.NewV7()
	require.NoError(t, err)

	f.auths.login = func(input service.LoginInput) (*service.LoginResult, error) {
		return &service.LoginResult{
			User: &domain.User{ID: userID, Name: "Priya", Email: input.Email, Role: domain.RoleJobSeeker},
			Tokens: &service.Tokens{
				AccessToken:  "access-token",
				RefreshToken: refresh,
			},
		}, nil
	}

	w := f.request(t, http.MethodPost, "/api/login", gin.H{"email": "priya@example.com", "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, userID, resp.User.ID)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.request(t, http.MethodGet, "/api/user-saved-jobs", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.request(t, http.MethodPost, "/api/apply-job", gin.H{"jobId": uuid.NewString()}, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApplyJobDuplicate(t *testing.T) {
	f := newHandlerFixture(t)

	userID, err := uuid.NewV7()
	require.NoError(t, err)

	f.applications.apply = func(uuid.UUID, uuid.UUID) (*domain.JobApplication, error) {
		return nil, service.ErrAlreadyApplied
	}

	w := f.request(t, http.MethodPost, "/api/apply-job", gin.H{"jobId": uuid.NewString()}, f.tokenFor(t, userID))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already applied")
}

func TestSearchResumesEnvelope(t *testing.T) {
	f := newHandlerFixture(t)

	userID, err := uuid.NewV7()
	require.NoError(t, err)

	var got *repository.CandidateFilters
	f.candidates.search = func(filters *repository.CandidateFilters) ([]domain.CandidateProfile, error) {
		got = filters
		return []domain.CandidateProfile{{}, {}}, nil
	}

	w := f.request(t, http.MethodPost, "/api/search", gin.H{
		"skills":                   "go, sql",
		"markAllSkillsAsMandatory": true,
		"prefLocation":             "Pune",
		"experience":               gin.H{"min": 2.0},
	}, f.tokenFor(t, userID))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Results json.RawMessage `json:"results"`
		Total   int             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Total)

	require.NotNil(t, got)
	assert.True(t, got.AllSkillsRequired)
	require.NotNil(t, got.MinExperience)
	assert.Equal(t, 2.0, *got.MinExperience)
	assert.Empty(t, got.PrefLocation, "relocation filter only applies when opted in")
}

func TestCreateReviewRequiresToken(t *testing.T) {
	f := newHandlerFixture(t)

	body := gin.H{"company": "Acme", "rating": 4, "review": "Decent place to work"}

	w := f.request(t, http.MethodPost, "/api/reviews", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userID, err := uuid.NewV7()
	require.NoError(t, err)

	w = f.request(t, http.MethodPost, "/api/reviews", body, f.tokenFor(t, userID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme")
}

func TestVoteReviewUsesPut(t *testing.T) {
	f := newHandlerFixture(t)

	reviewID, err := uuid.NewV7()
	require.NoError(t, err)

	f.reviews.vote = func(id uuid.UUID, like bool) (*domain.Review, error) {
		require.Equal(t, reviewID, id)
		require.True(t, like)
		return &domain.Review{ID: id, Likes: 1}, nil
	}

	w := f.request(t, http.MethodPut, "/api/reviews/"+reviewID.String()+"/vote", gin.H{"type": "like"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// PUT is the only verb routed for voting
	w = f.request(t, http.MethodPost, "/api/reviews/"+reviewID.String()+"/vote", gin.H{"type": "like"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchCandidatesArrayResponse(t *testing.T) {
	f := newHandlerFixture(t)

	userID, err := uuid.NewV7()
	require.NoError(t, err)

	w := f.request(t, http.MethodPost, "/api/search-candidates", gin.H{"skills": "go"}, f.tokenFor(t, userID))
	require.Equal(t, http.StatusOK, w.Code)

	var resp []domain.CandidateProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}
