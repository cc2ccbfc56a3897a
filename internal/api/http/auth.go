package apiHttp

import (
	"net/http"

	"github.com/managejob/backend/internal/domain"
	"github.com/managejob/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	api.POST("/login", h.login)
	api.POST("/send-otp", h.sendOTP)
	api.POST("/verify-otp", h.verifyOTP)
	api.POST("/create-account", h.createAccount)
	api.POST("/refresh-token", h.refreshToken)
}

type sendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// @Summary Send verification code
// @Tags Auth
// @Description Issues a registration code and emails it to the candidate
// @Accept json
// @Produce json
// @Param input body sendOTPRequest true "recipient"
// @Success 200 {object} statusResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} statusResponse
// @Router /send-otp [post]
func (h *Handler) sendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Auth.SendVerificationCode(c.Request.Context(), req.Email, req.Name); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okResponse(c, "OTP sent successfully")
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// @Summary Verify code
// @Tags Auth
// @Description Checks the submitted code against the issued one
// @Accept json
// @Produce json
// @Param input body verifyOTPRequest true "email and code"
// @Success 200 {object} statusResponse
// @Failure 400 {object} statusResponse
// @Router /verify-otp [post]
func (h *Handler) verifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Auth.VerifyCode(req.Email, req.OTP); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okResponse(c, "OTP verified successfully")
}

type createAccountRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// @Summary Create account
// @Tags Auth
// @Description Creates the user after code verification
// @Accept json
// @Produce json
// @Param input body createAccountRequest true "signup form"
// @Success 200 {object} statusResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} statusResponse
// @Router /create-account [post]
func (h *Handler) createAccount(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if req.Role == "" {
		req.Role = domain.RoleJobSeeker
	}
	if req.Role != domain.RoleJobSeeker && req.Role != domain.RoleRecruiter {
		newErrorResponse(c, http.StatusBadRequest, "Invalid role")
		return
	}

	err := h.services.Auth.CreateAccount(c.Request.Context(), service.CreateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okResponse(c, "Account created successfully")
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type loginResponse struct {
	Success      bool      `json:"success"`
	AccessToken  string    `json:"access_token"`
	RefreshToken uuid.UUID `json:"refresh_token"`
	User         loginUser `json:"user"`
}

// @Summary Login
// @Tags Auth
// @Description Exchanges credentials for access and refresh tokens
// @Accept json
// @Produce json
// @Param input body loginRequest true "credentials"
// @Success 200 {object} loginResponse
// @Failure 401 {object} statusResponse
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.Auth.Login(c.Request.Context(), service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		UserIP:    c.ClientIP(),
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Success:      true,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		User: loginUser{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
			Role:  result.User.Role,
		},
	})
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type refreshTokenResponse struct {
	Success      bool      `json:"success"`
	AccessToken  string    `json:"access_token"`
	RefreshToken uuid.UUID `json:"refresh_token"`
}

// @Summary Refresh tokens
// @Tags Auth
// @Description Rotates the refresh token and issues a new access token
// @Accept json
// @Produce json
// @Param input body refreshTokenRequest true "refresh token"
// @Success 200 {object} refreshTokenResponse
// @Failure 401 {object} statusResponse
// @Router /refresh-token [post]
func (h *Handler) refreshToken(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	tokens, err := h.services.Auth.Refresh(c.Request.Context(), req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, refreshTokenResponse{
		Success:      true,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}
