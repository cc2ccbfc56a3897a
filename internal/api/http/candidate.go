package apiHttp

import (
	"net/http"

	"github.com/managejob/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initProfileRoutes(api *gin.RouterGroup) {
	api.GET("/user-details/:userId", h.userIdentityMiddleware, h.getUserDetails)
	api.PUT("/user-details/:userId", h.userIdentityMiddleware, h.updateUserDetails)
	api.GET("/profile/:email", h.getProfileByEmail)
	api.POST("/profile/update", h.updateProfile)
}

// @Summary Get candidate details
// @Tags Profiles
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {object} dataResponse
// @Failure 404 {object} statusResponse
// @Security UserAuth
// @Router /user-details/{userId} [get]
func (h *Handler) getUserDetails(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	profile, err := h.services.Candidates.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, profile)
}

type updateUserDetailsRequest struct {
	FullName             *string `json:"full_name"`
	Phone                *string `json:"phone"`
	Email                *string `json:"email"`
	Gender               *string `json:"gender"`
	DOB                  *string `json:"dob"`
	Address              *string `json:"address"`
	Education            *string `json:"education"`
	Skills               *string `json:"skills"`
	CurrRole             *string `json:"curr_role"`
	ResumeLink           *string `json:"resume_link"`
	Languages            *string `json:"languages"`
	Internships          *string `json:"internships"`
	Projects             *string `json:"projects"`
	ProfileSummary       *string `json:"profile_summary"`
	Accomplishments      *string `json:"accomplishments"`
	CompetitiveExams     *string `json:"competitive_exams"`
	Employment           *string `json:"employment"`
	AcademicAchievements *string `json:"academic_achievements"`
}

// @Summary Update candidate details
// @Tags Profiles
// @Accept json
// @Produce json
// @Param userId path string true "user id"
// @Param input body updateUserDetailsRequest true "fields to change"
// @Success 200 {object} dataResponse
// @Failure 404 {object} statusResponse
// @Security UserAuth
// @Router /user-details/{userId} [put]
func (h *Handler) updateUserDetails(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req updateUserDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	profile, err := h.services.Candidates.UpdateDetails(c.Request.Context(), userID, repository.UpdateDetailsInput{
		FullName:             req.FullName,
		Phone:                req.Phone,
		Email:                req.Email,
		Gender:               req.Gender,
		DOB:                  req.DOB,
		Address:              req.Address,
		Education:            req.Education,
		Skills:               req.Skills,
		CurrRole:             req.CurrRole,
		ResumeLink:           req.ResumeLink,
		Languages:            req.Languages,
		Internships:          req.Internships,
		Projects:             req.Projects,
		ProfileSummary:       req.ProfileSummary,
		Accomplishments:      req.Accomplishments,
		CompetitiveExams:     req.CompetitiveExams,
		Employment:           req.Employment,
		AcademicAchievements: req.AcademicAchievements,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, profile)
}

// @Summary Get public profile
// @Tags Profiles
// @Produce json
// @Param email path string true "candidate email"
// @Success 200 {object} dataResponse
// @Failure 404 {object} statusResponse
// @Router /profile/{email} [get]
func (h *Handler) getProfileByEmail(c *gin.Context) {
	profile, err := h.services.Candidates.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, profile)
}

type updateProfileRequest struct {
	Email          string  `json:"email" binding:"required,email"`
	FullName       *string `json:"full_name"`
	Phone          *string `json:"phone"`
	Experience     *string `json:"experience"`
	Education      *string `json:"education"`
	FieldOfStudy   *string `json:"field_of_study"`
	Institution    *string `json:"institution"`
	GraduationYear *int    `json:"graduation_year"`
	Achievements   *string `json:"achievements"`
	Skills         *string `json:"skills"`
	CurrRole       *string `json:"curr_role"`
	ResumeLink     *string `json:"resume_link"`
	ProfilePicture *string `json:"profile_picture"`
	PortfolioLinks *string `json:"portfolio_links"`
	LinkedinSync   *string `json:"linkedin_sync"`
}

// @Summary Update public profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param input body updateProfileRequest true "profile edit form"
// @Success 200 {object} dataResponse
// @Failure 404 {object} statusResponse
// @Router /profile/update [post]
func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	profile, err := h.services.Candidates.UpdateProfile(c.Request.Context(), req.Email, repository.UpdateProfileInput{
		FullName:       req.FullName,
		Phone:          req.Phone,
		Experience:     req.Experience,
		Education:      req.Education,
		FieldOfStudy:   req.FieldOfStudy,
		Institution:    req.Institution,
		GraduationYear: req.GraduationYear,
		Achievements:   req.Achievements,
		Skills:         req.Skills,
		CurrRole:       req.CurrRole,
		ResumeLink:     req.ResumeLink,
		ProfilePicture: req.ProfilePicture,
		PortfolioLinks: req.PortfolioLinks,
		LinkedinSync:   req.LinkedinSync,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, profile)
}
