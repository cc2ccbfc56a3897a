package apiHttp

import (
	"net/http"

	"github.com/managejob/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initReviewRoutes(api *gin.RouterGroup) {
	reviews := api.Group("/reviews")

	reviews.GET("", h.listReviews)
	reviews.GET("/search", h.searchReviews)
	reviews.GET("/:id", h.getReview)
	reviews.POST("", h.userIdentityMiddleware, h.createReview)
	reviews.PUT("/:id/vote", h.voteReview)
}

// @Summary List company reviews
// @Tags Reviews
// @Produce json
// @Success 200 {object} dataResponse
// @Router /reviews [get]
func (h *Handler) listReviews(c *gin.Context) {
	reviews, err := h.services.Reviews.List(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, reviews)
}

// @Summary Search reviews by company
// @Tags Reviews
// @Produce json
// @Param company query string true "company name substring"
// @Success 200 {object} dataResponse
// @Router /reviews/search [get]
func (h *Handler) searchReviews(c *gin.Context) {
	company := c.Query("company")
	if company == "" {
		newErrorResponse(c, http.StatusBadRequest, "Company query parameter is required")
		return
	}

	reviews, err := h.services.Reviews.Search(c.Request.Context(), company)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, reviews)
}

// @Summary Get a review
// @Tags Reviews
// @Produce json
// @Param id path string true "review id"
// @Success 200 {object} dataResponse
// @Failure 404 {object} statusResponse
// @Router /reviews/{id} [get]
func (h *Handler) getReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	review, err := h.services.Reviews.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, review)
}

type createReviewRequest struct {
	Company          string  `json:"company" binding:"required"`
	Department       string  `json:"department"`
	Rating           float64 `json:"rating" binding:"required,min=1,max=5"`
	Review           string  `json:"review" binding:"required"`
	WorkLifeBalance  *int64  `json:"work_life_balance"`
	Salary           *int64  `json:"salary"`
	Promotions       *int64  `json:"promotions"`
	JobSecurity      *int64  `json:"job_security"`
	SkillDevelopment *int64  `json:"skill_development"`
	WorkSatisfaction *int64  `json:"work_satisfaction"`
	CompanyCulture   *int64  `json:"company_culture"`
	Gender           string  `json:"gender"`
}

// @Summary Create a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param input body createReviewRequest true "review form"
// @Success 200 {object} dataResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401
// @Security UserAuth
// @Router /reviews [post]
func (h *Handler) createReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	review, err := h.services.Reviews.Create(c.Request.Context(), service.CreateReviewInput{
		Company:          req.Company,
		Department:       req.Department,
		Rating:           req.Rating,
		Review:           req.Review,
		WorkLifeBalance:  req.WorkLifeBalance,
		Salary:           req.Salary,
		Promotions:       req.Promotions,
		JobSecurity:      req.JobSecurity,
		SkillDevelopment: req.SkillDevelopment,
		WorkSatisfaction: req.WorkSatisfaction,
		CompanyCulture:   req.CompanyCulture,
		Gender:           req.Gender,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, review)
}

type voteReviewRequest struct {
	Type string `json:"type" binding:"required,oneof=like dislike"`
}

// @Summary Vote on a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "review id"
// @Param input body voteReviewRequest true "like or dislike"
// @Success 200 {object} dataResponse
// @Failure 404 {object} statusResponse
// @Router /reviews/{id}/vote [put]
func (h *Handler) voteReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	var req voteReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	review, err := h.services.Reviews.Vote(c.Request.Context(), id, req.Type == "like")
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, review)
}
