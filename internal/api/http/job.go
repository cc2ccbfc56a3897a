package apiHttp

import (
	"net/http"
	"time"

	"github.com/managejob/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initJobRoutes(api *gin.RouterGroup) {
	api.GET("/jobs", h.listJobs)
	api.GET("/jobs/:jobId", h.getJob)
	api.POST("/jobs", h.userIdentityMiddleware, h.createJob)
	api.GET("/recruiter/jobs", h.userIdentityMiddleware, h.listRecruiterJobs)

	api.GET("/user-saved-jobs", h.userIdentityMiddleware, h.savedJobs)
	api.POST("/save-job", h.userIdentityMiddleware, h.saveJob)
	api.POST("/remove-saved-job", h.userIdentityMiddleware, h.removeSavedJob)
}

// @Summary List active jobs
// @Tags Jobs
// @Produce json
// @Success 200 {object} dataResponse
// @Router /jobs [get]
func (h *Handler) listJobs(c *gin.Context) {
	jobs, err := h.services.Jobs.ListActive(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, jobs)
}

// @Summary Get job
// @Tags Jobs
// @Produce json
// @Param jobId path string true "job id"
// @Success 200 {object} dataResponse
// @Failure 404 {object} statusResponse
// @Router /jobs/{jobId} [get]
func (h *Handler) getJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := h.services.Jobs.GetActive(c.Request.Context(), jobID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, job)
}

type createJobRequest struct {
	Company            string     `json:"company" binding:"required"`
	JobTitle           string     `json:"job_title" binding:"required"`
	Location           string     `json:"location"`
	MinSalary          *int64     `json:"min_salary"`
	MaxSalary          *int64     `json:"max_salary"`
	JobType            string     `json:"job_type"`
	JobDescription     string     `json:"job_description"`
	Skills             string     `json:"skills"`
	MinExperience      *int64     `json:"min_experience"`
	MaxExperience      *int64     `json:"max_experience"`
	WorkMode           string     `json:"work_mode"`
	Industry           string     `json:"industry"`
	Qualification      string     `json:"qualification"`
	Vacancies          *int64     `json:"vacancies"`
	Requirements       string     `json:"requirements"`
	Perks              string     `json:"perks"`
	CandidateProfile   string     `json:"candidate_profile"`
	AboutCompany       string     `json:"about_company"`
	EmploymentCategory string     `json:"employment_category"`
	ExpiryDate         *time.Time `json:"expiry_date"`
}

// @Summary Post a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param input body createJobRequest true "job posting"
// @Success 200 {object} dataResponse
// @Failure 400 {object} ValidationErrorStruct
// @Security UserAuth
// @Router /jobs [post]
func (h *Handler) createJob(c *gin.Context) {
	recruiterID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	job, err := h.services.Jobs.Create(c.Request.Context(), recruiterID, service.CreateJobInput{
		Company:            req.Company,
		JobTitle:           req.JobTitle,
		Location:           req.Location,
		MinSalary:          req.MinSalary,
		MaxSalary:          req.MaxSalary,
		JobType:            req.JobType,
		JobDescription:     req.JobDescription,
		Skills:             req.Skills,
		MinExperience:      req.MinExperience,
		MaxExperience:      req.MaxExperience,
		WorkMode:           req.WorkMode,
		Industry:           req.Industry,
		Qualification:      req.Qualification,
		Vacancies:          req.Vacancies,
		Requirements:       req.Requirements,
		Perks:              req.Perks,
		CandidateProfile:   req.CandidateProfile,
		AboutCompany:       req.AboutCompany,
		EmploymentCategory: req.EmploymentCategory,
		ExpiryDate:         req.ExpiryDate,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, job)
}

// @Summary List own jobs with application counts
// @Tags Jobs
// @Produce json
// @Success 200 {object} dataResponse
// @Security UserAuth
// @Router /recruiter/jobs [get]
func (h *Handler) listRecruiterJobs(c *gin.Context) {
	recruiterID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	jobs, err := h.services.Jobs.ListByRecruiter(c.Request.Context(), recruiterID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, jobs)
}

// @Summary List saved jobs
// @Tags SavedJobs
// @Produce json
// @Success 200 {object} dataResponse
// @Security UserAuth
// @Router /user-saved-jobs [get]
func (h *Handler) savedJobs(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	saved, err := h.services.Jobs.SavedJobs(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, saved)
}

type savedJobRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

// @Summary Save a job
// @Tags SavedJobs
// @Accept json
// @Produce json
// @Param input body savedJobRequest true "job id"
// @Success 200 {object} dataResponse
// @Security UserAuth
// @Router /save-job [post]
func (h *Handler) saveJob(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req savedJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	saved, err := h.services.Jobs.SaveJob(c.Request.Context(), userID, req.JobID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, saved)
}

// @Summary Remove a saved job
// @Tags SavedJobs
// @Accept json
// @Produce json
// @Param input body savedJobRequest true "job id"
// @Success 200 {object} dataResponse
// @Security UserAuth
// @Router /remove-saved-job [post]
func (h *Handler) removeSavedJob(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req savedJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	saved, err := h.services.Jobs.RemoveSavedJob(c.Request.Context(), userID, req.JobID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, saved)
}
