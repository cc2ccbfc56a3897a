package apiHttp

import (
	"net/http"

	"github.com/managejob/backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initApplicationRoutes(api *gin.RouterGroup) {
	api.POST("/apply-job", h.userIdentityMiddleware, h.applyJob)
	api.GET("/user-applications", h.userIdentityMiddleware, h.userApplications)
	api.GET("/job-applications/:jobId", h.userIdentityMiddleware, h.jobApplications)
	api.PUT("/job-applications/:jobId/:userId", h.userIdentityMiddleware, h.updateApplicationStatus)
}

type applyJobRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

// @Summary Apply to a job
// @Tags Applications
// @Accept json
// @Produce json
// @Param input body applyJobRequest true "job id"
// @Success 200 {object} dataResponse
// @Failure 404 {object} statusResponse
// @Failure 409 {object} statusResponse
// @Security UserAuth
// @Router /apply-job [post]
func (h *Handler) applyJob(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req applyJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	application, err := h.services.Applications.Apply(c.Request.Context(), userID, jobID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, application)
}

// @Summary List applied job ids
// @Tags Applications
// @Produce json
// @Success 200 {object} dataResponse
// @Security UserAuth
// @Router /user-applications [get]
func (h *Handler) userApplications(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	jobIDs, err := h.services.Applications.AppliedJobIDs(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, jobIDs)
}

// @Summary List applications for an owned job
// @Tags Applications
// @Produce json
// @Param jobId path string true "job id"
// @Success 200 {object} dataResponse
// @Failure 404 {object} statusResponse
// @Security UserAuth
// @Router /job-applications/{jobId} [get]
func (h *Handler) jobApplications(c *gin.Context) {
	recruiterID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	applications, err := h.services.Applications.ListForJob(c.Request.Context(), recruiterID, jobID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, applications)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=applied under_review interview accepted rejected"`
}

// @Summary Update application status
// @Tags Applications
// @Accept json
// @Produce json
// @Param jobId path string true "job id"
// @Param userId path string true "candidate user id"
// @Param input body updateStatusRequest true "new status"
// @Success 200 {object} dataResponse
// @Failure 404 {object} statusResponse
// @Security UserAuth
// @Router /job-applications/{jobId}/{userId} [put]
func (h *Handler) updateApplicationStatus(c *gin.Context) {
	recruiterID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	application, err := h.services.Applications.UpdateStatus(
		c.Request.Context(), recruiterID, jobID, userID, domain.ApplicationStatus(req.Status),
	)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okDataResponse(c, application)
}
