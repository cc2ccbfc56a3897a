package apiHttp

import (
	"net/http"
	"strconv"

	"github.com/managejob/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initSearchRoutes(api *gin.RouterGroup) {
	api.POST("/search-candidates", h.userIdentityMiddleware, h.searchCandidates)
	api.POST("/search", h.userIdentityMiddleware, h.searchResumes)
}

type searchCandidatesRequest struct {
	FullName       string `json:"fullName"`
	Skills         string `json:"skills"`
	Experience     string `json:"experience"`
	CurrRole       string `json:"currRole"`
	Education      string `json:"education"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	Institution    string `json:"institution"`
	JobType        string `json:"jobType"`
	Availability   string `json:"availability"`
	PrefLocation   string `json:"prefLocation"`
	Gender         string `json:"gender"`
	MinAge         *int   `json:"minAge"`
	MaxAge         *int   `json:"maxAge"`
	Languages      string `json:"languages"`
	GraduationYear *int   `json:"graduationYear"`
}

// @Summary Search candidates
// @Tags Search
// @Description Filters candidate profiles and returns matches as a flat array
// @Accept json
// @Produce json
// @Param input body searchCandidatesRequest true "search filters"
// @Success 200 {array} domain.CandidateProfile
// @Security UserAuth
// @Router /search-candidates [post]
func (h *Handler) searchCandidates(c *gin.Context) {
	var req searchCandidatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	filters := &repository.CandidateFilters{
		FullName:          req.FullName,
		Skills:            req.Skills,
		CurrRole:          req.CurrRole,
		Education:         req.Education,
		FieldOfStudy:      req.FieldOfStudy,
		Institution:       req.Institution,
		JobType:           req.JobType,
		Availability:      req.Availability,
		PrefLocation:      req.PrefLocation,
		Gender:            req.Gender,
		MinAge:            req.MinAge,
		MaxAge:            req.MaxAge,
		Languages:         req.Languages,
		GraduationYearMin: req.GraduationYear,
	}

	// the quick-search form sends a single minimum-experience value as text
	if req.Experience != "" {
		min, err := strconv.ParseFloat(req.Experience, 64)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid experience value")
			return
		}
		filters.MinExperience = &min
	}

	candidates, err := h.services.Candidates.Search(c.Request.Context(), filters)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}

type experienceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type searchResumesRequest struct {
	FullName                 string           `json:"fullName"`
	Email                    string           `json:"email"`
	Phone                    string           `json:"phone"`
	Skills                   string           `json:"skills"`
	MarkAllSkillsAsMandatory bool             `json:"markAllSkillsAsMandatory"`
	Experience               *experienceRange `json:"experience"`
	Location                 string           `json:"location"`
	PrefLocation             string           `json:"prefLocation"`
	IncludeRelocateWilling   bool             `json:"includeRelocateWilling"`
	PinCode                  string           `json:"pinCode"`
	Company                  string           `json:"company"`
	CurrRole                 string           `json:"currRole"`
	Education                string           `json:"education"`
	EducationDetailed        string           `json:"educationDetailed"`
	FieldOfStudy             string           `json:"fieldOfStudy"`
	Institution              string           `json:"institution"`
	GraduationYear           *int             `json:"graduationYear"`
	JobType                  []string         `json:"jobType"`
	Gender                   string           `json:"gender"`
	Achievements             string           `json:"achievements"`
}

type searchResumesResponse struct {
	Success bool        `json:"success"`
	Results interface{} `json:"results"`
	Total   int         `json:"total"`
}

// @Summary Search resumes
// @Tags Search
// @Description Full resume search with mandatory-skills mode and an experience range
// @Accept json
// @Produce json
// @Param input body searchResumesRequest true "search criteria"
// @Success 200 {object} searchResumesResponse
// @Security UserAuth
// @Router /search [post]
func (h *Handler) searchResumes(c *gin.Context) {
	var req searchResumesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	filters := &repository.CandidateFilters{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		Skills:            req.Skills,
		AllSkillsRequired: req.MarkAllSkillsAsMandatory,
		Location:          req.Location,
		PinCode:           req.PinCode,
		Company:           req.Company,
		CurrRole:          req.CurrRole,
		Education:         req.Education,
		EducationDetailed: req.EducationDetailed,
		FieldOfStudy:      req.FieldOfStudy,
		Institution:       req.Institution,
		GraduationYear:    req.GraduationYear,
		JobTypes:          req.JobType,
		Gender:            req.Gender,
		Achievements:      req.Achievements,
	}

	if req.Experience != nil {
		filters.MinExperience = req.Experience.Min
		filters.MaxExperience = req.Experience.Max
	}

	// relocation preference only narrows the search when the recruiter opts in
	if req.IncludeRelocateWilling {
		filters.PrefLocation = req.PrefLocation
	}

	candidates, err := h.services.Candidates.Search(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "An error occurred while searching.",
		})
		return
	}

	c.JSON(http.StatusOK, searchResumesResponse{
		Success: true,
		Results: candidates,
		Total:   len(candidates),
	})
}
