package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/app/services"
	"github.com/oguzk/jobport/internal/middleware"
	"github.com/oguzk/jobport/internal/pkg/helpers"
)

// JobController handles job posting endpoints
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// GetAll lists job postings
// @Summary List job postings
// @Description Returns a page of postings narrowed by exact-match filters. Available without authentication.
// @Tags jobs
// @Produce json
// @Param employment_type query string false "Employment type" Enums(FULL_TIME, PART_TIME, CONTRACT, TEMPORARY, INTERNSHIP, VOLUNTEER)
// @Param location_type query string false "Location type" Enums(REMOTE, HYBRID, ON_SITE)
// @Param city query string false "City"
// @Param country query string false "Country"
// @Param status query string false "Status" Enums(DRAFT, ACTIVE, CLOSED)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Postings retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (c *JobController) GetAll(ctx *gin.Context) {
	var filters dto.JobListFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	jobs, pagination, err := c.jobService.GetAll(ctx, &filters, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      dto.FromJobPostings(jobs),
			Pagination: *pagination,
		},
		Timestamp: time.Now(),
	})
}

// Search searches job postings
// @Summary Search job postings
// @Description Combines optional location, employment type, minimum salary and free-text conditions. Returns all matches unpaginated.
// @Tags jobs
// @Produce json
// @Param location query string false "Matches city or country as substring"
// @Param employment_type query string false "Employment type, exact match"
// @Param min_salary query number false "Lower bound on the posting's maximum salary"
// @Param q query string false "Matches title, description or requirements as substring"
// @Success 200 {object} dto.APIResponse{data=[]dto.JobResponse} "Matching postings"
// @Failure 400 {object} dto.ErrorResponse "Invalid search parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/search [get]
func (c *JobController) Search(ctx *gin.Context) {
	var params dto.JobSearchParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	jobs, err := c.jobService.Search(ctx, &params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromJobPostings(jobs),
		Timestamp: time.Now(),
	})
}

// GetByID retrieves a posting
// @Summary Get job posting details
// @Description Returns a posting with its company. Each read counts toward the posting's view counter.
// @Tags jobs
// @Produce json
// @Param id path int true "Job posting ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Posting retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid posting ID"
// @Failure 404 {object} dto.ErrorResponse "Posting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [get]
func (c *JobController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	job, err := c.jobService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromJobPosting(job),
		Timestamp: time.Now(),
	})
}

// Create stores a posting
// @Summary Create a job posting
// @Description Creates a posting in DRAFT state. Employer or admin role required.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Posting information"
// @Success 201 {object} dto.APIResponse{data=dto.JobResponse} "Posting created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	job, err := c.jobService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromJobPosting(job),
		Timestamp: time.Now(),
	})
}

// Update partially updates a posting
// @Summary Update a job posting
// @Description Applies a partial update. Employer or admin role required.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job posting ID" Format(int64) minimum(1)
// @Param request body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Posting updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Posting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [patch]
func (c *JobController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	job, err := c.jobService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromJobPosting(job),
		Timestamp: time.Now(),
	})
}

// Publish activates a posting
// @Summary Publish a job posting
// @Description Sets the posting's status to ACTIVE. Any authenticated user may publish; the transition is unconditional.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job posting ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.PublishResponse} "Posting published"
// @Failure 400 {object} dto.ErrorResponse "Invalid posting ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Posting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id}/publish [post]
func (c *JobController) Publish(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobService.Publish(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PublishResponse{Status: "published"},
		Timestamp: time.Now(),
	})
}

// Delete removes a posting
// @Summary Delete a job posting
// @Description Removes a posting. Employer or admin role required.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job posting ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Posting deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid posting ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Posting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [delete]
func (c *JobController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Job posting deleted successfully"},
		Timestamp: time.Now(),
	})
}
