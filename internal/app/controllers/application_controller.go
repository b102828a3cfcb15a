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

// ApplicationController handles job application endpoints. All of them
// require authentication; what each caller sees depends on their role.
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// GetAll lists the applications visible to the caller
// @Summary List applications
// @Description Seekers and admins see their own applications. Employers see applications to postings under companies they created.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Applications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) GetAll(ctx *gin.Context) {
	requester, ok := middleware.GetRequester(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	apps, pagination, err := c.applicationService.GetAll(ctx, requester, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      dto.FromApplications(apps),
			Pagination: *pagination,
		},
		Timestamp: time.Now(),
	})
}

// GetByID retrieves one application
// @Summary Get application details
// @Description Returns an application within the caller's scope. Out-of-scope applications appear as not found.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetByID(ctx *gin.Context) {
	requester, ok := middleware.GetRequester(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	app, err := c.applicationService.GetByID(ctx, requester, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromApplication(app),
		Timestamp: time.Now(),
	})
}

// Create submits an application
// @Summary Apply to a job posting
// @Description Submits an application as the caller. Applying twice to the same posting is rejected.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateApplicationRequest true "Application information"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Posting not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) Create(ctx *gin.Context) {
	requester, ok := middleware.GetRequester(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	app, err := c.applicationService.Create(ctx, requester, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromApplication(app),
		Timestamp: time.Now(),
	})
}

// Update partially updates an application
// @Summary Update an application
// @Description Applies a partial update. Only the applicant or an admin may modify an application.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Param request body dto.UpdateApplicationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [patch]
func (c *ApplicationController) Update(ctx *gin.Context) {
	requester, ok := middleware.GetRequester(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	app, err := c.applicationService.Update(ctx, requester, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromApplication(app),
		Timestamp: time.Now(),
	})
}

// Delete withdraws an application
// @Summary Withdraw an application
// @Description Removes an application. Only the applicant or an admin may withdraw it.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Application withdrawn"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [delete]
func (c *ApplicationController) Delete(ctx *gin.Context) {
	requester, ok := middleware.GetRequester(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.applicationService.Delete(ctx, requester, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Application withdrawn successfully"},
		Timestamp: time.Now(),
	})
}
