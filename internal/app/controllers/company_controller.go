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

// CompanyController handles company endpoints
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// GetAll lists companies
// @Summary List companies
// @Description Returns a page of companies. Available without authentication.
// @Tags companies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Companies retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [get]
func (c *CompanyController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	companies, pagination, err := c.companyService.GetAll(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      companies,
			Pagination: *pagination,
		},
		Timestamp: time.Now(),
	})
}

// GetByID retrieves a company
// @Summary Get company details
// @Tags companies
// @Produce json
// @Param id path int true "Company ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Company retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid company ID"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [get]
func (c *CompanyController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	company, err := c.companyService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// Create registers a company
// @Summary Create a company
// @Description Creates a company owned by the requester. Employer or admin role required.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCompanyRequest true "Company information"
// @Success 201 {object} dto.APIResponse "Company created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	requester, ok := middleware.GetRequester(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	company, err := c.companyService.Create(ctx, requester.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// Update replaces a company's details
// @Summary Update a company
// @Description Replaces the mutable company fields. Employer or admin role required; any employer may edit any company.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCompanyRequest true "Company information"
// @Success 200 {object} dto.APIResponse "Company updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [put]
func (c *CompanyController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	company, err := c.companyService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// Delete removes a company
// @Summary Delete a company
// @Description Removes a company and its postings. Employer or admin role required.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Company deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid company ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [delete]
func (c *CompanyController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.companyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Company deleted successfully"},
		Timestamp: time.Now(),
	})
}
