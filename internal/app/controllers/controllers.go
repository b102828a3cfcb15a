package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController        *AuthController
	CompanyController     *CompanyController
	JobController         *JobController
	ApplicationController *ApplicationController
	BookmarkController    *BookmarkController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:        NewAuthController(svcs.AuthService),
		CompanyController:     NewCompanyController(svcs.CompanyService),
		JobController:         NewJobController(svcs.JobService),
		ApplicationController: NewApplicationController(svcs.ApplicationService),
		BookmarkController:    NewBookmarkController(svcs.BookmarkService),
	}
}

// parseIDParam reads a positive integer path parameter. On failure it
// writes the 400 envelope and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithField(name).WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
