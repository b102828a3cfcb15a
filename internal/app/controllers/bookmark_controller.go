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

// BookmarkController handles saved posting endpoints. Bookmarks are
// strictly private to the user who created them.
type BookmarkController struct {
	bookmarkService *services.BookmarkService
}

// NewBookmarkController creates a new BookmarkController
func NewBookmarkController(bookmarkService *services.BookmarkService) *BookmarkController {
	return &BookmarkController{bookmarkService: bookmarkService}
}

// GetAll lists the caller's bookmarks
// @Summary List bookmarks
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Bookmarks retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks [get]
func (c *BookmarkController) GetAll(ctx *gin.Context) {
	requester, ok := middleware.GetRequester(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	bookmarks, pagination, err := c.bookmarkService.GetAll(ctx, requester, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      dto.FromBookmarks(bookmarks),
			Pagination: *pagination,
		},
		Timestamp: time.Now(),
	})
}

// GetByID retrieves one of the caller's bookmarks
// @Summary Get bookmark details
// @Description Returns a bookmark with its posting. Another user's bookmark appears as not found.
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bookmark ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.BookmarkResponse} "Bookmark retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid bookmark ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks/{id} [get]
func (c *BookmarkController) GetByID(ctx *gin.Context) {
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

	bookmark, err := c.bookmarkService.GetByID(ctx, requester, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromBookmark(bookmark),
		Timestamp: time.Now(),
	})
}

// Create saves a posting
// @Summary Bookmark a job posting
// @Description Saves a posting for the caller. Bookmarking the same posting twice is rejected.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookmarkRequest true "Posting to bookmark"
// @Success 201 {object} dto.APIResponse{data=dto.BookmarkResponse} "Bookmark created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Posting not found"
// @Failure 409 {object} dto.ErrorResponse "Already bookmarked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks [post]
func (c *BookmarkController) Create(ctx *gin.Context) {
	requester, ok := middleware.GetRequester(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	bookmark, err := c.bookmarkService.Create(ctx, requester, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromBookmark(bookmark),
		Timestamp: time.Now(),
	})
}

// Update repoints a bookmark
// @Summary Update a bookmark
// @Description Changes which posting a bookmark refers to. Only the bookmark's owner or an admin may update it.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bookmark ID" Format(int64) minimum(1)
// @Param request body dto.UpdateBookmarkRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.BookmarkResponse} "Bookmark updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Failure 409 {object} dto.ErrorResponse "Already bookmarked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks/{id} [patch]
func (c *BookmarkController) Update(ctx *gin.Context) {
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

	var req dto.UpdateBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	bookmark, err := c.bookmarkService.Update(ctx, requester, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromBookmark(bookmark),
		Timestamp: time.Now(),
	})
}

// Delete removes a bookmark
// @Summary Delete a bookmark
// @Description Removes one of the caller's bookmarks. Authentication is the only requirement; the lookup itself is scoped to the caller.
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bookmark ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Bookmark deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid bookmark ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bookmarks/{id} [delete]
func (c *BookmarkController) Delete(ctx *gin.Context) {
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

	if err := c.bookmarkService.Delete(ctx, requester, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Bookmark deleted successfully"},
		Timestamp: time.Now(),
	})
}
