package services

import (
	"context"
	"errors"

	appauth "github.com/oguzk/jobport/internal/app/auth"
	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
	"github.com/oguzk/jobport/internal/pkg/helpers"
)

// BookmarkStore is the bookmark persistence surface
type BookmarkStore interface {
	Create(ctx context.Context, bookmark *models.Bookmark) (int64, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*models.Bookmark, error)
	GetByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Bookmark, int64, error)
	UpdateJob(ctx context.Context, id, jobID int64) error
	DeleteForUser(ctx context.Context, id, userID int64) error
}

// BookmarkService handles saved job postings. Every lookup is keyed by the
// requesting user, so one user's bookmarks are invisible to everyone else,
// admins included.
type BookmarkService struct {
	bookmarkStore BookmarkStore
	jobStore      JobStore
}

// NewBookmarkService creates a new BookmarkService
func NewBookmarkService(bookmarkStore BookmarkStore, jobStore JobStore) *BookmarkService {
	return &BookmarkService{
		bookmarkStore: bookmarkStore,
		jobStore:      jobStore,
	}
}

// Create saves a posting for the requester
func (s *BookmarkService) Create(ctx context.Context, requester appauth.Requester, req *dto.CreateBookmarkRequest) (*models.Bookmark, error) {
	if _, err := s.jobStore.GetByID(ctx, req.JobID); err != nil {
		return nil, err
	}

	bookmark := &models.Bookmark{
		UserID: requester.UserID,
		JobID:  req.JobID,
	}

	id, err := s.bookmarkStore.Create(ctx, bookmark)
	if err != nil {
		return nil, err
	}

	return s.get(ctx, requester, id)
}

// GetAll lists the requester's bookmarks, newest first
func (s *BookmarkService) GetAll(ctx context.Context, requester appauth.Requester, page, pageSize int) ([]*models.Bookmark, *dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	bookmarks, total, err := s.bookmarkStore.GetByUser(ctx, requester.UserID, offset, limit)
	if err != nil {
		return nil, nil, err
	}

	for _, bookmark := range bookmarks {
		job, err := s.jobStore.GetByID(ctx, bookmark.JobID)
		if err != nil {
			if errors.Is(err, apperrors.ErrJobNotFound) {
				continue
			}
			return nil, nil, err
		}
		bookmark.Job = job
	}

	pagination := helpers.NewPaginationInfo(total, page, pageSize)
	return bookmarks, &pagination, nil
}

// GetByID retrieves one of the requester's bookmarks
func (s *BookmarkService) GetByID(ctx context.Context, requester appauth.Requester, id int64) (*models.Bookmark, error) {
	return s.get(ctx, requester, id)
}

// Update repoints a bookmark at a different posting. The visibility lookup
// already restricts the bookmark to the requester, and the ownership check
// is repeated on top of it to mirror the modify rule used elsewhere.
func (s *BookmarkService) Update(ctx context.Context, requester appauth.Requester, id int64, req *dto.UpdateBookmarkRequest) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkStore.GetByIDForUser(ctx, id, requester.UserID)
	if err != nil {
		return nil, err
	}

	if !appauth.CanModifyOwned(requester, bookmark.UserID) {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.JobID != nil {
		if _, err := s.jobStore.GetByID(ctx, *req.JobID); err != nil {
			return nil, err
		}
		if err := s.bookmarkStore.UpdateJob(ctx, id, *req.JobID); err != nil {
			return nil, err
		}
	}

	return s.get(ctx, requester, id)
}

// Delete removes one of the requester's bookmarks. Authentication is the
// only requirement; ownership is enforced by the scoped lookup itself.
func (s *BookmarkService) Delete(ctx context.Context, requester appauth.Requester, id int64) error {
	return s.bookmarkStore.DeleteForUser(ctx, id, requester.UserID)
}

func (s *BookmarkService) get(ctx context.Context, requester appauth.Requester, id int64) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkStore.GetByIDForUser(ctx, id, requester.UserID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobStore.GetByID(ctx, bookmark.JobID)
	if err == nil {
		bookmark.Job = job
	}

	return bookmark, nil
}
