package services

import (
	"context"

	appauth "github.com/oguzk/jobport/internal/app/auth"
	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
	"github.com/oguzk/jobport/internal/pkg/helpers"
	"github.com/oguzk/jobport/internal/pkg/sanitize"
)

// ApplicationStore is the application persistence surface
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Application, int64, error)
	GetByEmployer(ctx context.Context, employerID int64, offset uint64, limit int) ([]*models.Application, int64, error)
	Update(ctx context.Context, app *models.Application) error
	Delete(ctx context.Context, id int64) error
	GetJobOwner(ctx context.Context, applicationID int64) (int64, error)
}

// ApplicationService handles job application operations. Every operation is
// scoped to what the requester may see: seekers and admins work within
// their own applications, employers within applications to their postings.
type ApplicationService struct {
	applicationStore ApplicationStore
	jobStore         JobStore
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(applicationStore ApplicationStore, jobStore JobStore) *ApplicationService {
	return &ApplicationService{
		applicationStore: applicationStore,
		jobStore:         jobStore,
	}
}

// Create submits an application on behalf of the requester. The applicant
// is always the requester; a client cannot apply as somebody else.
func (s *ApplicationService) Create(ctx context.Context, requester appauth.Requester, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if _, err := s.jobStore.GetByID(ctx, req.JobID); err != nil {
		return nil, err
	}

	app := &models.Application{
		JobID:          req.JobID,
		UserID:         requester.UserID,
		ResumeURL:      req.ResumeURL,
		CoverLetterURL: req.CoverLetterURL,
		Status:         models.ApplicationApplied,
		Notes:          sanitize.UGCPtr(req.Notes),
	}

	id, err := s.applicationStore.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	// The created record is returned directly: scope narrowing applies to
	// reads of existing rows, not to the row the requester just created.
	return s.applicationStore.GetByID(ctx, id)
}

// GetAll lists the applications visible to the requester, newest first
func (s *ApplicationService) GetAll(ctx context.Context, requester appauth.Requester, page, pageSize int) ([]*models.Application, *dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	var (
		apps  []*models.Application
		total int64
		err   error
	)
	if appauth.ApplicationScopeFor(requester) == appauth.ScopeEmployer {
		apps, total, err = s.applicationStore.GetByEmployer(ctx, requester.UserID, offset, limit)
	} else {
		apps, total, err = s.applicationStore.GetByUser(ctx, requester.UserID, offset, limit)
	}
	if err != nil {
		return nil, nil, err
	}

	pagination := helpers.NewPaginationInfo(total, page, pageSize)
	return apps, &pagination, nil
}

// GetByID retrieves a single application if it is within the requester's
// scope. Out-of-scope applications are reported as not found, not forbidden.
func (s *ApplicationService) GetByID(ctx context.Context, requester appauth.Requester, id int64) (*models.Application, error) {
	return s.getVisible(ctx, requester, id)
}

// Update applies a partial update. The application must be in scope, and
// only the applicant or an admin may modify it: an employer can read
// applications to their postings but not rewrite them.
func (s *ApplicationService) Update(ctx context.Context, requester appauth.Requester, id int64, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	app, err := s.getVisible(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if !appauth.CanModifyOwned(requester, app.UserID) {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.ResumeURL != nil {
		app.ResumeURL = *req.ResumeURL
	}
	if req.CoverLetterURL != nil {
		app.CoverLetterURL = req.CoverLetterURL
	}
	if req.Status != nil {
		status, err := models.ParseApplicationStatus(*req.Status)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
		}
		app.Status = status
	}
	if req.Notes != nil {
		app.Notes = sanitize.UGCPtr(req.Notes)
	}

	if err := s.applicationStore.Update(ctx, app); err != nil {
		return nil, err
	}

	return s.getVisible(ctx, requester, id)
}

// Delete withdraws an application under the same rules as Update
func (s *ApplicationService) Delete(ctx context.Context, requester appauth.Requester, id int64) error {
	app, err := s.getVisible(ctx, requester, id)
	if err != nil {
		return err
	}

	if !appauth.CanModifyOwned(requester, app.UserID) {
		return apperrors.ErrPermissionDenied
	}

	return s.applicationStore.Delete(ctx, id)
}

// getVisible fetches an application and verifies it falls inside the
// requester's listing scope.
func (s *ApplicationService) getVisible(ctx context.Context, requester appauth.Requester, id int64) (*models.Application, error) {
	app, err := s.applicationStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if appauth.ApplicationScopeFor(requester) == appauth.ScopeEmployer {
		ownerID, err := s.applicationStore.GetJobOwner(ctx, id)
		if err != nil {
			return nil, err
		}
		if ownerID != requester.UserID {
			return nil, apperrors.ErrApplicationNotFound
		}
		return app, nil
	}

	if app.UserID != requester.UserID {
		return nil, apperrors.ErrApplicationNotFound
	}

	return app, nil
}
