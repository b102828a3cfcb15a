package services

import (
	"context"
	"errors"
	"testing"

	appauth "github.com/oguzk/jobport/internal/app/auth"
	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
)

var (
	seeker   = appauth.Requester{UserID: 10, Role: models.RoleSeeker}
	employer = appauth.Requester{UserID: 20, Role: models.RoleEmployer}
	admin    = appauth.Requester{UserID: 30, Role: models.RoleAdmin}
)

func TestApplicationService_Create_StampsApplicant(t *testing.T) {
	var created *models.Application
	apps := &mockApplicationStore{
		createFn: func(_ context.Context, app *models.Application) (int64, error) {
			created = app
			return 1, nil
		},
	}
	svc := NewApplicationService(apps, &mockJobStore{})

	_, err := svc.Create(context.Background(), seeker, &dto.CreateApplicationRequest{
		JobID:     5,
		ResumeURL: "https://example.com/cv.pdf",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.UserID != seeker.UserID {
		t.Errorf("applicant = %d, want the requester %d", created.UserID, seeker.UserID)
	}
	if created.Status != models.ApplicationApplied {
		t.Errorf("status = %s, want APPLIED", created.Status)
	}
}

func TestApplicationService_Create_UnknownJob(t *testing.T) {
	jobs := &mockJobStore{
		getByIDFn: func(_ context.Context, _ int64) (*models.JobPosting, error) {
			return nil, apperrors.ErrJobNotFound
		},
	}
	svc := NewApplicationService(&mockApplicationStore{}, jobs)

	_, err := svc.Create(context.Background(), seeker, &dto.CreateApplicationRequest{
		JobID:     99,
		ResumeURL: "https://example.com/cv.pdf",
	})
	if !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Errorf("Create() error = %v, want ErrJobNotFound", err)
	}
}

func TestApplicationService_Create_DuplicateApplication(t *testing.T) {
	apps := &mockApplicationStore{
		createFn: func(_ context.Context, _ *models.Application) (int64, error) {
			return 0, apperrors.ErrAlreadyApplied
		},
	}
	svc := NewApplicationService(apps, &mockJobStore{})

	_, err := svc.Create(context.Background(), seeker, &dto.CreateApplicationRequest{
		JobID:     5,
		ResumeURL: "https://example.com/cv.pdf",
	})
	if !errors.Is(err, apperrors.ErrAlreadyApplied) {
		t.Errorf("Create() error = %v, want ErrAlreadyApplied", err)
	}
}

func TestApplicationService_GetAll_ScopeByRole(t *testing.T) {
	tests := []struct {
		name         string
		requester    appauth.Requester
		wantEmployer bool
	}{
		{"seeker lists own", seeker, false},
		{"employer lists received", employer, true},
		{"admin lists own", admin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calledEmployer, calledUser bool
			apps := &mockApplicationStore{
				getByUserFn: func(_ context.Context, userID int64, _ uint64, _ int) ([]*models.Application, int64, error) {
					calledUser = true
					if userID != tt.requester.UserID {
						t.Errorf("user scope id = %d, want %d", userID, tt.requester.UserID)
					}
					return nil, 0, nil
				},
				getByEmployerFn: func(_ context.Context, employerID int64, _ uint64, _ int) ([]*models.Application, int64, error) {
					calledEmployer = true
					if employerID != tt.requester.UserID {
						t.Errorf("employer scope id = %d, want %d", employerID, tt.requester.UserID)
					}
					return nil, 0, nil
				},
			}
			svc := NewApplicationService(apps, &mockJobStore{})

			if _, _, err := svc.GetAll(context.Background(), tt.requester, 1, 10); err != nil {
				t.Fatalf("GetAll() error = %v", err)
			}

			if calledEmployer != tt.wantEmployer || calledUser == tt.wantEmployer {
				t.Errorf("employer scope used = %v, want %v", calledEmployer, tt.wantEmployer)
			}
		})
	}
}

func TestApplicationService_GetByID_OutOfScopeIsNotFound(t *testing.T) {
	apps := &mockApplicationStore{
		getByIDFn: func(_ context.Context, id int64) (*models.Application, error) {
			return &models.Application{ID: id, UserID: 999}, nil
		},
	}
	svc := NewApplicationService(apps, &mockJobStore{})

	_, err := svc.GetByID(context.Background(), seeker, 1)
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Errorf("GetByID() error = %v, want ErrApplicationNotFound", err)
	}
}

func TestApplicationService_GetByID_EmployerSeesApplicationsToOwnPostings(t *testing.T) {
	apps := &mockApplicationStore{
		getByIDFn: func(_ context.Context, id int64) (*models.Application, error) {
			return &models.Application{ID: id, UserID: 10}, nil
		},
		getJobOwnerFn: func(_ context.Context, _ int64) (int64, error) {
			return employer.UserID, nil
		},
	}
	svc := NewApplicationService(apps, &mockJobStore{})

	if _, err := svc.GetByID(context.Background(), employer, 1); err != nil {
		t.Errorf("GetByID() error = %v, want in-scope application visible", err)
	}
}

func TestApplicationService_GetByID_EmployerCannotSeeForeignPostings(t *testing.T) {
	apps := &mockApplicationStore{
		getByIDFn: func(_ context.Context, id int64) (*models.Application, error) {
			return &models.Application{ID: id, UserID: 10}, nil
		},
		getJobOwnerFn: func(_ context.Context, _ int64) (int64, error) {
			return 777, nil
		},
	}
	svc := NewApplicationService(apps, &mockJobStore{})

	_, err := svc.GetByID(context.Background(), employer, 1)
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Errorf("GetByID() error = %v, want ErrApplicationNotFound", err)
	}
}

func TestApplicationService_Update_EmployerCannotModify(t *testing.T) {
	// In scope for the employer, but owned by the applicant
	apps := &mockApplicationStore{
		getByIDFn: func(_ context.Context, id int64) (*models.Application, error) {
			return &models.Application{ID: id, UserID: 10}, nil
		},
		getJobOwnerFn: func(_ context.Context, _ int64) (int64, error) {
			return employer.UserID, nil
		},
	}
	svc := NewApplicationService(apps, &mockJobStore{})

	status := "REVIEWED"
	_, err := svc.Update(context.Background(), employer, 1, &dto.UpdateApplicationRequest{Status: &status})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Update() error = %v, want ErrPermissionDenied", err)
	}
}

func TestApplicationService_Update_OwnerCanModify(t *testing.T) {
	var saved *models.Application
	apps := &mockApplicationStore{
		getByIDFn: func(_ context.Context, id int64) (*models.Application, error) {
			return &models.Application{ID: id, UserID: seeker.UserID, Status: models.ApplicationApplied}, nil
		},
		updateFn: func(_ context.Context, app *models.Application) error {
			saved = app
			return nil
		},
	}
	svc := NewApplicationService(apps, &mockJobStore{})

	status := "REVIEWED"
	_, err := svc.Update(context.Background(), seeker, 1, &dto.UpdateApplicationRequest{Status: &status})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if saved.Status != models.ApplicationReviewed {
		t.Errorf("status = %s, want REVIEWED", saved.Status)
	}
}

func TestApplicationService_Update_RejectsUnknownStatus(t *testing.T) {
	apps := &mockApplicationStore{
		getByIDFn: func(_ context.Context, id int64) (*models.Application, error) {
			return &models.Application{ID: id, UserID: seeker.UserID}, nil
		},
	}
	svc := NewApplicationService(apps, &mockJobStore{})

	status := "GHOSTED"
	_, err := svc.Update(context.Background(), seeker, 1, &dto.UpdateApplicationRequest{Status: &status})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Update() error = %v, want ErrValidationFailed", err)
	}
}

func TestApplicationService_Delete_AdminCanDeleteOwnScopeOnly(t *testing.T) {
	// The application belongs to another user: it never enters the
	// admin's scope, so deletion reports not found.
	apps := &mockApplicationStore{
		getByIDFn: func(_ context.Context, id int64) (*models.Application, error) {
			return &models.Application{ID: id, UserID: 10}, nil
		},
	}
	svc := NewApplicationService(apps, &mockJobStore{})

	err := svc.Delete(context.Background(), admin, 1)
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Errorf("Delete() error = %v, want ErrApplicationNotFound", err)
	}
}

func TestApplicationService_Delete_Owner(t *testing.T) {
	var deleted int64
	apps := &mockApplicationStore{
		getByIDFn: func(_ context.Context, id int64) (*models.Application, error) {
			return &models.Application{ID: id, UserID: seeker.UserID}, nil
		},
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	svc := NewApplicationService(apps, &mockJobStore{})

	if err := svc.Delete(context.Background(), seeker, 8); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted != 8 {
		t.Errorf("deleted id = %d, want 8", deleted)
	}
}
