package services

import (
	"context"
	"errors"
	"testing"

	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
)

func TestBookmarkService_Create_StampsOwner(t *testing.T) {
	var created *models.Bookmark
	bookmarks := &mockBookmarkStore{
		createFn: func(_ context.Context, b *models.Bookmark) (int64, error) {
			created = b
			return 1, nil
		},
	}
	svc := NewBookmarkService(bookmarks, &mockJobStore{})

	_, err := svc.Create(context.Background(), seeker, &dto.CreateBookmarkRequest{JobID: 5})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.UserID != seeker.UserID {
		t.Errorf("owner = %d, want the requester %d", created.UserID, seeker.UserID)
	}
}

func TestBookmarkService_Create_Duplicate(t *testing.T) {
	bookmarks := &mockBookmarkStore{
		createFn: func(_ context.Context, _ *models.Bookmark) (int64, error) {
			return 0, apperrors.ErrAlreadyBookmarked
		},
	}
	svc := NewBookmarkService(bookmarks, &mockJobStore{})

	_, err := svc.Create(context.Background(), seeker, &dto.CreateBookmarkRequest{JobID: 5})
	if !errors.Is(err, apperrors.ErrAlreadyBookmarked) {
		t.Errorf("Create() error = %v, want ErrAlreadyBookmarked", err)
	}
}

func TestBookmarkService_GetByID_ScopedToRequester(t *testing.T) {
	var lookupUserID int64
	bookmarks := &mockBookmarkStore{
		getByIDForUserFn: func(_ context.Context, id, userID int64) (*models.Bookmark, error) {
			lookupUserID = userID
			return nil, apperrors.ErrBookmarkNotFound
		},
	}
	svc := NewBookmarkService(bookmarks, &mockJobStore{})

	// Admins get no special visibility into other users' bookmarks
	_, err := svc.GetByID(context.Background(), admin, 3)
	if !errors.Is(err, apperrors.ErrBookmarkNotFound) {
		t.Errorf("GetByID() error = %v, want ErrBookmarkNotFound", err)
	}
	if lookupUserID != admin.UserID {
		t.Errorf("lookup scoped to user %d, want %d", lookupUserID, admin.UserID)
	}
}

func TestBookmarkService_GetAll_AttachesJobs(t *testing.T) {
	bookmarks := &mockBookmarkStore{
		getByUserFn: func(_ context.Context, _ int64, _ uint64, _ int) ([]*models.Bookmark, int64, error) {
			return []*models.Bookmark{{ID: 1, JobID: 5}, {ID: 2, JobID: 6}}, 2, nil
		},
	}
	jobs := &mockJobStore{
		getByIDFn: func(_ context.Context, id int64) (*models.JobPosting, error) {
			if id == 6 {
				return nil, apperrors.ErrJobNotFound
			}
			return &models.JobPosting{ID: id}, nil
		},
	}
	svc := NewBookmarkService(bookmarks, jobs)

	got, _, err := svc.GetAll(context.Background(), seeker, 1, 10)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}

	if got[0].Job == nil || got[0].Job.ID != 5 {
		t.Errorf("bookmark 1 job = %v, want posting 5 attached", got[0].Job)
	}
	if got[1].Job != nil {
		t.Error("bookmark 2 should have no job attached for a removed posting")
	}
}

func TestBookmarkService_Update_RepointsJob(t *testing.T) {
	var updatedJobID int64
	bookmarks := &mockBookmarkStore{
		getByIDForUserFn: func(_ context.Context, id, userID int64) (*models.Bookmark, error) {
			return &models.Bookmark{ID: id, UserID: userID, JobID: 5}, nil
		},
		updateJobFn: func(_ context.Context, _, jobID int64) error {
			updatedJobID = jobID
			return nil
		},
	}
	svc := NewBookmarkService(bookmarks, &mockJobStore{})

	newJob := int64(9)
	_, err := svc.Update(context.Background(), seeker, 3, &dto.UpdateBookmarkRequest{JobID: &newJob})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updatedJobID != 9 {
		t.Errorf("updated job id = %d, want 9", updatedJobID)
	}
}

func TestBookmarkService_Update_UnknownTargetJob(t *testing.T) {
	bookmarks := &mockBookmarkStore{
		getByIDForUserFn: func(_ context.Context, id, userID int64) (*models.Bookmark, error) {
			return &models.Bookmark{ID: id, UserID: userID, JobID: 5}, nil
		},
	}
	jobs := &mockJobStore{
		getByIDFn: func(_ context.Context, _ int64) (*models.JobPosting, error) {
			return nil, apperrors.ErrJobNotFound
		},
	}
	svc := NewBookmarkService(bookmarks, jobs)

	newJob := int64(99)
	_, err := svc.Update(context.Background(), seeker, 3, &dto.UpdateBookmarkRequest{JobID: &newJob})
	if !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Errorf("Update() error = %v, want ErrJobNotFound", err)
	}
}

func TestBookmarkService_Delete_ScopedToRequester(t *testing.T) {
	var gotID, gotUserID int64
	bookmarks := &mockBookmarkStore{
		deleteForUserFn: func(_ context.Context, id, userID int64) error {
			gotID, gotUserID = id, userID
			return nil
		},
	}
	svc := NewBookmarkService(bookmarks, &mockJobStore{})

	if err := svc.Delete(context.Background(), seeker, 3); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if gotID != 3 || gotUserID != seeker.UserID {
		t.Errorf("delete scoped to (%d, %d), want (3, %d)", gotID, gotUserID, seeker.UserID)
	}
}
