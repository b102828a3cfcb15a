package services

import (
	"context"
	"time"

	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/app/repositories"
)

// Function-field mocks for the store interfaces. A nil field means the
// call succeeds with a zero result.

type mockUserStore struct {
	createUserFn         func(ctx context.Context, user *models.User) (int64, error)
	getUserByIDFn        func(ctx context.Context, id int64) (*models.User, error)
	getUserByEmailFn     func(ctx context.Context, email string) (*models.User, error)
	emailExistsFn        func(ctx context.Context, email string) (bool, error)
	createProfileFn      func(ctx context.Context, profile *models.UserProfile) (int64, error)
	getProfileByUserIDFn func(ctx context.Context, userID int64) (*models.UserProfile, error)
	updateProfileFn      func(ctx context.Context, profile *models.UserProfile) error
}

func (m *mockUserStore) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return 1, nil
}

func (m *mockUserStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, id)
	}
	return &models.User{ID: id}, nil
}

func (m *mockUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(ctx, email)
	}
	return &models.User{Email: email}, nil
}

func (m *mockUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserStore) CreateProfile(ctx context.Context, profile *models.UserProfile) (int64, error) {
	if m.createProfileFn != nil {
		return m.createProfileFn(ctx, profile)
	}
	return 1, nil
}

func (m *mockUserStore) GetProfileByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	if m.getProfileByUserIDFn != nil {
		return m.getProfileByUserIDFn(ctx, userID)
	}
	return &models.UserProfile{UserID: userID}, nil
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, profile)
	}
	return nil
}

type mockTokenStore struct {
	createTokenFn         func(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	getTokenByValueFn     func(ctx context.Context, token string) (int64, time.Time, error)
	revokeTokenFn         func(ctx context.Context, token string) error
	revokeAllUserTokensFn func(ctx context.Context, userID int64) error
}

func (m *mockTokenStore) CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, token, userID, expiryDate)
	}
	return nil
}

func (m *mockTokenStore) GetTokenByValue(ctx context.Context, token string) (int64, time.Time, error) {
	if m.getTokenByValueFn != nil {
		return m.getTokenByValueFn(ctx, token)
	}
	return 1, time.Now().Add(time.Hour), nil
}

func (m *mockTokenStore) RevokeToken(ctx context.Context, token string) error {
	if m.revokeTokenFn != nil {
		return m.revokeTokenFn(ctx, token)
	}
	return nil
}

func (m *mockTokenStore) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	if m.revokeAllUserTokensFn != nil {
		return m.revokeAllUserTokensFn(ctx, userID)
	}
	return nil
}

type mockCompanyStore struct {
	createFn  func(ctx context.Context, company *models.Company) (int64, error)
	getByIDFn func(ctx context.Context, id int64) (*models.Company, error)
	getAllFn  func(ctx context.Context, offset uint64, limit int) ([]*models.Company, int64, error)
	updateFn  func(ctx context.Context, company *models.Company) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockCompanyStore) Create(ctx context.Context, company *models.Company) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, company)
	}
	return 1, nil
}

func (m *mockCompanyStore) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &models.Company{ID: id}, nil
}

func (m *mockCompanyStore) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Company, int64, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockCompanyStore) Update(ctx context.Context, company *models.Company) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, company)
	}
	return nil
}

func (m *mockCompanyStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockJobStore struct {
	createFn       func(ctx context.Context, job *models.JobPosting) (int64, error)
	getByIDFn      func(ctx context.Context, id int64) (*models.JobPosting, error)
	getAllFn       func(ctx context.Context, filters repositories.JobListFilters, offset uint64, limit int) ([]*models.JobPosting, int64, error)
	searchFn       func(ctx context.Context, q repositories.JobSearchQuery) ([]*models.JobPosting, error)
	updateFn       func(ctx context.Context, job *models.JobPosting) error
	updateStatusFn func(ctx context.Context, id int64, status models.JobStatus) error
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *mockJobStore) Create(ctx context.Context, job *models.JobPosting) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, job)
	}
	return 1, nil
}

func (m *mockJobStore) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &models.JobPosting{ID: id}, nil
}

func (m *mockJobStore) GetAll(ctx context.Context, filters repositories.JobListFilters, offset uint64, limit int) ([]*models.JobPosting, int64, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, filters, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockJobStore) Search(ctx context.Context, q repositories.JobSearchQuery) ([]*models.JobPosting, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return nil, nil
}

func (m *mockJobStore) Update(ctx context.Context, job *models.JobPosting) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, job)
	}
	return nil
}

func (m *mockJobStore) UpdateStatus(ctx context.Context, id int64, status models.JobStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockJobStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockApplicationStore struct {
	createFn        func(ctx context.Context, app *models.Application) (int64, error)
	getByIDFn       func(ctx context.Context, id int64) (*models.Application, error)
	getByUserFn     func(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Application, int64, error)
	getByEmployerFn func(ctx context.Context, employerID int64, offset uint64, limit int) ([]*models.Application, int64, error)
	updateFn        func(ctx context.Context, app *models.Application) error
	deleteFn        func(ctx context.Context, id int64) error
	getJobOwnerFn   func(ctx context.Context, applicationID int64) (int64, error)
}

func (m *mockApplicationStore) Create(ctx context.Context, app *models.Application) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, app)
	}
	return 1, nil
}

func (m *mockApplicationStore) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &models.Application{ID: id}, nil
}

func (m *mockApplicationStore) GetByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Application, int64, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(ctx, userID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockApplicationStore) GetByEmployer(ctx context.Context, employerID int64, offset uint64, limit int) ([]*models.Application, int64, error) {
	if m.getByEmployerFn != nil {
		return m.getByEmployerFn(ctx, employerID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockApplicationStore) Update(ctx context.Context, app *models.Application) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, app)
	}
	return nil
}

func (m *mockApplicationStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockApplicationStore) GetJobOwner(ctx context.Context, applicationID int64) (int64, error) {
	if m.getJobOwnerFn != nil {
		return m.getJobOwnerFn(ctx, applicationID)
	}
	return 0, nil
}

type mockBookmarkStore struct {
	createFn         func(ctx context.Context, bookmark *models.Bookmark) (int64, error)
	getByIDForUserFn func(ctx context.Context, id, userID int64) (*models.Bookmark, error)
	getByUserFn      func(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Bookmark, int64, error)
	updateJobFn      func(ctx context.Context, id, jobID int64) error
	deleteForUserFn  func(ctx context.Context, id, userID int64) error
}

func (m *mockBookmarkStore) Create(ctx context.Context, bookmark *models.Bookmark) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, bookmark)
	}
	return 1, nil
}

func (m *mockBookmarkStore) GetByIDForUser(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	if m.getByIDForUserFn != nil {
		return m.getByIDForUserFn(ctx, id, userID)
	}
	return &models.Bookmark{ID: id, UserID: userID}, nil
}

func (m *mockBookmarkStore) GetByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Bookmark, int64, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(ctx, userID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockBookmarkStore) UpdateJob(ctx context.Context, id, jobID int64) error {
	if m.updateJobFn != nil {
		return m.updateJobFn(ctx, id, jobID)
	}
	return nil
}

func (m *mockBookmarkStore) DeleteForUser(ctx context.Context, id, userID int64) error {
	if m.deleteForUserFn != nil {
		return m.deleteForUserFn(ctx, id, userID)
	}
	return nil
}

type mockViewCounter struct {
	increments []int64
}

func (m *mockViewCounter) Increment(_ context.Context, jobID int64) {
	m.increments = append(m.increments, jobID)
}
