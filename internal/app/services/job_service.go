package services

import (
	"context"
	"strconv"

	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/app/repositories"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
	"github.com/oguzk/jobport/internal/pkg/helpers"
	"github.com/oguzk/jobport/internal/pkg/sanitize"
)

// JobStore is the job posting persistence surface
type JobStore interface {
	Create(ctx context.Context, job *models.JobPosting) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.JobPosting, error)
	GetAll(ctx context.Context, filters repositories.JobListFilters, offset uint64, limit int) ([]*models.JobPosting, int64, error)
	Search(ctx context.Context, q repositories.JobSearchQuery) ([]*models.JobPosting, error)
	Update(ctx context.Context, job *models.JobPosting) error
	UpdateStatus(ctx context.Context, id int64, status models.JobStatus) error
	Delete(ctx context.Context, id int64) error
}

// JobService handles job posting operations
type JobService struct {
	jobStore     JobStore
	companyStore CompanyStore
	views        ViewCounter
}

// NewJobService creates a new JobService
func NewJobService(jobStore JobStore, companyStore CompanyStore, views ViewCounter) *JobService {
	return &JobService{
		jobStore:     jobStore,
		companyStore: companyStore,
		views:        views,
	}
}

// Create stores a new posting. Postings start in DRAFT unless published.
func (s *JobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	employmentType, err := models.ParseEmploymentType(req.EmploymentType)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}
	locationType, err := models.ParseLocationType(req.LocationType)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	if _, err := s.companyStore.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	job := &models.JobPosting{
		CompanyID:           req.CompanyID,
		Title:               req.Title,
		Description:         sanitize.UGC(req.Description),
		Requirements:        sanitize.UGC(req.Requirements),
		EmploymentType:      employmentType,
		SalaryRangeMin:      req.SalaryRangeMin,
		SalaryRangeMax:      req.SalaryRangeMax,
		Currency:            req.Currency,
		LocationType:        locationType,
		Address:             req.Address,
		City:                req.City,
		Country:             req.Country,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              models.JobStatusDraft,
	}

	id, err := s.jobStore.Create(ctx, job)
	if err != nil {
		return nil, err
	}

	return s.jobStore.GetByID(ctx, id)
}

// GetByID retrieves a posting and records the view
func (s *JobService) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	job, err := s.jobStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.views.Increment(ctx, id)

	return job, nil
}

// GetAll retrieves a page of postings narrowed by the filter parameters
func (s *JobService) GetAll(ctx context.Context, params *dto.JobListFilters, page, pageSize int) ([]*models.JobPosting, *dto.PaginationInfo, error) {
	filters := repositories.JobListFilters{
		EmploymentType: params.EmploymentType,
		LocationType:   params.LocationType,
		City:           params.City,
		Country:        params.Country,
		Status:         params.Status,
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	jobs, total, err := s.jobStore.GetAll(ctx, filters, offset, limit)
	if err != nil {
		return nil, nil, err
	}

	pagination := helpers.NewPaginationInfo(total, page, pageSize)
	return jobs, &pagination, nil
}

// Search retrieves every posting matching the composed search parameters.
// All parameters are optional; an empty query returns everything.
func (s *JobService) Search(ctx context.Context, params *dto.JobSearchParams) ([]*models.JobPosting, error) {
	q := repositories.JobSearchQuery{
		Location:       params.Location,
		EmploymentType: params.EmploymentType,
		Query:          params.Query,
	}

	if params.MinSalary != "" {
		minSalary, err := strconv.ParseFloat(params.MinSalary, 64)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "min_salary must be a number")
		}
		q.MinSalary = &minSalary
	}

	return s.jobStore.Search(ctx, q)
}

// Update applies a partial update to a posting
func (s *JobService) Update(ctx context.Context, id int64, req *dto.UpdateJobRequest) (*models.JobPosting, error) {
	job, err := s.jobStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = sanitize.UGC(*req.Description)
	}
	if req.Requirements != nil {
		job.Requirements = sanitize.UGC(*req.Requirements)
	}
	if req.EmploymentType != nil {
		employmentType, err := models.ParseEmploymentType(*req.EmploymentType)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
		}
		job.EmploymentType = employmentType
	}
	if req.SalaryRangeMin != nil {
		job.SalaryRangeMin = req.SalaryRangeMin
	}
	if req.SalaryRangeMax != nil {
		job.SalaryRangeMax = req.SalaryRangeMax
	}
	if req.Currency != nil {
		job.Currency = req.Currency
	}
	if req.LocationType != nil {
		locationType, err := models.ParseLocationType(*req.LocationType)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
		}
		job.LocationType = locationType
	}
	if req.Address != nil {
		job.Address = req.Address
	}
	if req.City != nil {
		job.City = req.City
	}
	if req.Country != nil {
		job.Country = req.Country
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.Status != nil {
		status, err := models.ParseJobStatus(*req.Status)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
		}
		job.Status = status
	}

	if err := s.jobStore.Update(ctx, job); err != nil {
		return nil, err
	}

	return s.jobStore.GetByID(ctx, id)
}

// Publish transitions a posting to ACTIVE regardless of its current state.
// Publishing a posting that is already active or closed is not an error.
func (s *JobService) Publish(ctx context.Context, id int64) error {
	return s.jobStore.UpdateStatus(ctx, id, models.JobStatusActive)
}

// Delete removes a posting
func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.jobStore.Delete(ctx, id)
}
