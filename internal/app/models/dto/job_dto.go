package dto

import (
	"time"

	"github.com/oguzk/jobport/internal/app/models"
)

// CreateJobRequest represents the payload for creating a job posting.
// date_posted and views_count are read-only and stamped server-side;
// status defaults to DRAFT.
type CreateJobRequest struct {
	CompanyID           int64      `json:"companyId" binding:"required,min=1"`
	Title               string     `json:"title" binding:"required"`
	Description         string     `json:"description" binding:"required"`
	Requirements        string     `json:"requirements" binding:"required"`
	EmploymentType      string     `json:"employmentType" binding:"required"`
	SalaryRangeMin      *float64   `json:"salaryRangeMin"`
	SalaryRangeMax      *float64   `json:"salaryRangeMax"`
	Currency            *string    `json:"currency" binding:"omitempty,len=3"`
	LocationType        string     `json:"locationType" binding:"required"`
	Address             *string    `json:"address"`
	City                *string    `json:"city"`
	Country             *string    `json:"country"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
}

// UpdateJobRequest represents a partial update of a job posting (PATCH)
type UpdateJobRequest struct {
	Title               *string    `json:"title"`
	Description         *string    `json:"description"`
	Requirements        *string    `json:"requirements"`
	EmploymentType      *string    `json:"employmentType"`
	SalaryRangeMin      *float64   `json:"salaryRangeMin"`
	SalaryRangeMax      *float64   `json:"salaryRangeMax"`
	Currency            *string    `json:"currency" binding:"omitempty,len=3"`
	LocationType        *string    `json:"locationType"`
	Address             *string    `json:"address"`
	City                *string    `json:"city"`
	Country             *string    `json:"country"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	Status              *string    `json:"status"`
}

// JobSearchParams holds the optional search filters. Absent parameters
// impose no constraint; present ones are combined with AND.
type JobSearchParams struct {
	Location       string `form:"location"`
	EmploymentType string `form:"employment_type"`
	MinSalary      string `form:"min_salary"`
	Query          string `form:"q"`
}

// JobListFilters holds the optional exact-match filters for listing jobs
type JobListFilters struct {
	EmploymentType string `form:"employment_type"`
	LocationType   string `form:"location_type"`
	City           string `form:"city"`
	Country        string `form:"country"`
	Status         string `form:"status"`
}

// PublishResponse is returned by the publish action
type PublishResponse struct {
	Status string `json:"status" example:"published"`
}

// JobResponse represents a serialized job posting with its company embedded
type JobResponse struct {
	ID                  int64           `json:"id"`
	CompanyID           int64           `json:"companyId"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Requirements        string          `json:"requirements"`
	EmploymentType      string          `json:"employmentType"`
	SalaryRangeMin      *float64        `json:"salaryRangeMin,omitempty"`
	SalaryRangeMax      *float64        `json:"salaryRangeMax,omitempty"`
	Currency            *string         `json:"currency,omitempty"`
	LocationType        string          `json:"locationType"`
	Address             *string         `json:"address,omitempty"`
	City                *string         `json:"city,omitempty"`
	Country             *string         `json:"country,omitempty"`
	DatePosted          time.Time       `json:"datePosted"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline,omitempty"`
	Status              string          `json:"status"`
	ViewsCount          int64           `json:"viewsCount"`
	Company             *models.Company `json:"company,omitempty"`
}

// FromJobPosting converts a models.JobPosting to a JobResponse
func FromJobPosting(job *models.JobPosting) JobResponse {
	return JobResponse{
		ID:                  job.ID,
		CompanyID:           job.CompanyID,
		Title:               job.Title,
		Description:         job.Description,
		Requirements:        job.Requirements,
		EmploymentType:      string(job.EmploymentType),
		SalaryRangeMin:      job.SalaryRangeMin,
		SalaryRangeMax:      job.SalaryRangeMax,
		Currency:            job.Currency,
		LocationType:        string(job.LocationType),
		Address:             job.Address,
		City:                job.City,
		Country:             job.Country,
		DatePosted:          job.DatePosted,
		ApplicationDeadline: job.ApplicationDeadline,
		Status:              string(job.Status),
		ViewsCount:          job.ViewsCount,
		Company:             job.Company,
	}
}

// FromJobPostings converts a slice of postings
func FromJobPostings(jobs []*models.JobPosting) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, FromJobPosting(job))
	}
	return out
}
