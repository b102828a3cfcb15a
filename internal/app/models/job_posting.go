package models

import (
	"fmt"
	"time"
)

// EmploymentType defines the employment type of a job posting
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentTemporary  EmploymentType = "TEMPORARY"
	EmploymentInternship EmploymentType = "INTERNSHIP"
	EmploymentVolunteer  EmploymentType = "VOLUNTEER"
)

// ParseEmploymentType converts a string into an EmploymentType
func ParseEmploymentType(s string) (EmploymentType, error) {
	switch EmploymentType(s) {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract,
		EmploymentTemporary, EmploymentInternship, EmploymentVolunteer:
		return EmploymentType(s), nil
	}
	return "", fmt.Errorf("unknown employment type %q", s)
}

// LocationType defines where the work happens
type LocationType string

const (
	LocationRemote LocationType = "REMOTE"
	LocationHybrid LocationType = "HYBRID"
	LocationOnSite LocationType = "ON_SITE"
)

// ParseLocationType converts a string into a LocationType
func ParseLocationType(s string) (LocationType, error) {
	switch LocationType(s) {
	case LocationRemote, LocationHybrid, LocationOnSite:
		return LocationType(s), nil
	}
	return "", fmt.Errorf("unknown location type %q", s)
}

// JobStatus defines the lifecycle state of a job posting
type JobStatus string

const (
	JobStatusDraft  JobStatus = "DRAFT"
	JobStatusActive JobStatus = "ACTIVE"
	JobStatusClosed JobStatus = "CLOSED"
)

// ParseJobStatus converts a string into a JobStatus
func ParseJobStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case JobStatusDraft, JobStatusActive, JobStatusClosed:
		return JobStatus(s), nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// JobPosting represents a job posting record in the database
type JobPosting struct {
	ID                  int64          `json:"id" db:"id"`
	CompanyID           int64          `json:"companyId" db:"company_id"`
	Title               string         `json:"title" db:"title"`
	Description         string         `json:"description" db:"description"`
	Requirements        string         `json:"requirements" db:"requirements"`
	EmploymentType      EmploymentType `json:"employmentType" db:"employment_type"`
	SalaryRangeMin      *float64       `json:"salaryRangeMin,omitempty" db:"salary_range_min"`
	SalaryRangeMax      *float64       `json:"salaryRangeMax,omitempty" db:"salary_range_max"`
	Currency            *string        `json:"currency,omitempty" db:"currency"`
	LocationType        LocationType   `json:"locationType" db:"location_type"`
	Address             *string        `json:"address,omitempty" db:"address"`
	City                *string        `json:"city,omitempty" db:"city"`
	Country             *string        `json:"country,omitempty" db:"country"`
	DatePosted          time.Time      `json:"datePosted" db:"date_posted"`
	ApplicationDeadline *time.Time     `json:"applicationDeadline,omitempty" db:"application_deadline"`
	Status              JobStatus      `json:"status" db:"status"`
	ViewsCount          int64          `json:"viewsCount" db:"views_count"`

	// Relation, no db tag
	Company *Company `json:"company,omitempty"`
}
