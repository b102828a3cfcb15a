package models

import (
	"fmt"
	"time"
)

// ApplicationStatus defines the review state of an application
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "APPLIED"
	ApplicationReviewed    ApplicationStatus = "REVIEWED"
	ApplicationInterviewed ApplicationStatus = "INTERVIEWED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationOffered     ApplicationStatus = "OFFERED"
)

// ParseApplicationStatus converts a string into an ApplicationStatus
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case ApplicationApplied, ApplicationReviewed, ApplicationInterviewed,
		ApplicationRejected, ApplicationOffered:
		return ApplicationStatus(s), nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Application represents a user's application to a job posting.
// The (job_id, user_id) pair is unique at the storage layer.
type Application struct {
	ID             int64             `json:"id" db:"id"`
	JobID          int64             `json:"jobId" db:"job_id"`
	UserID         int64             `json:"userId" db:"user_id"`
	ResumeURL      string            `json:"resumeUrl" db:"resume_url"`
	CoverLetterURL *string           `json:"coverLetterUrl,omitempty" db:"cover_letter_url"`
	Status         ApplicationStatus `json:"status" db:"status"`
	SubmittedAt    time.Time         `json:"submittedAt" db:"submitted_at"`
	UpdatedAt      time.Time         `json:"updatedAt" db:"updated_at"`
	Notes          *string           `json:"notes,omitempty" db:"notes"`

	// Relations, no db tag
	Job  *JobPosting `json:"job,omitempty"`
	User *User       `json:"user,omitempty"`
}
