package dto

import (
	"time"

	"github.com/oguzk/jobport/internal/app/models"
)

// CreateApplicationRequest represents the payload for applying to a job.
// The applicant is always the requester; user, submitted_at and updated_at
// are stamped server-side.
type CreateApplicationRequest struct {
	JobID          int64   `json:"jobId" binding:"required,min=1"`
	ResumeURL      string  `json:"resumeUrl" binding:"required,url"`
	CoverLetterURL *string `json:"coverLetterUrl" binding:"omitempty,url"`
	Notes          *string `json:"notes"`
}

// UpdateApplicationRequest represents a partial update of an application (PATCH)
type UpdateApplicationRequest struct {
	ResumeURL      *string `json:"resumeUrl" binding:"omitempty,url"`
	CoverLetterURL *string `json:"coverLetterUrl" binding:"omitempty,url"`
	Status         *string `json:"status"`
	Notes          *string `json:"notes"`
}

// ApplicationResponse represents a serialized application with its job and
// applicant embedded
type ApplicationResponse struct {
	ID             int64         `json:"id"`
	JobID          int64         `json:"jobId"`
	ResumeURL      string        `json:"resumeUrl"`
	CoverLetterURL *string       `json:"coverLetterUrl,omitempty"`
	Status         string        `json:"status"`
	SubmittedAt    time.Time     `json:"submittedAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Notes          *string       `json:"notes,omitempty"`
	Job            *JobResponse  `json:"job,omitempty"`
	User           *UserResponse `json:"user,omitempty"`
}

// FromApplication converts a models.Application to an ApplicationResponse
func FromApplication(app *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:             app.ID,
		JobID:          app.JobID,
		ResumeURL:      app.ResumeURL,
		CoverLetterURL: app.CoverLetterURL,
		Status:         string(app.Status),
		SubmittedAt:    app.SubmittedAt,
		UpdatedAt:      app.UpdatedAt,
		Notes:          app.Notes,
	}
	if app.Job != nil {
		job := FromJobPosting(app.Job)
		resp.Job = &job
	}
	if app.User != nil {
		user := FromUser(app.User)
		resp.User = &user
	}
	return resp
}

// FromApplications converts a slice of applications
func FromApplications(apps []*models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, FromApplication(app))
	}
	return out
}
