package models

import "time"

// Bookmark marks a job posting saved by a user.
// The (user_id, job_id) pair is unique at the storage layer.
type Bookmark struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	JobID     int64     `json:"jobId" db:"job_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relation, no db tag
	Job *JobPosting `json:"job,omitempty"`
}
