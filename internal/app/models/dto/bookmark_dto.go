package dto

import (
	"time"

	"github.com/oguzk/jobport/internal/app/models"
)

// CreateBookmarkRequest represents the payload for bookmarking a job.
// The owner is always the requester.
type CreateBookmarkRequest struct {
	JobID int64 `json:"jobId" binding:"required,min=1"`
}

// UpdateBookmarkRequest represents a bookmark update (PATCH); the only
// mutable attribute is the referenced job.
type UpdateBookmarkRequest struct {
	JobID *int64 `json:"jobId" binding:"omitempty,min=1"`
}

// BookmarkResponse represents a serialized bookmark with its job embedded
type BookmarkResponse struct {
	ID        int64        `json:"id"`
	JobID     int64        `json:"jobId"`
	CreatedAt time.Time    `json:"createdAt"`
	Job       *JobResponse `json:"job,omitempty"`
}

// FromBookmark converts a models.Bookmark to a BookmarkResponse
func FromBookmark(b *models.Bookmark) BookmarkResponse {
	resp := BookmarkResponse{
		ID:        b.ID,
		JobID:     b.JobID,
		CreatedAt: b.CreatedAt,
	}
	if b.Job != nil {
		job := FromJobPosting(b.Job)
		resp.Job = &job
	}
	return resp
}

// FromBookmarks converts a slice of bookmarks
func FromBookmarks(bookmarks []*models.Bookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, FromBookmark(b))
	}
	return out
}
