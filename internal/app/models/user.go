package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`                                     // Unique identifier for the user
	Email      string    `json:"email" db:"email" example:"jane@example.com"`                // User's email address (unique)
	Password   string    `json:"-" db:"password"`                                            // Hashed password (excluded from JSON)
	Role       Role      `json:"role" db:"role" example:"SEEKER"`                            // User's role (SEEKER, EMPLOYER or ADMIN)
	IsVerified bool      `json:"isVerified" db:"is_verified" example:"false"`                // Whether the account has been verified
	DateJoined time.Time `json:"dateJoined" db:"date_joined" example:"2024-01-01T10:00:00Z"` // Timestamp when the user registered
}

// UserProfile defines the one-to-one profile record for a user
type UserProfile struct {
	ID          int64                  `json:"id" db:"id"`
	UserID      int64                  `json:"userId" db:"user_id"`
	Bio         *string                `json:"bio,omitempty" db:"bio"`
	AvatarURL   *string                `json:"avatarUrl,omitempty" db:"avatar_url"`
	Location    *string                `json:"location,omitempty" db:"location"`
	ContactInfo *string                `json:"contactInfo,omitempty" db:"contact_info"`
	ResumeURL   *string                `json:"resumeUrl,omitempty" db:"resume_url"`
	Skills      []string               `json:"skills" db:"skills"`
	Education   map[string]interface{} `json:"education" db:"education"`
	Experience  map[string]interface{} `json:"experience" db:"experience"`
}
