package dto

import (
	"time"

	"github.com/oguzk/jobport/internal/app/models"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     models.Role `json:"role" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken,omitempty"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn,omitempty"`
}

// UserResponse represents serialized user account information.
// The password hash is never part of any response.
type UserResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	DateJoined time.Time `json:"dateJoined"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		IsVerified: u.IsVerified,
		DateJoined: u.DateJoined,
	}
}

// ProfileResponse combines the user account with its profile record
type ProfileResponse struct {
	User    UserResponse        `json:"user"`
	Profile *models.UserProfile `json:"profile,omitempty"`
}

// UpdateProfileRequest represents a partial update of the caller's profile.
// Account fields (role, isVerified, dateJoined) are read-only and rejected
// by omission: they simply are not part of this request type.
type UpdateProfileRequest struct {
	Bio         *string                 `json:"bio"`
	AvatarURL   *string                 `json:"avatarUrl" binding:"omitempty,url"`
	Location    *string                 `json:"location"`
	ContactInfo *string                 `json:"contactInfo"`
	ResumeURL   *string                 `json:"resumeUrl" binding:"omitempty,url"`
	Skills      *[]string               `json:"skills"`
	Education   *map[string]interface{} `json:"education"`
	Experience  *map[string]interface{} `json:"experience"`
}
