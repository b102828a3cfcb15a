package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
	"github.com/oguzk/jobport/internal/pkg/auth"
	"github.com/oguzk/jobport/internal/pkg/logger"
	"github.com/oguzk/jobport/internal/pkg/sanitize"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserStore is the user persistence surface the auth service needs
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateProfile(ctx context.Context, profile *models.UserProfile) (int64, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
}

// TokenStore is the refresh token persistence surface
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}

// AuthService handles authentication operations
type AuthService struct {
	userStore  UserStore
	tokenStore TokenStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore UserStore, tokenStore TokenStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userStore:  userStore,
		tokenStore: tokenStore,
		jwtService: jwtService,
	}
}

func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "email cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "password cannot be empty")
	}
	if len(password) < 8 {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "password must be at least 8 characters long")
	}

	hasLetter := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "password must contain at least one letter")
	}

	hasDigit := false
	for _, char := range password {
		if unicode.IsDigit(char) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "password must contain at least one digit")
	}

	return nil
}

// Register creates a new user account with an empty profile record.
// Any declared role may be requested at registration time.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	role, err := models.ParseRole(string(req.Role))
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	exists, err := s.userStore.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("email check error: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	user := &models.User{
		Email:      req.Email,
		Password:   hashedPassword,
		Role:       role,
		IsVerified: false,
	}

	userID, err := s.userStore.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	if _, err := s.userStore.CreateProfile(ctx, &models.UserProfile{UserID: userID}); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create profile for new user")
		return nil, fmt.Errorf("profile creation error: %w", err)
	}

	created, err := s.userStore.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromUser(created)
	return &resp, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userStore.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(ctx, user)
}

// RefreshToken rotates a refresh token into a fresh token pair. The old
// token is revoked so it cannot be replayed.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, expiryDate, err := s.tokenStore.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if expiryDate.Before(time.Now()) {
		_ = s.tokenStore.RevokeToken(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userStore.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user lookup error: %w", err)
	}

	if err := s.tokenStore.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// GetProfile returns the account together with its profile record
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userStore.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.userStore.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		User:    dto.FromUser(user),
		Profile: profile,
	}, nil
}

// UpdateProfile applies a partial update to the caller's profile record.
// Account fields (email, role, is_verified) are not touched here. Free
// text fields are sanitized before they are stored.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.userStore.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = sanitize.UGCPtr(req.Bio)
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.ContactInfo != nil {
		profile.ContactInfo = req.ContactInfo
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = req.ResumeURL
	}
	if req.Skills != nil {
		profile.Skills = *req.Skills
	}
	if req.Education != nil {
		profile.Education = *req.Education
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}

	if err := s.userStore.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()

	if err := s.tokenStore.CreateToken(ctx, refreshToken, user.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}
