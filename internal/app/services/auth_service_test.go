package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
	"github.com/oguzk/jobport/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "test",
	})
}

func TestAuthService_Register_CreatesUserWithRequestedRole(t *testing.T) {
	var createdUser *models.User
	var profileUserID int64

	users := &mockUserStore{
		createUserFn: func(_ context.Context, user *models.User) (int64, error) {
			createdUser = user
			return 42, nil
		},
		createProfileFn: func(_ context.Context, profile *models.UserProfile) (int64, error) {
			profileUserID = profile.UserID
			return 1, nil
		},
		getUserByIDFn: func(_ context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Email: "boss@corp.com", Role: models.RoleEmployer}, nil
		},
	}

	svc := NewAuthService(users, &mockTokenStore{}, newTestJWTService())

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "boss@corp.com",
		Password: "supersecret1",
		Role:     models.RoleEmployer,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if createdUser.Role != models.RoleEmployer {
		t.Errorf("created role = %s, want EMPLOYER", createdUser.Role)
	}
	if createdUser.Password == "supersecret1" {
		t.Error("password was stored in plain text")
	}
	if createdUser.IsVerified {
		t.Error("new user should not be verified")
	}
	if profileUserID != 42 {
		t.Errorf("profile user id = %d, want 42", profileUserID)
	}
	if resp.ID != 42 || resp.Role != "EMPLOYER" {
		t.Errorf("response = %+v, want id 42 role EMPLOYER", resp)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(&mockUserStore{}, &mockTokenStore{}, newTestJWTService())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "x@example.com",
		Password: "supersecret1",
		Role:     models.Role("SUPERUSER"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Register() error = %v, want ErrValidationFailed", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := &mockUserStore{
		emailExistsFn: func(_ context.Context, _ string) (bool, error) {
			return true, nil
		},
	}
	svc := NewAuthService(users, &mockTokenStore{}, newTestJWTService())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "supersecret1",
		Role:     models.RoleSeeker,
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("Register() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "short"},
		{"letters only", "abcdefgh"},
		{"digits only", "12345678"},
		{"empty", ""},
	}

	svc := NewAuthService(&mockUserStore{}, &mockTokenStore{}, newTestJWTService())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &dto.RegisterRequest{
				Email:    "x@example.com",
				Password: tt.password,
				Role:     models.RoleSeeker,
			})
			if !errors.Is(err, apperrors.ErrInvalidPassword) {
				t.Errorf("Register(%q) error = %v, want ErrInvalidPassword", tt.password, err)
			}
		})
	}
}

func TestAuthService_Login_IssuesTokenPair(t *testing.T) {
	hashed, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	var storedToken string
	users := &mockUserStore{
		getUserByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 7, Email: email, Password: hashed, Role: models.RoleSeeker}, nil
		},
	}
	tokens := &mockTokenStore{
		createTokenFn: func(_ context.Context, token string, userID int64, _ time.Time) error {
			storedToken = token
			if userID != 7 {
				t.Errorf("stored token user id = %d, want 7", userID)
			}
			return nil
		},
	}

	svc := NewAuthService(users, tokens, newTestJWTService())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "seeker@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if resp.AccessToken == "" {
		t.Error("access token is empty")
	}
	if resp.RefreshToken == "" || resp.RefreshToken != storedToken {
		t.Errorf("refresh token %q was not the persisted one %q", resp.RefreshToken, storedToken)
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("token type = %q, want Bearer", resp.TokenType)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hashed, _ := auth.HashPassword("correct-horse")
	users := &mockUserStore{
		getUserByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 7, Email: email, Password: hashed}, nil
		},
	}

	svc := NewAuthService(users, &mockTokenStore{}, newTestJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "seeker@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_Login_UnknownUserIsInvalidCredentials(t *testing.T) {
	users := &mockUserStore{
		getUserByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
	}

	svc := NewAuthService(users, &mockTokenStore{}, newTestJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	// The reason for failure must not leak
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_RefreshToken_RotatesAndRevokesOld(t *testing.T) {
	var revoked []string
	tokens := &mockTokenStore{
		getTokenByValueFn: func(_ context.Context, token string) (int64, time.Time, error) {
			return 7, time.Now().Add(time.Hour), nil
		},
		revokeTokenFn: func(_ context.Context, token string) error {
			revoked = append(revoked, token)
			return nil
		},
	}
	users := &mockUserStore{
		getUserByIDFn: func(_ context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Email: "seeker@example.com", Role: models.RoleSeeker}, nil
		},
	}

	svc := NewAuthService(users, tokens, newTestJWTService())

	resp, err := svc.RefreshToken(context.Background(), "old-refresh-token")
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}

	if len(revoked) != 1 || revoked[0] != "old-refresh-token" {
		t.Errorf("revoked = %v, want the old token revoked exactly once", revoked)
	}
	if resp.RefreshToken == "old-refresh-token" {
		t.Error("refresh token was not rotated")
	}
}

func TestAuthService_RefreshToken_ExpiredTokenIsRevoked(t *testing.T) {
	var revoked bool
	tokens := &mockTokenStore{
		getTokenByValueFn: func(_ context.Context, _ string) (int64, time.Time, error) {
			return 7, time.Now().Add(-time.Minute), nil
		},
		revokeTokenFn: func(_ context.Context, _ string) error {
			revoked = true
			return nil
		},
	}

	svc := NewAuthService(&mockUserStore{}, tokens, newTestJWTService())

	_, err := svc.RefreshToken(context.Background(), "stale-token")
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("RefreshToken() error = %v, want ErrTokenExpired", err)
	}
	if !revoked {
		t.Error("expired token was not revoked")
	}
}

func TestAuthService_UpdateProfile_PartialMerge(t *testing.T) {
	existingBio := "old bio"
	existingLocation := "Berlin"
	var saved *models.UserProfile

	users := &mockUserStore{
		getProfileByUserIDFn: func(_ context.Context, userID int64) (*models.UserProfile, error) {
			return &models.UserProfile{
				UserID:   userID,
				Bio:      &existingBio,
				Location: &existingLocation,
				Skills:   []string{"go"},
			}, nil
		},
		updateProfileFn: func(_ context.Context, profile *models.UserProfile) error {
			saved = profile
			return nil
		},
	}

	svc := NewAuthService(users, &mockTokenStore{}, newTestJWTService())

	newBio := "new bio"
	_, err := svc.UpdateProfile(context.Background(), 7, &dto.UpdateProfileRequest{Bio: &newBio})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if saved.Bio == nil || *saved.Bio != "new bio" {
		t.Errorf("bio = %v, want %q", saved.Bio, "new bio")
	}
	if saved.Location == nil || *saved.Location != "Berlin" {
		t.Errorf("location = %v, want untouched %q", saved.Location, "Berlin")
	}
	if len(saved.Skills) != 1 || saved.Skills[0] != "go" {
		t.Errorf("skills = %v, want untouched [go]", saved.Skills)
	}
}

func TestAuthService_UpdateProfile_SanitizesBio(t *testing.T) {
	var saved *models.UserProfile
	users := &mockUserStore{
		updateProfileFn: func(_ context.Context, profile *models.UserProfile) error {
			saved = profile
			return nil
		},
	}

	svc := NewAuthService(users, &mockTokenStore{}, newTestJWTService())

	dirty := `Hello <script>alert("x")</script>world`
	_, err := svc.UpdateProfile(context.Background(), 7, &dto.UpdateProfileRequest{Bio: &dirty})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if saved.Bio == nil || *saved.Bio != "Hello world" {
		t.Errorf("bio = %v, want script stripped", saved.Bio)
	}
}
