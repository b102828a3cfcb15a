package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/oguzk/jobport/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "unit-test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "test",
	})
}

func TestGenerateTokenPair_EmbedsRoleClaim(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 7, Email: "boss@corp.com", Role: models.RoleEmployer}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if refreshToken == "" || refreshToken == accessToken {
		t.Error("refresh token should be an independent opaque value")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != int((720 * time.Hour).Seconds()) {
		t.Errorf("refreshExpiresIn = %d, want %d", refreshExpiresIn, int((720*time.Hour).Seconds()))
	}

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}
	if claims.UserID != 7 || claims.Email != "boss@corp.com" || claims.Role != "EMPLOYER" {
		t.Errorf("claims = %+v, want user 7 boss@corp.com EMPLOYER", claims)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 7, Email: "x@example.com", Role: models.RoleSeeker}

	accessToken, _, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := svc.ValidateToken(accessToken); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := testService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour, RefreshTokenExp: time.Hour})

	accessToken, _, _, _, err := svc.GenerateTokenPair(&models.User{ID: 1, Email: "x@example.com"})
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Error("ValidateToken() accepted a token signed with another secret")
	}
}

func TestValidateAndExtractClaims_Empty(t *testing.T) {
	svc := testService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAndExtractClaims(\"\") error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"with prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
