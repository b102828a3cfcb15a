package auth

import (
	"testing"

	"github.com/oguzk/jobport/internal/app/models"
)

func TestCanManageCompanies(t *testing.T) {
	tests := []struct {
		role models.Role
		want bool
	}{
		{models.RoleSeeker, false},
		{models.RoleEmployer, true},
		{models.RoleAdmin, true},
	}

	for _, tt := range tests {
		r := Requester{UserID: 1, Role: tt.role}
		if got := CanManageCompanies(r); got != tt.want {
			t.Errorf("CanManageCompanies(%s) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestCanModifyOwned(t *testing.T) {
	tests := []struct {
		name    string
		r       Requester
		ownerID int64
		want    bool
	}{
		{"owner", Requester{UserID: 5, Role: models.RoleSeeker}, 5, true},
		{"stranger", Requester{UserID: 5, Role: models.RoleSeeker}, 6, false},
		{"employer stranger", Requester{UserID: 5, Role: models.RoleEmployer}, 6, false},
		{"admin stranger", Requester{UserID: 5, Role: models.RoleAdmin}, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModifyOwned(tt.r, tt.ownerID); got != tt.want {
				t.Errorf("CanModifyOwned() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplicationScopeFor(t *testing.T) {
	tests := []struct {
		role models.Role
		want ApplicationScope
	}{
		{models.RoleSeeker, ScopeOwn},
		{models.RoleEmployer, ScopeEmployer},
		// Admins list their own applications, not everyone's
		{models.RoleAdmin, ScopeOwn},
	}

	for _, tt := range tests {
		r := Requester{UserID: 1, Role: tt.role}
		if got := ApplicationScopeFor(r); got != tt.want {
			t.Errorf("ApplicationScopeFor(%s) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
