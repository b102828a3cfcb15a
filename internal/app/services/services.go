// Package services holds the business logic between the HTTP controllers
// and the repositories. Each service depends on narrow store interfaces so
// the logic can be tested without a database.
//
// Services defined in this package:
// - AuthService: registration, login, token refresh and profile management
// - CompanyService: company CRUD with ownership stamping
// - JobService: job posting CRUD, publishing, search and view counting
// - ApplicationService: role-scoped application handling
// - BookmarkService: per-user saved postings
package services

import (
	"github.com/oguzk/jobport/internal/app/repositories"
	"github.com/oguzk/jobport/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService        *AuthService
	CompanyService     *CompanyService
	JobService         *JobService
	ApplicationService *ApplicationService
	BookmarkService    *BookmarkService
}

// NewServices wires every service to the concrete repositories. The view
// counter is passed in so the scheduler can share it for flushing.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, views ViewCounter) *Services {
	return &Services{
		AuthService:        NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		CompanyService:     NewCompanyService(repos.CompanyRepository),
		JobService:         NewJobService(repos.JobRepository, repos.CompanyRepository, views),
		ApplicationService: NewApplicationService(repos.ApplicationRepository, repos.JobRepository),
		BookmarkService:    NewBookmarkService(repos.BookmarkRepository, repos.JobRepository),
	}
}
