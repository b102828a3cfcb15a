package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	CompanyRepository     *CompanyRepository
	JobRepository         *JobRepository
	ApplicationRepository *ApplicationRepository
	BookmarkRepository    *BookmarkRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		CompanyRepository:     NewCompanyRepository(db),
		JobRepository:         NewJobRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		BookmarkRepository:    NewBookmarkRepository(db),
	}
}
