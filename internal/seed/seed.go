package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/oguzk/jobport/internal/app/models"
	appRepos "github.com/oguzk/jobport/internal/app/repositories"
	pkgAuth "github.com/oguzk/jobport/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@jobport.local"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData creates the default admin account if it does not exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := pkgAuth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Email:      defaultAdminEmail,
		Password:   hashedPassword,
		Role:       appModels.RoleAdmin,
		IsVerified: true,
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	if _, err := userRepo.CreateProfile(ctx, &appModels.UserProfile{UserID: adminID}); err != nil {
		lgr.Error().Err(err).Int64("adminID", adminID).Msg("Error creating admin profile")
		return err
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
	return nil
}
