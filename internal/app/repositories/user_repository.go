package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
	"github.com/oguzk/jobport/internal/pkg/dberrors"
	"github.com/oguzk/jobport/internal/pkg/logger"
)

// UserRepository handles user and profile database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUser inserts a new user row and returns its ID.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("email", "password", "role", "is_verified", "date_joined").
		Values(user.Email, user.Password, user.Role, user.IsVerified, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "email", "password", "role", "is_verified", "date_joined").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.IsVerified, &user.DateJoined)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "email", "password", "role", "is_verified", "date_joined").
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.IsVerified, &user.DateJoined)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email exists query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return true, nil
}

// CreateProfile inserts an empty profile row for a freshly registered user.
func (r *UserRepository) CreateProfile(ctx context.Context, profile *models.UserProfile) (int64, error) {
	skills := profile.Skills
	if skills == nil {
		skills = []string{}
	}
	education := profile.Education
	if education == nil {
		education = map[string]interface{}{}
	}
	experience := profile.Experience
	if experience == nil {
		experience = map[string]interface{}{}
	}

	sql, args, err := r.sb.Insert("user_profiles").
		Columns("user_id", "bio", "avatar_url", "location", "contact_info", "skills", "education", "experience", "resume_url").
		Values(profile.UserID, profile.Bio, profile.AvatarURL, profile.Location, profile.ContactInfo, skills, education, experience, profile.ResumeURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create profile query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "user_profiles_user_id_key") {
			return 0, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error executing create profile query")
		return 0, fmt.Errorf("error creating profile: %w", err)
	}

	return id, nil
}

// GetProfileByUserID retrieves a user's profile
func (r *UserRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	sql, args, err := r.sb.Select("id", "user_id", "bio", "avatar_url", "location", "contact_info",
		"skills", "education", "experience", "resume_url").
		From("user_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile := &models.UserProfile{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&profile.ID, &profile.UserID, &profile.Bio, &profile.AvatarURL, &profile.Location,
			&profile.ContactInfo, &profile.Skills, &profile.Education, &profile.Experience, &profile.ResumeURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile writes the full profile row back for the given user.
func (r *UserRepository) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	sql, args, err := r.sb.Update("user_profiles").
		Set("bio", profile.Bio).
		Set("avatar_url", profile.AvatarURL).
		Set("location", profile.Location).
		Set("contact_info", profile.ContactInfo).
		Set("skills", profile.Skills).
		Set("education", profile.Education).
		Set("experience", profile.Experience).
		Set("resume_url", profile.ResumeURL).
		Where(squirrel.Eq{"user_id": profile.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error executing update profile query")
		return fmt.Errorf("error updating profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}
