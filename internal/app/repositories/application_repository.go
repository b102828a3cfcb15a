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

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var applicationColumns = []string{
	"a.id", "a.job_id", "a.user_id", "a.resume_url", "a.cover_letter_url",
	"a.status", "a.submitted_at", "a.updated_at", "a.notes",
	"u.id", "u.email", "u.role", "u.is_verified", "u.date_joined",
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	app := &models.Application{User: &models.User{}}
	u := app.User
	err := row.Scan(&app.ID, &app.JobID, &app.UserID, &app.ResumeURL, &app.CoverLetterURL,
		&app.Status, &app.SubmittedAt, &app.UpdatedAt, &app.Notes,
		&u.ID, &u.Email, &u.Role, &u.IsVerified, &u.DateJoined)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *ApplicationRepository) applicationSelect() squirrel.SelectBuilder {
	return r.sb.Select(applicationColumns...).
		From("applications a").
		Join("users u ON u.id = a.user_id")
}

// Create inserts a new application and returns its ID. A second application
// by the same user to the same posting violates the unique pair constraint.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("applications").
		Columns("job_id", "user_id", "resume_url", "cover_letter_url", "status",
			"submitted_at", "updated_at", "notes").
		Values(app.JobID, app.UserID, app.ResumeURL, app.CoverLetterURL, app.Status,
			now, now, app.Notes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAlreadyApplied
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", app.JobID).Int64("userID", app.UserID).
			Msg("Error executing create application query")
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return id, nil
}

// GetByID retrieves an application with its applicant
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.applicationSelect().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error scanning application row")
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return app, nil
}

// GetByUser retrieves the applications submitted by a user, newest first.
func (r *ApplicationRepository) GetByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Application, int64, error) {
	where := squirrel.Eq{"a.user_id": userID}
	return r.getPage(ctx, where, offset, limit)
}

// GetByEmployer retrieves the applications submitted to postings whose
// company was created by the given user, newest first.
func (r *ApplicationRepository) GetByEmployer(ctx context.Context, employerID int64, offset uint64, limit int) ([]*models.Application, int64, error) {
	where := squirrel.Eq{"c.created_by": employerID}
	return r.getPage(ctx, where, offset, limit)
}

func (r *ApplicationRepository) getPage(ctx context.Context, where squirrel.Eq, offset uint64, limit int) ([]*models.Application, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("applications a").
		Join("job_postings j ON j.id = a.job_id").
		Join("companies c ON c.id = j.company_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applications: %w", err)
	}

	sql, args, err := r.applicationSelect().
		Join("job_postings j ON j.id = a.job_id").
		Join("companies c ON c.id = j.company_id").
		Where(where).
		OrderBy("a.submitted_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, 0, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	apps := make([]*models.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, total, nil
}

// Update writes the mutable application fields back
func (r *ApplicationRepository) Update(ctx context.Context, app *models.Application) error {
	sql, args, err := r.sb.Update("applications").
		Set("resume_url", app.ResumeURL).
		Set("cover_letter_url", app.CoverLetterURL).
		Set("status", app.Status).
		Set("notes", app.Notes).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": app.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update application query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", app.ID).Msg("Error executing update application query")
		return fmt.Errorf("error updating application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// Delete removes an application by ID
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete application query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing delete application query")
		return fmt.Errorf("error deleting application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// GetJobOwner returns the ID of the user who created the company behind the
// application's job posting.
func (r *ApplicationRepository) GetJobOwner(ctx context.Context, applicationID int64) (int64, error) {
	sql, args, err := r.sb.Select("c.created_by").
		From("applications a").
		Join("job_postings j ON j.id = a.job_id").
		Join("companies c ON c.id = j.company_id").
		Where(squirrel.Eq{"a.id": applicationID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build get job owner query: %w", err)
	}

	var ownerID int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrApplicationNotFound
		}
		return 0, fmt.Errorf("error retrieving application job owner: %w", err)
	}

	return ownerID, nil
}
