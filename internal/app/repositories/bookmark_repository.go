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

// BookmarkRepository handles bookmark database operations
type BookmarkRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBookmarkRepository creates a new BookmarkRepository
func NewBookmarkRepository(db *pgxpool.Pool) *BookmarkRepository {
	return &BookmarkRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanBookmark(row pgx.Row) (*models.Bookmark, error) {
	bookmark := &models.Bookmark{}
	err := row.Scan(&bookmark.ID, &bookmark.UserID, &bookmark.JobID, &bookmark.CreatedAt)
	if err != nil {
		return nil, err
	}
	return bookmark, nil
}

// Create inserts a new bookmark and returns its ID. Bookmarking the same
// posting twice violates the unique pair constraint.
func (r *BookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) (int64, error) {
	sql, args, err := r.sb.Insert("bookmarks").
		Columns("user_id", "job_id", "created_at").
		Values(bookmark.UserID, bookmark.JobID, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create bookmark query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAlreadyBookmarked
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", bookmark.JobID).Int64("userID", bookmark.UserID).
			Msg("Error executing create bookmark query")
		return 0, fmt.Errorf("error creating bookmark: %w", err)
	}

	return id, nil
}

// GetByIDForUser retrieves one of a user's bookmarks. Bookmarks belonging to
// other users are reported as not found.
func (r *BookmarkRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	sql, args, err := r.sb.Select("id", "user_id", "job_id", "created_at").
		From("bookmarks").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get bookmark query: %w", err)
	}

	bookmark, err := scanBookmark(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookmarkNotFound
		}
		logger.Error().Err(err).Int64("bookmarkID", id).Msg("Error scanning bookmark row")
		return nil, fmt.Errorf("error retrieving bookmark: %w", err)
	}

	return bookmark, nil
}

// GetByUser retrieves a user's bookmarks, newest first.
func (r *BookmarkRepository) GetByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Bookmark, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("bookmarks").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count bookmarks query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting bookmarks: %w", err)
	}

	sql, args, err := r.sb.Select("id", "user_id", "job_id", "created_at").
		From("bookmarks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list bookmarks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing list bookmarks query")
		return nil, 0, fmt.Errorf("error listing bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := make([]*models.Bookmark, 0)
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning bookmark row: %w", err)
		}
		bookmarks = append(bookmarks, bookmark)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating bookmark rows: %w", err)
	}

	return bookmarks, total, nil
}

// UpdateJob repoints a bookmark at a different posting
func (r *BookmarkRepository) UpdateJob(ctx context.Context, id, jobID int64) error {
	sql, args, err := r.sb.Update("bookmarks").
		Set("job_id", jobID).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update bookmark query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyBookmarked
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("bookmarkID", id).Msg("Error executing update bookmark query")
		return fmt.Errorf("error updating bookmark: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookmarkNotFound
	}

	return nil
}

// DeleteForUser removes one of a user's bookmarks. Bookmarks belonging to
// other users are reported as not found.
func (r *BookmarkRepository) DeleteForUser(ctx context.Context, id, userID int64) error {
	sql, args, err := r.sb.Delete("bookmarks").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete bookmark query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("bookmarkID", id).Msg("Error executing delete bookmark query")
		return fmt.Errorf("error deleting bookmark: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookmarkNotFound
	}

	return nil
}
