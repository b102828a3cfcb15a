package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
	"github.com/oguzk/jobport/internal/pkg/dberrors"
	"github.com/oguzk/jobport/internal/pkg/logger"
)

// JobListFilters narrows job listings by exact column matches. Zero values
// mean the column is not filtered.
type JobListFilters struct {
	EmploymentType string
	LocationType   string
	City           string
	Country        string
	Status         string
}

// JobSearchQuery carries the free-form search parameters. All fields are
// optional and combined with AND.
type JobSearchQuery struct {
	Location       string
	EmploymentType string
	MinSalary      *float64
	Query          string
}

// JobRepository handles job posting database operations
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var jobWithCompanyColumns = []string{
	"j.id", "j.company_id", "j.title", "j.description", "j.requirements",
	"j.employment_type", "j.salary_range_min", "j.salary_range_max", "j.currency",
	"j.location_type", "j.address", "j.city", "j.country",
	"j.date_posted", "j.application_deadline", "j.status", "j.views_count",
	"c.id", "c.name", "c.description", "c.website_url", "c.logo_url",
	"c.industry", "c.size", "c.founded_year", "c.address", "c.city",
	"c.country", "c.postal_code", "c.verified", "c.created_by",
}

func scanJobWithCompany(row pgx.Row) (*models.JobPosting, error) {
	job := &models.JobPosting{Company: &models.Company{}}
	c := job.Company
	err := row.Scan(&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.Requirements,
		&job.EmploymentType, &job.SalaryRangeMin, &job.SalaryRangeMax, &job.Currency,
		&job.LocationType, &job.Address, &job.City, &job.Country,
		&job.DatePosted, &job.ApplicationDeadline, &job.Status, &job.ViewsCount,
		&c.ID, &c.Name, &c.Description, &c.WebsiteURL, &c.LogoURL,
		&c.Industry, &c.Size, &c.FoundedYear, &c.Address, &c.City,
		&c.Country, &c.PostalCode, &c.Verified, &c.CreatedBy)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *JobRepository) jobSelect() squirrel.SelectBuilder {
	return r.sb.Select(jobWithCompanyColumns...).
		From("job_postings j").
		Join("companies c ON c.id = j.company_id")
}

// Create inserts a new job posting and returns its ID.
func (r *JobRepository) Create(ctx context.Context, job *models.JobPosting) (int64, error) {
	sql, args, err := r.sb.Insert("job_postings").
		Columns("company_id", "title", "description", "requirements", "employment_type",
			"salary_range_min", "salary_range_max", "currency", "location_type",
			"address", "city", "country", "date_posted", "application_deadline",
			"status", "views_count").
		Values(job.CompanyID, job.Title, job.Description, job.Requirements, job.EmploymentType,
			job.SalaryRangeMin, job.SalaryRangeMax, job.Currency, job.LocationType,
			job.Address, job.City, job.Country, time.Now(), job.ApplicationDeadline,
			job.Status, 0).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create job query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCompanyNotFound
		}
		logger.Error().Err(err).Str("title", job.Title).Msg("Error executing create job query")
		return 0, fmt.Errorf("error creating job posting: %w", err)
	}

	return id, nil
}

// GetByID retrieves a job posting with its company
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	sql, args, err := r.jobSelect().
		Where(squirrel.Eq{"j.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	job, err := scanJobWithCompany(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error scanning job row")
		return nil, fmt.Errorf("error retrieving job posting: %w", err)
	}

	return job, nil
}

func listConditions(filters JobListFilters) squirrel.And {
	conds := squirrel.And{}
	if filters.EmploymentType != "" {
		conds = append(conds, squirrel.Eq{"j.employment_type": filters.EmploymentType})
	}
	if filters.LocationType != "" {
		conds = append(conds, squirrel.Eq{"j.location_type": filters.LocationType})
	}
	if filters.City != "" {
		conds = append(conds, squirrel.Eq{"j.city": filters.City})
	}
	if filters.Country != "" {
		conds = append(conds, squirrel.Eq{"j.country": filters.Country})
	}
	if filters.Status != "" {
		conds = append(conds, squirrel.Eq{"j.status": filters.Status})
	}
	return conds
}

// GetAll retrieves a page of job postings matching the filters, newest first.
func (r *JobRepository) GetAll(ctx context.Context, filters JobListFilters, offset uint64, limit int) ([]*models.JobPosting, int64, error) {
	conds := listConditions(filters)

	countBuilder := r.sb.Select("COUNT(*)").From("job_postings j")
	if len(conds) > 0 {
		countBuilder = countBuilder.Where(conds)
	}
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count jobs query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting job postings: %w", err)
	}

	builder := r.jobSelect()
	if len(conds) > 0 {
		builder = builder.Where(conds)
	}
	sql, args, err := builder.
		OrderBy("j.date_posted DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list jobs query: %w", err)
	}

	jobs, err := r.queryJobs(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// likeEscaper neutralizes LIKE metacharacters so user input only ever
// matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// searchConditions translates a search query into SQL conditions. Location
// matches city or country as a substring, the free-text term matches title,
// description or requirements, and min_salary bounds salary_range_max from
// below.
func searchConditions(q JobSearchQuery) squirrel.And {
	conds := squirrel.And{}
	if q.Location != "" {
		pattern := containsPattern(q.Location)
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"j.city": pattern},
			squirrel.ILike{"j.country": pattern},
		})
	}
	if q.EmploymentType != "" {
		conds = append(conds, squirrel.Eq{"j.employment_type": q.EmploymentType})
	}
	if q.MinSalary != nil {
		conds = append(conds, squirrel.GtOrEq{"j.salary_range_max": *q.MinSalary})
	}
	if q.Query != "" {
		pattern := containsPattern(q.Query)
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"j.title": pattern},
			squirrel.ILike{"j.description": pattern},
			squirrel.ILike{"j.requirements": pattern},
		})
	}
	return conds
}

// Search retrieves every job posting matching the query, newest first.
func (r *JobRepository) Search(ctx context.Context, q JobSearchQuery) ([]*models.JobPosting, error) {
	builder := r.jobSelect()
	if conds := searchConditions(q); len(conds) > 0 {
		builder = builder.Where(conds)
	}
	sql, args, err := builder.OrderBy("j.date_posted DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search jobs query: %w", err)
	}

	return r.queryJobs(ctx, sql, args)
}

func (r *JobRepository) queryJobs(ctx context.Context, sql string, args []interface{}) ([]*models.JobPosting, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing job query")
		return nil, fmt.Errorf("error querying job postings: %w", err)
	}
	defer rows.Close()

	jobs := make([]*models.JobPosting, 0)
	for rows.Next() {
		job, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, nil
}

// Update writes the mutable posting fields back
func (r *JobRepository) Update(ctx context.Context, job *models.JobPosting) error {
	sql, args, err := r.sb.Update("job_postings").
		Set("title", job.Title).
		Set("description", job.Description).
		Set("requirements", job.Requirements).
		Set("employment_type", job.EmploymentType).
		Set("salary_range_min", job.SalaryRangeMin).
		Set("salary_range_max", job.SalaryRangeMax).
		Set("currency", job.Currency).
		Set("location_type", job.LocationType).
		Set("address", job.Address).
		Set("city", job.City).
		Set("country", job.Country).
		Set("application_deadline", job.ApplicationDeadline).
		Set("status", job.Status).
		Where(squirrel.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update job query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", job.ID).Msg("Error executing update job query")
		return fmt.Errorf("error updating job posting: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// UpdateStatus sets a posting's status without touching the other fields
func (r *JobRepository) UpdateStatus(ctx context.Context, id int64, status models.JobStatus) error {
	sql, args, err := r.sb.Update("job_postings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update job status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", id).Msg("Error executing update job status query")
		return fmt.Errorf("error updating job status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// Delete removes a job posting by ID
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("job_postings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete job query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", id).Msg("Error executing delete job query")
		return fmt.Errorf("error deleting job posting: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// AddViews adds a flushed view counter delta to a posting
func (r *JobRepository) AddViews(ctx context.Context, id int64, delta int64) error {
	sql, args, err := r.sb.Update("job_postings").
		Set("views_count", squirrel.Expr("views_count + ?", delta)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add views query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", id).Msg("Error executing add views query")
		return fmt.Errorf("error adding job views: %w", err)
	}

	return nil
}

// CloseExpired marks active postings whose application deadline has passed as
// closed and returns the number of postings affected.
func (r *JobRepository) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := r.sb.Update("job_postings").
		Set("status", models.JobStatusClosed).
		Where(squirrel.Eq{"status": models.JobStatusActive}).
		Where(squirrel.Lt{"application_deadline": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build close expired jobs query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing close expired jobs query")
		return 0, fmt.Errorf("error closing expired job postings: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
