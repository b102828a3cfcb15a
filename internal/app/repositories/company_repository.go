package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/pkg/apperrors"
	"github.com/oguzk/jobport/internal/pkg/logger"
)

// CompanyRepository handles company database operations
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const companyColumns = "id, name, description, website_url, logo_url, industry, size, founded_year, address, city, country, postal_code, verified, created_by"

func scanCompany(row pgx.Row) (*models.Company, error) {
	company := &models.Company{}
	err := row.Scan(&company.ID, &company.Name, &company.Description, &company.WebsiteURL,
		&company.LogoURL, &company.Industry, &company.Size, &company.FoundedYear,
		&company.Address, &company.City, &company.Country, &company.PostalCode,
		&company.Verified, &company.CreatedBy)
	if err != nil {
		return nil, err
	}
	return company, nil
}

// Create inserts a new company and returns its ID.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) (int64, error) {
	sql, args, err := r.sb.Insert("companies").
		Columns("name", "description", "website_url", "logo_url", "industry", "size",
			"founded_year", "address", "city", "country", "postal_code", "verified", "created_by").
		Values(company.Name, company.Description, company.WebsiteURL, company.LogoURL,
			company.Industry, company.Size, company.FoundedYear, company.Address,
			company.City, company.Country, company.PostalCode, company.Verified, company.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create company query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("name", company.Name).Msg("Error executing create company query")
		return 0, fmt.Errorf("error creating company: %w", err)
	}

	return id, nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	sql, args, err := r.sb.Select(companyColumns).
		From("companies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	company, err := scanCompany(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		logger.Error().Err(err).Int64("companyID", id).Msg("Error scanning company row")
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}

	return company, nil
}

// GetAll retrieves a page of companies ordered by name, with the total count.
func (r *CompanyRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Company, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("companies").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count companies query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting companies: %w", err)
	}

	sql, args, err := r.sb.Select(companyColumns).
		From("companies").
		OrderBy("name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list companies query")
		return nil, 0, fmt.Errorf("error listing companies: %w", err)
	}
	defer rows.Close()

	companies := make([]*models.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning company row: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating company rows: %w", err)
	}

	return companies, total, nil
}

// Update writes the mutable company fields back
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	sql, args, err := r.sb.Update("companies").
		Set("name", company.Name).
		Set("description", company.Description).
		Set("website_url", company.WebsiteURL).
		Set("logo_url", company.LogoURL).
		Set("industry", company.Industry).
		Set("size", company.Size).
		Set("founded_year", company.FoundedYear).
		Set("address", company.Address).
		Set("city", company.City).
		Set("country", company.Country).
		Set("postal_code", company.PostalCode).
		Where(squirrel.Eq{"id": company.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update company query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("companyID", company.ID).Msg("Error executing update company query")
		return fmt.Errorf("error updating company: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}

// Delete removes a company by ID
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("companies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete company query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("companyID", id).Msg("Error executing delete company query")
		return fmt.Errorf("error deleting company: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}
