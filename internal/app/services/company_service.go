package services

import (
	"context"

	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/pkg/helpers"
	"github.com/oguzk/jobport/internal/pkg/sanitize"
)

// CompanyStore is the company persistence surface
type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Company, int64, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id int64) error
}

// CompanyService handles company operations
type CompanyService struct {
	companyStore CompanyStore
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyStore CompanyStore) *CompanyService {
	return &CompanyService{companyStore: companyStore}
}

// Create registers a new company owned by the requesting user. The server
// stamps created_by; any value a client sends for it is ignored by the
// request type.
func (s *CompanyService) Create(ctx context.Context, creatorID int64, req *dto.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:        req.Name,
		Description: sanitize.UGCPtr(req.Description),
		WebsiteURL:  req.WebsiteURL,
		LogoURL:     req.LogoURL,
		Industry:    req.Industry,
		Size:        req.Size,
		FoundedYear: req.FoundedYear,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		PostalCode:  req.PostalCode,
		Verified:    false,
		CreatedBy:   creatorID,
	}

	id, err := s.companyStore.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	return s.companyStore.GetByID(ctx, id)
}

// GetByID retrieves a single company
func (s *CompanyService) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	return s.companyStore.GetByID(ctx, id)
}

// GetAll retrieves a page of companies
func (s *CompanyService) GetAll(ctx context.Context, page, pageSize int) ([]*models.Company, *dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	companies, total, err := s.companyStore.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, nil, err
	}

	pagination := helpers.NewPaginationInfo(total, page, pageSize)
	return companies, &pagination, nil
}

// Update replaces a company's mutable fields. Verification status and the
// owning user never change through this path.
func (s *CompanyService) Update(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.companyStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = req.Name
	company.Description = sanitize.UGCPtr(req.Description)
	company.WebsiteURL = req.WebsiteURL
	company.LogoURL = req.LogoURL
	company.Industry = req.Industry
	company.Size = req.Size
	company.FoundedYear = req.FoundedYear
	company.Address = req.Address
	company.City = req.City
	company.Country = req.Country
	company.PostalCode = req.PostalCode

	if err := s.companyStore.Update(ctx, company); err != nil {
		return nil, err
	}

	return s.companyStore.GetByID(ctx, id)
}

// Delete removes a company and, through cascading, its postings
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	return s.companyStore.Delete(ctx, id)
}
