package dto

// CreateCompanyRequest represents the payload for creating a company.
// created_by and verified are read-only: they are stamped server-side.
type CreateCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	WebsiteURL  *string `json:"websiteUrl" binding:"omitempty,url"`
	LogoURL     *string `json:"logoUrl" binding:"omitempty,url"`
	Industry    *string `json:"industry"`
	Size        *string `json:"size"`
	FoundedYear *int    `json:"foundedYear"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	PostalCode  *string `json:"postalCode"`
}

// UpdateCompanyRequest represents the payload for a full company update (PUT)
type UpdateCompanyRequest = CreateCompanyRequest
