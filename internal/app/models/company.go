package models

// Company represents an employer's company profile
type Company struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	WebsiteURL  *string `json:"websiteUrl,omitempty" db:"website_url"`
	LogoURL     *string `json:"logoUrl,omitempty" db:"logo_url"`
	Industry    *string `json:"industry,omitempty" db:"industry"`
	Size        *string `json:"size,omitempty" db:"size"`
	FoundedYear *int    `json:"foundedYear,omitempty" db:"founded_year"`
	Address     *string `json:"address,omitempty" db:"address"`
	City        *string `json:"city,omitempty" db:"city"`
	Country     *string `json:"country,omitempty" db:"country"`
	PostalCode  *string `json:"postalCode,omitempty" db:"postal_code"`
	Verified    bool    `json:"verified" db:"verified"`
	CreatedBy   int64   `json:"createdBy" db:"created_by"`
}
