package identity

import (
	"strings"
	"time"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/shared/valueobject"
)

// CompanyStatus represents the status of a company
type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "active"
	CompanyStatusInactive  CompanyStatus = "inactive"
	CompanyStatusSuspended CompanyStatus = "suspended" // Suspended due to payment/violation issues
)

// Company represents a client business operating on the platform.
// It is the aggregate root that all tenant-scoped data hangs off.
type Company struct {
	shared.BaseAggregateRoot
	RUT          string        `gorm:"type:varchar(12);not null;uniqueIndex"`
	Name         string        `gorm:"type:varchar(200);not null"`
	BusinessName string        `gorm:"type:varchar(200)"` // Legal name (razón social)
	Status       CompanyStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ContactName  string        `gorm:"type:varchar(100)"`
	ContactPhone string        `gorm:"type:varchar(50)"`
	ContactEmail string        `gorm:"type:varchar(200)"`
	Address      string        `gorm:"type:text"`
	LogoURL      string        `gorm:"type:varchar(500)"`
	Notes        string        `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company with required fields
func NewCompany(rut, name string) (*Company, error) {
	parsed, err := valueobject.NewRUT(rut)
	if err != nil {
		return nil, err
	}
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}

	company := &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RUT:               parsed.String(),
		Name:              strings.TrimSpace(name),
		Status:            CompanyStatusActive,
	}

	return company, nil
}

// Rename changes the company's display name
func (c *Company) Rename(name string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetBusinessName sets the legal business name
func (c *Company) SetBusinessName(businessName string) error {
	if len(businessName) > 200 {
		return shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot exceed 200 characters")
	}

	c.BusinessName = strings.TrimSpace(businessName)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetContact updates the company's contact information
func (c *Company) SetContact(name, phone, email string) error {
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_CONTACT_PHONE", "Contact phone cannot exceed 50 characters")
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.ContactName = strings.TrimSpace(name)
	c.ContactPhone = strings.TrimSpace(phone)
	c.ContactEmail = strings.ToLower(strings.TrimSpace(email))
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetAddress sets the company's address
func (c *Company) SetAddress(address string) {
	c.Address = strings.TrimSpace(address)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Activate activates the company
func (c *Company) Activate() error {
	if c.Status == CompanyStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Company is already active")
	}

	c.Status = CompanyStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate deactivates the company
func (c *Company) Deactivate() error {
	if c.Status == CompanyStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Company is already inactive")
	}

	c.Status = CompanyStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Suspend suspends the company
func (c *Company) Suspend() error {
	if c.Status == CompanyStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Company is already suspended")
	}

	c.Status = CompanyStatusSuspended
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// IsActive checks if the company can operate
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}

func validateCompanyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}
