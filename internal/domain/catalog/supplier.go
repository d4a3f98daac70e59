package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/shared/valueobject"
)

// Supplier is a vendor the company buys merchandise from
type Supplier struct {
	shared.CompanyAggregateRoot
	Name         string `gorm:"type:varchar(200);not null"`
	RUT          string `gorm:"type:varchar(12)"`
	ContactName  string `gorm:"type:varchar(100)"`
	ContactPhone string `gorm:"type:varchar(50)"`
	ContactEmail string `gorm:"type:varchar(200)"`
	Address      string `gorm:"type:text"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(companyID uuid.UUID, name string) (*Supplier, error) {
	if err := validateName(name, "supplier"); err != nil {
		return nil, err
	}

	return &Supplier{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 strings.TrimSpace(name),
		Active:               true,
	}, nil
}

// Rename changes the supplier name
func (s *Supplier) Rename(name string) error {
	if err := validateName(name, "supplier"); err != nil {
		return err
	}

	s.Name = strings.TrimSpace(name)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetRUT sets the supplier's tax identifier
func (s *Supplier) SetRUT(rut string) error {
	if strings.TrimSpace(rut) == "" {
		s.RUT = ""
	} else {
		parsed, err := valueobject.NewRUT(rut)
		if err != nil {
			return err
		}
		s.RUT = parsed.String()
	}

	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetContact updates the supplier's contact information
func (s *Supplier) SetContact(name, phone, email string) error {
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_CONTACT_PHONE", "Contact phone cannot exceed 50 characters")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_CONTACT_EMAIL", "Contact email cannot exceed 200 characters")
	}

	s.ContactName = strings.TrimSpace(name)
	s.ContactPhone = strings.TrimSpace(phone)
	s.ContactEmail = strings.ToLower(strings.TrimSpace(email))
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetAddress sets the supplier's address
func (s *Supplier) SetAddress(address string) {
	s.Address = strings.TrimSpace(address)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Deactivate marks the supplier as no longer in use
func (s *Supplier) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Activate marks the supplier as usable again
func (s *Supplier) Activate() {
	s.Active = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}
