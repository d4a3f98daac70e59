package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// Category groups products for navigation and reporting
type Category struct {
	shared.CompanyAggregateRoot
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Active      bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(companyID uuid.UUID, name string) (*Category, error) {
	if err := validateName(name, "category"); err != nil {
		return nil, err
	}

	return &Category{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 strings.TrimSpace(name),
		Active:               true,
	}, nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	if err := validateName(name, "category"); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetDescription sets the category description
func (c *Category) SetDescription(description string) {
	c.Description = strings.TrimSpace(description)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Deactivate hides the category without deleting it
func (c *Category) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Activate makes the category visible again
func (c *Category) Activate() {
	c.Active = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

func validateName(name, kind string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "The "+kind+" name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "The "+kind+" name cannot exceed 100 characters")
	}
	return nil
}
