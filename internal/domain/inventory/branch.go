package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// Branch is a physical location of a company that holds stock
type Branch struct {
	shared.CompanyAggregateRoot
	Name    string `gorm:"type:varchar(100);not null"`
	Address string `gorm:"type:text"`
	Phone   string `gorm:"type:varchar(50)"`
	Active  bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Branch) TableName() string {
	return "branches"
}

// NewBranch creates a new branch
func NewBranch(companyID uuid.UUID, name string) (*Branch, error) {
	if err := validateBranchName(name); err != nil {
		return nil, err
	}

	return &Branch{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 strings.TrimSpace(name),
		Active:               true,
	}, nil
}

// Rename changes the branch name
func (b *Branch) Rename(name string) error {
	if err := validateBranchName(name); err != nil {
		return err
	}

	b.Name = strings.TrimSpace(name)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// SetAddress sets the branch address
func (b *Branch) SetAddress(address string) {
	b.Address = strings.TrimSpace(address)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// SetPhone sets the branch phone number
func (b *Branch) SetPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	b.Phone = strings.TrimSpace(phone)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// Deactivate closes the branch
func (b *Branch) Deactivate() {
	b.Active = false
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// Activate reopens the branch
func (b *Branch) Activate() {
	b.Active = true
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

func validateBranchName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_BRANCH_NAME", "Branch name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_BRANCH_NAME", "Branch name cannot exceed 100 characters")
	}
	return nil
}
