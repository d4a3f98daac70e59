package identity

import "github.com/google/uuid"

// Actor is the authenticated principal performing an operation.
// CompanyID is nil for super admins, who are not bound to any company.
type Actor struct {
	UserID    uuid.UUID
	CompanyID *uuid.UUID
	Role      Role
}

// AllAccess reports whether the actor sees data across all companies
func (a Actor) AllAccess() bool {
	return a.Role == RoleSuperAdmin
}

// BelongsTo reports whether the actor is scoped to the given company
func (a Actor) BelongsTo(companyID uuid.UUID) bool {
	if a.AllAccess() {
		return true
	}
	return a.CompanyID != nil && *a.CompanyID == companyID
}
