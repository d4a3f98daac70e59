package identity

// Role defines the access level of a user within the platform
type Role string

const (
	// RoleSuperAdmin operates the platform itself and is not bound to a company
	RoleSuperAdmin Role = "super_admin"
	// RoleCompanyAdmin administers a single company and everything in it
	RoleCompanyAdmin Role = "company_admin"
	// RoleManager runs day-to-day operations of a company's branches
	RoleManager Role = "manager"
	// RoleSalesperson records sales and works the cash register
	RoleSalesperson Role = "salesperson"
	// RoleCustomer is an end customer of the online shop
	RoleCustomer Role = "customer"
)

// AllRoles lists every valid role
var AllRoles = []Role{
	RoleSuperAdmin,
	RoleCompanyAdmin,
	RoleManager,
	RoleSalesperson,
	RoleCustomer,
}

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleManager, RoleSalesperson, RoleCustomer:
		return true
	}
	return false
}

// IsStaff reports whether the role belongs to company personnel
func (r Role) IsStaff() bool {
	switch r {
	case RoleCompanyAdmin, RoleManager, RoleSalesperson:
		return true
	}
	return false
}

// CanManageUsers reports whether the role may create and modify user accounts
func (r Role) CanManageUsers() bool {
	return r == RoleSuperAdmin || r == RoleCompanyAdmin
}

// CanManageBranches reports whether the role may open, modify and close branches
func (r Role) CanManageBranches() bool {
	return r == RoleSuperAdmin || r == RoleCompanyAdmin
}

// CanManageCatalog reports whether the role may modify products, categories and suppliers
func (r Role) CanManageCatalog() bool {
	return r == RoleSuperAdmin || r == RoleCompanyAdmin || r == RoleManager
}

// CanAdjustStock reports whether the role may perform manual stock adjustments
func (r Role) CanAdjustStock() bool {
	return r == RoleSuperAdmin || r == RoleCompanyAdmin || r == RoleManager
}

// CanRecordSales reports whether the role may register point-of-sale transactions
func (r Role) CanRecordSales() bool {
	return r == RoleSuperAdmin || r == RoleCompanyAdmin || r == RoleManager || r == RoleSalesperson
}

// CanProcessOrders reports whether the role may fulfill online orders
func (r Role) CanProcessOrders() bool {
	return r == RoleSuperAdmin || r == RoleCompanyAdmin || r == RoleManager || r == RoleSalesperson
}

// CanManageCompanies reports whether the role may create and modify companies
func (r Role) CanManageCompanies() bool {
	return r == RoleSuperAdmin
}
