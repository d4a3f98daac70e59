package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
)

// LoginRequest authenticates a user
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest signs up a new shop customer
type RegisterRequest struct {
	CompanyID uuid.UUID `json:"company_id" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Password  string    `json:"password" binding:"required,min=8"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	RUT       string    `json:"rut" binding:"omitempty,rut"`
}

// TokenResponse carries a signed access token
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// CreateUserRequest creates a staff account
type CreateUserRequest struct {
	CompanyID *uuid.UUID `json:"company_id"`
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required,min=8"`
	Role      string     `json:"role" binding:"required,oneof=super_admin company_admin manager salesperson customer"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	RUT       string     `json:"rut" binding:"omitempty,rut"`
	Phone     string     `json:"phone"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	RUT         string     `json:"rut,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToUserResponse converts a domain user to a response
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		CompanyID:   user.CompanyID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		RUT:         user.RUT,
		Phone:       user.Phone,
		Role:        string(user.Role),
		Status:      string(user.Status),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain users
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}

// CreateCompanyRequest registers a client business
type CreateCompanyRequest struct {
	RUT          string `json:"rut" binding:"required,rut"`
	Name         string `json:"name" binding:"required,max=200"`
	BusinessName string `json:"business_name"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	Address      string `json:"address"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID           uuid.UUID `json:"id"`
	RUT          string    `json:"rut"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name,omitempty"`
	Status       string    `json:"status"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToCompanyResponse converts a domain company to a response
func ToCompanyResponse(company *identity.Company) CompanyResponse {
	return CompanyResponse{
		ID:           company.ID,
		RUT:          company.RUT,
		Name:         company.Name,
		BusinessName: company.BusinessName,
		Status:       string(company.Status),
		ContactName:  company.ContactName,
		ContactPhone: company.ContactPhone,
		ContactEmail: company.ContactEmail,
		Address:      company.Address,
		CreatedAt:    company.CreatedAt,
	}
}

// ListFilter represents filter options for identity listings
type ListFilter struct {
	Search   string `form:"search"`
	Role     string `form:"role" binding:"omitempty,oneof=super_admin company_admin manager salesperson customer"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
