package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// CompanyService handles platform-level company administration
type CompanyService struct {
	companyRepo identity.CompanyRepository
	logger      *zap.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo identity.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Create registers a client business on the platform
func (s *CompanyService) Create(ctx context.Context, actor identity.Actor, req CreateCompanyRequest) (*CompanyResponse, error) {
	if !actor.Role.CanManageCompanies() {
		return nil, shared.ErrForbidden
	}

	company, err := identity.NewCompany(req.RUT, req.Name)
	if err != nil {
		return nil, err
	}

	exists, err := s.companyRepo.ExistsByRUT(ctx, company.RUT)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_RUT", "A company with this RUT already exists")
	}

	if err := company.SetBusinessName(req.BusinessName); err != nil {
		return nil, err
	}
	if err := company.SetContact(req.ContactName, req.ContactPhone, req.ContactEmail); err != nil {
		return nil, err
	}
	company.SetAddress(req.Address)

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info("company created",
		zap.String("company_id", company.ID.String()),
		zap.String("rut", company.RUT))

	response := ToCompanyResponse(company)
	return &response, nil
}

// Get retrieves a company. Members can read their own company.
func (s *CompanyService) Get(ctx context.Context, actor identity.Actor, companyID uuid.UUID) (*CompanyResponse, error) {
	if !actor.BelongsTo(companyID) {
		return nil, shared.ErrNotFound
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// List retrieves all companies. Super admin only.
func (s *CompanyService) List(ctx context.Context, actor identity.Actor, filter ListFilter) ([]CompanyResponse, int64, error) {
	if !actor.Role.CanManageCompanies() {
		return nil, 0, shared.ErrForbidden
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search

	companies, total, err := s.companyRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = ToCompanyResponse(&companies[i])
	}
	return responses, total, nil
}

// Suspend suspends a company
func (s *CompanyService) Suspend(ctx context.Context, actor identity.Actor, companyID uuid.UUID) (*CompanyResponse, error) {
	if !actor.Role.CanManageCompanies() {
		return nil, shared.ErrForbidden
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := company.Suspend(); err != nil {
		return nil, err
	}
	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Activate reactivates a company
func (s *CompanyService) Activate(ctx context.Context, actor identity.Actor, companyID uuid.UUID) (*CompanyResponse, error) {
	if !actor.Role.CanManageCompanies() {
		return nil, shared.ErrForbidden
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := company.Activate(); err != nil {
		return nil, err
	}
	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}
