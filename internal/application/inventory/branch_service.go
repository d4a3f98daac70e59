package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// BranchService handles branch management
type BranchService struct {
	branchRepo inventory.BranchRepository
	logger     *zap.Logger
}

// NewBranchService creates a new BranchService
func NewBranchService(branchRepo inventory.BranchRepository, logger *zap.Logger) *BranchService {
	return &BranchService{branchRepo: branchRepo, logger: logger}
}

// Create opens a new branch for the actor's company
func (s *BranchService) Create(ctx context.Context, actor identity.Actor, req CreateBranchRequest) (*BranchResponse, error) {
	if !actor.Role.CanManageBranches() {
		return nil, shared.ErrForbidden
	}
	if actor.CompanyID == nil {
		return nil, shared.ErrForbidden
	}

	branch, err := inventory.NewBranch(*actor.CompanyID, req.Name)
	if err != nil {
		return nil, err
	}
	branch.SetAddress(req.Address)
	if err := branch.SetPhone(req.Phone); err != nil {
		return nil, err
	}

	if err := s.branchRepo.Save(ctx, branch); err != nil {
		return nil, err
	}

	s.logger.Info("branch created",
		zap.String("branch_id", branch.ID.String()),
		zap.String("company_id", branch.CompanyID.String()),
		zap.String("name", branch.Name))

	response := ToBranchResponse(branch)
	return &response, nil
}

// Update changes branch details
func (s *BranchService) Update(ctx context.Context, actor identity.Actor, branchID uuid.UUID, req UpdateBranchRequest) (*BranchResponse, error) {
	if !actor.Role.CanManageBranches() {
		return nil, shared.ErrForbidden
	}

	branch, err := s.branchRepo.FindByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(branch.CompanyID) {
		return nil, shared.ErrNotFound
	}

	if req.Name != nil {
		if err := branch.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		branch.SetAddress(*req.Address)
	}
	if req.Phone != nil {
		if err := branch.SetPhone(*req.Phone); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		if *req.Active {
			branch.Activate()
		} else {
			branch.Deactivate()
		}
	}

	if err := s.branchRepo.Save(ctx, branch); err != nil {
		return nil, err
	}

	response := ToBranchResponse(branch)
	return &response, nil
}

// Get retrieves a single branch
func (s *BranchService) Get(ctx context.Context, actor identity.Actor, branchID uuid.UUID) (*BranchResponse, error) {
	branch, err := s.branchRepo.FindByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(branch.CompanyID) {
		return nil, shared.ErrNotFound
	}

	response := ToBranchResponse(branch)
	return &response, nil
}

// List retrieves the branches visible to the actor
func (s *BranchService) List(ctx context.Context, actor identity.Actor, companyID *uuid.UUID, filter ListFilter) ([]BranchResponse, int64, error) {
	scopeID, visible := resolveCompanyScope(actor, companyID)
	if !visible {
		return []BranchResponse{}, 0, nil
	}

	branches, total, err := s.branchRepo.FindAllForCompany(ctx, scopeID, toDomainFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	return ToBranchResponses(branches), total, nil
}
