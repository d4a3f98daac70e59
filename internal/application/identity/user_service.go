package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// UserService handles account administration
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create adds an account. Company admins can only create accounts inside
// their own company and can never mint super admins.
func (s *UserService) Create(ctx context.Context, actor identity.Actor, req CreateUserRequest) (*UserResponse, error) {
	if !actor.Role.CanManageUsers() {
		return nil, shared.ErrForbidden
	}

	role := identity.Role(req.Role)
	companyID := req.CompanyID
	if !actor.AllAccess() {
		if role == identity.RoleSuperAdmin {
			return nil, shared.ErrForbidden
		}
		companyID = actor.CompanyID
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_EMAIL", "An account with this email already exists")
	}

	user, err := identity.NewUser(req.Email, req.Password, role, companyID)
	if err != nil {
		return nil, err
	}
	if err := user.SetName(req.FirstName, req.LastName); err != nil {
		return nil, err
	}
	if err := user.SetRUT(req.RUT); err != nil {
		return nil, err
	}
	if err := user.SetPhone(req.Phone); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role),
		zap.String("created_by", actor.UserID.String()))

	response := ToUserResponse(user)
	return &response, nil
}

// Get retrieves a user. Users can always read their own account.
func (s *UserService) Get(ctx context.Context, actor identity.Actor, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if actor.UserID != user.ID {
		if !actor.Role.CanManageUsers() {
			return nil, shared.ErrForbidden
		}
		if user.CompanyID == nil {
			if !actor.AllAccess() {
				return nil, shared.ErrNotFound
			}
		} else if !actor.BelongsTo(*user.CompanyID) {
			return nil, shared.ErrNotFound
		}
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users visible to the actor
func (s *UserService) List(ctx context.Context, actor identity.Actor, filter ListFilter) ([]UserResponse, int64, error) {
	if !actor.Role.CanManageUsers() {
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
	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}

	var (
		users []identity.User
		total int64
		err   error
	)
	if actor.AllAccess() {
		users, total, err = s.userRepo.FindAll(ctx, domainFilter)
	} else if actor.CompanyID != nil {
		users, total, err = s.userRepo.FindAllForCompany(ctx, *actor.CompanyID, domainFilter)
	} else {
		return []UserResponse{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	return ToUserResponses(users), total, nil
}

// Deactivate closes an account
func (s *UserService) Deactivate(ctx context.Context, actor identity.Actor, userID uuid.UUID) error {
	if !actor.Role.CanManageUsers() {
		return shared.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.CompanyID != nil && !actor.BelongsTo(*user.CompanyID) {
		return shared.ErrNotFound
	}
	if user.CompanyID == nil && !actor.AllAccess() {
		return shared.ErrNotFound
	}

	if err := user.Deactivate(); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}
