package identity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	// Issue returns a signed token and its expiry for the given user
	Issue(user *identity.User) (string, time.Time, error)
}

// AuthService handles login and customer self-registration
type AuthService struct {
	userRepo    identity.UserRepository
	companyRepo identity.CompanyRepository
	tokens      TokenIssuer
	logger      *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, companyRepo identity.CompanyRepository, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Login authenticates with email and password. The same error comes back for
// an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	invalidCredentials := shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, invalidCredentials
	}
	if !user.VerifyPassword(req.Password) {
		return nil, invalidCredentials
	}
	if !user.IsActive() {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is deactivated")
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Warn("failed to record login time",
			zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return &TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
	}, nil
}

// Register signs up a shop customer against an active company
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if !company.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Company is not accepting registrations")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_EMAIL", "An account with this email already exists")
	}

	user, err := identity.NewUser(req.Email, req.Password, identity.RoleCustomer, &req.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := user.SetName(req.FirstName, req.LastName); err != nil {
		return nil, err
	}
	if err := user.SetRUT(req.RUT); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer registered",
		zap.String("user_id", user.ID.String()),
		zap.String("company_id", req.CompanyID.String()))

	return &TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
	}, nil
}
