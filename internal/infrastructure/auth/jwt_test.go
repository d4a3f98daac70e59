package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	cfg := config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "test-issuer",
	}
	return NewJWTService(cfg)
}

func newTestUser(t *testing.T) *identity.User {
	t.Helper()
	companyID := uuid.New()
	user, err := identity.NewUser("clerk@temuco.cl", "secret-password", identity.RoleSalesperson, &companyID)
	require.NoError(t, err)
	return user
}

func TestIssue(t *testing.T) {
	svc := newTestJWTService()
	user := newTestUser(t)

	token, expiresAt, err := svc.Issue(user)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))
}

func TestValidate_Success(t *testing.T) {
	svc := newTestJWTService()
	user := newTestUser(t)

	token, _, err := svc.Issue(user)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.CompanyID.String(), claims.CompanyID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, string(identity.RoleSalesperson), claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	user := newTestUser(t)

	token, _, err := svc.Issue(user)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{
		Secret:                "a-completely-different-secret-32c",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "test-issuer",
	})

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars",
		AccessTokenExpiration: -1 * time.Minute,
		Issuer:                "test-issuer",
	})
	user := newTestUser(t)

	token, _, err := svc.Issue(user)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestClaims_Actor(t *testing.T) {
	t.Run("should round-trip company user into actor", func(t *testing.T) {
		svc := newTestJWTService()
		user := newTestUser(t)

		token, _, err := svc.Issue(user)
		require.NoError(t, err)

		claims, err := svc.Validate(token)
		require.NoError(t, err)

		actor, err := claims.Actor()
		require.NoError(t, err)
		assert.Equal(t, user.ID, actor.UserID)
		require.NotNil(t, actor.CompanyID)
		assert.Equal(t, *user.CompanyID, *actor.CompanyID)
		assert.Equal(t, identity.RoleSalesperson, actor.Role)
	})

	t.Run("should leave company nil for super admin", func(t *testing.T) {
		svc := newTestJWTService()
		admin, err := identity.NewUser("root@platform.cl", "secret-password", identity.RoleSuperAdmin, nil)
		require.NoError(t, err)

		token, _, err := svc.Issue(admin)
		require.NoError(t, err)

		claims, err := svc.Validate(token)
		require.NoError(t, err)

		actor, err := claims.Actor()
		require.NoError(t, err)
		assert.Nil(t, actor.CompanyID)
		assert.True(t, actor.AllAccess())
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		claims := &Claims{UserID: uuid.New().String(), Role: "janitor"}
		_, err := claims.Actor()
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}
