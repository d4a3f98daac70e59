package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

func setupIdentityTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&identity.Company{}, &identity.User{})
	require.NoError(t, err)

	return db
}

func TestGormCompanyRepository(t *testing.T) {
	db := setupIdentityTestDB(t)
	repo := NewGormCompanyRepository(db)
	ctx := context.Background()

	company, err := identity.NewCompany("76.086.428-5", "Comercial Temuco")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, company))

	t.Run("should find by rut", func(t *testing.T) {
		found, err := repo.FindByRUT(ctx, company.RUT)
		require.NoError(t, err)
		assert.Equal(t, company.ID, found.ID)
		assert.Equal(t, "Comercial Temuco", found.Name)
	})

	t.Run("should report existing rut", func(t *testing.T) {
		exists, err := repo.ExistsByRUT(ctx, company.RUT)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByRUT(ctx, "11.111.111-1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("should search by name", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "temuco"
		companies, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, companies, 1)
	})

	t.Run("should return not found when deleting twice", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, company.ID))
		assert.ErrorIs(t, repo.Delete(ctx, company.ID), shared.ErrNotFound)
	})
}

func TestGormUserRepository(t *testing.T) {
	db := setupIdentityTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	user, err := identity.NewUser("Vendedor@Temuco.cl", "secret-password", identity.RoleSalesperson, &companyID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	t.Run("should find by email regardless of case", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "VENDEDOR@temuco.CL")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("should report existing email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "vendedor@temuco.cl")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("should list users for a company only", func(t *testing.T) {
		users, total, err := repo.FindAllForCompany(ctx, companyID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, users, 1)

		other, total, err := repo.FindAllForCompany(ctx, uuid.New(), shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, other)
	})

	t.Run("should filter by role", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["role"] = identity.RoleManager
		users, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, users)
	})
}
