package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

type memBranchRepo struct {
	branches map[uuid.UUID]*inventory.Branch
}

func newMemBranchRepo() *memBranchRepo {
	return &memBranchRepo{branches: make(map[uuid.UUID]*inventory.Branch)}
}

func (r *memBranchRepo) Save(_ context.Context, branch *inventory.Branch) error {
	clone := *branch
	r.branches[branch.ID] = &clone
	return nil
}

func (r *memBranchRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Branch, error) {
	branch, ok := r.branches[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	clone := *branch
	return &clone, nil
}

func (r *memBranchRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, _ shared.Filter) ([]inventory.Branch, int64, error) {
	var out []inventory.Branch
	for _, branch := range r.branches {
		if branch.CompanyID == companyID {
			out = append(out, *branch)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memBranchRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.branches[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.branches, id)
	return nil
}

func TestBranchService(t *testing.T) {
	ctx := context.Background()

	companyID := uuid.New()
	admin := identity.Actor{UserID: uuid.New(), CompanyID: &companyID, Role: identity.RoleCompanyAdmin}
	salesperson := identity.Actor{UserID: uuid.New(), CompanyID: &companyID, Role: identity.RoleSalesperson}

	newFixture := func() (*BranchService, *memBranchRepo) {
		repo := newMemBranchRepo()
		return NewBranchService(repo, zap.NewNop()), repo
	}

	t.Run("should create a branch for the actor's company", func(t *testing.T) {
		service, _ := newFixture()

		branch, err := service.Create(ctx, admin, CreateBranchRequest{
			Name:    "Sucursal Centro",
			Address: "Av. Alemania 671, Temuco",
			Phone:   "+56 45 221 0000",
		})
		require.NoError(t, err)
		assert.Equal(t, companyID, branch.CompanyID)
		assert.Equal(t, "Sucursal Centro", branch.Name)
		assert.True(t, branch.Active)
	})

	t.Run("should reject creation by a salesperson", func(t *testing.T) {
		service, _ := newFixture()

		_, err := service.Create(ctx, salesperson, CreateBranchRequest{Name: "Sucursal Centro"})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("should update and deactivate a branch", func(t *testing.T) {
		service, repo := newFixture()

		created, err := service.Create(ctx, admin, CreateBranchRequest{Name: "Sucursal Centro"})
		require.NoError(t, err)

		name := "Sucursal Plaza"
		active := false
		updated, err := service.Update(ctx, admin, created.ID, UpdateBranchRequest{Name: &name, Active: &active})
		require.NoError(t, err)
		assert.Equal(t, "Sucursal Plaza", updated.Name)
		assert.False(t, updated.Active)

		stored, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, stored.Active)
	})

	t.Run("should hide branches of another company", func(t *testing.T) {
		service, _ := newFixture()

		created, err := service.Create(ctx, admin, CreateBranchRequest{Name: "Sucursal Centro"})
		require.NoError(t, err)

		otherCompany := uuid.New()
		stranger := identity.Actor{UserID: uuid.New(), CompanyID: &otherCompany, Role: identity.RoleCompanyAdmin}

		_, err = service.Get(ctx, stranger, created.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		branches, total, err := service.List(ctx, stranger, nil, ListFilter{})
		require.NoError(t, err)
		assert.Empty(t, branches)
		assert.Zero(t, total)
	})

	t.Run("should list branches for the actor's company", func(t *testing.T) {
		service, _ := newFixture()

		_, err := service.Create(ctx, admin, CreateBranchRequest{Name: "Sucursal Centro"})
		require.NoError(t, err)
		_, err = service.Create(ctx, admin, CreateBranchRequest{Name: "Sucursal Labranza"})
		require.NoError(t, err)

		branches, total, err := service.List(ctx, admin, nil, ListFilter{})
		require.NoError(t, err)
		assert.Len(t, branches, 2)
		assert.Equal(t, int64(2), total)
	})
}
