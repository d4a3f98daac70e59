package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
)

func runStaffGate(t *testing.T, actor *identity.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if actor != nil {
		c.Set(ActorKey, *actor)
	}

	RequireStaff()(c)
	return c, w
}

func TestRequireStaff(t *testing.T) {
	companyID := uuid.New()

	t.Run("should admit company staff", func(t *testing.T) {
		for _, role := range []identity.Role{identity.RoleCompanyAdmin, identity.RoleManager, identity.RoleSalesperson} {
			actor := identity.Actor{UserID: uuid.New(), CompanyID: &companyID, Role: role}
			c, _ := runStaffGate(t, &actor)
			assert.False(t, c.IsAborted(), "role %s should pass", role)
		}
	})

	t.Run("should admit platform admins", func(t *testing.T) {
		actor := identity.Actor{UserID: uuid.New(), Role: identity.RoleSuperAdmin}
		c, _ := runStaffGate(t, &actor)
		assert.False(t, c.IsAborted())
	})

	t.Run("should forbid customers", func(t *testing.T) {
		actor := identity.Actor{UserID: uuid.New(), CompanyID: &companyID, Role: identity.RoleCustomer}
		c, w := runStaffGate(t, &actor)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("should reject requests without an actor", func(t *testing.T) {
		c, w := runStaffGate(t, nil)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
