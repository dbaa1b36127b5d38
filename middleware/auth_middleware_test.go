package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"acelerador/middleware"
	"acelerador/models"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestExtractToken(t *testing.T) {
	c, _ := testContext(t)
	c.Request.Header.Set("Authorization", "Token abc123")
	assert.Equal(t, "abc123", middleware.ExtractToken(c))

	c, _ = testContext(t)
	c.Request.Header.Set("Authorization", "Bearer xyz789")
	assert.Equal(t, "xyz789", middleware.ExtractToken(c))

	// Unknown scheme yields nothing
	c, _ = testContext(t)
	c.Request.Header.Set("Authorization", "Basic dXNlcg==")
	assert.Equal(t, "", middleware.ExtractToken(c))

	// Websocket clients fall back to the query param
	c, _ = testContext(t)
	c.Request = httptest.NewRequest(http.MethodGet, "/?token=querytok", nil)
	assert.Equal(t, "querytok", middleware.ExtractToken(c))

	c, _ = testContext(t)
	assert.Equal(t, "", middleware.ExtractToken(c))
}

func TestGetRoleFromRequest(t *testing.T) {
	c, _ := testContext(t)
	assert.Equal(t, workflow.RoleUnknown, middleware.GetRoleFromRequest(c))

	c.Set(middleware.ContextUserKey, &models.Usuario{Nivel: "admin"})
	assert.Equal(t, workflow.RoleAdministrador, middleware.GetRoleFromRequest(c))

	c.Set(middleware.ContextUserKey, &models.Usuario{Nivel: "equipe"})
	assert.Equal(t, workflow.RoleEquipe, middleware.GetRoleFromRequest(c))
}

func TestRequireRole(t *testing.T) {
	c, w := testContext(t)
	c.Set(middleware.ContextUserKey, &models.Usuario{Nivel: "gestor"})
	middleware.RequireRole(workflow.RoleGestor, workflow.RoleAdministrador)(c)
	assert.False(t, c.IsAborted())

	c, w = testContext(t)
	c.Set(middleware.ContextUserKey, &models.Usuario{Nivel: "equipe"})
	middleware.RequireRole(workflow.RoleGestor)(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)

	// No authenticated user at all
	c, w = testContext(t)
	middleware.RequireRole(workflow.RoleGestor)(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}
