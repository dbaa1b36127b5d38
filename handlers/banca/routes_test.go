package banca_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"acelerador/config"
	"acelerador/handlers/banca"
	"acelerador/models"
	"acelerador/sessions"
	"acelerador/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	banca.RegisterRoutes(r.Group(""))
	return r
}

func TestRankingWebSocketRequiresToken(t *testing.T) {
	r := setupRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/banca/ranking/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRankingWebSocketRejectsEquipeRole(t *testing.T) {
	config.JWTSecret = "routes-test-secret"
	sessions.Default = sessions.NewStore(sessions.NewMemoryTier(), nil)
	t.Cleanup(func() { sessions.Default = nil })

	token, err := utils.GenerateToken("user-equipe")
	require.NoError(t, err)
	sessions.Default.Save(context.Background(), token, &sessions.Session{
		User: models.Usuario{ID: "user-equipe", Nivel: "equipe", Ativo: true},
	})

	r := setupRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/banca/ranking/ws?token="+token, nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
