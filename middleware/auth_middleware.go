package middleware

import (
	"errors"
	"net/http"
	"strings"

	"acelerador/database"
	"acelerador/metrics"
	"acelerador/models"
	"acelerador/sessions"
	"acelerador/utils"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey   = "currentUser"
	ContextEquipeKey = "currentEquipe"
	ContextTokenKey  = "currentToken"
)

// ExtractToken reads the bearer credential from the Authorization header.
// The dashboards send "Token <value>" (legacy DRF scheme); "Bearer" is
// accepted too. Websocket upgrades cannot set headers from the browser, so
// a token query param works as a fallback.
func ExtractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return c.Query("token")
	}
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(strings.TrimPrefix(header, scheme))
		}
	}
	return ""
}

// AuthRequired validates the request token and loads the session's user into
// the context. Auth failures are fatal to the request: the session is cleared
// and 401 returned so the client redirects to login.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		userID, err := utils.ParseToken(token)
		if err != nil {
			if sessions.Default != nil {
				sessions.Default.Clear(c, token)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user *models.Usuario
		var equipe *models.Equipe

		if sessions.Default != nil {
			if session := sessions.Default.Get(c, token); session != nil && session.User.ID == userID {
				metrics.SessionCacheHits.Inc()
				user = &session.User
				equipe = session.Equipe
			}
		}

		if user == nil {
			metrics.SessionCacheMisses.Inc()
			var dbUser models.Usuario
			if err := database.DB.Preload("Equipe").First(&dbUser, "id = ?", userID).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
				return
			}
			user = &dbUser
			equipe = dbUser.Equipe
			if sessions.Default != nil {
				sessions.Default.Save(c, token, &sessions.Session{User: dbUser, Equipe: dbUser.Equipe})
			}
		}

		if !user.Ativo {
			if sessions.Default != nil {
				sessions.Default.Clear(c, token)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Perfil de acesso inativo"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextEquipeKey, equipe)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// GetUserFromRequest returns the authenticated user placed in the context by
// AuthRequired. When absent it writes the 401 itself, so callers just return.
func GetUserFromRequest(c *gin.Context) (*models.Usuario, error) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, errors.New("no authenticated user in context")
	}
	user, ok := value.(*models.Usuario)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, errors.New("malformed user in context")
	}
	return user, nil
}

// GetRoleFromRequest returns the canonical role of the authenticated user
func GetRoleFromRequest(c *gin.Context) workflow.Role {
	user, exists := c.Get(ContextUserKey)
	if !exists {
		return workflow.RoleUnknown
	}
	u, ok := user.(*models.Usuario)
	if !ok {
		return workflow.RoleUnknown
	}
	return workflow.NormalizeRole(u.Nivel)
}

// GetEquipeFromRequest returns the resolved team of an equipe session, nil otherwise
func GetEquipeFromRequest(c *gin.Context) *models.Equipe {
	value, exists := c.Get(ContextEquipeKey)
	if !exists {
		return nil
	}
	equipe, _ := value.(*models.Equipe)
	return equipe
}

// RequireRole aborts with 403 unless the authenticated user holds one of the
// given roles
func RequireRole(roles ...workflow.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRoleFromRequest(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso negado para o seu nível de acesso"})
	}
}
