package admin

import (
	"acelerador/middleware"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all administration routes
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.RequireRole(workflow.RoleAdministrador))
	{
		adminGroup.GET("/equipes", ListEquipes)
		adminGroup.POST("/equipes", CreateEquipe)
		adminGroup.PUT("/equipes/:id", UpdateEquipe)
		adminGroup.DELETE("/equipes/:id", DeleteEquipe)

		adminGroup.GET("/usuarios", ListUsuarios)
		adminGroup.POST("/usuarios", CreateUsuario)
		adminGroup.PUT("/usuarios/:id", UpdateUsuario)
		adminGroup.PUT("/usuarios/:id/resetar_senha", ResetPassword)
		adminGroup.DELETE("/usuarios/:id", DeleteUsuario)

		adminGroup.GET("/status_sistema", GetStatusSistema)
		adminGroup.PUT("/status_sistema", UpdateStatusSistema)
	}
}
