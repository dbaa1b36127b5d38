package propostas

import (
	"acelerador/middleware"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to proposals
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	equipe := r.Group("/equipe")
	equipe.Use(middleware.AuthRequired(), middleware.RequireRole(workflow.RoleEquipe))
	{
		equipe.GET("/propostas", ListMinhasPropostas)
		equipe.POST("/propostas", SubmitProposta)
		equipe.PUT("/propostas/:id/reenviar", ResubmitProposta)
		equipe.DELETE("/propostas/:id", DiscardProposta)
	}

	gestor := r.Group("/gestor")
	gestor.Use(middleware.AuthRequired(), middleware.RequireRole(workflow.RoleGestor, workflow.RoleAdministrador))
	{
		gestor.GET("/equipes", ListEquipesGestor)
		gestor.GET("/propostas", ListParaValidacao)
		gestor.PUT("/propostas/:id/validar", ValidarProposta)
	}
}
