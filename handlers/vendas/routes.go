package vendas

import (
	"acelerador/middleware"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to sales
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	equipe := r.Group("/equipe")
	equipe.Use(middleware.AuthRequired(), middleware.RequireRole(workflow.RoleEquipe))
	{
		equipe.GET("/propostas-validadas", ListPropostasValidadas)
		equipe.GET("/vendas", ListMinhasVendas)
		equipe.POST("/vendas", RegisterVenda)
		equipe.PUT("/vendas/:id/corrigir", CorrigirVenda)
	}

	gestor := r.Group("/gestor")
	gestor.Use(middleware.AuthRequired(), middleware.RequireRole(workflow.RoleGestor))
	{
		gestor.GET("/vendas/para_validar", ListParaValidar)
		gestor.PUT("/vendas/:id/validar", ValidarVenda)
	}
}
