package banca

import (
	"acelerador/middleware"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the banca dashboard
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	bancaGroup := r.Group("/banca")
	bancaGroup.Use(middleware.AuthRequired(), middleware.RequireRole(workflow.RoleBanca, workflow.RoleAdministrador))
	{
		bancaGroup.GET("/dashboard", Dashboard)
		bancaGroup.GET("/ranking", Ranking)
		bancaGroup.GET("/ranking/export", ExportRanking)
		bancaGroup.GET("/configuracao-pontuacao", GetConfiguracao)
		bancaGroup.PUT("/configuracao-pontuacao", UpdateConfiguracao)
	}

	// Websocket upgrades authenticate via token query param, see ExtractToken
	r.GET("/banca/ranking/ws",
		middleware.AuthRequired(),
		middleware.RequireRole(workflow.RoleBanca, workflow.RoleAdministrador),
		RankingWebSocket)
}
