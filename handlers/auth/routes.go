package auth

import (
	"acelerador/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to authentication
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	auth := r.Group("/auth")
	{
		auth.POST("/login", Login)
		auth.POST("/login_equipe", LoginEquipe)
		auth.POST("/logout", Logout)

		protected := auth.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/equipes_disponiveis", EquipesDisponiveis)
			protected.POST("/selecionar_equipe", SelecionarEquipe)
			protected.GET("/meu_perfil", MeuPerfil)
		}
	}
}
