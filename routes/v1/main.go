package v1

import (
	"acelerador/handlers/admin"
	"acelerador/handlers/auth"
	"acelerador/handlers/banca"
	"acelerador/handlers/propostas"
	"acelerador/handlers/vendas"
	"acelerador/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	admin.RegisterRoutes(v1)
	propostas.RegisterRoutes(v1)
	vendas.RegisterRoutes(v1)
	banca.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
