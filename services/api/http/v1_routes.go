package http

import "github.com/gin-gonic/gin"

// registerV1Routes sets up the v1 API structure.
// Groups: /api/v1/catalog, /api/v1/sim, /api/v1/ai
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	// Catalog endpoints - static crop reference data
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/crops", s.handleV1ListCrops)
		catalog.GET("/crops/:id", s.handleV1GetCrop)
	}

	// Sim endpoints - the deterministic engine over the current readings
	sim := v1.Group("/sim")
	{
		sim.POST("/propagate", s.handleV1Propagate)
		sim.GET("/:id/stage", s.handleV1Stage)
		sim.GET("/:id/height", s.handleV1Height)
		sim.GET("/:id/ripeness", s.handleV1Ripeness)
		sim.POST("/:id/health", s.handleV1Health)
		sim.POST("/:id/disease", s.handleV1Disease)
		sim.POST("/:id/yield", s.handleV1Yield)
		sim.POST("/:id/snapshot", s.handleV1Snapshot)
		sim.GET("/:id/history", s.handleV1History)
	}

	// AI endpoints - opaque model-gateway collaborators
	aiGroup := v1.Group("/ai")
	{
		aiGroup.POST("/analyze", s.handleV1Analyze)
		aiGroup.POST("/chat", s.handleV1Chat)
	}
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}
