package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleV1ListCrops returns every catalog entry
// GET /api/v1/catalog/crops
func (s *Server) handleV1ListCrops(c *gin.Context) {
	crops := s.catalog.Crops()

	c.JSON(http.StatusOK, gin.H{
		"data": crops,
		"meta": gin.H{
			"count": len(crops),
		},
	})
}

// handleV1GetCrop returns the full profile for one crop
// GET /api/v1/catalog/crops/:id
func (s *Server) handleV1GetCrop(c *gin.Context) {
	crop, ok := s.lookupCrop(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": crop,
	})
}
