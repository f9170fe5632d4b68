package http

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agrovision/cropsight/internal/agro"
	"github.com/agrovision/cropsight/services/api/db"
)

type readingsRequest struct {
	Week     int           `json:"week" binding:"required,min=1"`
	Readings agro.Readings `json:"readings"`
}

type propagateRequest struct {
	Factor   agro.Factor   `json:"factor" binding:"required"`
	Value    float64       `json:"value"`
	Readings agro.Readings `json:"readings"`
}

type snapshotRequest struct {
	Week         int           `json:"week" binding:"required,min=1"`
	Readings     agro.Readings `json:"readings"`
	RipeningDays float64       `json:"ripening_days"`
}

// weekParam parses the ?week query argument.
func weekParam(c *gin.Context) (int, bool) {
	week, err := strconv.Atoi(c.Query("week"))
	if err != nil || week < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a positive integer"})
		return 0, false
	}
	return week, true
}

// handleV1Stage resolves the phenological stage for a week
// GET /api/v1/sim/:id/stage?week=N
func (s *Server) handleV1Stage(c *gin.Context) {
	crop, ok := s.lookupCrop(c)
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}

	stage, index, resolved := agro.ResolveStage(crop, week)
	payload := gin.H{
		"crop_id":          crop.ID,
		"week":             week,
		"cycle_complete":   !resolved,
		"stage_progress":   agro.StageProgress(crop, week),
		"overall_progress": agro.OverallProgress(crop, week),
	}
	if resolved {
		payload["stage"] = stage
		payload["stage_index"] = index
	}

	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// handleV1Height returns the interpolated expected height
// GET /api/v1/sim/:id/height?week=N
func (s *Server) handleV1Height(c *gin.Context) {
	crop, ok := s.lookupCrop(c)
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"crop_id":   crop.ID,
			"week":      week,
			"height_cm": agro.ExpectedHeight(crop, week),
		},
	})
}

// handleV1Ripeness maps elapsed ripening days and temperature to ripeness
// GET /api/v1/sim/:id/ripeness?days=D&temperature=T
func (s *Server) handleV1Ripeness(c *gin.Context) {
	crop, ok := s.lookupCrop(c)
	if !ok {
		return
	}

	days, err := strconv.ParseFloat(c.Query("days"), 64)
	if err != nil || days < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative number"})
		return
	}
	temp, err := strconv.ParseFloat(c.Query("temperature"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "temperature must be a number"})
		return
	}

	ripeness := agro.RipenessFor(crop, days, temp)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"crop_id":         crop.ID,
			"ripeness":        ripeness,
			"characteristics": agro.CharacteristicsAt(crop, ripeness.Percent),
		},
	})
}

// handleV1Health scores the health index for a reading vector
// POST /api/v1/sim/:id/health
func (s *Server) handleV1Health(c *gin.Context) {
	crop, ok := s.lookupCrop(c)
	if !ok {
		return
	}

	var req readingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"crop_id": crop.ID,
			"week":    req.Week,
			"health":  agro.ScoreHealth(crop, req.Week, req.Readings),
		},
	})
}

// handleV1Propagate applies a single-factor change and its cross-effects
// POST /api/v1/sim/propagate
func (s *Server) handleV1Propagate(c *gin.Context) {
	var req propagateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if !agro.ValidFactor(req.Factor) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown factor: " + string(req.Factor)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"factor":   req.Factor,
			"value":    req.Value,
			"readings": agro.Propagate(req.Readings, req.Factor, req.Value),
		},
	})
}

// handleV1Disease ranks disease risks for the current readings
// POST /api/v1/sim/:id/disease
func (s *Server) handleV1Disease(c *gin.Context) {
	crop, ok := s.lookupCrop(c)
	if !ok {
		return
	}

	var req readingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	assessments := agro.AssessDiseaseRisk(crop, req.Week, req.Readings)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"crop_id":     crop.ID,
			"week":        req.Week,
			"assessments": assessments,
			"status":      agro.PlantStatus(assessments),
		},
	})
}

// handleV1Yield estimates yield from health and progress
// POST /api/v1/sim/:id/yield
func (s *Server) handleV1Yield(c *gin.Context) {
	crop, ok := s.lookupCrop(c)
	if !ok {
		return
	}

	var req readingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	health := agro.ScoreHealth(crop, req.Week, req.Readings)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"crop_id": crop.ID,
			"week":    req.Week,
			"health":  health,
			"yield":   agro.EstimateYield(crop, health, req.Week),
		},
	})
}

// handleV1Snapshot computes the full derived snapshot for one tick and
// appends it to the snapshot log when one is configured
// POST /api/v1/sim/:id/snapshot
func (s *Server) handleV1Snapshot(c *gin.Context) {
	crop, ok := s.lookupCrop(c)
	if !ok {
		return
	}

	var req snapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	health := agro.ScoreHealth(crop, req.Week, req.Readings)
	assessments := agro.AssessDiseaseRisk(crop, req.Week, req.Readings)
	status := agro.PlantStatus(assessments)
	estimate := agro.EstimateYield(crop, health, req.Week)
	ripeness := agro.RipenessFor(crop, req.RipeningDays, req.Readings.Temperature)

	stage, index, resolved := agro.ResolveStage(crop, req.Week)
	payload := gin.H{
		"crop_id":          crop.ID,
		"week":             req.Week,
		"readings":         req.Readings,
		"cycle_complete":   !resolved,
		"stage_progress":   agro.StageProgress(crop, req.Week),
		"overall_progress": agro.OverallProgress(crop, req.Week),
		"health":           health,
		"assessments":      assessments,
		"status":           status,
		"yield":            estimate,
		"ripeness":         ripeness,
		"characteristics":  agro.CharacteristicsAt(crop, ripeness.Percent),
		"height_cm":        agro.ExpectedHeight(crop, req.Week),
	}
	if resolved {
		payload["stage"] = stage
		payload["stage_index"] = index
	}

	if s.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		id, err := s.store.InsertSnapshot(ctx, db.Snapshot{
			CropID:       crop.ID,
			Week:         req.Week,
			Readings:     req.Readings,
			Health:       health,
			YieldPercent: estimate.Percent,
			Status:       status,
		})
		if err != nil {
			log.Printf("snapshot log insert failed: %v", err)
		} else {
			payload["snapshot_id"] = id
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// handleV1History lists logged snapshots for a crop, newest first
// GET /api/v1/sim/:id/history?limit=N
func (s *Server) handleV1History(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot log is not configured"})
		return
	}

	crop, ok := s.lookupCrop(c)
	if !ok {
		return
	}

	limit := s.cfg.HistoryLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	snapshots, err := s.store.History(ctx, crop.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": snapshots,
		"meta": gin.H{
			"count": len(snapshots),
		},
	})
}
