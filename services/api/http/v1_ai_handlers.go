package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agrovision/cropsight/services/api/ai"
)

type analyzeRequest struct {
	CropID      string `json:"crop_id"`
	ImageBase64 string `json:"image_base64" binding:"required"`
}

type chatRequest struct {
	Messages []ai.ChatMessage `json:"messages" binding:"required"`
}

// handleV1Analyze submits a base64 crop photo for health assessment
// POST /api/v1/ai/analyze
func (s *Server) handleV1Analyze(c *gin.Context) {
	if s.assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ai assistant is not configured"})
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	cropName := req.CropID
	if cropName == "" {
		cropName = s.cfg.DefaultCropID
	}
	if crop, err := s.catalog.Get(cropName); err == nil {
		cropName = crop.Name
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	assessment, err := s.assistant.AnalyzeCropImage(ctx, cropName, req.ImageBase64)
	if err != nil {
		// only validation errors reach here; upstream failures degrade
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": assessment})
}

// handleV1Chat streams the assistant's reply over SSE
// POST /api/v1/ai/chat
func (s *Server) handleV1Chat(c *gin.Context) {
	if s.assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ai assistant is not configured"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := ai.ValidateChatHistory(req.Messages); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 120*time.Second)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	streamed := false
	err := s.assistant.Chat(ctx, req.Messages, func(chunk string) error {
		streamed = true
		c.SSEvent("message", chunk)
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		if !streamed {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		// headers are already gone; surface the failure in-band
		if !errors.Is(err, context.Canceled) {
			c.SSEvent("error", err.Error())
			c.Writer.Flush()
		}
		return
	}

	c.SSEvent("done", "")
	c.Writer.Flush()
}
