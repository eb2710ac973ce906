package handlers

import (
	"log"
	"net/http"
	"strconv"

	"prospect-outreach/models"
	"prospect-outreach/services"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	pipeline       *services.Pipeline
	historyService *services.HistoryService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(pipeline *services.Pipeline, historyService *services.HistoryService) *MessageHandler {
	return &MessageHandler{
		pipeline:       pipeline,
		historyService: historyService,
	}
}

// GenerateMessage runs the pipeline for one prospect
// POST /api/v1/messages/generate
// Body: {"prospect_name": "...", "company": "...", "prospect_background": "...", "my_background": "...", "event_name": "..."}
func (h *MessageHandler) GenerateMessage(c *gin.Context) {
	var req models.ProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	req.FinalMessage = ""

	result := h.pipeline.Run(c.Request.Context(), &req)

	response := models.GenerateMessageResponse{
		FinalMessage: result.FinalMessage,
		Prospect:     result,
	}

	if h.historyService.Enabled() {
		runID, err := h.historyService.Record(result)
		if err != nil {
			log.Printf("Failed to record generation: %v", err)
		}
		response.RunID = runID
	}

	c.JSON(http.StatusOK, response)
}

// GetHistory lists recent generation runs
// GET /api/v1/messages/history?limit=20
func (h *MessageHandler) GetHistory(c *gin.Context) {
	var req models.HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "limit must be between 1 and 100")
		return
	}
	if req.Limit == 0 {
		req.Limit = services.DefaultHistoryLimit
	}
	if !h.historyService.Enabled() {
		respondUnavailable(c, services.ErrHistoryDisabled.Error())
		return
	}

	runs, err := h.historyService.Recent(req.Limit)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		Runs: runs,
		Metadata: models.NewResponseMetadata(len(runs), req.Limit, map[string]string{
			"limit": strconv.Itoa(req.Limit),
		}),
	})
}

// GetStats returns aggregate outcome counts
// GET /api/v1/messages/stats
func (h *MessageHandler) GetStats(c *gin.Context) {
	if !h.historyService.Enabled() {
		respondUnavailable(c, services.ErrHistoryDisabled.Error())
		return
	}

	stats, err := h.historyService.Stats()
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HealthCheck is a simple health check endpoint
// GET /api/v1/health
func (h *MessageHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "prospect-outreach",
		"version": "1.0.0",
		"history": h.historyService.Enabled(),
	})
}

// RegisterRoutes mounts the message API on the router
func (h *MessageHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", h.HealthCheck)
		v1.POST("/messages/generate", h.GenerateMessage)
		v1.GET("/messages/history", h.GetHistory)
		v1.GET("/messages/stats", h.GetStats)
	}
}
