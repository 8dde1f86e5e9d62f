package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/internal/services"
	"github.com/thecooperator/backend/pkg/response"
	"gorm.io/gorm"
)

// MetricsHandler serves the dashboard counts and the participation
// scorecards derived from completed tasks and cast votes.
type MetricsHandler struct {
	dashboardService *services.DashboardService
	scoreService     *services.ScoreService
}

func NewMetricsHandler(db *gorm.DB, policyCfg *config.PolicyConfig) *MetricsHandler {
	return &MetricsHandler{
		dashboardService: services.NewDashboardService(db),
		scoreService:     services.NewScoreService(db, policyCfg),
	}
}

// GetDashboard returns entity counts for the overview page
// GET /api/v1/metrics/dashboard
func (h *MetricsHandler) GetDashboard(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, stats)
}

// GetScorecards returns the latest score per user
// GET /api/v1/metrics/scorecards
func (h *MetricsHandler) GetScorecards(c *gin.Context) {
	cards, err := h.scoreService.Scorecards()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, cards)
}

// GetScoreHistory returns one user's score entries, newest first
// GET /api/v1/metrics/scores/:userId
func (h *MetricsHandler) GetScoreHistory(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	entries, err := h.scoreService.History(c.Param("userId"), limit)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, entries)
}

// RecomputeScores recomputes every user's score immediately
// POST /api/v1/admin/scores/recompute
func (h *MetricsHandler) RecomputeScores(c *gin.Context) {
	count, err := h.scoreService.RecomputeAll()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"recomputed": count})
}
