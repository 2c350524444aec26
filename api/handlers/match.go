package handlers

import (
	"leaguedash/api/filters"
	matchservice "leaguedash/api/services/match"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MatchHandler is the handler for the match endpoints.
type MatchHandler struct {
	matchService *matchservice.MatchService
}

// MatchHandlerDependencies is the dependency list for the match handler.
type MatchHandlerDependencies struct {
	MatchService *matchservice.MatchService
}

// NewMatchHandler creates a new instance of the match handler.
func NewMatchHandler(deps *MatchHandlerDependencies) *MatchHandler {
	return &MatchHandler{
		matchService: deps.MatchService,
	}
}

// Helper to bind the default URI params for matches.
func (h *MatchHandler) bindURIParams(c *gin.Context) (*filters.MatchURIParams, bool) {
	var mp filters.MatchURIParams
	if err := c.ShouldBindUri(&mp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &mp, true
}

// Helper to bind the puuid query param.
func (h *MatchHandler) bindQueryParams(c *gin.Context) (*filters.MatchQueryParams, bool) {
	var qp filters.MatchQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &qp, true
}

// GetMatchSummary handles the match summary for one tracked player.
func (h *MatchHandler) GetMatchSummary(c *gin.Context) {
	mp, ok := h.bindURIParams(c)
	if !ok {
		return
	}

	qp, ok := h.bindQueryParams(c)
	if !ok {
		return
	}

	summary, err := h.matchService.GetMatchSummary(c.Request.Context(), mp.MatchId, qp.Puuid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetMatchTimeline handles the chronological event feed of one player.
func (h *MatchHandler) GetMatchTimeline(c *gin.Context) {
	mp, ok := h.bindURIParams(c)
	if !ok {
		return
	}

	qp, ok := h.bindQueryParams(c)
	if !ok {
		return
	}

	events, err := h.matchService.GetMatchTimeline(c.Request.Context(), mp.MatchId, qp.Puuid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetPerformanceBoard handles the ranked leaderboard of one match.
func (h *MatchHandler) GetPerformanceBoard(c *gin.Context) {
	mp, ok := h.bindURIParams(c)
	if !ok {
		return
	}

	board, err := h.matchService.GetPerformanceBoard(c.Request.Context(), mp.MatchId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}
