package handlers

import (
	"leaguedash/api/filters"
	playerservice "leaguedash/api/services/player"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlayerHandler is the handler for the summoner and spectator endpoints.
type PlayerHandler struct {
	playerService *playerservice.PlayerService
}

// PlayerHandlerDependencies is the dependency list for the player handler.
type PlayerHandlerDependencies struct {
	PlayerService *playerservice.PlayerService
}

// NewPlayerHandler creates a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		playerService: deps.PlayerService,
	}
}

// Helper to bind the puuid URI param.
func (h *PlayerHandler) bindURIParams(c *gin.Context) (*filters.PlayerURIParams, bool) {
	var pp filters.PlayerURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &pp, true
}

// GetSummoner handles the summoner data proxy.
func (h *PlayerHandler) GetSummoner(c *gin.Context) {
	pp, ok := h.bindURIParams(c)
	if !ok {
		return
	}

	summoner, err := h.playerService.GetSummoner(c.Request.Context(), pp.Puuid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summoner)
}

// GetActiveGame handles the live game lookup.
func (h *PlayerHandler) GetActiveGame(c *gin.Context) {
	pp, ok := h.bindURIParams(c)
	if !ok {
		return
	}

	game, err := h.playerService.GetActiveGame(c.Request.Context(), pp.Puuid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}
