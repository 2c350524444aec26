package handlers

import (
	"leaguedash/api/cache"
	"leaguedash/api/dto"
	rosterservice "leaguedash/api/services/roster"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Short in-memory TTL in front of the Redis backed roster cache.
const rosterMemCacheDuration = 30 * time.Second

// RosterHandler is the handler for the roster overview endpoint.
type RosterHandler struct {
	memCache      *cache.MemCache
	rosterService *rosterservice.RosterService
}

// RosterHandlerDependencies is the dependency list for the roster handler.
type RosterHandlerDependencies struct {
	MemCache      *cache.MemCache
	RosterService *rosterservice.RosterService
}

// NewRosterHandler creates a new instance of the roster handler.
func NewRosterHandler(deps *RosterHandlerDependencies) *RosterHandler {
	return &RosterHandler{
		memCache:      deps.MemCache,
		rosterService: deps.RosterService,
	}
}

// GetRoster handles the roster overview.
func (h *RosterHandler) GetRoster(c *gin.Context) {
	if cached := h.memCache.Get("roster"); cached != nil {
		if overview, ok := cached.(*dto.RosterOverview); ok {
			c.JSON(http.StatusOK, overview)
			return
		}
	}

	overview, err := h.rosterService.GetOverview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	h.memCache.Set("roster", overview, rosterMemCacheDuration)

	c.JSON(http.StatusOK, overview)
}
