package routes

import (
	"leaguedash/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.RosterHandler:
			r.registerRosterHandler(handler)
		case *handlers.MatchHandler:
			r.registerMatchHandler(handler)
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		}
	}
}

// Register the roster handler.
func (r *Router) registerRosterHandler(handler *handlers.RosterHandler) {
	roster := r.api.Group("/roster")
	{
		roster.GET("", handler.GetRoster)
	}
}

// Register the match handler.
func (r *Router) registerMatchHandler(handler *handlers.MatchHandler) {
	matches := r.api.Group("/matches")
	{
		matches.GET("/:matchId", handler.GetMatchSummary)
		matches.GET("/:matchId/timeline", handler.GetMatchTimeline)
		matches.GET("/:matchId/performance", handler.GetPerformanceBoard)
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	summoners := r.api.Group("/summoners")
	{
		summoners.GET("/:puuid", handler.GetSummoner)
	}

	spectator := r.api.Group("/spectator")
	{
		spectator.GET("/:puuid", handler.GetActiveGame)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
