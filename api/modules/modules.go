package modules

import (
	"fmt"
	"leaguedash/api/cache"
	"leaguedash/api/handlers"
	matchservice "leaguedash/api/services/match"
	playerservice "leaguedash/api/services/player"
	rosterservice "leaguedash/api/services/roster"
	"leaguedash/fetcher/data"
	"leaguedash/pkg/config"
	"leaguedash/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Module containing the necessary handlers.
type Module struct {
	Router        *gin.Engine
	RosterHandler *handlers.RosterHandler
	MatchHandler  *handlers.MatchHandler
	PlayerHandler *handlers.PlayerHandler

	memCache    *cache.MemCache
	redisClient *redis.RedisClient
}

// NewModule creates a new module with all the necessary handlers initialized.
func NewModule(cfg *config.Config) (*Module, error) {
	router := gin.Default()

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to redis: %w", err)
	}

	memCache := cache.NewMemCache()
	fetcher := data.CreateMainFetcher(cfg.Riot, cfg.Limits)

	// Initialize the services.
	matchService := matchservice.NewMatchService(&matchservice.MatchServiceDeps{
		Fetcher: fetcher.Match,
		Cache:   cache.NewMatchCache(redisClient),
	})

	rosterService := rosterservice.NewRosterService(&rosterservice.RosterServiceDeps{
		League:  fetcher.League,
		Matches: fetcher.Player,
		Cache:   cache.NewRosterCache(redisClient),
		Roster:  cfg.Roster,
	})

	playerService := playerservice.NewPlayerService(&playerservice.PlayerServiceDeps{
		Summoner:  fetcher.Player,
		Spectator: fetcher.Spectator,
	})

	// Initialize the handlers.
	rosterHandler := handlers.NewRosterHandler(&handlers.RosterHandlerDependencies{
		MemCache:      memCache,
		RosterService: rosterService,
	})

	matchHandler := handlers.NewMatchHandler(&handlers.MatchHandlerDependencies{
		MatchService: matchService,
	})

	playerHandler := handlers.NewPlayerHandler(&handlers.PlayerHandlerDependencies{
		PlayerService: playerService,
	})

	// Return the module with all handlers.
	return &Module{
		Router:        router,
		RosterHandler: rosterHandler,
		MatchHandler:  matchHandler,
		PlayerHandler: playerHandler,
		memCache:      memCache,
		redisClient:   redisClient,
	}, nil
}

// Close releases the module owned resources.
func (m *Module) Close() {
	m.memCache.Close()
	m.redisClient.Close()
}
