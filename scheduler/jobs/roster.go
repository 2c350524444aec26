package jobs

import (
	"context"
	"fmt"
	"leaguedash/api/cache"
	rosterservice "leaguedash/api/services/roster"
	"leaguedash/fetcher/data"
	"leaguedash/pkg/config"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/redis"
	"time"
)

// RevalidateRoster rebuilds the roster overview cache so the dashboard
// loads don't burn the on demand rate limit budget.
func RevalidateRoster(cfg *config.Config, log *logger.Logger) error {
	log.Infof("Starting roster cache revalidation")

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("couldn't get redis connection: %w", err)
	}
	defer redisClient.Close()

	fetcher := data.CreateMainFetcher(cfg.Riot, cfg.Limits)

	service := rosterservice.NewRosterService(&rosterservice.RosterServiceDeps{
		League:  fetcher.League,
		Matches: fetcher.Player,
		Cache:   cache.NewRosterCache(redisClient),
		Roster:  cfg.Roster,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := service.Refresh(ctx, false); err != nil {
		log.Errorf("Roster cache revalidation failed: %v", err)
		return err
	}

	log.Infof("Roster cache revalidation completed for %d players", len(cfg.Roster))
	return nil
}

// ShipLogs uploads the accumulated job logs to the S3 bucket.
func ShipLogs(log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	objectKey := fmt.Sprintf("scheduler/%s.log", time.Now().Format("2006-01-02"))
	return log.UploadToS3Bucket(ctx, objectKey)
}
