package rosterservice

import (
	"context"
	"leaguedash/api/cache"
	"leaguedash/api/dto"
	leaguefetcher "leaguedash/fetcher/data/league"
	"leaguedash/pkg/config"

	"golang.org/x/sync/errgroup"
)

// The dashboard shows the solo queue entry and the last ranked matches.
const (
	soloQueueType      = "RANKED_SOLO_5x5"
	rankedSoloQueueId  = 420
	recentMatchesCount = 3
)

// LeagueSource provides the ranked entries of a player.
type LeagueSource interface {
	GetLeagueByPuuid(ctx context.Context, puuid string, onDemand bool) ([]leaguefetcher.LeagueEntry, error)
}

// MatchListSource provides the recent match ids of a player.
type MatchListSource interface {
	GetMatchList(ctx context.Context, puuid string, queueId int, count int, onDemand bool) ([]string, error)
}

// RosterService builds the dashboard overview for the tracked players.
type RosterService struct {
	league  LeagueSource
	matches MatchListSource
	cache   cache.RosterCache
	roster  []config.RosterMember
}

// RosterServiceDeps is the dependency list for the roster service.
type RosterServiceDeps struct {
	League  LeagueSource
	Matches MatchListSource
	Cache   cache.RosterCache
	Roster  []config.RosterMember
}

// NewRosterService creates a roster service.
func NewRosterService(deps *RosterServiceDeps) *RosterService {
	return &RosterService{
		league:  deps.League,
		matches: deps.Matches,
		cache:   deps.Cache,
		roster:  deps.Roster,
	}
}

// GetOverview returns the cached overview, refreshing it on demand on a miss.
func (rs *RosterService) GetOverview(ctx context.Context) (*dto.RosterOverview, error) {
	if cached, _ := rs.cache.GetOverview(ctx); cached != nil {
		return cached, nil
	}

	return rs.Refresh(ctx, true)
}

// Refresh rebuilds the overview from the upstream and stores it in cache.
// The background warm job calls it with onDemand=false so it stays on the
// slower rate limit discipline.
func (rs *RosterService) Refresh(ctx context.Context, onDemand bool) (*dto.RosterOverview, error) {
	entries := make([]dto.RosterEntry, len(rs.roster))

	g, gctx := errgroup.WithContext(ctx)

	// One goroutine per tracked player, writing to it's own slot so the
	// configured roster order is kept.
	for i, member := range rs.roster {
		i, member := i, member
		g.Go(func() error {
			entry, err := rs.buildEntry(gctx, member, onDemand)
			if err != nil {
				return err
			}
			entries[i] = *entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &dto.RosterOverview{Entries: entries}
	_ = rs.cache.SetOverview(ctx, overview)

	return overview, nil
}

// buildEntry assembles the league entry and recent matches of one player.
func (rs *RosterService) buildEntry(ctx context.Context, member config.RosterMember, onDemand bool) (*dto.RosterEntry, error) {
	leagues, err := rs.league.GetLeagueByPuuid(ctx, member.Puuid, onDemand)
	if err != nil {
		return nil, err
	}

	matchIds, err := rs.matches.GetMatchList(ctx, member.Puuid, rankedSoloQueueId, recentMatchesCount, onDemand)
	if err != nil {
		return nil, err
	}

	return &dto.RosterEntry{
		SummonerName: member.Name,
		Puuid:        member.Puuid,
		League:       soloQueueEntry(leagues),
		Matches:      matchIds,
	}, nil
}

// soloQueueEntry filters the solo queue league entry, nil when unranked.
func soloQueueEntry(entries []leaguefetcher.LeagueEntry) *dto.LeagueSummary {
	for _, entry := range entries {
		if entry.QueueType == nil || *entry.QueueType != soloQueueType {
			continue
		}

		summary := &dto.LeagueSummary{
			LeaguePoints: entry.LeaguePoints,
			Wins:         entry.Wins,
			Losses:       entry.Losses,
			HotStreak:    entry.HotStreak,
		}
		if entry.Tier != nil {
			summary.Tier = *entry.Tier
		}
		if entry.Rank != nil {
			summary.Rank = *entry.Rank
		}

		return summary
	}
	return nil
}
