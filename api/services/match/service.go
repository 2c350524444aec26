package matchservice

import (
	"context"
	"errors"
	"leaguedash/api/cache"
	"leaguedash/api/dto"
	matchfetcher "leaguedash/fetcher/data/match"
	"leaguedash/pkg/messages"
	"leaguedash/pkg/performance"
	"leaguedash/pkg/timeline"

	"golang.org/x/sync/errgroup"
)

// Queue id of the solo ranked queue, the only one the dashboard tracks.
const rankedSoloQueueId = 420

// ErrPlayerNotFound is returned when the requested puuid is not a
// participant of the match.
var ErrPlayerNotFound = errors.New(messages.ParticipantNotFound)

// MatchSource is the upstream the service pulls match documents from.
type MatchSource interface {
	GetMatchData(ctx context.Context, matchId string, onDemand bool) (*matchfetcher.MatchData, error)
	GetMatchTimelineData(ctx context.Context, matchId string, onDemand bool) (*matchfetcher.MatchTimeline, error)
}

// MatchService reshapes the upstream match documents for the dashboard.
type MatchService struct {
	fetcher MatchSource
	cache   cache.MatchCache
	policy  performance.Policy
}

// MatchServiceDeps is the dependency list for the match service.
type MatchServiceDeps struct {
	Fetcher MatchSource
	Cache   cache.MatchCache
}

// NewMatchService creates a match service with the default scoring policy.
func NewMatchService(deps *MatchServiceDeps) *MatchService {
	return &MatchService{
		fetcher: deps.Fetcher,
		cache:   deps.Cache,
		policy:  performance.DefaultPolicy(),
	}
}

// GetMatchSummary returns the match reshaped for one tracked player.
// Non solo queue matches short circuit with IsRanked=false and are cached
// the same way, so repeated dashboard loads skip them cheaply.
func (ms *MatchService) GetMatchSummary(ctx context.Context, matchId string, puuid string) (*dto.MatchSummary, error) {
	if cached, _ := ms.cache.GetMatchSummary(ctx, matchId, puuid); cached != nil {
		return cached, nil
	}

	match, err := ms.fetcher.GetMatchData(ctx, matchId, true)
	if err != nil {
		return nil, err
	}

	if match.Info.QueueId != rankedSoloQueueId {
		summary := &dto.MatchSummary{IsRanked: false}
		_ = ms.cache.SetMatchSummary(ctx, matchId, puuid, summary)
		return summary, nil
	}

	participant, err := findParticipant(match, puuid)
	if err != nil {
		return nil, err
	}

	summary := &dto.MatchSummary{
		IsRanked:                    true,
		ChampionName:                participant.ChampionName,
		Win:                         participant.Win,
		Kills:                       participant.Kills,
		Deaths:                      participant.Deaths,
		Assists:                     participant.Assists,
		TotalDamageDealtToChampions: participant.TotalDamageDealtToChampions,
		DoubleKills:                 participant.DoubleKills,
		TripleKills:                 participant.TripleKills,
		QuadraKills:                 participant.QuadraKills,
		PentaKills:                  participant.PentaKills,
		Items: []int{
			participant.Item0,
			participant.Item1,
			participant.Item2,
			participant.Item3,
			participant.Item4,
			participant.Item5,
			participant.Item6,
		},
		ParticipantId:      participant.ParticipantId,
		GameStartTimestamp: match.Info.GameStartTimestamp.Time().UnixMilli(),
	}

	_ = ms.cache.SetMatchSummary(ctx, matchId, puuid, summary)

	return summary, nil
}

// GetMatchTimeline returns the chronological event feed of one player.
func (ms *MatchService) GetMatchTimeline(ctx context.Context, matchId string, puuid string) (*dto.MatchTimelineData, error) {
	match, matchTimeline, err := ms.fetchMatchWithTimeline(ctx, matchId)
	if err != nil {
		return nil, err
	}

	participant, err := findParticipant(match, puuid)
	if err != nil {
		return nil, err
	}

	roster := timeline.RosterFromMatch(match)

	focus := participant.ParticipantId
	events, err := timeline.Extract(matchTimeline.Info.Frames, roster, &focus)
	if err != nil {
		return nil, err
	}

	return &dto.MatchTimelineData{
		MatchId: matchId,
		Events:  events,
	}, nil
}

// GetPerformanceBoard scores and ranks all ten participants of the match.
// The objective credit comes from a all participants extraction pass.
func (ms *MatchService) GetPerformanceBoard(ctx context.Context, matchId string) (*dto.PerformanceBoard, error) {
	if cached, _ := ms.cache.GetPerformanceBoard(ctx, matchId); cached != nil {
		return cached, nil
	}

	match, matchTimeline, err := ms.fetchMatchWithTimeline(ctx, matchId)
	if err != nil {
		return nil, err
	}

	roster := timeline.RosterFromMatch(match)

	objectiveEvents, err := timeline.Extract(matchTimeline.Info.Frames, roster, nil)
	if err != nil {
		return nil, err
	}

	objectives := performance.ObjectiveScores(objectiveEvents)

	ranked, err := performance.RankParticipants(match, objectives, ms.policy)
	if err != nil {
		return nil, err
	}

	board := &dto.PerformanceBoard{
		MatchId:      matchId,
		GameDuration: match.Info.GameDuration,
		Players:      ranked,
	}

	_ = ms.cache.SetPerformanceBoard(ctx, board)

	return board, nil
}

// fetchMatchWithTimeline requests the match and timeline documents in
// parallel, the two calls are independent and joined before extraction.
func (ms *MatchService) fetchMatchWithTimeline(ctx context.Context, matchId string) (*matchfetcher.MatchData, *matchfetcher.MatchTimeline, error) {
	var match *matchfetcher.MatchData
	var matchTimeline *matchfetcher.MatchTimeline

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		match, err = ms.fetcher.GetMatchData(gctx, matchId, true)
		return err
	})

	g.Go(func() error {
		var err error
		matchTimeline, err = ms.fetcher.GetMatchTimelineData(gctx, matchId, true)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return match, matchTimeline, nil
}

// findParticipant resolves a puuid on the match participant list.
func findParticipant(match *matchfetcher.MatchData, puuid string) (*matchfetcher.MatchPlayer, error) {
	for i := range match.Info.Participants {
		if match.Info.Participants[i].Puuid == puuid {
			return &match.Info.Participants[i], nil
		}
	}
	return nil, ErrPlayerNotFound
}
