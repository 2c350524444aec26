package performance

import (
	matchfetcher "leaguedash/fetcher/data/match"
	"leaguedash/pkg/timeline"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectiveScores(t *testing.T) {
	events := []timeline.Event{
		{Type: timeline.EventMonsterKill, ParticipantId: 1, MonsterType: "DRAGON"},
		{Type: timeline.EventMonsterKill, ParticipantId: 1, MonsterType: "DRAGON"},
		{Type: timeline.EventMonsterKill, ParticipantId: 2, MonsterType: "BARON_NASHOR"},
		{Type: timeline.EventMonsterKill, ParticipantId: 3, MonsterType: "RIFTHERALD"},
		{Type: timeline.EventMonsterKill, ParticipantId: 3, MonsterType: "HORDE"},
		{Type: timeline.EventTowerKill, ParticipantId: 4},
		{Type: timeline.EventTowerKill, ParticipantId: 4},
		// Kill events carry no objective credit.
		{Type: timeline.EventKill, ParticipantId: 5},
	}

	scores := ObjectiveScores(events)

	assert.InDelta(t, 1.0, scores[1], 1e-9)
	assert.InDelta(t, 1.0, scores[2], 1e-9)
	assert.InDelta(t, 0.24, scores[3], 1e-9)
	assert.InDelta(t, 0.6, scores[4], 1e-9)
	assert.NotContains(t, scores, 5)
}

func TestObjectiveScoresUnknownMonster(t *testing.T) {
	events := []timeline.Event{
		{Type: timeline.EventMonsterKill, ParticipantId: 1, MonsterType: "SOMETHING_NEW"},
	}

	scores := ObjectiveScores(events)

	assert.Zero(t, scores[1])
}

func rankingMatch() *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Info: matchfetcher.MatchInfo{
			GameDuration: 1800,
			Participants: []matchfetcher.MatchPlayer{
				{
					ParticipantId: 1, TeamId: 100, ChampionName: "Ahri",
					Kills: 10, Deaths: 2, Assists: 8,
					TotalDamageDealtToChampions: 30000,
					TotalMinionsKilled:          200, VisionScore: 20, Win: true,
				},
				{
					ParticipantId: 2, TeamId: 100, ChampionName: "Lux",
					Kills: 2, Deaths: 6, Assists: 12,
					TotalDamageDealtToChampions: 12000,
					TotalMinionsKilled:          40, VisionScore: 60, Win: true,
				},
				{
					ParticipantId: 3, TeamId: 200, ChampionName: "Darius",
					Kills: 4, Deaths: 7, Assists: 3,
					TotalDamageDealtToChampions: 18000,
					TotalMinionsKilled:          170, VisionScore: 15, Win: false,
				},
			},
		},
	}
}

func TestRankParticipants(t *testing.T) {
	objectives := map[int]float64{1: 1.5, 3: 0.3}

	ranked, err := RankParticipants(rankingMatch(), objectives, DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	// Ranks are 1-based and follow the descending scores.
	for i, player := range ranked {
		assert.Equal(t, i+1, player.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Score, player.Score)
		}
	}

	assert.Equal(t, 1, ranked[0].ParticipantId)
	assert.InDelta(t, 1.5, ranked[0].ObjectiveScore, 1e-9)
}

func TestRankParticipantsStableTies(t *testing.T) {
	match := &matchfetcher.MatchData{
		Info: matchfetcher.MatchInfo{
			GameDuration: 1800,
			Participants: []matchfetcher.MatchPlayer{
				{ParticipantId: 1, TeamId: 100, Kills: 3, Deaths: 3, Assists: 3, TotalDamageDealtToChampions: 10000},
				{ParticipantId: 2, TeamId: 100, Kills: 3, Deaths: 3, Assists: 3, TotalDamageDealtToChampions: 10000},
			},
		},
	}

	ranked, err := RankParticipants(match, nil, DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// Identical stats keep the original participant order.
	assert.Equal(t, 1, ranked[0].ParticipantId)
	assert.Equal(t, 2, ranked[1].ParticipantId)
}

func TestRankParticipantsZeroDuration(t *testing.T) {
	match := rankingMatch()
	match.Info.GameDuration = 0

	ranked, err := RankParticipants(match, nil, DefaultPolicy())

	assert.Nil(t, ranked)
	assert.ErrorIs(t, err, ErrInvalidGameDuration)
}
