package matchservice

import (
	"leaguedash/api/services/testutil"
	matchfetcher "leaguedash/fetcher/data/match"
	"time"
)

const (
	testMatchId = "KR_7412345678"
	testPuuid   = "puuid-ahri"
)

// setupTestService creates a match service wired with fresh mocks.
func setupTestService() (*MatchService, *testutil.MockMatchSource, *testutil.MockMatchCache) {
	mockSource := new(testutil.MockMatchSource)
	mockCache := new(testutil.MockMatchCache)

	service := NewMatchService(&MatchServiceDeps{
		Fetcher: mockSource,
		Cache:   mockCache,
	})

	return service, mockSource, mockCache
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

// getMockMatch builds a small ranked match with two participants.
func getMockMatch() *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Info: matchfetcher.MatchInfo{
			GameDuration:       1800,
			GameStartTimestamp: matchfetcher.RiotTime(time.UnixMilli(1700000000000)),
			QueueId:            420,
			Participants: []matchfetcher.MatchPlayer{
				{
					ParticipantId: 1,
					Puuid:         testPuuid,
					ChampionName:  "Ahri",
					TeamId:        100,
					Kills:         7, Deaths: 2, Assists: 5,
					TotalDamageDealtToChampions: 24000,
					TotalMinionsKilled:          190,
					VisionScore:                 22,
					DoubleKills:                 1,
					Item0:                       3089, Item6: 3363,
					Win: true,
				},
				{
					ParticipantId: 2,
					Puuid:         "puuid-darius",
					ChampionName:  "Darius",
					TeamId:        200,
					Kills:         3, Deaths: 7, Assists: 2,
					TotalDamageDealtToChampions: 15000,
					TotalMinionsKilled:          160,
					VisionScore:                 14,
					Win:                         false,
				},
			},
		},
	}
}

// getMockTimeline builds a timeline with one kill and one dragon takedown.
func getMockTimeline() *matchfetcher.MatchTimeline {
	return &matchfetcher.MatchTimeline{
		Info: matchfetcher.MatchTimelineData{
			Frames: []matchfetcher.MatchTimelineFrame{
				{
					Events: []matchfetcher.EventFrame{
						{
							Type:      "CHAMPION_KILL",
							Timestamp: 120000,
							KillerId:  intPtr(1),
							VictimId:  intPtr(2),
						},
						{
							Type:        "ELITE_MONSTER_KILL",
							Timestamp:   600000,
							KillerId:    intPtr(1),
							MonsterType: strPtr("DRAGON"),
						},
					},
				},
			},
		},
	}
}
