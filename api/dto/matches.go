package dto

import (
	"leaguedash/pkg/performance"
	"leaguedash/pkg/timeline"
)

// MatchSummary is a match reshaped for a single tracked player.
// Non solo queue matches only carry IsRanked=false so the dashboard can
// skip them without refetching.
type MatchSummary struct {
	IsRanked bool `json:"isRanked"`

	ChampionName                string `json:"championName,omitempty"`
	Win                         bool   `json:"win"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	DoubleKills                 int    `json:"doubleKills"`
	TripleKills                 int    `json:"tripleKills"`
	QuadraKills                 int    `json:"quadraKills"`
	PentaKills                  int    `json:"pentaKills"`
	Items                       []int  `json:"items,omitempty"`
	ParticipantId               int    `json:"participantId,omitempty"`
	GameStartTimestamp          int64  `json:"gameStartTimestamp,omitempty"`
}

// MatchTimelineData is the chronological event feed of one player.
type MatchTimelineData struct {
	MatchId string           `json:"matchId"`
	Events  []timeline.Event `json:"events"`
}

// PerformanceBoard ranks all ten participants of one match.
type PerformanceBoard struct {
	MatchId      string                    `json:"matchId"`
	GameDuration int                       `json:"gameDuration"`
	Players      []performance.RankedPlayer `json:"players"`
}
