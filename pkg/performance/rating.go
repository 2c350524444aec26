package performance

import (
	matchfetcher "leaguedash/fetcher/data/match"
	"leaguedash/pkg/timeline"
	"sort"
)

// Weighted credit per objective takedown.
// Tuning values, kept together so they read as one table.
const (
	dragonCredit = 0.5
	baronCredit  = 1.0
	heraldCredit = 0.12
	towerCredit  = 0.3
)

// Monster type discriminators from the timeline.
const (
	monsterDragon = "DRAGON"
	monsterBaron  = "BARON_NASHOR"
	monsterHerald = "RIFTHERALD"
	// Void grubs report as HORDE on the timeline.
	monsterHorde = "HORDE"
)

// RankedPlayer is a scored participant with it's 1-based leaderboard rank.
type RankedPlayer struct {
	PlayerStats
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

// ObjectiveScores accumulates the weighted objective credit per participant
// from an all participants extraction pass.
func ObjectiveScores(events []timeline.Event) map[int]float64 {
	scores := make(map[int]float64)

	for _, event := range events {
		switch event.Type {
		case timeline.EventMonsterKill:
			scores[event.ParticipantId] += monsterCredit(event.MonsterType)
		case timeline.EventTowerKill:
			scores[event.ParticipantId] += towerCredit
		}
	}

	return scores
}

// monsterCredit resolves the credit of a elite monster takedown.
func monsterCredit(monsterType string) float64 {
	switch monsterType {
	case monsterDragon:
		return dragonCredit
	case monsterBaron:
		return baronCredit
	case monsterHerald, monsterHorde:
		return heraldCredit
	}
	return 0
}

// RankParticipants scores every participant of the match and returns them
// sorted descending by score with their 1-based ranks assigned.
// The sort is stable, ties keep the original participant order.
func RankParticipants(match *matchfetcher.MatchData, objectives map[int]float64, policy Policy) ([]RankedPlayer, error) {
	teams := aggregateTeams(match)

	ranked := make([]RankedPlayer, 0, len(match.Info.Participants))
	for _, participant := range match.Info.Participants {
		stats := statsFromParticipant(participant, objectives)

		score, err := Score(stats, teams[participant.TeamId], policy)
		if err != nil {
			return nil, err
		}

		ranked = append(ranked, RankedPlayer{
			PlayerStats: stats,
			Score:       score,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked, nil
}

// statsFromParticipant builds the raw counter bundle of one participant.
func statsFromParticipant(participant matchfetcher.MatchPlayer, objectives map[int]float64) PlayerStats {
	return PlayerStats{
		ParticipantId:               participant.ParticipantId,
		Puuid:                       participant.Puuid,
		ChampionName:                participant.ChampionName,
		TeamId:                      participant.TeamId,
		Kills:                       participant.Kills,
		Deaths:                      participant.Deaths,
		Assists:                     participant.Assists,
		TotalDamageDealtToChampions: participant.TotalDamageDealtToChampions,
		GoldEarned:                  participant.GoldEarned,
		VisionScore:                 participant.VisionScore,
		TotalMinionsKilled:          participant.TotalMinionsKilled,
		Win:                         participant.Win,
		ObjectiveScore:              objectives[participant.ParticipantId],
	}
}

// aggregateTeams derives the team wide totals from the participant list.
func aggregateTeams(match *matchfetcher.MatchData) map[int]TeamAggregate {
	teams := make(map[int]TeamAggregate, 2)

	for _, participant := range match.Info.Participants {
		team := teams[participant.TeamId]
		team.TeamId = participant.TeamId
		team.TotalDamageToChampions += participant.TotalDamageDealtToChampions
		team.TotalKills += participant.Kills
		team.Win = participant.Win
		team.GameDuration = match.Info.GameDuration
		teams[participant.TeamId] = team
	}

	return teams
}
