package performance

import (
	"errors"
)

// ErrInvalidGameDuration is returned when the match duration is missing or
// zero. The per minute rates are meaningless without it, so the whole
// computation is rejected instead of silently producing zeroes.
var ErrInvalidGameDuration = errors.New("game duration must be greater than zero")

// PlayerStats is the raw per participant counter bundle used by the scorer.
type PlayerStats struct {
	ParticipantId int    `json:"participantId"`
	Puuid         string `json:"puuid"`
	ChampionName  string `json:"championName"`
	TeamId        int    `json:"teamId"`

	Kills                       int  `json:"kills"`
	Deaths                      int  `json:"deaths"`
	Assists                     int  `json:"assists"`
	TotalDamageDealtToChampions int  `json:"totalDamageDealtToChampions"`
	GoldEarned                  int  `json:"goldEarned"`
	VisionScore                 int  `json:"visionScore"`
	TotalMinionsKilled          int  `json:"totalMinionsKilled"`
	Win                         bool `json:"win"`

	// Weighted objective credit accumulated from the timeline events.
	ObjectiveScore float64 `json:"objectiveScore"`
}

// TeamAggregate holds the team wide totals the sub scores are measured
// against, plus the match duration in seconds.
type TeamAggregate struct {
	TeamId                 int
	TotalDamageToChampions int
	TotalKills             int
	Win                    bool
	GameDuration           int
}

// Weights of each normalized sub score on the final sum.
type Weights struct {
	Kda               float64
	KillParticipation float64
	DamageShare       float64
	CsPerMin          float64
	VisionPerMin      float64
	Objectives        float64
}

// Caps used to normalize the unbounded sub scores to roughly [0, 1].
type Caps struct {
	Kda          float64
	CsPerMin     float64
	VisionPerMin float64
	Objectives   float64
}

// Policy bundles the scoring weights and normalization caps.
// The values are a tuning choice, not derived from upstream data,
// so callers may replace them wholesale.
type Policy struct {
	Weights Weights
	Caps    Caps
}

// DefaultPolicy is the policy used by the dashboard.
func DefaultPolicy() Policy {
	return Policy{
		Weights: Weights{
			Kda:               0.2,
			KillParticipation: 0.2,
			DamageShare:       0.2,
			CsPerMin:          0.2,
			VisionPerMin:      0.1,
			Objectives:        0.1,
		},
		Caps: Caps{
			Kda:          5,
			CsPerMin:     10,
			VisionPerMin: 2,
			Objectives:   3,
		},
	}
}

// Score computes the comparable performance score of one player.
//
// Six sub scores (KDA, kill participation, damage share, CS per minute,
// vision per minute, objective credit) are normalized, weighted, summed and
// scaled to roughly [0, 10], plus a flat +1 when the player's team won.
// The team ratio guards degrade a single sub score to 0 on zero totals,
// but a zero game duration rejects the whole computation.
func Score(player PlayerStats, team TeamAggregate, policy Policy) (float64, error) {
	if team.GameDuration <= 0 {
		return 0, ErrInvalidGameDuration
	}

	minutes := float64(team.GameDuration) / 60

	deaths := player.Deaths
	if deaths < 1 {
		deaths = 1
	}
	kda := float64(player.Kills+player.Assists) / float64(deaths)

	var killParticipation float64
	if team.TotalKills > 0 {
		killParticipation = float64(player.Kills+player.Assists) / float64(team.TotalKills)
	}

	var damageShare float64
	if team.TotalDamageToChampions > 0 {
		damageShare = float64(player.TotalDamageDealtToChampions) / float64(team.TotalDamageToChampions)
	}

	csPerMin := float64(player.TotalMinionsKilled) / minutes
	visionPerMin := float64(player.VisionScore) / minutes

	weights := policy.Weights
	caps := policy.Caps

	total := clip(kda/caps.Kda)*weights.Kda +
		killParticipation*weights.KillParticipation +
		damageShare*weights.DamageShare +
		clip(csPerMin/caps.CsPerMin)*weights.CsPerMin +
		clip(visionPerMin/caps.VisionPerMin)*weights.VisionPerMin +
		clip(player.ObjectiveScore/caps.Objectives)*weights.Objectives

	score := total * 10

	if team.Win {
		score += 1
	}

	return score, nil
}

// clip bounds a normalized sub score at 1.
func clip(value float64) float64 {
	if value > 1 {
		return 1
	}
	return value
}
