package performance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTeam() TeamAggregate {
	return TeamAggregate{
		TeamId:                 100,
		TotalDamageToChampions: 60000,
		TotalKills:             20,
		Win:                    false,
		GameDuration:           1800,
	}
}

func testPlayer() PlayerStats {
	return PlayerStats{
		ParticipantId:               1,
		TeamId:                      100,
		Kills:                       5,
		Deaths:                      3,
		Assists:                     7,
		TotalDamageDealtToChampions: 18000,
		VisionScore:                 25,
		TotalMinionsKilled:          180,
		ObjectiveScore:              1.2,
	}
}

func TestScoreIsMonotonicInKills(t *testing.T) {
	team := testTeam()

	previous := -1.0
	for kills := 0; kills <= 10; kills++ {
		player := testPlayer()
		player.Kills = kills

		score, err := Score(player, team, DefaultPolicy())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, score, previous, "score dropped at %d kills", kills)
		previous = score
	}
}

func TestScoreRejectsZeroDuration(t *testing.T) {
	team := testTeam()
	team.GameDuration = 0

	score, err := Score(testPlayer(), team, DefaultPolicy())

	assert.ErrorIs(t, err, ErrInvalidGameDuration)
	assert.False(t, math.IsNaN(score))
	assert.False(t, math.IsInf(score, 0))
	assert.Zero(t, score)
}

func TestScoreZeroTeamTotals(t *testing.T) {
	// Full AFK team, the ratio sub scores degrade to zero instead of NaN.
	team := testTeam()
	team.TotalKills = 0
	team.TotalDamageToChampions = 0

	player := testPlayer()
	player.Kills = 0
	player.Assists = 0
	player.TotalDamageDealtToChampions = 0

	score, err := Score(player, team, DefaultPolicy())
	require.NoError(t, err)

	assert.False(t, math.IsNaN(score))
	assert.GreaterOrEqual(t, score, 0.0)
}

func TestScoreWinBonus(t *testing.T) {
	player := testPlayer()

	lossTeam := testTeam()
	winTeam := testTeam()
	winTeam.Win = true

	lossScore, err := Score(player, lossTeam, DefaultPolicy())
	require.NoError(t, err)

	winScore, err := Score(player, winTeam, DefaultPolicy())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, winScore-lossScore, 1e-9)
}

func TestScoreCapsSubScores(t *testing.T) {
	// A farm only sub score over it's cap contributes exactly the weight.
	team := testTeam()
	player := PlayerStats{
		TeamId:             100,
		TotalMinionsKilled: 600,
	}

	score, err := Score(player, team, DefaultPolicy())
	require.NoError(t, err)

	// csPerMin is 20, clipped at 1, so 0.2 * 10 = 2.
	assert.InDelta(t, 2.0, score, 1e-9)
}

func TestScoreIsBounded(t *testing.T) {
	// Everything maxed still lands in the [0, 11] band.
	team := TeamAggregate{
		TotalDamageToChampions: 1,
		TotalKills:             1,
		Win:                    true,
		GameDuration:           60,
	}
	player := PlayerStats{
		Kills:                       1,
		Assists:                     0,
		TotalDamageDealtToChampions: 1,
		VisionScore:                 1000,
		TotalMinionsKilled:          1000,
		ObjectiveScore:              50,
	}

	score, err := Score(player, team, DefaultPolicy())
	require.NoError(t, err)

	assert.LessOrEqual(t, score, 11.0)
	assert.GreaterOrEqual(t, score, 0.0)
}
