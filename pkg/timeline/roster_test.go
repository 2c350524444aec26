package timeline

import (
	matchfetcher "leaguedash/fetcher/data/match"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRosterFromMatch(t *testing.T) {
	match := &matchfetcher.MatchData{
		Info: matchfetcher.MatchInfo{
			Participants: []matchfetcher.MatchPlayer{
				{ParticipantId: 1, ChampionName: "Ahri"},
				{ParticipantId: 2, ChampionName: "Darius"},
			},
		},
	}

	roster := RosterFromMatch(match)

	name, ok := roster.ChampionName(1)
	assert.True(t, ok)
	assert.Equal(t, "Ahri", name)

	assert.True(t, roster.Contains(2))
	assert.False(t, roster.Contains(3))

	_, ok = roster.ChampionName(3)
	assert.False(t, ok)
}
