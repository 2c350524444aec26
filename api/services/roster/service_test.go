package rosterservice

import (
	"context"
	"errors"
	"leaguedash/api/dto"
	"leaguedash/api/services/testutil"
	leaguefetcher "leaguedash/fetcher/data/league"
	"leaguedash/pkg/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string {
	return &v
}

func testRosterMembers() []config.RosterMember {
	return []config.RosterMember{
		{Name: "Hide on bush", Puuid: "puuid-faker"},
		{Name: "Oner", Puuid: "puuid-oner"},
	}
}

func setupTestService() (*RosterService, *testutil.MockLeagueSource, *testutil.MockMatchListSource, *testutil.MockRosterCache) {
	mockLeague := new(testutil.MockLeagueSource)
	mockMatches := new(testutil.MockMatchListSource)
	mockCache := new(testutil.MockRosterCache)

	service := NewRosterService(&RosterServiceDeps{
		League:  mockLeague,
		Matches: mockMatches,
		Cache:   mockCache,
		Roster:  testRosterMembers(),
	})

	return service, mockLeague, mockMatches, mockCache
}

func soloEntry(tier, rank string, lp int) leaguefetcher.LeagueEntry {
	return leaguefetcher.LeagueEntry{
		QueueType:    strPtr("RANKED_SOLO_5x5"),
		Tier:         strPtr(tier),
		Rank:         strPtr(rank),
		LeaguePoints: lp,
		Wins:         120,
		Losses:       80,
		HotStreak:    true,
	}
}

func flexEntry() leaguefetcher.LeagueEntry {
	return leaguefetcher.LeagueEntry{
		QueueType: strPtr("RANKED_FLEX_SR"),
		Tier:      strPtr("GOLD"),
		Rank:      strPtr("II"),
	}
}

func TestGetOverviewCacheHit(t *testing.T) {
	service, mockLeague, mockMatches, mockCache := setupTestService()

	cached := &dto.RosterOverview{
		Entries: []dto.RosterEntry{{SummonerName: "Hide on bush"}},
	}
	mockCache.On("GetOverview", mock.Anything).Return(cached, nil)

	overview, err := service.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, overview)

	testutil.VerifyAllMocks(t, mockLeague, mockMatches, mockCache)
}

func TestRefresh(t *testing.T) {
	service, mockLeague, mockMatches, mockCache := setupTestService()

	mockLeague.On("GetLeagueByPuuid", mock.Anything, "puuid-faker", false).
		Return([]leaguefetcher.LeagueEntry{flexEntry(), soloEntry("CHALLENGER", "I", 1200)}, nil)
	mockLeague.On("GetLeagueByPuuid", mock.Anything, "puuid-oner", false).
		Return([]leaguefetcher.LeagueEntry{}, nil)

	mockMatches.On("GetMatchList", mock.Anything, "puuid-faker", 420, 3, false).
		Return([]string{"KR_1", "KR_2", "KR_3"}, nil)
	mockMatches.On("GetMatchList", mock.Anything, "puuid-oner", 420, 3, false).
		Return([]string{"KR_4"}, nil)

	mockCache.On("SetOverview", mock.Anything, mock.Anything).Return(nil)

	overview, err := service.Refresh(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, overview.Entries, 2)

	// The configured roster order is kept regardless of fetch completion order.
	first := overview.Entries[0]
	assert.Equal(t, "Hide on bush", first.SummonerName)
	require.NotNil(t, first.League)
	assert.Equal(t, "CHALLENGER", first.League.Tier)
	assert.Equal(t, 1200, first.League.LeaguePoints)
	assert.Equal(t, []string{"KR_1", "KR_2", "KR_3"}, first.Matches)

	// No solo queue entry means unranked.
	second := overview.Entries[1]
	assert.Equal(t, "Oner", second.SummonerName)
	assert.Nil(t, second.League)
	assert.Equal(t, []string{"KR_4"}, second.Matches)

	testutil.VerifyAllMocks(t, mockLeague, mockMatches, mockCache)
}

func TestRefreshUpstreamError(t *testing.T) {
	service, mockLeague, mockMatches, _ := setupTestService()

	upstreamError := errors.New("bad status code: 503")

	mockLeague.On("GetLeagueByPuuid", mock.Anything, mock.Anything, false).
		Return(([]leaguefetcher.LeagueEntry)(nil), upstreamError).Maybe()
	mockMatches.On("GetMatchList", mock.Anything, mock.Anything, 420, 3, false).
		Return(([]string)(nil), nil).Maybe()

	overview, err := service.Refresh(context.Background(), false)

	assert.Nil(t, overview)
	assert.ErrorIs(t, err, upstreamError)
}

func TestSoloQueueEntryFilter(t *testing.T) {
	tests := []struct {
		name     string
		entries  []leaguefetcher.LeagueEntry
		expected *dto.LeagueSummary
	}{
		{
			name:     "empty",
			entries:  nil,
			expected: nil,
		},
		{
			name:     "flexOnly",
			entries:  []leaguefetcher.LeagueEntry{flexEntry()},
			expected: nil,
		},
		{
			name:    "soloPicked",
			entries: []leaguefetcher.LeagueEntry{flexEntry(), soloEntry("DIAMOND", "IV", 50)},
			expected: &dto.LeagueSummary{
				Tier: "DIAMOND", Rank: "IV", LeaguePoints: 50,
				Wins: 120, Losses: 80, HotStreak: true,
			},
		},
		{
			name: "missingQueueType",
			entries: []leaguefetcher.LeagueEntry{
				{Tier: strPtr("GOLD")},
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, soloQueueEntry(tt.entries))
		})
	}
}
