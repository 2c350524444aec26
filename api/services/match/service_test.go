package matchservice

import (
	"context"
	"errors"
	"leaguedash/api/dto"
	"leaguedash/api/services/testutil"
	matchfetcher "leaguedash/fetcher/data/match"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/timeline"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Simple test for asserting that everything is fine with the match service creation.
func TestNewMatchService(t *testing.T) {
	service, _, _ := setupTestService()

	assert.NotNil(t, service)
	assert.NotNil(t, service.fetcher)
	assert.NotNil(t, service.cache)
}

func TestGetMatchSummary(t *testing.T) {
	tests := []struct {
		name          string
		puuid         string
		cached        *dto.MatchSummary
		match         *matchfetcher.MatchData
		fetchError    error
		expectRanked  bool
		expectedError error
	}{
		{
			name:         "cacheHitSkipsFetch",
			puuid:        testPuuid,
			cached:       &dto.MatchSummary{IsRanked: true, ChampionName: "Ahri"},
			expectRanked: true,
		},
		{
			name:  "nonRankedShortCircuit",
			puuid: testPuuid,
			match: func() *matchfetcher.MatchData {
				match := getMockMatch()
				match.Info.QueueId = 450
				return match
			}(),
			expectRanked: false,
		},
		{
			name:          "playerNotInMatch",
			puuid:         "puuid-unknown",
			match:         getMockMatch(),
			expectedError: ErrPlayerNotFound,
		},
		{
			name:          "rateLimitPropagated",
			puuid:         testPuuid,
			fetchError:    requests.ErrRateLimited,
			expectedError: requests.ErrRateLimited,
		},
		{
			name:         "everythingFine",
			puuid:        testPuuid,
			match:        getMockMatch(),
			expectRanked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockSource, mockCache := setupTestService()

			mockCache.On("GetMatchSummary", mock.Anything, testMatchId, tt.puuid).
				Return(tt.cached, nil)

			if tt.cached == nil {
				mockSource.On("GetMatchData", mock.Anything, testMatchId, true).
					Return(tt.match, tt.fetchError)
			}

			if tt.cached == nil && tt.expectedError == nil {
				mockCache.On("SetMatchSummary", mock.Anything, testMatchId, tt.puuid, mock.Anything).
					Return(nil)
			}

			summary, err := service.GetMatchSummary(context.Background(), testMatchId, tt.puuid)

			if tt.expectedError != nil {
				assert.Nil(t, summary)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				require.NotNil(t, summary)
				assert.Equal(t, tt.expectRanked, summary.IsRanked)
			}

			testutil.VerifyAllMocks(t, mockSource, mockCache)
		})
	}
}

func TestGetMatchSummaryShape(t *testing.T) {
	service, mockSource, mockCache := setupTestService()

	mockCache.On("GetMatchSummary", mock.Anything, testMatchId, testPuuid).
		Return((*dto.MatchSummary)(nil), nil)
	mockSource.On("GetMatchData", mock.Anything, testMatchId, true).
		Return(getMockMatch(), nil)
	mockCache.On("SetMatchSummary", mock.Anything, testMatchId, testPuuid, mock.Anything).
		Return(nil)

	summary, err := service.GetMatchSummary(context.Background(), testMatchId, testPuuid)
	require.NoError(t, err)

	assert.Equal(t, "Ahri", summary.ChampionName)
	assert.True(t, summary.Win)
	assert.Equal(t, 7, summary.Kills)
	assert.Equal(t, []int{3089, 0, 0, 0, 0, 0, 3363}, summary.Items)
	assert.Equal(t, int64(1700000000000), summary.GameStartTimestamp)
	assert.Equal(t, 1, summary.ParticipantId)
}

func TestGetMatchTimeline(t *testing.T) {
	tests := []struct {
		name          string
		puuid         string
		expectedError error
	}{
		{
			name:  "everythingFine",
			puuid: testPuuid,
		},
		{
			name:          "playerNotInMatch",
			puuid:         "puuid-unknown",
			expectedError: ErrPlayerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockSource, mockCache := setupTestService()

			mockSource.On("GetMatchData", mock.Anything, testMatchId, true).
				Return(getMockMatch(), nil)
			mockSource.On("GetMatchTimelineData", mock.Anything, testMatchId, true).
				Return(getMockTimeline(), nil)

			result, err := service.GetMatchTimeline(context.Background(), testMatchId, tt.puuid)

			if tt.expectedError != nil {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				require.Len(t, result.Events, 2)
				assert.Equal(t, testMatchId, result.MatchId)
				assert.Equal(t, timeline.EventKill, result.Events[0].Type)
				assert.Equal(t, "Darius", result.Events[0].VictimChampion)
				assert.Equal(t, timeline.EventMonsterKill, result.Events[1].Type)
			}

			testutil.VerifyAllMocks(t, mockSource, mockCache)
		})
	}
}

func TestGetMatchTimelineFetchError(t *testing.T) {
	service, mockSource, _ := setupTestService()

	fetchError := errors.New("bad status code: 500")
	mockSource.On("GetMatchData", mock.Anything, testMatchId, true).
		Return((*matchfetcher.MatchData)(nil), fetchError).Maybe()
	mockSource.On("GetMatchTimelineData", mock.Anything, testMatchId, true).
		Return((*matchfetcher.MatchTimeline)(nil), fetchError).Maybe()

	result, err := service.GetMatchTimeline(context.Background(), testMatchId, testPuuid)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, fetchError)
}

func TestGetPerformanceBoard(t *testing.T) {
	tests := []struct {
		name   string
		cached *dto.PerformanceBoard
	}{
		{
			name:   "cacheHitSkipsFetch",
			cached: &dto.PerformanceBoard{MatchId: testMatchId},
		},
		{
			name: "everythingFine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockSource, mockCache := setupTestService()

			mockCache.On("GetPerformanceBoard", mock.Anything, testMatchId).
				Return(tt.cached, nil)

			if tt.cached == nil {
				mockSource.On("GetMatchData", mock.Anything, testMatchId, true).
					Return(getMockMatch(), nil)
				mockSource.On("GetMatchTimelineData", mock.Anything, testMatchId, true).
					Return(getMockTimeline(), nil)
				mockCache.On("SetPerformanceBoard", mock.Anything, mock.Anything).
					Return(nil)
			}

			board, err := service.GetPerformanceBoard(context.Background(), testMatchId)
			require.NoError(t, err)
			require.NotNil(t, board)
			assert.Equal(t, testMatchId, board.MatchId)

			if tt.cached == nil {
				require.Len(t, board.Players, 2)
				assert.Equal(t, 1800, board.GameDuration)

				// Ahri carried and took the dragon, she must rank first.
				assert.Equal(t, 1, board.Players[0].Rank)
				assert.Equal(t, "Ahri", board.Players[0].ChampionName)
				assert.InDelta(t, 0.5, board.Players[0].ObjectiveScore, 1e-9)
				assert.Greater(t, board.Players[0].Score, board.Players[1].Score)
			}

			testutil.VerifyAllMocks(t, mockSource, mockCache)
		})
	}
}
