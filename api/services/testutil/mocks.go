package testutil

import (
	"context"
	"leaguedash/api/dto"
	leaguefetcher "leaguedash/fetcher/data/league"
	matchfetcher "leaguedash/fetcher/data/match"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock implementations used on the match service tests.
// ============================================================================

// MockMatchSource mocks the match fetcher.
type MockMatchSource struct {
	mock.Mock
}

func (m *MockMatchSource) GetMatchData(ctx context.Context, matchId string, onDemand bool) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, matchId, onDemand)
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

func (m *MockMatchSource) GetMatchTimelineData(ctx context.Context, matchId string, onDemand bool) (*matchfetcher.MatchTimeline, error) {
	args := m.Called(ctx, matchId, onDemand)
	return args.Get(0).(*matchfetcher.MatchTimeline), args.Error(1)
}

// MockMatchCache mocks the redis backed match cache.
type MockMatchCache struct {
	mock.Mock
}

func (m *MockMatchCache) GetMatchSummary(ctx context.Context, matchId string, puuid string) (*dto.MatchSummary, error) {
	args := m.Called(ctx, matchId, puuid)
	return args.Get(0).(*dto.MatchSummary), args.Error(1)
}

func (m *MockMatchCache) SetMatchSummary(ctx context.Context, matchId string, puuid string, summary *dto.MatchSummary) error {
	args := m.Called(ctx, matchId, puuid, summary)
	return args.Error(0)
}

func (m *MockMatchCache) GetPerformanceBoard(ctx context.Context, matchId string) (*dto.PerformanceBoard, error) {
	args := m.Called(ctx, matchId)
	return args.Get(0).(*dto.PerformanceBoard), args.Error(1)
}

func (m *MockMatchCache) SetPerformanceBoard(ctx context.Context, board *dto.PerformanceBoard) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

// ============================================================================
// Mock implementations used on the roster service tests.
// ============================================================================

// MockLeagueSource mocks the league fetcher.
type MockLeagueSource struct {
	mock.Mock
}

func (m *MockLeagueSource) GetLeagueByPuuid(ctx context.Context, puuid string, onDemand bool) ([]leaguefetcher.LeagueEntry, error) {
	args := m.Called(ctx, puuid, onDemand)
	return args.Get(0).([]leaguefetcher.LeagueEntry), args.Error(1)
}

// MockMatchListSource mocks the match list fetcher.
type MockMatchListSource struct {
	mock.Mock
}

func (m *MockMatchListSource) GetMatchList(ctx context.Context, puuid string, queueId int, count int, onDemand bool) ([]string, error) {
	args := m.Called(ctx, puuid, queueId, count, onDemand)
	return args.Get(0).([]string), args.Error(1)
}

// MockRosterCache mocks the redis backed roster cache.
type MockRosterCache struct {
	mock.Mock
}

func (m *MockRosterCache) GetOverview(ctx context.Context) (*dto.RosterOverview, error) {
	args := m.Called(ctx)
	return args.Get(0).(*dto.RosterOverview), args.Error(1)
}

func (m *MockRosterCache) SetOverview(ctx context.Context, overview *dto.RosterOverview) error {
	args := m.Called(ctx, overview)
	return args.Error(0)
}
