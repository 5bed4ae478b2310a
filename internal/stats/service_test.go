package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guessdle/guessdle/internal/game"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
}

func TestRecordCompletion_DailyChallengeUpdatesBothStores(t *testing.T) {
	mockRepo := &MockStatsRepository{}
	service := NewStatsService(mockRepo).WithNow(fixedNow)

	g := &game.Game{ID: "g1", IsDailyChallenge: true}
	mockRepo.On("GetDailyStats", uint(7), "g1").Return(nil, nil)
	mockRepo.On("SaveDailyStats", mock.MatchedBy(func(s *DailyStats) bool {
		return s.UserID == 7 && s.TotalPlayed == 1 && s.TotalWins == 1 && s.LastPlayed == "2025-06-14"
	})).Return(nil)
	mockRepo.On("GetUserStats", uint(7)).Return(nil, nil)
	mockRepo.On("SaveUserStats", mock.MatchedBy(func(s *UserStats) bool {
		return s.UserID == 7 && s.TotalGamesPlayed == 1 && s.FirstWin
	})).Return(nil)

	err := service.RecordCompletion(context.Background(), "7", g, true, 3)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRecordCompletion_NonDailySkipsDailyStats(t *testing.T) {
	mockRepo := &MockStatsRepository{}
	service := NewStatsService(mockRepo).WithNow(fixedNow)

	g := &game.Game{ID: "g2", IsDailyChallenge: false}
	mockRepo.On("GetUserStats", uint(7)).Return(nil, nil)
	mockRepo.On("SaveUserStats", mock.AnythingOfType("*stats.UserStats")).Return(nil)

	err := service.RecordCompletion(context.Background(), "7", g, false, 6)
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "GetDailyStats", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestRecordCompletion_InvalidUserID(t *testing.T) {
	mockRepo := &MockStatsRepository{}
	service := NewStatsService(mockRepo)

	err := service.RecordCompletion(context.Background(), "device-abc123", &game.Game{ID: "g1"}, true, 1)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "SaveUserStats", mock.Anything)
}
