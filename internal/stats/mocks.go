package stats

import (
	"github.com/stretchr/testify/mock"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetDailyStats(userID uint, gameID string) (*DailyStats, error) {
	args := m.Called(userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DailyStats), args.Error(1)
}

func (m *MockStatsRepository) SaveDailyStats(stats *DailyStats) error {
	args := m.Called(stats)
	return args.Error(0)
}

func (m *MockStatsRepository) GetUserStats(userID uint) (*UserStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserStats), args.Error(1)
}

func (m *MockStatsRepository) SaveUserStats(stats *UserStats) error {
	args := m.Called(stats)
	return args.Error(0)
}
