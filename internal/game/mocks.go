package game

import (
	"github.com/stretchr/testify/mock"
)

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) SaveGame(game *Game) error {
	args := m.Called(game)
	return args.Error(0)
}

func (m *MockGameRepository) GetGame(id string) (*Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *MockGameRepository) ListPublished() ([]Game, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
}

func (m *MockGameRepository) SaveAnswer(answer *Answer) error {
	args := m.Called(answer)
	return args.Error(0)
}

func (m *MockGameRepository) ListAnswers(gameID string) ([]Answer, error) {
	args := m.Called(gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Answer), args.Error(1)
}

func (m *MockGameRepository) CountAnswers(gameID string) (int64, error) {
	args := m.Called(gameID)
	return args.Get(0).(int64), args.Error(1)
}
