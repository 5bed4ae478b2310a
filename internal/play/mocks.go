package play

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guessdle/guessdle/internal/game"
)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Load(ctx context.Context, userID, gameID, date string) (*Session, error) {
	args := m.Called(userID, gameID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockSessionStore) Save(ctx context.Context, session *Session) error {
	args := m.Called(session)
	return args.Error(0)
}

type MockCompletionRecorder struct {
	mock.Mock
}

func (m *MockCompletionRecorder) RecordCompletion(ctx context.Context, userID string, g *game.Game, won bool, attempts int) error {
	args := m.Called(userID, g, won, attempts)
	return args.Error(0)
}

type MockCompletionPublisher struct {
	mock.Mock
}

func (m *MockCompletionPublisher) PublishCompletion(gameID string, won bool, attempts int) {
	m.Called(gameID, won, attempts)
}
