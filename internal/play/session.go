package play

import (
	"errors"
	"strings"
	"time"

	"github.com/guessdle/guessdle/internal/game"
)

// Session state machine errors. The service wraps these in AppErrors at the
// HTTP boundary.
var (
	ErrEmptyGuess      = errors.New("guess text is empty")
	ErrDuplicateGuess  = errors.New("guess already attempted this session")
	ErrSessionComplete = errors.New("session is already complete")
)

// Session is one player's run at one game on one calendar day. It is
// created on the first guess, mutated on every guess, and frozen once
// IsComplete is set.
type Session struct {
	UserID           string          `json:"userId"`
	GameID           string          `json:"gameId"`
	Date             string          `json:"date"`
	Attempts []string `json:"attempts"`
	// AttributeResults holds one comparison row per attempt, parallel to
	// Attempts (attribute games only). A resumed client replays them to
	// rebuild the full grid.
	AttributeResults []map[string]AttributeResult `json:"attributeResults,omitempty"`
	RevealStep       int                          `json:"revealStep,omitempty"`
	HintShown        bool                         `json:"hintShown,omitempty"`
	StartedAt        time.Time                    `json:"startedAt"`
	CompletedAt      *time.Time                   `json:"completedAt,omitempty"`
	IsComplete       bool                         `json:"isComplete"`
	Won              bool                         `json:"won"`
}

func NewSession(userID string, g *game.Game, date string, now time.Time) *Session {
	s := &Session{
		UserID:    userID,
		GameID:    g.ID,
		Date:      date,
		Attempts:  []string{},
		StartedAt: now,
	}
	if g.Type == game.TypeProgressive {
		// The first clue is visible before any guess.
		s.RevealStep = 1
	}
	return s
}

// Clone returns a copy safe to mutate without touching the loaded state.
// The service applies a transition to the clone and only adopts it once
// the save succeeded.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Attempts = append([]string{}, s.Attempts...)
	if s.AttributeResults != nil {
		clone.AttributeResults = make([]map[string]AttributeResult, len(s.AttributeResults))
		for i, row := range s.AttributeResults {
			copied := make(map[string]AttributeResult, len(row))
			for k, v := range row {
				copied[k] = v
			}
			clone.AttributeResults[i] = copied
		}
	}
	if s.CompletedAt != nil {
		completed := *s.CompletedAt
		clone.CompletedAt = &completed
	}
	return &clone
}

func (s *Session) HasAttempt(guess string) bool {
	normalized := Normalize(guess)
	for _, attempt := range s.Attempts {
		if Normalize(attempt) == normalized {
			return true
		}
	}
	return false
}

// apply runs one state transition: Empty/InProgress plus a guess becomes
// InProgress or Complete. The guess must already be validated against
// ErrEmptyGuess, ErrDuplicateGuess and ErrSessionComplete.
func (s *Session) apply(guess string, eval Evaluation, g *game.Game, now time.Time) {
	s.Attempts = append(s.Attempts, strings.TrimSpace(guess))
	if eval.AttributeResults != nil {
		s.AttributeResults = append(s.AttributeResults, eval.AttributeResults)
	}
	if eval.RevealStep > s.RevealStep {
		s.RevealStep = eval.RevealStep
	}
	if eval.HintAvailable {
		s.HintShown = true
	}

	outOfAttempts := g.MaxAttempts > 0 && len(s.Attempts) >= g.MaxAttempts
	if eval.Solved || outOfAttempts {
		s.IsComplete = true
		s.Won = eval.Solved
		completed := now
		s.CompletedAt = &completed
	}
}

// Normalize lowercases and trims a guess; duplicates and name matches are
// judged on the normalized form.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func NamesEqual(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
