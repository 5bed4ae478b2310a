package play

import (
	"context"
	"strings"
	"time"

	"github.com/guessdle/guessdle/internal/apperrors"
	"github.com/guessdle/guessdle/internal/daily"
	"github.com/guessdle/guessdle/internal/game"
	"github.com/guessdle/guessdle/internal/user"
)

// CompletionRecorder folds a finished session into durable statistics.
// The play service calls it at most once per session, on the transition
// into Complete, and never for anonymous identities.
type CompletionRecorder interface {
	RecordCompletion(ctx context.Context, userID string, g *game.Game, won bool, attempts int) error
}

// CompletionPublisher fans a completion event out to live subscribers.
// Best effort; failures never affect the guess outcome.
type CompletionPublisher interface {
	PublishCompletion(gameID string, won bool, attempts int)
}

type PlayService struct {
	games    game.GameRepository
	sessions SessionStore // authenticated, shared
	device   SessionStore // anonymous, device-local
	stats    CompletionRecorder
	feed     CompletionPublisher
	now      func() time.Time
}

func NewPlayService(games game.GameRepository, sessions, device SessionStore, stats CompletionRecorder, feed CompletionPublisher) *PlayService {
	return &PlayService{
		games:    games,
		sessions: sessions,
		device:   device,
		stats:    stats,
		feed:     feed,
		now:      time.Now,
	}
}

// WithNow fixes the clock; tests use it to pin the calendar day.
func (s *PlayService) WithNow(now func() time.Time) *PlayService {
	s.now = now
	return s
}

// ChallengeView is what a player may see of today's puzzle. The target's
// display name is never part of it.
type ChallengeView struct {
	Game      *game.Game    `json:"game"`
	Contents  []ContentView `json:"contents"`
	Hint      string        `json:"hint,omitempty"`
	Session   *Session      `json:"session,omitempty"`
	ResetTime time.Time     `json:"resetTime"`
}

// GuessOutcome is the result of one accepted guess.
type GuessOutcome struct {
	Evaluation Evaluation    `json:"evaluation"`
	Session    *Session      `json:"session"`
	Contents   []ContentView `json:"contents"`
	Hint       string        `json:"hint,omitempty"`
	// Answer carries the target's display name once the session is over.
	Answer string `json:"answer,omitempty"`
}

// DailyChallenge resolves today's puzzle for the caller, including any
// session already in progress.
func (s *PlayService) DailyChallenge(ctx context.Context, identity user.Identity, gameID string) (*ChallengeView, error) {
	now := s.now()
	g, target, _, err := s.resolveTarget(gameID, now)
	if err != nil {
		return nil, err
	}

	session, err := s.storeFor(identity).Load(ctx, identity.ID, gameID, daily.DayKey(now))
	if err != nil {
		return nil, err
	}

	view := &ChallengeView{
		Game:      g,
		Contents:  VisibleContents(g, target, session),
		Session:   session,
		ResetTime: daily.ResetTime(now),
	}
	if g.Type == game.TypeQuoteGuesser && session != nil && session.HintShown {
		view.Hint = target.Hint
	}
	return view, nil
}

// GetSession returns the caller's session for today, or nil when no guess
// has been made yet.
func (s *PlayService) GetSession(ctx context.Context, identity user.Identity, gameID string) (*Session, error) {
	return s.storeFor(identity).Load(ctx, identity.ID, gameID, daily.DayKey(s.now()))
}

// SubmitGuess runs one state transition of the session machine: validate,
// evaluate, persist, then record stats and publish on completion. A failed
// save leaves the stored session untouched and the guess resubmittable.
func (s *PlayService) SubmitGuess(ctx context.Context, identity user.Identity, gameID, guess string) (*GuessOutcome, error) {
	if strings.TrimSpace(guess) == "" {
		return nil, apperrors.NewAppError(400, "guess text is empty", ErrEmptyGuess)
	}

	// One clock read per request: the day that picks the target is the
	// day that keys the session, even across a midnight boundary.
	now := s.now()
	g, target, answers, err := s.resolveTarget(gameID, now)
	if err != nil {
		return nil, err
	}

	date := daily.DayKey(now)
	store := s.storeFor(identity)

	session, err := store.Load(ctx, identity.ID, gameID, date)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = NewSession(identity.ID, g, date, now)
	}

	if session.IsComplete {
		return nil, apperrors.NewAppError(409, "session is already complete", ErrSessionComplete)
	}
	if session.HasAttempt(guess) {
		return nil, apperrors.NewAppError(409, "guess already attempted", ErrDuplicateGuess)
	}

	eval := Evaluate(guess, findAnswerByName(answers, guess), target, g, session)

	next := session.Clone()
	next.apply(guess, eval, g, now)

	if err := store.Save(ctx, next); err != nil {
		return nil, err
	}

	if next.IsComplete {
		if !identity.Anonymous {
			if err := s.stats.RecordCompletion(ctx, identity.ID, g, next.Won, len(next.Attempts)); err != nil {
				// The session is already completed and saved; a completed
				// session with stale stats is tolerated, the reverse is not.
				return nil, err
			}
		}
		if s.feed != nil {
			s.feed.PublishCompletion(gameID, next.Won, len(next.Attempts))
		}
	}

	outcome := &GuessOutcome{
		Evaluation: eval,
		Session:    next,
		Contents:   VisibleContents(g, target, next),
	}
	if g.Type == game.TypeQuoteGuesser && next.HintShown {
		outcome.Hint = target.Hint
	}
	if next.IsComplete {
		outcome.Answer = target.Answer
	}
	return outcome, nil
}

// resolveTarget loads the game, its ordered answers and the target for
// the given moment's calendar day.
func (s *PlayService) resolveTarget(gameID string, now time.Time) (*game.Game, *game.Answer, []game.Answer, error) {
	g, err := s.games.GetGame(gameID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !g.IsPublished {
		return nil, nil, nil, apperrors.NewAppError(403, "game is not published", nil)
	}

	answers, err := s.games.ListAnswers(gameID)
	if err != nil {
		return nil, nil, nil, err
	}

	idx, err := daily.SelectIndex(gameID, now, len(answers))
	if err != nil {
		return nil, nil, nil, apperrors.NewAppError(404, "no challenge available today", err)
	}

	return g, &answers[idx], answers, nil
}

func (s *PlayService) storeFor(identity user.Identity) SessionStore {
	if identity.Anonymous {
		return s.device
	}
	return s.sessions
}

func findAnswerByName(answers []game.Answer, guess string) *game.Answer {
	for i := range answers {
		if NamesEqual(answers[i].Answer, guess) {
			return &answers[i]
		}
	}
	return nil
}
