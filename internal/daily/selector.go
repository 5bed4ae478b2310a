// Package daily maps a game and a calendar date to a single stable index
// into the game's answer list, so every player sees the same puzzle
// regardless of timezone or client clock.
package daily

import (
	"errors"
	"hash/fnv"
	"time"
)

var ErrNoAnswers = errors.New("no answers available")

// Prime multipliers decorrelate games that share a day count and keep
// consecutive days from cycling through a short period when the answer
// set is small.
const (
	dayPrime  = 2654435761
	gamePrime = 40503
)

const dayFormat = "2006-01-02"

// SelectIndex returns the answer index for gameID on the given date.
// It is pure: the same (gameID, UTC day, answerCount) always yields the
// same index.
func SelectIndex(gameID string, date time.Time, answerCount int) (int, error) {
	if answerCount <= 0 {
		return 0, ErrNoAnswers
	}
	seed := uint64(daysSinceEpoch(date))*dayPrime + hashGameID(gameID)*gamePrime
	return int(seed % uint64(answerCount)), nil
}

func daysSinceEpoch(date time.Time) int64 {
	return date.UTC().Unix() / (24 * 60 * 60)
}

func hashGameID(gameID string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(gameID))
	return h.Sum64()
}

// DayKey renders the UTC calendar day used to key sessions and streaks.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayFormat)
}

// DayBefore returns the day key of the calendar day preceding day.
// Malformed input yields an empty string, which never matches a stored key.
func DayBefore(day string) string {
	t, err := time.Parse(dayFormat, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dayFormat)
}

// ResetTime returns the next UTC midnight, when the daily challenge rolls
// over.
func ResetTime(now time.Time) time.Time {
	utc := now.UTC()
	tomorrow := utc.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)
}
