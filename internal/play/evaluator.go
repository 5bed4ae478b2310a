package play

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/guessdle/guessdle/internal/game"
)

// AttributeResult is one cell of the comparison grid: the guessed
// answer's value for an attribute and whether it matches the target's.
type AttributeResult struct {
	Value interface{} `json:"value"`
	Match bool        `json:"match"`
}

// Evaluation is the feedback for a single guess. Which fields are set
// depends on the game type.
type Evaluation struct {
	Solved bool `json:"solved"`
	// AttributeResults maps attribute id to the guessed answer's value and
	// match flag for that attribute (attribute games only).
	AttributeResults map[string]AttributeResult `json:"attributeResults,omitempty"`
	// HintAvailable reports that the quote hint may be shown; once true it
	// stays true for the session.
	HintAvailable bool `json:"hintAvailable,omitempty"`
	// RevealStep is the highest reveal order visible after this guess
	// (progressive games only).
	RevealStep int `json:"revealStep,omitempty"`
}

// Evaluate scores a guess against the day's target. It is pure: prior
// session state comes in through prior, the clock is never read, nothing
// is persisted. guessed is the answer whose display name matches the guess,
// or nil when the guess names no known answer.
func Evaluate(guess string, guessed *game.Answer, target *game.Answer, g *game.Game, prior *Session) Evaluation {
	eval := Evaluation{Solved: NamesEqual(guess, target.Answer)}

	switch g.Type {
	case game.TypeAttributeGuesser:
		eval.AttributeResults = compareAttributes(guessed, target, g)
	case game.TypeQuoteGuesser:
		eval.HintAvailable = prior.HintShown || (!eval.Solved && target.Hint != "")
	case game.TypeProgressive:
		eval.RevealStep = nextRevealStep(prior.RevealStep, eval.Solved, target)
	case game.TypeImageGuesser:
		// name check only
	}

	return eval
}

func compareAttributes(guessed *game.Answer, target *game.Answer, g *game.Game) map[string]AttributeResult {
	results := make(map[string]AttributeResult, len(g.Attributes))
	if guessed == nil {
		return results
	}
	for _, attr := range g.Attributes {
		guessedValue, guessedOk := guessed.AttributeValues[attr.ID]
		targetValue, targetOk := target.AttributeValues[attr.ID]
		results[attr.ID] = AttributeResult{
			Value: guessedValue,
			// a missing value means "unknown", never a match
			Match: guessedOk && targetOk && valuesEqual(guessedValue, targetValue),
		}
	}
	return results
}

// valuesEqual compares attribute values by their canonical JSON encoding,
// so text, number, boolean and array values all compare the same way they
// are stored. Array order is significant.
func valuesEqual(a, b interface{}) bool {
	aJSON, errA := json.Marshal(a)
	bJSON, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(aJSON, bJSON)
}

func nextRevealStep(prior int, solved bool, target *game.Answer) int {
	step := prior
	if step < 1 {
		step = 1
	}
	if solved {
		return step
	}
	if max := maxRevealOrder(target); step < max {
		step++
	}
	return step
}

func maxRevealOrder(target *game.Answer) int {
	max := 0
	for _, content := range target.Contents {
		if content.RevealOrder > max {
			max = content.RevealOrder
		}
	}
	return max
}

// ContentView is a content item the current session state allows the
// player to see.
type ContentView struct {
	ID          string `json:"id"`
	Value       string `json:"value"`
	RevealOrder int    `json:"revealOrder,omitempty"`
}

// VisibleContents lists the target's contents the player may see given the
// session so far. The target's display name is never part of the result.
func VisibleContents(g *game.Game, target *game.Answer, session *Session) []ContentView {
	views := []ContentView{}
	switch g.Type {
	case game.TypeProgressive:
		step := 1
		if session != nil && session.RevealStep > step {
			step = session.RevealStep
		}
		for id, content := range target.Contents {
			if content.RevealOrder <= step {
				views = append(views, ContentView{ID: id, Value: content.Value, RevealOrder: content.RevealOrder})
			}
		}
		sort.Slice(views, func(i, j int) bool { return views[i].RevealOrder < views[j].RevealOrder })
	case game.TypeImageGuesser, game.TypeQuoteGuesser:
		for id, content := range target.Contents {
			views = append(views, ContentView{ID: id, Value: content.Value})
		}
		sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	case game.TypeAttributeGuesser:
		// the attribute schema is on the game itself
	}
	return views
}
