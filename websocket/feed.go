package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const completionsChannel = "daily_completions"

// CompletionEvent is the anonymized record of a finished session, fanned
// out to every instance's subscribers of that game.
type CompletionEvent struct {
	GameID   string `json:"gameId"`
	Won      bool   `json:"won"`
	Attempts int    `json:"attempts"`
}

// Feed publishes completion events through redis so subscribers on any
// instance see them. It implements play.CompletionPublisher.
type Feed struct {
	rdb *redis.Client
}

func NewFeed(rdb *redis.Client) *Feed {
	return &Feed{rdb: rdb}
}

func (f *Feed) PublishCompletion(gameID string, won bool, attempts int) {
	event := CompletionEvent{GameID: gameID, Won: won, Attempts: attempts}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Println("Error encoding completion event:", err)
		return
	}
	if err := f.rdb.Publish(ctx, completionsChannel, payload).Err(); err != nil {
		log.Println("Error publishing completion event:", err)
	}
}

// SubscribeCompletions starts routing published completion events to the
// local hub. Call once at startup.
func (f *Feed) SubscribeCompletions() error {
	sub := f.rdb.Subscribe(ctx, completionsChannel)
	if _, err := sub.Receive(ctx); err != nil {
		log.Println("error subscribing", err)
		return fmt.Errorf("error subscribing %w", err)
	}

	ch := sub.Channel()

	log.Printf("Subscribed to %s channel", completionsChannel)
	go func() {
		for msg := range ch {
			var event CompletionEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Println("Error decoding completion event:", err)
				continue
			}
			BroadcastToGame(event.GameID, OutgoingMessage{
				Type:    "DAILY_COMPLETION",
				Payload: event,
			})
		}
	}()

	return nil
}
